package main

import (
	"errors"

	apperrors "github.com/anime-shed/image-averager-go/internal/errors"
	"github.com/anime-shed/image-averager-go/pkg/models"
)

const usage = "usage: averager <path> | averager -u <url>"

// parseArgs maps the command line (without the program name) to a source
func parseArgs(args []string) (models.Source, error) {
	switch {
	case len(args) == 1 && args[0] != "-u":
		return models.LocalSource(args[0]), nil
	case len(args) == 2 && args[0] == "-u":
		return models.URLSource(args[1]), nil
	default:
		return models.Source{}, apperrors.NewInvalidArgumentsError("illegal command format", usage)
	}
}

// userMessage is the text shown after "Error: "
func userMessage(err error) string {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	if appErr.Type == apperrors.ErrorTypeInvalidArguments && appErr.Details != "" {
		return appErr.Message + "\n" + appErr.Details
	}
	return appErr.Message
}
