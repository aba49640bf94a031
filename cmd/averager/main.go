package main

import (
	"context"
	"fmt"
	"os"

	"github.com/anime-shed/image-averager-go/internal/config"
	"github.com/anime-shed/image-averager-go/internal/container"
	apperrors "github.com/anime-shed/image-averager-go/internal/errors"
	"github.com/anime-shed/image-averager-go/internal/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logger.WithError(err).WithField("error_type", apperrors.TypeOf(err)).Debug("Exiting with error")
		fmt.Printf("Error: %s\n", userMessage(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	src, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return apperrors.NewConfigError(err.Error(), err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to initialize: %v", err), err)
	}

	logger.WithFields(logrus.Fields{
		"source":      src.String(),
		"resize_mode": cfg.ResizeMode,
		"max_side":    cfg.MaxSide,
	}).Debug("Starting")

	// the window sink blocks here until the window is closed
	err = c.Service().Display(context.Background(), src)

	logger.WithFields(logrus.Fields(c.Stats())).Debug("Pipeline stats")
	return err
}
