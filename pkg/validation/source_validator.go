package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/anime-shed/image-averager-go/pkg/models"
)

var (
	// ErrEmptyLocation indicates a source without a path or URL
	ErrEmptyLocation = errors.New("location cannot be empty")

	// ErrUnknownSourceKind indicates a source that is neither local nor a URL
	ErrUnknownSourceKind = errors.New("unknown source kind")

	// ErrInvalidURL indicates a URL that could not be parsed
	ErrInvalidURL = errors.New("invalid URL format")

	// ErrSchemeNotAllowed indicates a URL scheme outside the allowed list
	ErrSchemeNotAllowed = errors.New("URL scheme not allowed")

	// ErrMissingHost indicates a URL without a host
	ErrMissingHost = errors.New("URL must have a valid host")

	// ErrHostNotAllowed indicates a URL host outside the allowed list
	ErrHostNotAllowed = errors.New("URL host not allowed")
)

// DefaultSchemes are the URL schemes accepted unless configured otherwise
var DefaultSchemes = []string{"http", "https"}

// SourceValidator checks a source before anything is read
type SourceValidator struct {
	allowedSchemes []string
	allowedHosts   []string
}

// NewSourceValidator accepts any local path and any http(s) URL
func NewSourceValidator() *SourceValidator {
	return &SourceValidator{
		allowedSchemes: DefaultSchemes,
		allowedHosts:   []string{}, // empty means all hosts allowed
	}
}

// NewSourceValidatorWithOptions restricts URL sources to the given schemes and
// lower-case hosts. An empty host list allows every host.
func NewSourceValidatorWithOptions(schemes []string, hosts []string) *SourceValidator {
	return &SourceValidator{
		allowedSchemes: schemes,
		allowedHosts:   hosts,
	}
}

// ValidateSource returns one of the Err* values, possibly wrapped
func (v *SourceValidator) ValidateSource(src models.Source) error {
	if strings.TrimSpace(src.Location) == "" {
		return ErrEmptyLocation
	}

	switch src.Kind {
	case models.SourceLocal:
		return nil
	case models.SourceURL:
		return v.ValidateURL(src.Location)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSourceKind, src.Kind)
	}
}

// ValidateURL checks scheme and host of a remote image location
func (v *SourceValidator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyLocation
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if !contains(v.allowedSchemes, strings.ToLower(parsedURL.Scheme)) {
		return fmt.Errorf("%w: %q", ErrSchemeNotAllowed, parsedURL.Scheme)
	}

	if parsedURL.Hostname() == "" {
		return ErrMissingHost
	}

	if len(v.allowedHosts) > 0 && !contains(v.allowedHosts, strings.ToLower(parsedURL.Hostname())) {
		return fmt.Errorf("%w: %q", ErrHostNotAllowed, parsedURL.Hostname())
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, allowed := range values {
		if value == allowed {
			return true
		}
	}
	return false
}
