package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrEmptyURL         = errors.New("URL cannot be empty")
	ErrInvalidURL       = errors.New("invalid URL format")
	ErrSchemeNotAllowed = errors.New("URL scheme not allowed")
	ErrMissingHost      = errors.New("URL must have a valid host")
	ErrHostNotAllowed   = errors.New("URL host not allowed")
)

// URLValidator checks that an image URL can be handed to one of the image sources
type URLValidator struct {
	allowedSchemes []string
	allowedHosts   []string
}

// NewURLValidator creates a URL validator accepting http and https on any host
func NewURLValidator() *URLValidator {
	return &URLValidator{
		allowedSchemes: []string{"http", "https"},
		allowedHosts:   []string{}, // empty means all hosts allowed
	}
}

// NewURLValidatorWithOptions creates a URL validator with custom options
func NewURLValidatorWithOptions(schemes []string, hosts []string) *URLValidator {
	return &URLValidator{
		allowedSchemes: schemes,
		allowedHosts:   hosts,
	}
}

// ValidateImageURL parses imageURL and returns it if scheme and host are acceptable
func (v *URLValidator) ValidateImageURL(imageURL string) (*url.URL, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, ErrEmptyURL
	}

	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if !v.isSchemeAllowed(parsedURL.Scheme) {
		return nil, fmt.Errorf("%w: %q", ErrSchemeNotAllowed, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return nil, ErrMissingHost
	}

	if len(v.allowedHosts) > 0 && !v.isHostAllowed(parsedURL.Hostname()) {
		return nil, fmt.Errorf("%w: %q", ErrHostNotAllowed, parsedURL.Hostname())
	}

	return parsedURL, nil
}

// isSchemeAllowed checks if the URL scheme is in the allowed list
func (v *URLValidator) isSchemeAllowed(scheme string) bool {
	for _, allowed := range v.allowedSchemes {
		if strings.EqualFold(scheme, allowed) {
			return true
		}
	}
	return false
}

// isHostAllowed checks if the URL host is in the allowed list
// Returns true if no host restrictions are set (empty allowedHosts)
func (v *URLValidator) isHostAllowed(host string) bool {
	if len(v.allowedHosts) == 0 {
		return true
	}
	for _, allowed := range v.allowedHosts {
		if strings.EqualFold(host, allowed) {
			return true
		}
	}
	return false
}
