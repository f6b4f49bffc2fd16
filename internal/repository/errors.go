package repository

import "errors"

var (
	// ErrInvalidImageURL indicates the URL could not be routed to any image source
	ErrInvalidImageURL = errors.New("invalid image URL")

	// ErrNoSource indicates a URL that passed validation but matched no configured source
	ErrNoSource = errors.New("no image source for URL")
)
