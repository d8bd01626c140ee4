package facetfish

import "errors"

var (
	// ErrInvalidArgument is returned by Search when the options or one of its filters is nil.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownTerm is returned by QueryParser when a query word names no color or size.
	ErrUnknownTerm = errors.New("unknown term")
	// ErrUnknownFacetValue is returned by Storage when a stored id is not a registered color or size.
	ErrUnknownFacetValue = errors.New("unknown facet value")
)
