package indicator

import "errors"

var (
	// ErrInvalidConfiguration is returned when a capacity, window size or
	// settings value is outside its documented range.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrIndexOutOfRange is returned by indexed reads outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownIndicator is returned by catalog lookups for unregistered names.
	ErrUnknownIndicator = errors.New("unknown indicator")

	// ErrUnknownParameter is returned when a parameter name is not part of an
	// indicator's schema.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrInvalidPrice is returned by Price.Validate
	ErrInvalidPrice = errors.New("invalid price")

	// ErrUnsupportedInput is returned when an input cannot be routed to an
	// indicator, e.g. a single bar fed to a comparison indicator.
	ErrUnsupportedInput = errors.New("unsupported input")
)
