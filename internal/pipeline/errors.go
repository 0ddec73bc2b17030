package pipeline

import "errors"

var (
	// ErrNoExpirations means the provider listed no expiration dates at all.
	ErrNoExpirations = errors.New("no expiration dates available")

	// ErrNoFutureExpiration means every listed expiration is in the past.
	ErrNoFutureExpiration = errors.New("no future expiration date")

	// ErrEmptyChain means neither side of the chain produced a usable row.
	ErrEmptyChain = errors.New("option chain has no usable rows")

	// ErrValidationFailed means a normalized batch failed schema or
	// null-safety checks and must be dropped, not persisted.
	ErrValidationFailed = errors.New("option batch failed validation")
)
