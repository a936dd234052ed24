package pricing

import "errors"

// All pricing failures are caller-correctable: the engine never retries and
// there is no transient class, a computation either prices or it does not.
var (
	ErrValidation             = errors.New("missing or malformed request fields")
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrUnknownLocation        = errors.New("unknown location")
	ErrUnknownFactorReference = errors.New("unknown factor reference")
	ErrCarTypeDisabled        = errors.New("car type disabled")
	ErrDurationOutOfRange     = errors.New("booking duration out of range")
)
