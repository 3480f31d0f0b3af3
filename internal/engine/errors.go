package engine

import "errors"

// Validation failures the engine can report. All are recoverable,
// user-facing errors; the engine never partially applies a cascade
// after returning one. Wrapped messages carry the offending ids and
// values, so callers branch with errors.Is and render err.Error()
// directly.
var (
	ErrMissingField       = errors.New("missing required field")
	ErrNotFound           = errors.New("not found")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrLicenseMismatch    = errors.New("license mismatch")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidField       = errors.New("invalid field value")
	ErrOdometerRegression = errors.New("odometer below current reading")
)
