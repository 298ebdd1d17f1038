package crossval

import "fmt"

// ConfigError reports a control configuration that can never produce a valid
// run. Raised before any model call.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid control: " + e.Reason
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// InputError reports malformed input data (series or regressor table shape).
// Raised before any model call.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Reason
}

func inputErrorf(format string, args ...interface{}) error {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

// OriginError reports a model failure at one forecast origin. A single
// failing origin aborts the whole run: a ragged forecast matrix cannot be
// aggregated safely.
type OriginError struct {
	Origin int
	Err    error
}

func (e *OriginError) Error() string {
	return fmt.Sprintf("model failed at origin %d: %v", e.Origin, e.Err)
}

func (e *OriginError) Unwrap() error {
	return e.Err
}
