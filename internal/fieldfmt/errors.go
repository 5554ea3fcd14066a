package fieldfmt

import (
	"errors"
	"fmt"
)

// InvalidValueError reports a value that could not be coerced to the
// representation its formatter kind requires. It is the only error the
// formatter produces; callers surface it as a validation failure.
type InvalidValueError struct {
	Kind  Kind
	Value any
	Err   error
}

func (e *InvalidValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid value %v (%T) for %s formatter: %v", e.Value, e.Value, e.Kind, e.Err)
	}
	return fmt.Sprintf("invalid value %v (%T) for %s formatter", e.Value, e.Value, e.Kind)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }

// IsInvalidValue reports whether err is (or wraps) an InvalidValueError.
func IsInvalidValue(err error) bool {
	var ive *InvalidValueError
	return errors.As(err, &ive)
}

func invalidValue(kind Kind, value any, err error) error {
	return &InvalidValueError{Kind: kind, Value: value, Err: err}
}
