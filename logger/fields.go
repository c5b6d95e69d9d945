package logger

import (
	"time"

	"github.com/kbukum/httpcore/errors"
)

// Standard field key constants for structured logging.
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldErrorKind  = "error_kind"
	FieldErrorCause = "error_cause"
	FieldDuration   = "duration_ms"
)

// Fields builds a map from alternating key-value pairs. Non-string keys and
// a trailing key without a value are dropped.
//
//	log.Info("parsed", logger.Fields("uri", u.String(), "len", n))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed. Validation errors
// also record their kind and, when present, their cause.
func ErrorFields(op string, err error) map[string]any {
	fields := map[string]any{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
	if e, ok := errors.Convert(err); ok {
		fields[FieldErrorKind] = e.Kind().String()
		if cause := e.Source(); cause != nil {
			fields[FieldErrorCause] = cause.Error()
		}
	}
	return fields
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldDuration:  d.Milliseconds(),
	}
}
