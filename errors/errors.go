package errors

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/kbukum/httpcore/header"
	"github.com/kbukum/httpcore/method"
	"github.com/kbukum/httpcore/status"
)

// Reference is the capability-erased view of the value held by an Error.
// Its dynamic type is the concrete error type.
type Reference interface {
	error
	// Unwrap returns the value's own cause, or nil.
	Unwrap() error
}

// Error holds exactly one concrete validation error. It is immutable and is
// created only through the From constructors.
type Error struct {
	kind  Kind
	inner Reference
}

// Result is a value or an *Error.
type Result[T any] struct {
	value T
	err   *Error
}

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Fail returns a failed Result. A nil err yields a successful zero Result.
func Fail[T any](err *Error) Result[T] { return Result[T]{err: err} }

// Get returns the value and, on failure, the error. A successful Result
// returns a nil error interface.
func (r Result[T]) Get() (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	return r.value, r.err
}

// Value returns the value, which is the zero T on failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the error, or nil on success.
func (r Result[T]) Err() *Error { return r.err }

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

func newError(kind Kind, inner Reference) *Error {
	return &Error{kind: kind, inner: inner}
}

// FromStatusCode wraps an invalid status code error.
func FromStatusCode(err status.InvalidStatusCode) *Error {
	return newError(KindStatusCode, err)
}

// FromMethod wraps an invalid method error.
func FromMethod(err method.InvalidMethod) *Error {
	return newError(KindMethod, err)
}

// FromHeaderName wraps an invalid header name error.
func FromHeaderName(err header.InvalidHeaderName) *Error {
	return newError(KindHeaderName, err)
}

// From wraps any supported concrete error.
func From[E Concrete](err E) *Error {
	ref := any(err).(Reference)
	return newError(kindOf(ref), ref)
}

// Infallible is an error type with no values. It lets generic code that is
// parameterized over an error type be instantiated for operations that
// cannot fail.
type Infallible interface {
	infallible()
}

// FromInfallible converts an Infallible. It is never executed.
func FromInfallible(Infallible) *Error {
	panic("errors: unreachable conversion from Infallible")
}

// Convert lifts err into an *Error when its dynamic type is exactly one of
// the supported concrete error types, or when it already is an *Error.
// Errors wrapped with fmt.Errorf are not unwrapped.
func Convert(err error) (*Error, bool) {
	switch e := err.(type) {
	case *Error:
		return e, e != nil
	case status.InvalidStatusCode:
		return FromStatusCode(e), true
	case method.InvalidMethod:
		return FromMethod(e), true
	case header.InvalidHeaderName:
		return FromHeaderName(e), true
	}
	if ref, ok := err.(Reference); ok {
		if kind, ok := allocKind(ref); ok {
			return newError(kind, ref), true
		}
	}
	return nil, false
}

func kindOf(ref Reference) Kind {
	switch ref.(type) {
	case status.InvalidStatusCode:
		return KindStatusCode
	case method.InvalidMethod:
		return KindMethod
	case header.InvalidHeaderName:
		return KindHeaderName
	}
	if kind, ok := allocKind(ref); ok {
		return kind
	}
	panic(fmt.Sprintf("errors: unsupported error type %T", ref))
}

// Is reports whether e holds a value of exactly type T.
func Is[T Concrete](e *Error) bool {
	_, ok := As[T](e)
	return ok
}

// As returns the held value when its type is exactly T. A nil or zero Error
// holds nothing and matches no T.
func As[T Concrete](e *Error) (T, bool) {
	v, ok := e.Ref().(T)
	return v, ok
}

// empty reports whether e is nil or was not built by a constructor.
func (e *Error) empty() bool { return e == nil || e.inner == nil }

// Ref returns the held concrete value, or nil for a nil or zero Error.
func (e *Error) Ref() Reference {
	if e.empty() {
		return nil
	}
	return e.inner
}

// Kind returns which kind of value e holds.
func (e *Error) Kind() Kind {
	if e.empty() {
		return ""
	}
	return e.kind
}

// Source returns the held value's own cause.
func (e *Error) Source() error {
	if e.empty() {
		return nil
	}
	return e.inner.Unwrap()
}

// Error returns the held value's message.
func (e *Error) Error() string {
	if e.empty() {
		return "<nil>"
	}
	return e.inner.Error()
}

// Unwrap returns Source, so errors.Unwrap(e) walks the same chain as the
// held value.
func (e *Error) Unwrap() error { return e.Source() }

// As lets errors.As reach the held value.
func (e *Error) As(target any) bool {
	if e.empty() || target == nil {
		return false
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}
	elem := v.Elem()
	if !reflect.TypeOf(e.inner).AssignableTo(elem.Type()) {
		return false
	}
	elem.Set(reflect.ValueOf(e.inner))
	return true
}

// Is lets errors.Is match the held value.
func (e *Error) Is(target error) bool {
	if e.empty() || !reflect.TypeOf(e.inner).Comparable() {
		return false
	}
	return error(e.inner) == target
}

// Format renders the held value with the same verb and flags.
func (e *Error) Format(f fmt.State, verb rune) {
	if e.empty() {
		fmt.Fprint(f, "<nil>")
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), e.inner)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	if e.empty() {
		return
	}
	ev.Str("kind", string(e.kind)).Str("message", e.inner.Error())
	if cause := e.Source(); cause != nil {
		ev.Str("cause", cause.Error())
	}
}
