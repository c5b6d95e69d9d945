//go:build !noalloc

package logger

import (
	"testing"

	"github.com/kbukum/httpcore/uri"
)

func TestWithError_ValidationError(t *testing.T) {
	l, buf := jsonLogger(t, "info")
	_, err := uri.FromParts(uri.Parts{Authority: "h", PathAndQuery: "/"})

	l.WithError(err).Error("rejected")

	out := decode(t, buf)
	obj, ok := out[FieldError].(map[string]any)
	if !ok {
		t.Fatalf("expected error object, got %v", out[FieldError])
	}
	if obj["kind"] != "uri_parts" {
		t.Errorf("expected kind uri_parts, got %v", obj["kind"])
	}
	if obj["cause"] != "scheme missing" {
		t.Errorf("expected cause 'scheme missing', got %v", obj["cause"])
	}
}

func TestErrorFields_Cause(t *testing.T) {
	_, err := uri.FromParts(uri.Parts{Scheme: "http", PathAndQuery: "/"})
	f := ErrorFields("build_uri", err)
	if f[FieldErrorKind] != "uri_parts" {
		t.Errorf("expected uri_parts kind, got %v", f[FieldErrorKind])
	}
	if f[FieldErrorCause] != "authority missing" {
		t.Errorf("expected cause, got %v", f[FieldErrorCause])
	}
}
