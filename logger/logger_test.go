package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/httpcore/status"
)

func jsonLogger(t *testing.T, level string) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: level, Format: "json"}, "test", &buf)
	return l, &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}
	return out
}

func TestNewWithWriter_JSON(t *testing.T) {
	l, buf := jsonLogger(t, "info")
	l.Info("hello", Fields("key", "value"))

	out := decode(t, buf)
	if out["message"] != "hello" {
		t.Errorf("expected message 'hello', got %v", out["message"])
	}
	if out["key"] != "value" {
		t.Errorf("expected key=value, got %v", out["key"])
	}
	if out[FieldComponent] != "test" {
		t.Errorf("expected component 'test', got %v", out[FieldComponent])
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := jsonLogger(t, "warn")
	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn output, got %q", buf.String())
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	l, buf := jsonLogger(t, "loud")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected info level fallback, got %q", buf.String())
	}
}

func TestWithError_PlainError(t *testing.T) {
	l, buf := jsonLogger(t, "info")
	l.WithError(fmt.Errorf("disk full")).Error("failed")

	out := decode(t, buf)
	if out[FieldError] != "disk full" {
		t.Errorf("expected plain error string, got %v", out[FieldError])
	}
}

func TestWithComponentAndFields(t *testing.T) {
	l, buf := jsonLogger(t, "info")
	l.WithComponent("router").WithFields(map[string]any{"route": "/x"}).Info("ok")

	out := decode(t, buf)
	if out["route"] != "/x" {
		t.Errorf("expected route field, got %v", out["route"])
	}
	if !strings.Contains(buf.String(), `"component":"router"`) {
		t.Errorf("expected router component, got %q", buf.String())
	}
}

func TestErrorFields_StatusCode(t *testing.T) {
	_, err := status.FromUint16(6666)
	f := ErrorFields("parse_status", err)
	if f[FieldOperation] != "parse_status" {
		t.Errorf("unexpected operation %v", f[FieldOperation])
	}
	if f[FieldErrorKind] != "status_code" {
		t.Errorf("expected status_code kind, got %v", f[FieldErrorKind])
	}
	if _, ok := f[FieldErrorCause]; ok {
		t.Error("status errors have no cause")
	}

	plain := ErrorFields("op", fmt.Errorf("boom"))
	if _, ok := plain[FieldErrorKind]; ok {
		t.Error("plain errors have no kind")
	}
}

func TestFields_OddAndNonString(t *testing.T) {
	f := Fields("a", 1, 2, "skipped", "dangling")
	if len(f) != 1 || f["a"] != 1 {
		t.Errorf("unexpected fields %v", f)
	}
}

func TestDurationFields(t *testing.T) {
	f := DurationFields("parse", 1500*time.Millisecond)
	if f[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", f[FieldDuration])
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "", &buf)
	l.Info("console line")
	if !strings.Contains(buf.String(), "[INFO]") || !strings.Contains(buf.String(), "console line") {
		t.Errorf("unexpected console output %q", buf.String())
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Level: "debug", Format: "json", Output: "stderr"}, ""},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stdout"}, "logging.level"},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stdout"}, "logging.format"},
		{"bad output", Config{Level: "info", Format: "json", Output: "file"}, "logging.output"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestGlobalLogger(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}

	l := NewDefault("custom")
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Error("expected SetGlobalLogger to set the global logger")
	}

	Init(Config{Level: "debug", Format: "json"})
	if GetGlobalLogger() == l {
		t.Error("expected Init to replace the global logger")
	}
}

func TestRegistry_Pinned(t *testing.T) {
	l, _ := jsonLogger(t, "info")
	Register("named", l)
	defer Unregister("named")

	if Get("named") != l {
		t.Error("expected registered logger")
	}
	SetGlobalLogger(NewDefault(""))
	if Get("named") != l {
		t.Error("pinned logger must survive a global logger change")
	}
	Unregister("named")
	if Get("named") == l {
		t.Error("expected logger to be removed")
	}
}

func TestRegistry_DerivedFollowsGlobal(t *testing.T) {
	first, firstBuf := jsonLogger(t, "info")
	SetGlobalLogger(first)

	a := Get("parser")
	if Get("parser") != a {
		t.Error("expected derived logger to be cached")
	}
	a.Info("to first")
	if !strings.Contains(firstBuf.String(), `"component":"parser"`) {
		t.Errorf("expected component field, got %q", firstBuf.String())
	}

	second, secondBuf := jsonLogger(t, "info")
	SetGlobalLogger(second)
	b := Get("parser")
	if b == a {
		t.Fatal("expected a new derived logger after the global logger changed")
	}
	b.Info("to second")
	if !strings.Contains(secondBuf.String(), "to second") {
		t.Errorf("expected output on the new global writer, got %q", secondBuf.String())
	}
	if strings.Contains(firstBuf.String(), "to second") {
		t.Error("stale derived logger was reused")
	}
}
