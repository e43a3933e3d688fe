package log

import (
	"context"
	"testing"
)

func TestNormalizeLevel(t *testing.T) {
	tcs := map[string]string{
		"WARNING":  "warn",
		"critical": "fatal",
		"Info":     "info",
		"debug":    "debug",
	}
	for in, want := range tcs {
		if got := normalizeLevel(in); got != want {
			t.Errorf("normalizeLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInitUnknownLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "verbose", Mode: ModeProduction, Encoding: EncodingJSON})
	zl, ok := l.(*zapLogger)
	if !ok {
		t.Fatalf("unexpected logger type %T", l)
	}
	if zl.sugar.Desugar().Core().Enabled(-1) {
		t.Error("debug should be disabled when the level falls back to info")
	}
	l.Info(WithRequestID(context.Background(), "req-1"), "hello")
}
