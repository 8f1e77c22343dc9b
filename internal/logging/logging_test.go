package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestSetupConsoleOnly(t *testing.T) {
	t.Setenv(EnvSeqURL, "")

	logger, cleanup := Setup(false)
	defer cleanup()

	if logger == nil {
		t.Fatal("expected a logger")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled without verbose")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be enabled")
	}
}

func TestSetupVerboseEnablesDebug(t *testing.T) {
	t.Setenv(EnvSeqURL, "")

	logger, cleanup := Setup(true)
	defer cleanup()

	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be enabled with verbose")
	}
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	m := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, nil),
		slog.NewTextHandler(&b, nil),
	}}

	logger := slog.New(m)
	logger.Info("fan out", "k", "v")

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		if !bytes.Contains(buf.Bytes(), []byte("fan out")) {
			t.Errorf("%s handler missing record: %q", name, buf.String())
		}
		if !bytes.Contains(buf.Bytes(), []byte("k=v")) {
			t.Errorf("%s handler missing attr: %q", name, buf.String())
		}
	}
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	m := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&buf, nil),
	}}

	logger := slog.New(m).With("component", "store")
	logger.Info("hello")

	if !bytes.Contains(buf.Bytes(), []byte("component=store")) {
		t.Errorf("expected inherited attr, got %q", buf.String())
	}
}
