package logging_test

import (
	"context"
	"testing"

	"github.com/crystalplaza/go-menu/internal/logging"
	"github.com/crystalplaza/go-menu/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(r.fields)+len(fields))
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

type recordingProvider struct {
	requested []string
	logger    *recordingLogger
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return p.logger
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}

	logger := logging.ModuleLogger(provider, "menu.catalog")

	if len(provider.requested) != 1 || provider.requested[0] != "menu.catalog" {
		t.Fatalf("provider asked for %v", provider.requested)
	}
	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("unexpected logger type %T", logger)
	}
	if recorded.fields["module"] != "menu.catalog" {
		t.Fatalf("module field missing: %+v", recorded.fields)
	}
}

func TestModuleLoggerDefaultsToNoOp(t *testing.T) {
	logger := logging.ModuleLogger(nil, "menu.catalog")
	if logger == nil {
		t.Fatal("expected a usable logger without a provider")
	}
	// Must not panic.
	logger.Info("noop", "key", "value")
}

func TestNamespaceHelpers(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}

	logging.CatalogLogger(provider)
	logging.CurationLogger(provider)
	logging.GuestLogger(provider)
	logging.TranslateLogger(provider)
	logging.SessionLogger(provider)

	want := []string{"menu.catalog", "menu.curation", "menu.guest", "menu.translate", "menu.session"}
	if len(provider.requested) != len(want) {
		t.Fatalf("expected %d lookups, got %v", len(want), provider.requested)
	}
	for i, name := range want {
		if provider.requested[i] != name {
			t.Fatalf("lookup %d: expected %q, got %q", i, name, provider.requested[i])
		}
	}
}

func TestWithFieldsFallback(t *testing.T) {
	logger := logging.WithFields(logging.NoOp(), map[string]any{"k": "v"})
	if logger == nil {
		t.Fatal("expected a logger")
	}
	logger.Debug("still works")
}
