package logging

import (
	"context"

	"github.com/crystalplaza/go-menu/pkg/interfaces"
)

const (
	rootModule      = "menu"
	catalogModule   = "menu.catalog"
	curationModule  = "menu.curation"
	guestModule     = "menu.guest"
	translateModule = "menu.translate"
	sessionModule   = "menu.session"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CatalogLogger returns the logger namespace reserved for the catalog store.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// CurationLogger returns the logger namespace reserved for the curation engine.
func CurationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, curationModule)
}

// GuestLogger returns the logger namespace reserved for guest presentation.
func GuestLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, guestModule)
}

// TranslateLogger returns the logger namespace reserved for the translation gateway.
func TranslateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, translateModule)
}

// SessionLogger returns the logger namespace reserved for the admin session.
func SessionLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sessionModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
