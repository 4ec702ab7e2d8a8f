package logging

import (
	"maps"

	"github.com/crystalplaza/go-menu/pkg/interfaces"
)

// WithFields returns logger enriched with the given fields when it implements
// the optional FieldsLogger extension; otherwise the logger is returned as is.
// The map is copied so callers may reuse it.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	fl, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	copied := make(map[string]any, len(fields))
	maps.Copy(copied, fields)
	return fl.WithFields(copied)
}
