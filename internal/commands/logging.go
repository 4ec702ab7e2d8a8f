package commands

import (
	"strings"

	"github.com/crystalplaza/go-menu/internal/logging"
	"github.com/crystalplaza/go-menu/pkg/interfaces"
)

// CommandLogger returns the logger command handlers share for a given module
// namespace, tagged so executions show up as a single filterable stream.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	return logging.WithFields(
		logging.ModuleLogger(provider, "menu.commands."+name),
		map[string]any{"component": "command", "command_module": name},
	)
}
