// Package commands provides the shared execution foundation for the admin
// command surface: message validation, context management, logging, and
// error categorisation around the curation engine.
package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/crystalplaza/go-menu/internal/logging"
	"github.com/crystalplaza/go-menu/pkg/interfaces"
)

// defaultHandlerTimeout bounds a single curation command, gateway call included.
const defaultHandlerTimeout = 30 * time.Second

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// WithTimeout overrides the default execution timeout. Zero or negative
// disables the deadline entirely.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithOperation names the catalog operation for log correlation, e.g. "item.add".
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

// Handler executes one admin command type against the curation engine,
// applying the concerns every command shares: message validation up front,
// a bounded context, structured logging, and goerrors categorisation.
type Handler[T command.Message] struct {
	run       command.CommandFunc[T]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
}

// NewHandler wraps fn so it satisfies command.Commander[T].
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		run:     fn,
		logger:  logging.NoOp(),
		timeout: defaultHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute implements command.Commander[T].
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	fields := map[string]any{"command": command.GetMessageType(msg)}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	logger := logging.WithFields(h.logger, fields)

	started := time.Now()
	logger.Debug("menu.command.start")

	if err := h.run(ctx, msg); err != nil {
		logger.Error("menu.command.failed", "error", err, "elapsed", time.Since(started))
		return wrapExecuteError(err)
	}
	if err := ctx.Err(); err != nil {
		logger.Error("menu.command.context_error", "error", err)
		return wrapContextError(err)
	}

	logger.Info("menu.command.ok", "elapsed", time.Since(started))
	return nil
}
