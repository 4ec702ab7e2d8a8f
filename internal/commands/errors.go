package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeValidationFailed = "MENU_COMMAND_VALIDATION_FAILED"
	codeContextCanceled  = "MENU_COMMAND_CANCELED"
	codeContextTimeout   = "MENU_COMMAND_TIMEOUT"
	codeContextError     = "MENU_COMMAND_CONTEXT_ERROR"
	codeExecutionFailed  = "MENU_COMMAND_EXECUTION_FAILED"
)

// wrapValidationError tags message validation failures. Errors already
// wrapped upstream pass through untouched so categories are not overwritten.
func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(codeValidationFailed)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}

	code, msg := codeContextError, "command context error"
	switch {
	case errors.Is(err, context.Canceled):
		code, msg = codeContextCanceled, "command execution cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		code, msg = codeContextTimeout, "command execution deadline exceeded"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).WithTextCode(code)
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(codeExecutionFailed)
}
