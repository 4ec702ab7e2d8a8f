package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/crystalplaza/go-menu/internal/commands"
)

type testMessage struct {
	Fail bool
}

func (testMessage) Type() string { return "menu.test" }

func (m testMessage) Validate() error {
	if m.Fail {
		return validation.Errors{
			"fail": validation.NewError("menu.test.fail", "message failed validation"),
		}
	}
	return nil
}

func TestHandlerExecutesFunction(t *testing.T) {
	called := false
	handler := commands.NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := handler.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !called {
		t.Fatal("wrapped function was not invoked")
	}
}

func TestHandlerWrapsValidationFailure(t *testing.T) {
	handler := commands.NewHandler[testMessage](func(context.Context, testMessage) error {
		t.Fatal("execution must not run for invalid messages")
		return nil
	})

	err := handler.Execute(context.Background(), testMessage{Fail: true})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestHandlerWrapsExecutionFailure(t *testing.T) {
	boom := errors.New("boom")
	handler := commands.NewHandler[testMessage](func(context.Context, testMessage) error {
		return boom
	})

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerHonoursCancelledContext(t *testing.T) {
	handler := commands.NewHandler[testMessage](func(context.Context, testMessage) error {
		t.Fatal("execution must not run under a cancelled context")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatal("expected context error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerTimeoutOption(t *testing.T) {
	handler := commands.NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}, commands.WithTimeout[testMessage](10*time.Millisecond))

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestHandlerNilContext(t *testing.T) {
	handler := commands.NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		if ctx == nil {
			t.Fatal("handler must supply a background context")
		}
		return nil
	})

	var missing context.Context
	if err := handler.Execute(missing, testMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
}
