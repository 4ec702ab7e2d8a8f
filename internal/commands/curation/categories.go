// Package curationcmd exposes the admin command surface for catalog
// curation: validated messages plus handlers wired to the curation service.
package curationcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/crystalplaza/go-menu/internal/catalog"
	"github.com/crystalplaza/go-menu/internal/commands"
	"github.com/crystalplaza/go-menu/internal/curation"
	"github.com/crystalplaza/go-menu/pkg/interfaces"
)

const (
	addCategoryMessageType    = "menu.category.add"
	editCategoryMessageType   = "menu.category.edit"
	deleteCategoryMessageType = "menu.category.delete"
)

// AddCategoryCommand requests creation of a new category.
type AddCategoryCommand struct {
	Name catalog.MultilingualText `json:"name"`
}

// Type implements command.Message.
func (AddCategoryCommand) Type() string { return addCategoryMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m AddCategoryCommand) Validate() error {
	errs := validation.Errors{}
	if m.Name.Canonical() == "" {
		errs["name"] = validation.NewError("menu.category.add.name_required", "canonical name is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditCategoryCommand replaces the name of an existing category.
type EditCategoryCommand struct {
	ID   string                   `json:"id"`
	Name catalog.MultilingualText `json:"name"`
}

// Type implements command.Message.
func (EditCategoryCommand) Type() string { return editCategoryMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m EditCategoryCommand) Validate() error {
	errs := validation.Errors{}
	if m.ID == "" {
		errs["id"] = validation.NewError("menu.category.edit.id_required", "category id is required")
	}
	if m.Name.Canonical() == "" {
		errs["name"] = validation.NewError("menu.category.edit.name_required", "canonical name is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteCategoryCommand removes a category. Confirmed must record the
// explicit user confirmation collected upstream.
type DeleteCategoryCommand struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
}

// Type implements command.Message.
func (DeleteCategoryCommand) Type() string { return deleteCategoryMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteCategoryCommand) Validate() error {
	errs := validation.Errors{}
	if m.ID == "" {
		errs["id"] = validation.NewError("menu.category.delete.id_required", "category id is required")
	}
	if !m.Confirmed {
		errs["confirmed"] = validation.NewError("menu.category.delete.confirm_required", "delete requires explicit confirmation")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddCategoryHandler creates categories via the curation service using the shared handler foundation.
type AddCategoryHandler struct {
	inner *commands.Handler[AddCategoryCommand]
}

// NewAddCategoryHandler constructs a handler wired to the provided curation service.
func NewAddCategoryHandler(service curation.Service, logger interfaces.Logger, opts ...commands.HandlerOption[AddCategoryCommand]) *AddCategoryHandler {
	exec := func(ctx context.Context, msg AddCategoryCommand) error {
		_, err := service.AddCategory(ctx, curation.AddCategoryRequest{Name: msg.Name})
		return err
	}

	handlerOpts := []commands.HandlerOption[AddCategoryCommand]{
		commands.WithLogger[AddCategoryCommand](logger),
		commands.WithOperation[AddCategoryCommand]("category.add"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AddCategoryHandler{
		inner: commands.NewHandler[AddCategoryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[AddCategoryCommand].Execute.
func (h *AddCategoryHandler) Execute(ctx context.Context, msg AddCategoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// EditCategoryHandler renames categories via the curation service.
type EditCategoryHandler struct {
	inner *commands.Handler[EditCategoryCommand]
}

// NewEditCategoryHandler constructs a handler wired to the provided curation service.
func NewEditCategoryHandler(service curation.Service, logger interfaces.Logger, opts ...commands.HandlerOption[EditCategoryCommand]) *EditCategoryHandler {
	exec := func(ctx context.Context, msg EditCategoryCommand) error {
		_, err := service.EditCategory(ctx, curation.EditCategoryRequest{ID: msg.ID, Name: msg.Name})
		return err
	}

	handlerOpts := []commands.HandlerOption[EditCategoryCommand]{
		commands.WithLogger[EditCategoryCommand](logger),
		commands.WithOperation[EditCategoryCommand]("category.edit"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &EditCategoryHandler{
		inner: commands.NewHandler[EditCategoryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[EditCategoryCommand].Execute.
func (h *EditCategoryHandler) Execute(ctx context.Context, msg EditCategoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteCategoryHandler removes categories via the curation service.
type DeleteCategoryHandler struct {
	inner *commands.Handler[DeleteCategoryCommand]
}

// NewDeleteCategoryHandler constructs a handler wired to the provided curation service.
func NewDeleteCategoryHandler(service curation.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteCategoryCommand]) *DeleteCategoryHandler {
	exec := func(ctx context.Context, msg DeleteCategoryCommand) error {
		_, err := service.DeleteCategory(ctx, curation.DeleteCategoryRequest{ID: msg.ID, Confirmed: msg.Confirmed})
		return err
	}

	handlerOpts := []commands.HandlerOption[DeleteCategoryCommand]{
		commands.WithLogger[DeleteCategoryCommand](logger),
		commands.WithOperation[DeleteCategoryCommand]("category.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteCategoryHandler{
		inner: commands.NewHandler[DeleteCategoryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteCategoryCommand].Execute.
func (h *DeleteCategoryHandler) Execute(ctx context.Context, msg DeleteCategoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
