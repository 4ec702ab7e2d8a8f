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
	addItemMessageType    = "menu.item.add"
	editItemMessageType   = "menu.item.edit"
	deleteItemMessageType = "menu.item.delete"
)

// AddItemCommand requests creation of a new food item. Omitted pointer
// fields take the engine defaults (available, non-special, price zero).
type AddItemCommand struct {
	Name           catalog.MultilingualText `json:"name"`
	Description    catalog.MultilingualText `json:"description"`
	Price          *float64                 `json:"price,omitempty"`
	Category       string                   `json:"category"`
	ImageURL       string                   `json:"imageUrl"`
	IsVegan        *bool                    `json:"isVegan,omitempty"`
	IsVegetarian   *bool                    `json:"isVegetarian,omitempty"`
	IsSpicy        *bool                    `json:"isSpicy,omitempty"`
	IsAvailable    *bool                    `json:"isAvailable,omitempty"`
	IsSpecialOffer *bool                    `json:"isSpecialOffer,omitempty"`
}

// Type implements command.Message.
func (AddItemCommand) Type() string { return addItemMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m AddItemCommand) Validate() error {
	errs := validation.Errors{}
	if m.Name.Canonical() == "" {
		errs["name"] = validation.NewError("menu.item.add.name_required", "canonical name is required")
	}
	if m.Price != nil && *m.Price < 0 {
		errs["price"] = validation.NewError("menu.item.add.price_invalid", "price must be zero or positive")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditItemCommand merges the supplied fields over an existing item.
type EditItemCommand struct {
	ID             string                    `json:"id"`
	Name           *catalog.MultilingualText `json:"name,omitempty"`
	Description    *catalog.MultilingualText `json:"description,omitempty"`
	Price          *float64                  `json:"price,omitempty"`
	Category       *string                   `json:"category,omitempty"`
	ImageURL       *string                   `json:"imageUrl,omitempty"`
	IsVegan        *bool                     `json:"isVegan,omitempty"`
	IsVegetarian   *bool                     `json:"isVegetarian,omitempty"`
	IsSpicy        *bool                     `json:"isSpicy,omitempty"`
	IsAvailable    *bool                     `json:"isAvailable,omitempty"`
	IsSpecialOffer *bool                     `json:"isSpecialOffer,omitempty"`
}

// Type implements command.Message.
func (EditItemCommand) Type() string { return editItemMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m EditItemCommand) Validate() error {
	errs := validation.Errors{}
	if m.ID == "" {
		errs["id"] = validation.NewError("menu.item.edit.id_required", "item id is required")
	}
	if m.Name != nil && m.Name.Canonical() == "" {
		errs["name"] = validation.NewError("menu.item.edit.name_required", "canonical name cannot be cleared")
	}
	if m.Price != nil && *m.Price < 0 {
		errs["price"] = validation.NewError("menu.item.edit.price_invalid", "price must be zero or positive")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteItemCommand removes an item after upstream confirmation.
type DeleteItemCommand struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
}

// Type implements command.Message.
func (DeleteItemCommand) Type() string { return deleteItemMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteItemCommand) Validate() error {
	errs := validation.Errors{}
	if m.ID == "" {
		errs["id"] = validation.NewError("menu.item.delete.id_required", "item id is required")
	}
	if !m.Confirmed {
		errs["confirmed"] = validation.NewError("menu.item.delete.confirm_required", "delete requires explicit confirmation")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddItemHandler creates items via the curation service using the shared handler foundation.
type AddItemHandler struct {
	inner *commands.Handler[AddItemCommand]
}

// NewAddItemHandler constructs a handler wired to the provided curation service.
func NewAddItemHandler(service curation.Service, logger interfaces.Logger, opts ...commands.HandlerOption[AddItemCommand]) *AddItemHandler {
	exec := func(ctx context.Context, msg AddItemCommand) error {
		_, err := service.AddItem(ctx, curation.AddItemRequest{
			Name:           msg.Name,
			Description:    msg.Description,
			Price:          msg.Price,
			Category:       msg.Category,
			ImageURL:       msg.ImageURL,
			IsVegan:        msg.IsVegan,
			IsVegetarian:   msg.IsVegetarian,
			IsSpicy:        msg.IsSpicy,
			IsAvailable:    msg.IsAvailable,
			IsSpecialOffer: msg.IsSpecialOffer,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[AddItemCommand]{
		commands.WithLogger[AddItemCommand](logger),
		commands.WithOperation[AddItemCommand]("item.add"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AddItemHandler{
		inner: commands.NewHandler[AddItemCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[AddItemCommand].Execute.
func (h *AddItemHandler) Execute(ctx context.Context, msg AddItemCommand) error {
	return h.inner.Execute(ctx, msg)
}

// EditItemHandler updates items via the curation service.
type EditItemHandler struct {
	inner *commands.Handler[EditItemCommand]
}

// NewEditItemHandler constructs a handler wired to the provided curation service.
func NewEditItemHandler(service curation.Service, logger interfaces.Logger, opts ...commands.HandlerOption[EditItemCommand]) *EditItemHandler {
	exec := func(ctx context.Context, msg EditItemCommand) error {
		_, err := service.EditItem(ctx, curation.EditItemRequest{
			ID: msg.ID,
			Patch: curation.ItemPatch{
				Name:           msg.Name,
				Description:    msg.Description,
				Price:          msg.Price,
				Category:       msg.Category,
				ImageURL:       msg.ImageURL,
				IsVegan:        msg.IsVegan,
				IsVegetarian:   msg.IsVegetarian,
				IsSpicy:        msg.IsSpicy,
				IsAvailable:    msg.IsAvailable,
				IsSpecialOffer: msg.IsSpecialOffer,
			},
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[EditItemCommand]{
		commands.WithLogger[EditItemCommand](logger),
		commands.WithOperation[EditItemCommand]("item.edit"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &EditItemHandler{
		inner: commands.NewHandler[EditItemCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[EditItemCommand].Execute.
func (h *EditItemHandler) Execute(ctx context.Context, msg EditItemCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteItemHandler removes items via the curation service.
type DeleteItemHandler struct {
	inner *commands.Handler[DeleteItemCommand]
}

// NewDeleteItemHandler constructs a handler wired to the provided curation service.
func NewDeleteItemHandler(service curation.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteItemCommand]) *DeleteItemHandler {
	exec := func(ctx context.Context, msg DeleteItemCommand) error {
		_, err := service.DeleteItem(ctx, curation.DeleteItemRequest{ID: msg.ID, Confirmed: msg.Confirmed})
		return err
	}

	handlerOpts := []commands.HandlerOption[DeleteItemCommand]{
		commands.WithLogger[DeleteItemCommand](logger),
		commands.WithOperation[DeleteItemCommand]("item.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteItemHandler{
		inner: commands.NewHandler[DeleteItemCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteItemCommand].Execute.
func (h *DeleteItemHandler) Execute(ctx context.Context, msg DeleteItemCommand) error {
	return h.inner.Execute(ctx, msg)
}
