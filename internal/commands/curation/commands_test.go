package curationcmd_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/crystalplaza/go-menu/internal/catalog"
	curationcmd "github.com/crystalplaza/go-menu/internal/commands/curation"
	"github.com/crystalplaza/go-menu/internal/curation"
	"github.com/crystalplaza/go-menu/internal/logging"
)

func newFixture(t *testing.T) (*catalog.Store, curation.Service) {
	t.Helper()

	store := catalog.NewStore(catalog.NewMemoryDocumentRepository())
	store.Load(context.Background())

	n := 0
	svc := curation.NewService(store, curation.WithIDGenerator(func() string {
		n++
		return "id-" + string(rune('0'+n))
	}))
	return store, svc
}

func TestAddCategoryCommandValidation(t *testing.T) {
	valid := curationcmd.AddCategoryCommand{Name: catalog.MultilingualText{EN: "Drinks"}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	invalid := curationcmd.AddCategoryCommand{Name: catalog.MultilingualText{AR: "مشروبات"}}
	if err := invalid.Validate(); err == nil {
		t.Fatal("message without canonical name must fail validation")
	}
}

func TestAddCategoryHandlerCommitsCategory(t *testing.T) {
	store, svc := newFixture(t)
	handler := curationcmd.NewAddCategoryHandler(svc, logging.NoOp())

	err := handler.Execute(context.Background(), curationcmd.AddCategoryCommand{
		Name: catalog.MultilingualText{EN: "Drinks"},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := store.Current()
	if len(got.Categories) != 1 || got.Categories[0].Name.EN != "Drinks" {
		t.Fatalf("category not committed: %+v", got.Categories)
	}
}

func TestDeleteCategoryCommandRequiresConfirmation(t *testing.T) {
	_, svc := newFixture(t)
	handler := curationcmd.NewDeleteCategoryHandler(svc, logging.NoOp())

	err := handler.Execute(context.Background(), curationcmd.DeleteCategoryCommand{ID: "id-1"})
	if err == nil {
		t.Fatal("unconfirmed delete must fail")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestEditCategoryHandlerMissingCategory(t *testing.T) {
	_, svc := newFixture(t)
	handler := curationcmd.NewEditCategoryHandler(svc, logging.NoOp())

	err := handler.Execute(context.Background(), curationcmd.EditCategoryCommand{
		ID:   "missing",
		Name: catalog.MultilingualText{EN: "Renamed"},
	})
	if err == nil {
		t.Fatal("expected not-found failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestAddItemCommandValidation(t *testing.T) {
	negative := -1.0
	invalid := curationcmd.AddItemCommand{
		Name:  catalog.MultilingualText{EN: "Tea"},
		Price: &negative,
	}
	if err := invalid.Validate(); err == nil {
		t.Fatal("negative price must fail validation")
	}

	price := 4.5
	valid := curationcmd.AddItemCommand{
		Name:  catalog.MultilingualText{EN: "Tea"},
		Price: &price,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}
}

func TestAddItemHandlerCommitsItem(t *testing.T) {
	store, svc := newFixture(t)
	handler := curationcmd.NewAddItemHandler(svc, logging.NoOp())

	price := 12.0
	vegan := true
	err := handler.Execute(context.Background(), curationcmd.AddItemCommand{
		Name:     catalog.MultilingualText{EN: "Falafel"},
		Price:    &price,
		Category: "cat-1",
		IsVegan:  &vegan,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := store.Current()
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got.Items))
	}
	item := got.Items[0]
	if item.Price != 12.0 || !item.IsVegan || !item.IsAvailable {
		t.Fatalf("item fields wrong: %+v", item)
	}
}

func TestEditItemCommandValidation(t *testing.T) {
	if err := (curationcmd.EditItemCommand{}).Validate(); err == nil {
		t.Fatal("missing id must fail validation")
	}

	cleared := catalog.MultilingualText{}
	blankName := curationcmd.EditItemCommand{ID: "item-1", Name: &cleared}
	if err := blankName.Validate(); err == nil {
		t.Fatal("clearing the canonical name must fail validation")
	}
}

func TestEditItemHandlerMergesPatch(t *testing.T) {
	store, svc := newFixture(t)
	addHandler := curationcmd.NewAddItemHandler(svc, logging.NoOp())
	editHandler := curationcmd.NewEditItemHandler(svc, logging.NoOp())
	ctx := context.Background()

	if err := addHandler.Execute(ctx, curationcmd.AddItemCommand{
		Name:     catalog.MultilingualText{EN: "Falafel", AR: "فلافل", RU: "Фалафель", ZH: "炸豆丸"},
		Category: "cat-1",
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	itemID := store.Current().Items[0].ID

	price := 9.5
	if err := editHandler.Execute(ctx, curationcmd.EditItemCommand{
		ID:    itemID,
		Price: &price,
	}); err != nil {
		t.Fatalf("edit: %v", err)
	}

	item := store.Current().Items[0]
	if item.Price != 9.5 {
		t.Fatalf("price patch not applied: %+v", item)
	}
	if item.Name.AR != "فلافل" {
		t.Fatal("untouched fields must survive the edit")
	}
}

func TestDeleteItemHandler(t *testing.T) {
	store, svc := newFixture(t)
	addHandler := curationcmd.NewAddItemHandler(svc, logging.NoOp())
	deleteHandler := curationcmd.NewDeleteItemHandler(svc, logging.NoOp())
	ctx := context.Background()

	if err := addHandler.Execute(ctx, curationcmd.AddItemCommand{
		Name: catalog.MultilingualText{EN: "Doomed Dish"},
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	itemID := store.Current().Items[0].ID

	if err := deleteHandler.Execute(ctx, curationcmd.DeleteItemCommand{ID: itemID}); err == nil {
		t.Fatal("unconfirmed delete must fail validation")
	}

	if err := deleteHandler.Execute(ctx, curationcmd.DeleteItemCommand{ID: itemID, Confirmed: true}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.Current().Items) != 0 {
		t.Fatal("item should be gone after the confirmed delete")
	}
}
