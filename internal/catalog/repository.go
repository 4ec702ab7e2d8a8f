package catalog

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewDocumentModelRepository builds the generic bun repository for catalog documents.
func NewDocumentModelRepository(db *bun.DB) repository.Repository[*Document] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Document]{
		NewRecord: func() *Document { return &Document{} },
		GetID: func(d *Document) uuid.UUID {
			return d.ID
		},
		SetID: func(d *Document, id uuid.UUID) {
			d.ID = id
		},
		GetIdentifier: func() string {
			return "namespace"
		},
		GetIdentifierValue: func(d *Document) string {
			if d == nil {
				return ""
			}
			return d.Namespace
		},
	})
}

// CreateDocumentTable ensures the catalog document table exists. Hosts that
// manage migrations themselves can skip this helper.
func CreateDocumentTable(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*Document)(nil)).IfNotExists().Exec(ctx)
	return err
}
