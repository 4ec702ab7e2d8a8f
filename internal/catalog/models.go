package catalog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Document is the persisted form of the catalog: one row per namespace
// holding the whole aggregate as a JSON document. Whole-document replacement
// keeps writes auditable and rules out partial updates.
type Document struct {
	bun.BaseModel `bun:"table:catalog_documents,alias:cd"`

	ID        uuid.UUID       `bun:",pk,type:uuid" json:"id"`
	Namespace string          `bun:"namespace,notnull,unique" json:"namespace"`
	Data      json.RawMessage `bun:"data,type:jsonb,notnull" json:"data"`
	UpdatedAt time.Time       `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
