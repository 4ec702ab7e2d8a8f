package catalog

import (
	"errors"
	"fmt"
)

// ErrDocumentNotFound signals that no catalog document exists under the
// configured namespace. The store treats it as "fall back to seed data".
var ErrDocumentNotFound = errors.New("catalog: document not found")

// ErrStoreUnavailable wraps durable-store read/write failures. Persistence is
// best effort: a failed save is logged and the in-memory aggregate survives
// for the rest of the session.
var ErrStoreUnavailable = errors.New("catalog: store unavailable")

// NotFoundError represents missing records from catalog lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err is a catalog NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
