package sales

import (
	"context"

	"github.com/de-tools/sales-atlas/pkg/models/store"
)

// Store loads a complete sales record set. Implementations are constructed
// once at process start and passed to the services explicitly; callers must
// treat the returned records as read-only.
type Store interface {
	Load(ctx context.Context) ([]store.SalesRecord, error)
}
