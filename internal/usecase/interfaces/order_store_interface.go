package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// IOrderStore abstracts the remote orders collection.
//
// The order book must be able to:
//   - fetch the full collection at startup (newest-created first)
//   - upsert one order keyed by its id (an edit is a replace, not a new row)
//   - delete by id, where an absent id is not an error
//
// Every method may fail independently of the local cache; callers treat any
// error as "remote unavailable" and keep working from the mirror.
type IOrderStore interface {
	FetchOrders(ctx context.Context) ([]entities.ServiceOrder, error)
	UpsertOrder(ctx context.Context, order entities.ServiceOrder) error
	DeleteOrder(ctx context.Context, id string) error
}
