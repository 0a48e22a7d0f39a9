package interfaces

import (
	"context"

	"vismapay_checkout/internal/domain/entities"
)

// IOrderLedger abstracts the durable cart-to-order-number mapping and
// the append-only reconciliation message log.
//
// Upsert must be atomic per cart id: concurrent initiations of the
// same cart converge on a single record, never two.
type IOrderLedger interface {
	Upsert(ctx context.Context, cartID, orderNumber string, amount int64) error
	Lookup(ctx context.Context, cartID string) (entities.OrderRecord, error)
	AppendMessage(ctx context.Context, cartID, message string) error
	ListMessages(ctx context.Context, cartID string) ([]entities.OrderMessage, error)
}
