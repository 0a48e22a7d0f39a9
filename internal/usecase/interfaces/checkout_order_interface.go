package interfaces

import (
	"context"

	"vismapay_checkout/internal/domain/entities"
)

// ICheckoutOrderRepository abstracts the surrounding shop's terminal
// order per cart.
//
// Finalize must be guarded by a uniqueness constraint on cart id and
// return entities.ErrOrderAlreadyFinalized on a duplicate, so racing
// return and notify callbacks finalize at most once.
type ICheckoutOrderRepository interface {
	HasFinalOrder(ctx context.Context, cartID string) (bool, error)
	Finalize(ctx context.Context, order entities.CheckoutOrder) error
	MarkPaid(ctx context.Context, cartID string) error
}
