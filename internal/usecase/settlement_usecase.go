package usecase

import (
	"context"
	"errors"
	"log"

	"vismapay_checkout/internal/domain/entities"
	"vismapay_checkout/internal/usecase/interfaces"
)

var (
	ErrSettlementOrderNotFound = errors.New("order number not found for settlement")
)

// ISettlementUseCase captures a previously authorized payment. This is
// the single canonical settle path; it is admin-facing, so gateway
// error text may be surfaced in the result message.
type ISettlementUseCase interface {
	Settle(ctx context.Context, cartID string) (entities.SettlementResult, error)
}

type SettlementUseCase struct {
	ledger  interfaces.IOrderLedger
	orders  interfaces.ICheckoutOrderRepository
	gateway interfaces.IVismaPayGateway
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(ledger interfaces.IOrderLedger, orders interfaces.ICheckoutOrderRepository, gateway interfaces.IVismaPayGateway) *SettlementUseCase {
	return &SettlementUseCase{ledger: ledger, orders: orders, gateway: gateway}
}

// Settle requests capture for the cart's order number. Result 0 moves
// the checkout order to paid and appends a ledger message; every other
// result leaves state untouched and reports the mapped failure. No
// result is retried automatically.
func (u *SettlementUseCase) Settle(ctx context.Context, cartID string) (entities.SettlementResult, error) {
	record, err := u.ledger.Lookup(ctx, cartID)
	if errors.Is(err, entities.ErrOrderRecordNotFound) {
		return entities.SettlementResult{}, ErrSettlementOrderNotFound
	}
	if err != nil {
		return entities.SettlementResult{}, err
	}
	log.Printf("[payment][settle] settle start cart_id=%s order_number=%s", cartID, record.OrderNumber)

	res, err := u.gateway.Settle(ctx, record.OrderNumber)
	if err != nil {
		log.Printf("[payment][settle] gateway settle failed cart_id=%s order_number=%s err=%v", cartID, record.OrderNumber, err)
		return entities.SettlementResult{Settled: false, Message: err.Error()}, nil
	}

	switch res.Result {
	case 0:
		if err := u.orders.MarkPaid(ctx, cartID); err != nil {
			log.Printf("[payment][settle] marking order paid failed cart_id=%s err=%v", cartID, err)
			return entities.SettlementResult{}, err
		}
		const message = "Payment settled."
		if err := u.ledger.AppendMessage(ctx, cartID, message); err != nil {
			log.Printf("[payment][settle] appending order message failed cart_id=%s err=%v", cartID, err)
		}
		log.Printf("[payment][settle] settle success cart_id=%s order_number=%s", cartID, record.OrderNumber)
		return entities.SettlementResult{Settled: true, Message: message}, nil
	case 1:
		return entities.SettlementResult{Settled: false, Message: "Request failed. Validation failed."}, nil
	case 2:
		return entities.SettlementResult{Settled: false, Message: "Payment cannot be settled. Either the payment has already been settled or the payment gateway refused to settle payment for given transaction."}, nil
	case 3:
		return entities.SettlementResult{Settled: false, Message: "Payment cannot be settled. Transaction for given order number was not found."}, nil
	default:
		log.Printf("[payment][settle] unexpected settle result cart_id=%s result=%d", cartID, res.Result)
		return entities.SettlementResult{Settled: false, Message: "Unexpected error during the settlement."}, nil
	}
}
