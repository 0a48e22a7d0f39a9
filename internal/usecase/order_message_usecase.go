package usecase

import (
	"context"
	"errors"
	"strings"

	"vismapay_checkout/internal/domain/entities"
	"vismapay_checkout/internal/usecase/interfaces"
)

var ErrInvalidCartID = errors.New("invalid cart id")

// IOrderMessageUseCase exposes the per-cart reconciliation log for the
// admin order view.
type IOrderMessageUseCase interface {
	List(ctx context.Context, cartID string) ([]entities.OrderMessage, error)
}

type OrderMessageUseCase struct {
	ledger interfaces.IOrderLedger
}

var _ IOrderMessageUseCase = (*OrderMessageUseCase)(nil)

func NewOrderMessageUseCase(ledger interfaces.IOrderLedger) *OrderMessageUseCase {
	return &OrderMessageUseCase{ledger: ledger}
}

func (u *OrderMessageUseCase) List(ctx context.Context, cartID string) ([]entities.OrderMessage, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return nil, ErrInvalidCartID
	}
	return u.ledger.ListMessages(ctx, cartID)
}
