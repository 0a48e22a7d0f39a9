package interfaces

import (
	"context"

	"vismapay_checkout/internal/domain/entities"
)

// IVismaPayGateway abstracts the signed Visma Pay API client.
//
// VerifyCallback is a pure check against the callback MAC; everything
// else performs network I/O and may block up to the request timeout.
type IVismaPayGateway interface {
	CreateCharge(ctx context.Context, charge entities.Charge, customer entities.Customer, products []entities.Product, method entities.PaymentMethod) (entities.ChargeResult, error)
	CheckStatus(ctx context.Context, orderNumber string) (entities.StatusResult, error)
	Settle(ctx context.Context, orderNumber string) (entities.SettleResult, error)
	Cancel(ctx context.Context, orderNumber string) (entities.CancelResult, error)
	VerifyCallback(p entities.CallbackPayload) bool
	PaymentURL(token string) string
}
