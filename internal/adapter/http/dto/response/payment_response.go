package response

import (
	"time"

	"vismapay_checkout/internal/domain/entities"
)

type PaymentCreateResponse struct {
	PaymentURL string `json:"payment_url"`
}

type ReturnResponse struct {
	State       string `json:"state"`
	Message     string `json:"message"`
	RedirectURL string `json:"redirect_url"`
}

type SettlementResponse struct {
	Settled bool   `json:"settled"`
	Message string `json:"message"`
}

type OrderMessageResponse struct {
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

func FromReturnOutcome(o entities.ReturnOutcome, redirectURL string) ReturnResponse {
	return ReturnResponse{
		State:       string(o.State),
		Message:     o.Message,
		RedirectURL: redirectURL,
	}
}

func FromSettlementResult(r entities.SettlementResult) SettlementResponse {
	return SettlementResponse{Settled: r.Settled, Message: r.Message}
}

func FromOrderMessages(messages []entities.OrderMessage) []OrderMessageResponse {
	out := make([]OrderMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, OrderMessageResponse{Date: m.Date, Message: m.Message})
	}
	return out
}
