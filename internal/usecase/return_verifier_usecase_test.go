package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vismapay_checkout/internal/domain/entities"
	mock_interfaces "vismapay_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type returnVerifierMocks struct {
	ledger  *mock_interfaces.MockIOrderLedger
	orders  *mock_interfaces.MockICheckoutOrderRepository
	gateway *mock_interfaces.MockIVismaPayGateway
}

func newReturnVerifier(t *testing.T) (*ReturnVerifierUseCase, returnVerifierMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := returnVerifierMocks{
		ledger:  mock_interfaces.NewMockIOrderLedger(ctrl),
		orders:  mock_interfaces.NewMockICheckoutOrderRepository(ctrl),
		gateway: mock_interfaces.NewMockIVismaPayGateway(ctrl),
	}
	return NewReturnVerifierUseCase(m.ledger, m.orders, m.gateway), m
}

// expectFreshFinalize wires the common first-finalization path: no
// final order yet, conditional create succeeds, message gets appended.
func expectFreshFinalize(m returnVerifierMocks, cartID string) {
	m.orders.EXPECT().HasFinalOrder(gomock.Any(), cartID).Return(false, nil)
	m.orders.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(nil)
	m.ledger.EXPECT().AppendMessage(gomock.Any(), cartID, gomock.Any()).Return(nil)
}

func TestReturnVerifierUseCase_HandleReturn_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		cartID  string
		payload entities.CallbackPayload
	}{
		{"missing return code", "77", entities.CallbackPayload{OrderNumber: "n-1"}},
		{"missing order number", "77", entities.CallbackPayload{ReturnCode: "0"}},
		{"missing cart id", "  ", entities.CallbackPayload{ReturnCode: "0", OrderNumber: "n-1"}},
		{"non-numeric return code", "77", entities.CallbackPayload{ReturnCode: "abc", OrderNumber: "n-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newReturnVerifier(t)
			_, err := uc.HandleReturn(context.Background(), tt.cartID, "sk", tt.payload)
			if !errors.Is(err, ErrMalformedCallback) {
				t.Fatalf("expected ErrMalformedCallback, got %v", err)
			}
		})
	}
}

func TestReturnVerifierUseCase_HandleReturn_AuthcodeMismatch(t *testing.T) {
	uc, m := newReturnVerifier(t)
	payload := entities.CallbackPayload{ReturnCode: "0", OrderNumber: "n-1", Settled: "1", Authcode: "BAD"}

	m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(entities.OrderRecord{CartID: "77", OrderNumber: "n-1", Amount: 1999}, nil)
	m.gateway.EXPECT().VerifyCallback(payload).Return(false)
	expectFreshFinalize(m, "77")

	outcome, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
	if err != nil {
		t.Fatalf("HandleReturn failed: %v", err)
	}
	if outcome.State != entities.OrderStateFailed {
		t.Fatalf("expected failed state, got %s", outcome.State)
	}
	if !strings.Contains(outcome.Message, "Authcode mismatch") {
		t.Fatalf("unexpected message: %s", outcome.Message)
	}
}

func TestReturnVerifierUseCase_HandleReturn_OrderNumberMismatch(t *testing.T) {
	t.Run("different order number", func(t *testing.T) {
		uc, m := newReturnVerifier(t)
		payload := entities.CallbackPayload{ReturnCode: "0", OrderNumber: "n-other", Settled: "1", Authcode: "OK"}

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(entities.OrderRecord{CartID: "77", OrderNumber: "n-1", Amount: 1999}, nil)
		m.gateway.EXPECT().VerifyCallback(payload).Return(true)
		expectFreshFinalize(m, "77")

		outcome, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err != nil {
			t.Fatalf("HandleReturn failed: %v", err)
		}
		if outcome.State != entities.OrderStateFailed || !strings.Contains(outcome.Message, "Order number mismatch") {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})

	t.Run("no mapping recorded", func(t *testing.T) {
		uc, m := newReturnVerifier(t)
		payload := entities.CallbackPayload{ReturnCode: "0", OrderNumber: "n-1", Settled: "1", Authcode: "OK"}

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(entities.OrderRecord{}, entities.ErrOrderRecordNotFound)
		m.gateway.EXPECT().VerifyCallback(payload).Return(true)
		expectFreshFinalize(m, "77")

		outcome, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err != nil {
			t.Fatalf("HandleReturn failed: %v", err)
		}
		if outcome.State != entities.OrderStateFailed || !strings.Contains(outcome.Message, "Order number mismatch") {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})

	t.Run("ledger error propagates", func(t *testing.T) {
		uc, m := newReturnVerifier(t)
		payload := entities.CallbackPayload{ReturnCode: "0", OrderNumber: "n-1", Settled: "1", Authcode: "OK"}

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(entities.OrderRecord{}, errors.New("db down"))

		_, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db down error, got %v", err)
		}
	})
}

func TestReturnVerifierUseCase_HandleReturn_SuccessStates(t *testing.T) {
	record := entities.OrderRecord{CartID: "77", OrderNumber: "n-1", Amount: 1999}

	t.Run("settled payment is accepted", func(t *testing.T) {
		uc, m := newReturnVerifier(t)
		payload := entities.CallbackPayload{ReturnCode: "0", OrderNumber: "n-1", Settled: "1", Authcode: "OK"}

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(record, nil)
		m.gateway.EXPECT().VerifyCallback(payload).Return(true)
		m.gateway.EXPECT().CheckStatus(gomock.Any(), "n-1").Return(entities.StatusResult{Settled: 1, Amount: 1999, Source: entities.PaymentSource{Brand: "Visa"}}, nil)
		expectFreshFinalize(m, "77")

		outcome, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err != nil {
			t.Fatalf("HandleReturn failed: %v", err)
		}
		if outcome.State != entities.OrderStateAccepted {
			t.Fatalf("expected accepted, got %s", outcome.State)
		}
		if !strings.Contains(outcome.Message, "Payment accepted.") || !strings.Contains(outcome.Message, "Visa") {
			t.Fatalf("unexpected message: %s", outcome.Message)
		}
	})

	t.Run("authorization with matching amount is accepted", func(t *testing.T) {
		uc, m := newReturnVerifier(t)
		payload := entities.CallbackPayload{ReturnCode: "0", OrderNumber: "n-1", Settled: "0", Authcode: "OK"}

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(record, nil)
		m.gateway.EXPECT().VerifyCallback(payload).Return(true)
		m.gateway.EXPECT().CheckStatus(gomock.Any(), "n-1").Return(entities.StatusResult{Settled: 0, Amount: 1999}, nil)
		expectFreshFinalize(m, "77")

		outcome, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err != nil {
			t.Fatalf("HandleReturn failed: %v", err)
		}
		if outcome.State != entities.OrderStateAccepted {
			t.Fatalf("expected accepted, got %s", outcome.State)
		}
		if !strings.Contains(outcome.Message, "Payment authorized.") {
			t.Fatalf("unexpected message: %s", outcome.Message)
		}
	})

	t.Run("authorization with amount mismatch stays authorized and warns", func(t *testing.T) {
		uc, m := newReturnVerifier(t)
		payload := entities.CallbackPayload{ReturnCode: "0", OrderNumber: "n-1", Settled: "0", Authcode: "OK"}

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(record, nil)
		m.gateway.EXPECT().VerifyCallback(payload).Return(true)
		m.gateway.EXPECT().CheckStatus(gomock.Any(), "n-1").Return(entities.StatusResult{Settled: 0, Amount: 1500}, nil)
		expectFreshFinalize(m, "77")

		outcome, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err != nil {
			t.Fatalf("HandleReturn failed: %v", err)
		}
		if outcome.State != entities.OrderStateAuthorized {
			t.Fatalf("expected authorized, got %s", outcome.State)
		}
		if !strings.Contains(outcome.Message, "Paid sum does not match order sum") {
			t.Fatalf("expected amount mismatch note, got: %s", outcome.Message)
		}
	})

	t.Run("settled payment with amount mismatch is accepted with warning", func(t *testing.T) {
		uc, m := newReturnVerifier(t)
		payload := entities.CallbackPayload{ReturnCode: "0", OrderNumber: "n-1", Settled: "1", Authcode: "OK"}

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(record, nil)
		m.gateway.EXPECT().VerifyCallback(payload).Return(true)
		m.gateway.EXPECT().CheckStatus(gomock.Any(), "n-1").Return(entities.StatusResult{Settled: 1, Amount: 1500}, nil)
		expectFreshFinalize(m, "77")

		outcome, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err != nil {
			t.Fatalf("HandleReturn failed: %v", err)
		}
		if outcome.State != entities.OrderStateAccepted {
			t.Fatalf("expected accepted, got %s", outcome.State)
		}
		if !strings.Contains(outcome.Message, "Paid sum does not match order sum") {
			t.Fatalf("expected amount mismatch note, got: %s", outcome.Message)
		}
	})

	t.Run("status check failure falls back to settled flag", func(t *testing.T) {
		uc, m := newReturnVerifier(t)
		payload := entities.CallbackPayload{ReturnCode: "0", OrderNumber: "n-1", Settled: "0", Authcode: "OK"}

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(record, nil)
		m.gateway.EXPECT().VerifyCallback(payload).Return(true)
		m.gateway.EXPECT().CheckStatus(gomock.Any(), "n-1").Return(entities.StatusResult{}, errors.New("timeout"))
		expectFreshFinalize(m, "77")

		outcome, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err != nil {
			t.Fatalf("HandleReturn failed: %v", err)
		}
		if outcome.State != entities.OrderStateAuthorized {
			t.Fatalf("expected authorized when status unknown and not settled, got %s", outcome.State)
		}
	})
}

func TestReturnVerifierUseCase_HandleReturn_FailureCodes(t *testing.T) {
	record := entities.OrderRecord{CartID: "77", OrderNumber: "n-1", Amount: 1999}

	run := func(t *testing.T, returnCode string, expectStatusCheck bool) entities.ReturnOutcome {
		uc, m := newReturnVerifier(t)
		payload := entities.CallbackPayload{ReturnCode: returnCode, OrderNumber: "n-1", Authcode: "OK"}

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(record, nil)
		m.gateway.EXPECT().VerifyCallback(payload).Return(true)
		if expectStatusCheck {
			m.gateway.EXPECT().CheckStatus(gomock.Any(), "n-1").Return(entities.StatusResult{Source: entities.PaymentSource{Object: "card", Brand: "Visa", CardVerified: "N", ErrorCode: "51"}}, nil)
		}
		expectFreshFinalize(m, "77")

		outcome, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err != nil {
			t.Fatalf("HandleReturn failed: %v", err)
		}
		if outcome.State != entities.OrderStateFailed {
			t.Fatalf("expected failed state, got %s", outcome.State)
		}
		return outcome
	}

	t.Run("return code 4 asks for manual resolution", func(t *testing.T) {
		outcome := run(t, "4", false)
		if !strings.Contains(outcome.Message, "resolve the payment status manually") {
			t.Fatalf("unexpected message: %s", outcome.Message)
		}
	})

	t.Run("return code 10 reports maintenance break", func(t *testing.T) {
		outcome := run(t, "10", false)
		if !strings.Contains(outcome.Message, "Maintenance break") {
			t.Fatalf("unexpected message: %s", outcome.Message)
		}
	})

	t.Run("other codes include card details", func(t *testing.T) {
		outcome := run(t, "1", true)
		if !strings.Contains(outcome.Message, "Insufficient funds") {
			t.Fatalf("expected decline reason, got: %s", outcome.Message)
		}
		if !strings.Contains(outcome.Message, "3-D Secure was not used") {
			t.Fatalf("expected 3-D Secure note, got: %s", outcome.Message)
		}
		if !strings.Contains(outcome.Message, "Payment method: Visa") {
			t.Fatalf("expected brand, got: %s", outcome.Message)
		}
	})
}

func TestReturnVerifierUseCase_HandleReturn_Idempotent(t *testing.T) {
	record := entities.OrderRecord{CartID: "77", OrderNumber: "n-1", Amount: 1999}
	payload := entities.CallbackPayload{ReturnCode: "0", OrderNumber: "n-1", Settled: "1", Authcode: "OK"}

	t.Run("already finalized order is left alone", func(t *testing.T) {
		uc, m := newReturnVerifier(t)

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(record, nil)
		m.gateway.EXPECT().VerifyCallback(payload).Return(true)
		m.gateway.EXPECT().CheckStatus(gomock.Any(), "n-1").Return(entities.StatusResult{Settled: 1, Amount: 1999}, nil)
		m.orders.EXPECT().HasFinalOrder(gomock.Any(), "77").Return(true, nil)
		// No Finalize, no AppendMessage.

		outcome, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err != nil {
			t.Fatalf("HandleReturn failed: %v", err)
		}
		if outcome.State != entities.OrderStateAccepted {
			t.Fatalf("expected accepted, got %s", outcome.State)
		}
	})

	t.Run("losing a finalization race is absorbed", func(t *testing.T) {
		uc, m := newReturnVerifier(t)

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(record, nil)
		m.gateway.EXPECT().VerifyCallback(payload).Return(true)
		m.gateway.EXPECT().CheckStatus(gomock.Any(), "n-1").Return(entities.StatusResult{Settled: 1, Amount: 1999}, nil)
		m.orders.EXPECT().HasFinalOrder(gomock.Any(), "77").Return(false, nil)
		m.orders.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(entities.ErrOrderAlreadyFinalized)
		// The racing winner appended the message; the loser must not.

		outcome, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err != nil {
			t.Fatalf("HandleReturn failed: %v", err)
		}
		if outcome.State != entities.OrderStateAccepted {
			t.Fatalf("expected accepted, got %s", outcome.State)
		}
	})

	t.Run("finalize error propagates", func(t *testing.T) {
		uc, m := newReturnVerifier(t)

		m.ledger.EXPECT().Lookup(gomock.Any(), "77").Return(record, nil)
		m.gateway.EXPECT().VerifyCallback(payload).Return(true)
		m.gateway.EXPECT().CheckStatus(gomock.Any(), "n-1").Return(entities.StatusResult{Settled: 1, Amount: 1999}, nil)
		m.orders.EXPECT().HasFinalOrder(gomock.Any(), "77").Return(false, nil)
		m.orders.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := uc.HandleReturn(context.Background(), "77", "sk", payload)
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db down error, got %v", err)
		}
	})
}

func TestParseSettled(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " 1 "} {
		if !parseSettled(v) {
			t.Fatalf("expected %q to parse as settled", v)
		}
	}
	for _, v := range []string{"", "0", "false", "no"} {
		if parseSettled(v) {
			t.Fatalf("expected %q to parse as not settled", v)
		}
	}
}
