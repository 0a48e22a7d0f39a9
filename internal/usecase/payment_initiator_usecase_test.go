package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vismapay_checkout/internal/domain/entities"
	"vismapay_checkout/internal/infrastructure/config"
	mock_interfaces "vismapay_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

	if got := GenerateOrderNumber("77", "", now); got != "20240102150405_77" {
		t.Fatalf("unexpected order number: %s", got)
	}
	if got := GenerateOrderNumber("77", "shop", now); got != "shop_20240102150405_77" {
		t.Fatalf("unexpected prefixed order number: %s", got)
	}
}

func testCart() entities.Cart {
	return entities.Cart{
		ID:        "77",
		SecureKey: "sk-1",
		Currency:  "EUR",
		Language:  "fi",
		Email:     "maija@example.test",
		Total:     19.99,
		Lines: []entities.CartLine{
			{Reference: "sku-1", Name: "Widget", Quantity: 2, PretaxPrice: 4.03, PriceWithTax: 5.00, TaxRate: 24},
		},
		Shipping: entities.CartShipping{CarrierReference: "5", CarrierName: "Post", Cost: 9.99, PretaxCost: 8.06, TaxRate: 24},
		Invoice:  entities.Address{FirstName: "Maija", LastName: "M", Street: "Katu 1", City: "Helsinki", Zip: "00100", Country: "FI", Phone: "+358 40 (123)"},
		Delivery: entities.Address{FirstName: "Maija", LastName: "M", Street: "Katu 1", City: "Helsinki", Zip: "00100", Country: "FI"},
	}
}

func TestPaymentInitiatorUseCase_CreatePayment(t *testing.T) {
	fixedNow := func() time.Time { return time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC) }

	t.Run("empty cart id", func(t *testing.T) {
		uc := NewPaymentInitiatorUseCase(nil, nil, InitiatorOptions{})
		_, err := uc.CreatePayment(context.Background(), entities.Cart{ID: "  "}, "banks")
		if !errors.Is(err, ErrInvalidCart) {
			t.Fatalf("expected ErrInvalidCart, got %v", err)
		}
	})

	t.Run("no payment methods", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIOrderLedger(ctrl)
		gateway := mock_interfaces.NewMockIVismaPayGateway(ctrl)
		uc := NewPaymentInitiatorUseCase(ledger, gateway, InitiatorOptions{Clock: fixedNow})

		ledger.EXPECT().Upsert(gomock.Any(), "77", "20240102150405_77", int64(1999)).Return(nil)

		_, err := uc.CreatePayment(context.Background(), testCart(), "")
		if !errors.Is(err, ErrNoPaymentMethods) {
			t.Fatalf("expected ErrNoPaymentMethods, got %v", err)
		}
	})

	t.Run("ledger upsert fails before any charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIOrderLedger(ctrl)
		gateway := mock_interfaces.NewMockIVismaPayGateway(ctrl)
		uc := NewPaymentInitiatorUseCase(ledger, gateway, InitiatorOptions{Clock: fixedNow})

		ledger.EXPECT().Upsert(gomock.Any(), "77", gomock.Any(), int64(1999)).Return(errors.New("db down"))

		_, err := uc.CreatePayment(context.Background(), testCart(), "banks")
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db down error, got %v", err)
		}
	})

	t.Run("success records mapping and returns payment url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIOrderLedger(ctrl)
		gateway := mock_interfaces.NewMockIVismaPayGateway(ctrl)
		uc := NewPaymentInitiatorUseCase(ledger, gateway, InitiatorOptions{
			ReturnURL: "http://shop.test/v1/payments/return",
			Clock:     fixedNow,
		})

		ledger.EXPECT().Upsert(gomock.Any(), "77", "20240102150405_77", int64(1999)).Return(nil)
		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
			func(_ context.Context, charge entities.Charge, customer entities.Customer, _ []entities.Product, method entities.PaymentMethod) (entities.ChargeResult, error) {
				if charge.OrderNumber != "20240102150405_77" || charge.Amount != 1999 || charge.Currency != "EUR" {
					t.Fatalf("unexpected charge: %+v", charge)
				}
				if customer.Phone != "+358 40 123" {
					t.Fatalf("phone not sanitized: %q", customer.Phone)
				}
				if method.Lang != "fi" || method.ReturnURL != "http://shop.test/v1/payments/return?id_cart=77&key=sk-1" {
					t.Fatalf("unexpected payment method: %+v", method)
				}
				if method.NotifyURL != method.ReturnURL {
					t.Fatalf("notify url should match return url")
				}
				return entities.ChargeResult{Result: 0, Token: "tok-1"}, nil
			})
		gateway.EXPECT().PaymentURL("tok-1").Return("https://pay.test/token/tok-1")

		url, err := uc.CreatePayment(context.Background(), testCart(), "banks")
		if err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
		if url != "https://pay.test/token/tok-1" {
			t.Fatalf("unexpected payment url: %s", url)
		}
	})

	t.Run("gateway transport error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIOrderLedger(ctrl)
		gateway := mock_interfaces.NewMockIVismaPayGateway(ctrl)
		uc := NewPaymentInitiatorUseCase(ledger, gateway, InitiatorOptions{Clock: fixedNow})

		ledger.EXPECT().Upsert(gomock.Any(), "77", gomock.Any(), int64(1999)).Return(nil)
		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ChargeResult{}, errors.New("timeout"))

		_, err := uc.CreatePayment(context.Background(), testCart(), "banks")
		if !errors.Is(err, ErrPaymentCreateFailed) {
			t.Fatalf("expected ErrPaymentCreateFailed, got %v", err)
		}
	})

	t.Run("gateway refuses charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIOrderLedger(ctrl)
		gateway := mock_interfaces.NewMockIVismaPayGateway(ctrl)
		uc := NewPaymentInitiatorUseCase(ledger, gateway, InitiatorOptions{Clock: fixedNow})

		ledger.EXPECT().Upsert(gomock.Any(), "77", gomock.Any(), int64(1999)).Return(nil)
		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ChargeResult{Result: 1, Errors: []string{"invalid currency"}}, nil)

		_, err := uc.CreatePayment(context.Background(), testCart(), "banks")
		if !errors.Is(err, ErrPaymentCreateFailed) {
			t.Fatalf("expected ErrPaymentCreateFailed, got %v", err)
		}
	})

	t.Run("unsupported language falls back to en", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIOrderLedger(ctrl)
		gateway := mock_interfaces.NewMockIVismaPayGateway(ctrl)
		uc := NewPaymentInitiatorUseCase(ledger, gateway, InitiatorOptions{Clock: fixedNow})

		cart := testCart()
		cart.Language = "de"

		ledger.EXPECT().Upsert(gomock.Any(), "77", gomock.Any(), int64(1999)).Return(nil)
		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Charge, _ entities.Customer, _ []entities.Product, method entities.PaymentMethod) (entities.ChargeResult, error) {
				if method.Lang != "en" {
					t.Fatalf("expected language fallback to en, got %s", method.Lang)
				}
				return entities.ChargeResult{Result: 0, Token: "tok-1"}, nil
			})
		gateway.EXPECT().PaymentURL("tok-1").Return("https://pay.test/token/tok-1")

		if _, err := uc.CreatePayment(context.Background(), cart, "banks"); err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
	})

	t.Run("confirmation email sent only when enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIOrderLedger(ctrl)
		gateway := mock_interfaces.NewMockIVismaPayGateway(ctrl)
		uc := NewPaymentInitiatorUseCase(ledger, gateway, InitiatorOptions{SendConfirmation: true, Clock: fixedNow})

		ledger.EXPECT().Upsert(gomock.Any(), "77", gomock.Any(), int64(1999)).Return(nil)
		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, charge entities.Charge, _ entities.Customer, _ []entities.Product, _ entities.PaymentMethod) (entities.ChargeResult, error) {
				if charge.Email != "maija@example.test" {
					t.Fatalf("expected confirmation email on charge, got %q", charge.Email)
				}
				return entities.ChargeResult{Result: 0, Token: "tok-1"}, nil
			})
		gateway.EXPECT().PaymentURL("tok-1").Return("https://pay.test/token/tok-1")

		if _, err := uc.CreatePayment(context.Background(), testCart(), "banks"); err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
	})
}

func TestPaymentInitiatorUseCase_BuildProducts(t *testing.T) {
	t.Run("reconciling cart produces item shipping and discount lines", func(t *testing.T) {
		uc := NewPaymentInitiatorUseCase(nil, nil, InitiatorOptions{SendItems: config.SendItemsEnabled})

		cart := testCart()
		cart.Total = 17.99
		cart.Discount = entities.CartDiscount{Total: 2.00, PretaxTotal: 1.61, PretaxTotalRaw: 1.6129}

		products := uc.BuildProducts(cart)
		if len(products) != 3 {
			t.Fatalf("expected 3 product lines, got %d: %+v", len(products), products)
		}

		item := products[0]
		if item.Type != entities.ProductTypeItem || item.Price != 500 || item.Count != 2 || item.Tax != "24.00" {
			t.Fatalf("unexpected item line: %+v", item)
		}
		shipping := products[1]
		if shipping.Type != entities.ProductTypeShipping || shipping.Price != 999 || shipping.Count != 1 {
			t.Fatalf("unexpected shipping line: %+v", shipping)
		}
		discount := products[2]
		if discount.Type != entities.ProductTypeDiscount || discount.Price != -200 || discount.PretaxPrice != -161 {
			t.Fatalf("unexpected discount line: %+v", discount)
		}
	})

	t.Run("non-reconciling cart withholds items", func(t *testing.T) {
		uc := NewPaymentInitiatorUseCase(nil, nil, InitiatorOptions{SendItems: config.SendItemsEnabled})

		cart := testCart()
		cart.Total = 25.00

		if products := uc.BuildProducts(cart); products != nil {
			t.Fatalf("expected nil products on sum mismatch, got %+v", products)
		}
	})

	t.Run("forced mode sends items despite mismatch", func(t *testing.T) {
		uc := NewPaymentInitiatorUseCase(nil, nil, InitiatorOptions{SendItems: config.SendItemsForced})

		cart := testCart()
		cart.Total = 25.00

		if products := uc.BuildProducts(cart); len(products) == 0 {
			t.Fatalf("expected products in forced mode")
		}
	})

	t.Run("zero shipping produces no shipping line", func(t *testing.T) {
		uc := NewPaymentInitiatorUseCase(nil, nil, InitiatorOptions{SendItems: config.SendItemsEnabled})

		cart := testCart()
		cart.Shipping = entities.CartShipping{}
		cart.Total = 10.00

		products := uc.BuildProducts(cart)
		if len(products) != 1 || products[0].Type != entities.ProductTypeItem {
			t.Fatalf("expected single item line, got %+v", products)
		}
	})
}
