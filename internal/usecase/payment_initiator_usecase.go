package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"vismapay_checkout/internal/domain/entities"
	"vismapay_checkout/internal/infrastructure/config"
	"vismapay_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidCart         = errors.New("invalid cart snapshot")
	ErrNoPaymentMethods    = errors.New("no payment methods available")
	ErrPaymentCreateFailed = errors.New("creating visma pay payment failed")
)

var supportedLanguages = map[string]bool{"fi": true, "en": true, "sv": true, "ru": true}

var phoneSanitizer = regexp.MustCompile(`[^0-9+ ]`)

// IPaymentInitiatorUseCase turns a cart snapshot into a Visma Pay
// charge and returns the URL the customer pays at.
type IPaymentInitiatorUseCase interface {
	CreatePayment(ctx context.Context, cart entities.Cart, selectedMethod string) (string, error)
}

// InitiatorOptions are the configuration toggles threaded into payment
// initiation. Clock is injectable for deterministic order numbers in
// tests; nil means time.Now.
type InitiatorOptions struct {
	OrderPrefix      string
	SendItems        config.SendItemsMode
	SendConfirmation bool
	EnabledMethods   []string
	ReturnURL        string
	Clock            func() time.Time
}

type PaymentInitiatorUseCase struct {
	ledger  interfaces.IOrderLedger
	gateway interfaces.IVismaPayGateway
	opts    InitiatorOptions
}

var _ IPaymentInitiatorUseCase = (*PaymentInitiatorUseCase)(nil)

func NewPaymentInitiatorUseCase(ledger interfaces.IOrderLedger, gateway interfaces.IVismaPayGateway, opts InitiatorOptions) *PaymentInitiatorUseCase {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &PaymentInitiatorUseCase{ledger: ledger, gateway: gateway, opts: opts}
}

// CreatePayment snapshots the order mapping, builds the charge and
// asks the gateway for a payment token. Any gateway failure is logged
// and surfaced as ErrPaymentCreateFailed so the checkout can show a
// generic retry page; the gateway's raw error never reaches the
// customer.
func (u *PaymentInitiatorUseCase) CreatePayment(ctx context.Context, cart entities.Cart, selectedMethod string) (string, error) {
	if strings.TrimSpace(cart.ID) == "" {
		return "", ErrInvalidCart
	}
	log.Printf("[payment][usecase] create start cart_id=%s total=%.2f currency=%s", cart.ID, cart.Total, cart.Currency)

	orderNumber := GenerateOrderNumber(cart.ID, u.opts.OrderPrefix, u.opts.Clock())
	amount := minorUnits(cart.Total)

	if err := u.ledger.Upsert(ctx, cart.ID, orderNumber, amount); err != nil {
		log.Printf("[payment][usecase] ledger upsert failed cart_id=%s err=%v", cart.ID, err)
		return "", err
	}

	charge := entities.Charge{
		OrderNumber: orderNumber,
		Amount:      amount,
		Currency:    cart.Currency,
	}
	if u.opts.SendConfirmation && cart.Email != "" {
		charge.Email = cart.Email
	}

	var products []entities.Product
	if u.opts.SendItems == config.SendItemsEnabled || u.opts.SendItems == config.SendItemsForced {
		products = u.BuildProducts(cart)
	}

	method, err := u.buildPaymentMethod(cart, selectedMethod)
	if err != nil {
		return "", err
	}

	res, err := u.gateway.CreateCharge(ctx, charge, buildCustomer(cart), products, method)
	if err != nil {
		log.Printf("[payment][usecase] charge creation failed cart_id=%s order_number=%s err=%v", cart.ID, orderNumber, err)
		return "", ErrPaymentCreateFailed
	}
	if res.Result != 0 {
		log.Printf("[payment][usecase] charge refused cart_id=%s order_number=%s result=%d errors=%v", cart.ID, orderNumber, res.Result, res.Errors)
		return "", ErrPaymentCreateFailed
	}

	log.Printf("[payment][usecase] create success cart_id=%s order_number=%s", cart.ID, orderNumber)
	return u.gateway.PaymentURL(res.Token), nil
}

// GenerateOrderNumber builds [prefix_]YYYYMMDDHHMMSS_cartID. The
// timestamp has second resolution, so a double submit of the same cart
// within one second produces the same number; the ledger upsert
// overwrites in place, so both converge on a single mapping.
func GenerateOrderNumber(cartID, prefix string, now time.Time) string {
	stamp := now.Format("20060102150405")
	if prefix != "" {
		return prefix + "_" + stamp + "_" + cartID
	}
	return stamp + "_" + cartID
}

// BuildProducts maps the cart to charge line items: products as type
// 1, shipping as type 2 when nonzero, the total discount as a negative
// type 4 line. The discount tax rate is derived from the unrounded
// pretax subtotal so per-voucher rounding does not compound.
//
// If the line totals do not reconcile with the rounded cart total the
// items are withheld (nil) unless forced mode is set: sending
// inconsistent lines to the gateway is worse than sending none.
func (u *PaymentInitiatorUseCase) BuildProducts(cart entities.Cart) []entities.Product {
	var products []entities.Product
	var lineTotal int64

	for _, line := range cart.Lines {
		price := minorUnits(line.PriceWithTax)
		products = append(products, entities.Product{
			ID:          line.Reference,
			Title:       line.Name,
			Count:       line.Quantity,
			PretaxPrice: minorUnits(line.PretaxPrice),
			Tax:         formatTaxRate(line.TaxRate),
			Price:       price,
			Type:        entities.ProductTypeItem,
		})
		lineTotal += price * line.Quantity
	}

	if shippingCost := minorUnits(cart.Shipping.Cost); shippingCost > 0 {
		products = append(products, entities.Product{
			ID:          cart.Shipping.CarrierReference,
			Title:       cart.Shipping.CarrierName,
			Count:       1,
			PretaxPrice: minorUnits(cart.Shipping.PretaxCost),
			Tax:         formatTaxRate(cart.Shipping.TaxRate),
			Price:       shippingCost,
			Type:        entities.ProductTypeShipping,
		})
		lineTotal += shippingCost
	}

	if discount := minorUnits(cart.Discount.Total); discount > 0 {
		rate := 0.0
		if cart.Discount.PretaxTotalRaw > 0 {
			rate = (cart.Discount.Total - cart.Discount.PretaxTotalRaw) / cart.Discount.PretaxTotalRaw * 100
		}
		products = append(products, entities.Product{
			ID:          "1",
			Title:       "Total discounts",
			Count:       1,
			PretaxPrice: -minorUnits(cart.Discount.PretaxTotal),
			Tax:         formatTaxRate(rate),
			Price:       -discount,
			Type:        entities.ProductTypeDiscount,
		})
		lineTotal -= discount
	}

	if lineTotal != minorUnits(cart.Total) && u.opts.SendItems != config.SendItemsForced {
		log.Printf("[payment][usecase] line items withheld cart_id=%s line_total=%d cart_total=%d", cart.ID, lineTotal, minorUnits(cart.Total))
		return nil
	}

	return products
}

func (u *PaymentInitiatorUseCase) buildPaymentMethod(cart entities.Cart, selectedMethod string) (entities.PaymentMethod, error) {
	var selected []string
	if selectedMethod != "" {
		selected = []string{selectedMethod}
	} else {
		selected = u.opts.EnabledMethods
	}
	if len(selected) == 0 {
		log.Printf("[payment][usecase] no payment methods cart_id=%s", cart.ID)
		return entities.PaymentMethod{}, ErrNoPaymentMethods
	}

	lang := strings.ToLower(cart.Language)
	if !supportedLanguages[lang] {
		lang = "en"
	}

	returnURL := fmt.Sprintf("%s?id_cart=%s&key=%s", u.opts.ReturnURL, cart.ID, cart.SecureKey)

	return entities.PaymentMethod{
		Type:      "e-payment",
		ReturnURL: returnURL,
		NotifyURL: returnURL,
		Lang:      lang,
		Selected:  selected,
	}, nil
}

func buildCustomer(cart entities.Cart) entities.Customer {
	return entities.Customer{
		FirstName:              cart.Invoice.FirstName,
		LastName:               cart.Invoice.LastName,
		Email:                  cart.Email,
		AddressStreet:          joinStreet(cart.Invoice),
		AddressCity:            cart.Invoice.City,
		AddressZip:             cart.Invoice.Zip,
		AddressCountry:         cart.Invoice.Country,
		ShippingFirstName:      cart.Delivery.FirstName,
		ShippingLastName:       cart.Delivery.LastName,
		ShippingEmail:          cart.Email,
		ShippingAddressStreet:  joinStreet(cart.Delivery),
		ShippingAddressCity:    cart.Delivery.City,
		ShippingAddressZip:     cart.Delivery.Zip,
		ShippingAddressCountry: cart.Delivery.Country,
		Phone:                  phoneSanitizer.ReplaceAllString(cart.Invoice.Phone, ""),
	}
}

func joinStreet(a entities.Address) string {
	return strings.TrimSpace(a.Street + " " + a.Street2)
}

// minorUnits converts a two-decimal major-unit value to integer minor
// units, rounding halves away from zero.
func minorUnits(v float64) int64 {
	return int64(math.Round(v * 100))
}

func formatTaxRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 2, 64)
}
