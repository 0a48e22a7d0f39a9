package request

import "vismapay_checkout/internal/domain/entities"

// PaymentCreateRequest is the cart snapshot the shop posts when the
// customer chooses to pay with Visma Pay. Amounts are major units with
// two decimals, exactly as the shop displays them.

type PaymentCreateRequest struct {
	SecureKey      string  `json:"secure_key" binding:"required"`
	Currency       string  `json:"currency" binding:"required"`
	Language       string  `json:"language"`
	Email          string  `json:"email"`
	Total          float64 `json:"total" binding:"required"`
	SelectedMethod string  `json:"selected_method"`

	Lines    []CartLineRequest   `json:"lines"`
	Shipping CartShippingRequest `json:"shipping"`
	Discount CartDiscountRequest `json:"discount"`
	Invoice  AddressRequest      `json:"invoice"`
	Delivery AddressRequest      `json:"delivery"`
}

type CartLineRequest struct {
	Reference    string  `json:"reference"`
	Name         string  `json:"name"`
	Quantity     int64   `json:"quantity"`
	PretaxPrice  float64 `json:"pretax_price"`
	PriceWithTax float64 `json:"price_with_tax"`
	TaxRate      float64 `json:"tax_rate"`
}

type CartShippingRequest struct {
	CarrierReference string  `json:"carrier_reference"`
	CarrierName      string  `json:"carrier_name"`
	Cost             float64 `json:"cost"`
	PretaxCost       float64 `json:"pretax_cost"`
	TaxRate          float64 `json:"tax_rate"`
}

type CartDiscountRequest struct {
	Total          float64 `json:"total"`
	PretaxTotal    float64 `json:"pretax_total"`
	PretaxTotalRaw float64 `json:"pretax_total_raw"`
}

type AddressRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Street    string `json:"street"`
	Street2   string `json:"street2"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// ToCart converts the request into the domain cart snapshot.
func (r PaymentCreateRequest) ToCart(cartID string) entities.Cart {
	lines := make([]entities.CartLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, entities.CartLine{
			Reference:    l.Reference,
			Name:         l.Name,
			Quantity:     l.Quantity,
			PretaxPrice:  l.PretaxPrice,
			PriceWithTax: l.PriceWithTax,
			TaxRate:      l.TaxRate,
		})
	}
	return entities.Cart{
		ID:        cartID,
		SecureKey: r.SecureKey,
		Currency:  r.Currency,
		Language:  r.Language,
		Email:     r.Email,
		Total:     r.Total,
		Lines:     lines,
		Shipping: entities.CartShipping{
			CarrierReference: r.Shipping.CarrierReference,
			CarrierName:      r.Shipping.CarrierName,
			Cost:             r.Shipping.Cost,
			PretaxCost:       r.Shipping.PretaxCost,
			TaxRate:          r.Shipping.TaxRate,
		},
		Discount: entities.CartDiscount{
			Total:          r.Discount.Total,
			PretaxTotal:    r.Discount.PretaxTotal,
			PretaxTotalRaw: r.Discount.PretaxTotalRaw,
		},
		Invoice:  r.Invoice.toAddress(),
		Delivery: r.Delivery.toAddress(),
	}
}

func (a AddressRequest) toAddress() entities.Address {
	return entities.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Street:    a.Street,
		Street2:   a.Street2,
		City:      a.City,
		Zip:       a.Zip,
		Country:   a.Country,
		Phone:     a.Phone,
	}
}
