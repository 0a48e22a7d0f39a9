package entities

// Cart is an explicit snapshot of the shop cart a payment is initiated
// for. The caller supplies it in full; nothing is read from ambient
// session state, which keeps initiation deterministic and testable.
//
// Monetary fields are in currency major units with two-decimal
// precision (the shop's native representation); conversion to minor
// units happens at charge-building time.

type Cart struct {
	ID        string       `json:"id"`
	SecureKey string       `json:"secure_key"`
	Currency  string       `json:"currency"`
	Language  string       `json:"language"`
	Email     string       `json:"email"`
	Total     float64      `json:"total"`
	Lines     []CartLine   `json:"lines"`
	Shipping  CartShipping `json:"shipping"`
	Discount  CartDiscount `json:"discount"`
	Invoice   Address      `json:"invoice"`
	Delivery  Address      `json:"delivery"`
}

type CartLine struct {
	Reference    string  `json:"reference"`
	Name         string  `json:"name"`
	Quantity     int64   `json:"quantity"`
	PretaxPrice  float64 `json:"pretax_price"`
	PriceWithTax float64 `json:"price_with_tax"`
	TaxRate      float64 `json:"tax_rate"`
}

type CartShipping struct {
	CarrierReference string  `json:"carrier_reference"`
	CarrierName      string  `json:"carrier_name"`
	Cost             float64 `json:"cost"`
	PretaxCost       float64 `json:"pretax_cost"`
	TaxRate          float64 `json:"tax_rate"`
}

// CartDiscount carries both the rounded discount totals and the
// unrounded pretax subtotal. The raw value is what the embedded tax
// rate of the discount line is derived from, so per-voucher rounding
// does not compound.

type CartDiscount struct {
	Total          float64 `json:"total"`
	PretaxTotal    float64 `json:"pretax_total"`
	PretaxTotalRaw float64 `json:"pretax_total_raw"`
}

type Address struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Street    string `json:"street"`
	Street2   string `json:"street2"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}
