package entities

// Wire types for the Visma Pay API. Field names and the minor-unit
// amount representation follow the gateway contract exactly; each
// endpoint gets its own result type with explicit fields instead of a
// loosely typed response object.

// Charge is the charge-creation payload.
type Charge struct {
	OrderNumber string `json:"order_number"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email,omitempty"`
	CardToken   string `json:"card_token,omitempty"`
}

// Customer carries billing and shipping contact details for a charge.
type Customer struct {
	FirstName              string `json:"firstname"`
	LastName               string `json:"lastname"`
	Email                  string `json:"email"`
	AddressStreet          string `json:"address_street"`
	AddressCity            string `json:"address_city"`
	AddressZip             string `json:"address_zip"`
	AddressCountry         string `json:"address_country"`
	ShippingFirstName      string `json:"shipping_firstname"`
	ShippingLastName       string `json:"shipping_lastname"`
	ShippingEmail          string `json:"shipping_email"`
	ShippingAddressStreet  string `json:"shipping_address_street"`
	ShippingAddressCity    string `json:"shipping_address_city"`
	ShippingAddressZip     string `json:"shipping_address_zip"`
	ShippingAddressCountry string `json:"shipping_address_country"`
	Phone                  string `json:"phone"`
}

// Product line types on a charge.
const (
	ProductTypeItem     = 1
	ProductTypeShipping = 2
	ProductTypeDiscount = 4
)

// Product is one charge line item. Pretax price and price are minor
// units; tax is a percentage formatted with two decimals. Discount
// lines use negative amounts.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Count       int64  `json:"count"`
	PretaxPrice int64  `json:"pretax_price"`
	Tax         string `json:"tax"`
	Price       int64  `json:"price"`
	Type        int    `json:"type"`
}

// PaymentMethod selects how and where the customer pays.
type PaymentMethod struct {
	Type      string   `json:"type"`
	ReturnURL string   `json:"return_url"`
	NotifyURL string   `json:"notify_url"`
	Lang      string   `json:"lang"`
	Selected  []string `json:"selected"`
}

// ChargeResult is the auth_payment response. Result 0 means the charge
// was created and Token can be exchanged for the payment page URL.
type ChargeResult struct {
	Result int      `json:"result"`
	Token  string   `json:"token"`
	Type   string   `json:"type"`
	Errors []string `json:"errors"`
}

// StatusResult is the check_payment_status response. Settled is the
// gateway's 0/1 flag; Amount is the paid amount in minor units.
type StatusResult struct {
	Result  int           `json:"result"`
	Settled int           `json:"settled"`
	Amount  int64         `json:"amount"`
	Source  PaymentSource `json:"source"`
}

// PaymentSource describes the instrument behind a payment as reported
// by the status endpoint.
type PaymentSource struct {
	Object          string `json:"object"`
	Brand           string `json:"brand"`
	CardVerified    string `json:"card_verified"`
	ErrorCode       string `json:"error_code"`
	CardCountry     string `json:"card_country"`
	ClientIPCountry string `json:"client_ip_country"`
}

// SettleResult is the capture response.
//
// Result values: 0 settled, 1 validation failed, 2 already settled or
// refused, 3 transaction not found, anything else unexpected.
type SettleResult struct {
	Result int `json:"result"`
}

// CancelResult is the cancel (void authorization) response.
type CancelResult struct {
	Result int `json:"result"`
}

// CallbackPayload is the untrusted return/notify request from the
// gateway. All fields arrive as query or form strings; an empty string
// means the parameter was absent. It is validated and consumed
// immediately, never persisted.
type CallbackPayload struct {
	ReturnCode  string
	OrderNumber string
	Settled     string
	Authcode    string
	ContactID   string
	IncidentID  string
}
