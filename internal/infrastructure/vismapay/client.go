package vismapay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"vismapay_checkout/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrMissingCredentials = errors.New("missing Visma Pay api key or private key")
	// ErrInvalidResponse means the gateway body was not JSON or lacked
	// the result field. Callers treat it as a gateway failure.
	ErrInvalidResponse = errors.New("response from Visma Pay API is not valid JSON")
)

const pluginInfo = "vismapay_checkout|go|1.0.0"

// Client signs and sends requests to the Visma Pay JSON API and
// verifies callback authcodes.
//
// The authcode construction is the interop-critical part: fields
// joined with "|", HMAC-SHA256 keyed by the private key, uppercase
// hex. Both outbound requests and inbound callbacks use it.
type Client struct {
	apiKey     string
	privateKey string
	version    string
	baseURL    string
	httpClient *http.Client
	mockMode   bool
}

func NewClient(apiKey, privateKey, apiURL, version string, mockMode bool) (*Client, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &Client{privateKey: privateKey, baseURL: strings.TrimRight(apiURL, "/"), mockMode: true}, nil
	}
	if apiKey == "" || privateKey == "" {
		log.Printf("[payment][gateway] missing VP_API_KEY or VP_PRIVATE_KEY")
		return nil, ErrMissingCredentials
	}
	return &Client{
		apiKey:     apiKey,
		privateKey: privateKey,
		version:    version,
		baseURL:    strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Sign joins parts with "|" and returns the HMAC-SHA256 of the result
// keyed by the private key, as uppercase hex.
func (c *Client) Sign(parts ...string) string {
	mac := hmac.New(sha256.New, []byte(c.privateKey))
	mac.Write([]byte(strings.Join(parts, "|")))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

// PaymentURL is the page a customer is redirected to for a created
// charge token.
func (c *Client) PaymentURL(token string) string {
	return c.baseURL + "/token/" + token
}

func (c *Client) request(ctx context.Context, endpoint string, params map[string]any) ([]byte, error) {
	if _, ok := params["version"]; !ok {
		params["version"] = c.version
	}
	params["api_key"] = c.apiKey

	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Result *int `json:"result"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Result == nil {
		return nil, ErrInvalidResponse
	}
	return raw, nil
}

// CreateCharge posts a charge to auth_payment. Result 0 means success
// and the returned token resolves to the payment page via PaymentURL.
// Non-zero results are returned to the caller as-is, never retried.
func (c *Client) CreateCharge(ctx context.Context, charge entities.Charge, customer entities.Customer, products []entities.Product, method entities.PaymentMethod) (entities.ChargeResult, error) {
	if c.mockMode {
		log.Printf("[payment][gateway] mock charge created order_number=%s amount=%d", charge.OrderNumber, charge.Amount)
		return entities.ChargeResult{Result: 0, Token: uuid.NewString()}, nil
	}

	authParts := []string{c.apiKey, charge.OrderNumber}
	if charge.CardToken != "" {
		authParts = append(authParts, charge.CardToken)
	}

	params := map[string]any{
		"order_number": charge.OrderNumber,
		"amount":       charge.Amount,
		"currency":     charge.Currency,
		"authcode":     c.Sign(authParts...),
		"plugin_info":  pluginInfo,
	}
	if charge.Email != "" {
		params["email"] = charge.Email
	}
	if charge.CardToken != "" {
		params["card_token"] = charge.CardToken
	}
	if customer != (entities.Customer{}) {
		params["customer"] = customer
	}
	if len(products) > 0 {
		params["products"] = products
	}
	params["payment_method"] = method

	raw, err := c.request(ctx, "auth_payment", params)
	if err != nil {
		log.Printf("[payment][gateway] charge request failed order_number=%s err=%v", charge.OrderNumber, err)
		return entities.ChargeResult{}, err
	}

	var res entities.ChargeResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return entities.ChargeResult{}, ErrInvalidResponse
	}
	log.Printf("[payment][gateway] charge response order_number=%s result=%d", charge.OrderNumber, res.Result)
	return res, nil
}

// CheckStatus queries check_payment_status for the authoritative
// state of a payment: settlement flag, paid amount and the payment
// source details used in reconciliation messages.
func (c *Client) CheckStatus(ctx context.Context, orderNumber string) (entities.StatusResult, error) {
	if c.mockMode {
		return entities.StatusResult{Result: 0, Settled: 1}, nil
	}

	raw, err := c.request(ctx, "check_payment_status", map[string]any{
		"order_number": orderNumber,
		"authcode":     c.Sign(c.apiKey, orderNumber),
	})
	if err != nil {
		return entities.StatusResult{}, err
	}

	var res entities.StatusResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return entities.StatusResult{}, ErrInvalidResponse
	}
	return res, nil
}

// Settle captures a previously authorized, not yet settled payment.
func (c *Client) Settle(ctx context.Context, orderNumber string) (entities.SettleResult, error) {
	if c.mockMode {
		return entities.SettleResult{Result: 0}, nil
	}

	raw, err := c.request(ctx, "capture", map[string]any{
		"order_number": orderNumber,
		"authcode":     c.Sign(c.apiKey, orderNumber),
	})
	if err != nil {
		return entities.SettleResult{}, err
	}

	var res entities.SettleResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return entities.SettleResult{}, ErrInvalidResponse
	}
	return res, nil
}

// Cancel voids an authorized payment.
func (c *Client) Cancel(ctx context.Context, orderNumber string) (entities.CancelResult, error) {
	if c.mockMode {
		return entities.CancelResult{Result: 0}, nil
	}

	raw, err := c.request(ctx, "cancel", map[string]any{
		"order_number": orderNumber,
		"authcode":     c.Sign(c.apiKey, orderNumber),
	})
	if err != nil {
		return entities.CancelResult{}, err
	}

	var res entities.CancelResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return entities.CancelResult{}, ErrInvalidResponse
	}
	return res, nil
}

// VerifyCallback recomputes the callback MAC and compares it against
// AUTHCODE in constant time. The MAC input is
// RETURN_CODE|ORDER_NUMBER, extended with SETTLED (and CONTACT_ID when
// present) on success returns, or INCIDENT_ID on failure returns.
// A mismatch returns false so the caller can record an order-level
// failure instead of dropping the request.
func (c *Client) VerifyCallback(p entities.CallbackPayload) bool {
	parts := []string{p.ReturnCode, p.OrderNumber}
	if p.ReturnCode == "0" {
		parts = append(parts, p.Settled)
		if p.ContactID != "" {
			parts = append(parts, p.ContactID)
		}
	} else if p.IncidentID != "" {
		parts = append(parts, p.IncidentID)
	}

	expected := c.Sign(parts...)
	given := strings.ToUpper(strings.TrimSpace(p.Authcode))
	if len(given) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(given)) == 1
}

// String implements fmt.Stringer without leaking credentials.
func (c *Client) String() string {
	return fmt.Sprintf("vismapay.Client{baseURL: %s, version: %s}", c.baseURL, c.version)
}
