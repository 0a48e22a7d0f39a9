package config

import (
	"os"
	"strings"
)

// SendItemsMode controls whether charge line items are sent to the
// gateway. Forced mode sends them even when the line-item sum does not
// reconcile with the cart total.
type SendItemsMode string

const (
	SendItemsDisabled SendItemsMode = "disabled"
	SendItemsEnabled  SendItemsMode = "enabled"
	SendItemsForced   SendItemsMode = "forced"
)

// Config holds the gateway credentials and feature toggles, read once
// from the environment and threaded explicitly into the use cases.
//
// The private key is the HMAC secret for all request and callback
// authcodes; it must never appear in logs or messages.
type Config struct {
	APIKey      string
	PrivateKey  string
	APIURL      string
	APIVersion  string
	OrderPrefix string

	SendItems        SendItemsMode
	SendConfirmation bool
	ClearCart        bool

	EnabledMethods []string
	ReturnURL      string
	ShopBaseURL    string
}

func FromEnv() Config {
	return Config{
		APIKey:      os.Getenv("VP_API_KEY"),
		PrivateKey:  os.Getenv("VP_PRIVATE_KEY"),
		APIURL:      getenvDefault("VP_API_URL", "https://www.vismapay.com/pbwapi"),
		APIVersion:  getenvDefault("VP_API_VERSION", "w3.1"),
		OrderPrefix: os.Getenv("VP_ORDER_PREFIX"),

		SendItems:        parseSendItemsMode(os.Getenv("VP_SEND_ITEMS")),
		SendConfirmation: parseBool(os.Getenv("VP_SEND_CONFIRMATION")),
		ClearCart:        parseBool(os.Getenv("VP_CLEAR_CART")),

		EnabledMethods: splitList(os.Getenv("VP_ENABLED_METHODS")),
		ReturnURL:      getenvDefault("VP_RETURN_URL", "http://localhost:8080/v1/payments/return"),
		ShopBaseURL:    getenvDefault("VP_SHOP_BASE_URL", "http://localhost"),
	}
}

func parseSendItemsMode(v string) SendItemsMode {
	switch SendItemsMode(strings.ToLower(strings.TrimSpace(v))) {
	case SendItemsEnabled:
		return SendItemsEnabled
	case SendItemsForced:
		return SendItemsForced
	default:
		return SendItemsDisabled
	}
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
