package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"vismapay_checkout/internal/domain/entities"
	"vismapay_checkout/internal/usecase/interfaces"
)

var (
	ErrMalformedCallback = errors.New("malformed payment return callback")
)

const portalCheckLine = "Check the status of the payment from Visma Pay merchant portal!"

const amountMismatchNote = "NOTE !! Paid sum does not match order sum, verify order contents from the customer or Visma Pay merchant-portal."

// IReturnVerifierUseCase processes one payment return or notify
// callback and decides the terminal outcome for the cart.
type IReturnVerifierUseCase interface {
	HandleReturn(ctx context.Context, cartID, secureKey string, p entities.CallbackPayload) (entities.ReturnOutcome, error)
}

// ReturnVerifierUseCase validates an inbound callback step by step:
// field presence, authcode, order-number binding, then status
// resolution. Checks short-circuit on the first failure. Exactly one
// order finalization happens per cart regardless of how many times the
// gateway calls back; the checkout order store's uniqueness constraint
// absorbs replays.
type ReturnVerifierUseCase struct {
	ledger  interfaces.IOrderLedger
	orders  interfaces.ICheckoutOrderRepository
	gateway interfaces.IVismaPayGateway
	clock   func() time.Time
}

var _ IReturnVerifierUseCase = (*ReturnVerifierUseCase)(nil)

func NewReturnVerifierUseCase(ledger interfaces.IOrderLedger, orders interfaces.ICheckoutOrderRepository, gateway interfaces.IVismaPayGateway) *ReturnVerifierUseCase {
	return &ReturnVerifierUseCase{ledger: ledger, orders: orders, gateway: gateway, clock: time.Now}
}

func (u *ReturnVerifierUseCase) HandleReturn(ctx context.Context, cartID, secureKey string, p entities.CallbackPayload) (entities.ReturnOutcome, error) {
	if p.ReturnCode == "" || p.OrderNumber == "" || strings.TrimSpace(cartID) == "" {
		return entities.ReturnOutcome{}, ErrMalformedCallback
	}
	returnCode, err := strconv.Atoi(p.ReturnCode)
	if err != nil {
		return entities.ReturnOutcome{}, ErrMalformedCallback
	}
	log.Printf("[payment][return] callback received cart_id=%s order_number=%s return_code=%d", cartID, p.OrderNumber, returnCode)

	record, lookupErr := u.ledger.Lookup(ctx, cartID)
	if lookupErr != nil && !errors.Is(lookupErr, entities.ErrOrderRecordNotFound) {
		return entities.ReturnOutcome{}, lookupErr
	}

	if !u.gateway.VerifyCallback(p) {
		message := "Order number: " + p.OrderNumber + ". Authcode mismatch\n" + portalCheckLine
		log.Printf("[payment][return] authcode mismatch cart_id=%s order_number=%s", cartID, p.OrderNumber)
		return u.finalize(ctx, cartID, secureKey, entities.OrderStateFailed, record.Amount, message)
	}

	if errors.Is(lookupErr, entities.ErrOrderRecordNotFound) || record.OrderNumber != p.OrderNumber {
		message := "Order number: " + p.OrderNumber + ". Order number mismatch\n" + portalCheckLine
		log.Printf("[payment][return] order number mismatch cart_id=%s got=%s want=%s", cartID, p.OrderNumber, record.OrderNumber)
		return u.finalize(ctx, cartID, secureKey, entities.OrderStateFailed, record.Amount, message)
	}

	if returnCode != 0 {
		message := u.failedReturnMessage(ctx, returnCode, p)
		log.Printf("[payment][return] payment failed cart_id=%s order_number=%s return_code=%d", cartID, p.OrderNumber, returnCode)
		return u.finalize(ctx, cartID, secureKey, entities.OrderStateFailed, record.Amount, message)
	}

	settled := parseSettled(p.Settled)
	statusMessage, amountKnown, amountMatches := u.resolveStatus(ctx, record, returnCode, settled)

	state := entities.OrderStateAuthorized
	if settled || (amountKnown && amountMatches) {
		state = entities.OrderStateAccepted
	}
	return u.finalize(ctx, cartID, secureKey, state, record.Amount, statusMessage)
}

// resolveStatus fetches the authoritative payment state from the
// gateway and composes the reconciliation message. A status-check
// failure degrades the message but never the outcome; the settlement
// flag then decides alone.
func (u *ReturnVerifierUseCase) resolveStatus(ctx context.Context, record entities.OrderRecord, returnCode int, settled bool) (message string, amountKnown, amountMatches bool) {
	var b strings.Builder
	b.WriteString("Order number: " + record.OrderNumber + ". ")

	status, err := u.gateway.CheckStatus(ctx, record.OrderNumber)
	if err != nil {
		log.Printf("[payment][return] status check failed order_number=%s err=%v", record.OrderNumber, err)
		return b.String(), false, false
	}

	if status.Source.Object == "card" {
		b.WriteString(cardPaymentMessage(status.Source))
	}
	if status.Source.Brand != "" {
		b.WriteString("Payment method: " + status.Source.Brand + ". ")
	}
	if returnCode == 0 && !settled {
		b.WriteString("Payment authorized.")
	}
	if returnCode == 0 && settled {
		b.WriteString("Payment accepted.")
	}

	amountMatches = status.Amount == record.Amount
	if !amountMatches {
		b.WriteString(" " + amountMismatchNote)
	}
	return b.String(), true, amountMatches
}

// failedReturnMessage maps a non-zero return code to its operator
// message. Return code 0 never reaches this branch.
func (u *ReturnVerifierUseCase) failedReturnMessage(ctx context.Context, returnCode int, p entities.CallbackPayload) string {
	prefix := "Visma Pay response: payment failed on order: " + p.OrderNumber + ". "

	switch returnCode {
	case 4:
		return prefix + "Transaction status could not be updated after customer returned from the web page of a bank. Please use the merchant UI to resolve the payment status manually."
	case 10:
		return prefix + "Maintenance break. The transaction is not created and the user has been notified and transferred back to the cancel address."
	default:
		var b strings.Builder
		b.WriteString("Visma Pay response: payment failed. Order number: " + p.OrderNumber + ". ")
		status, err := u.gateway.CheckStatus(ctx, p.OrderNumber)
		if err != nil {
			log.Printf("[payment][return] status check failed order_number=%s err=%v", p.OrderNumber, err)
			return b.String()
		}
		if status.Source.Object == "card" {
			b.WriteString(cardPaymentMessage(status.Source))
		}
		if status.Source.Brand != "" {
			b.WriteString("Payment method: " + status.Source.Brand + ". ")
		}
		return b.String()
	}
}

// finalize records the terminal outcome exactly once. The conditional
// create on the checkout order absorbs the second arrival of a racing
// return/notify pair as a no-op; the reconciliation message is
// appended to the ledger only by the caller that actually finalized.
func (u *ReturnVerifierUseCase) finalize(ctx context.Context, cartID, secureKey string, state entities.OrderState, amount int64, message string) (entities.ReturnOutcome, error) {
	outcome := entities.ReturnOutcome{State: state, Message: message}

	has, err := u.orders.HasFinalOrder(ctx, cartID)
	if err != nil {
		return entities.ReturnOutcome{}, err
	}
	if has {
		log.Printf("[payment][return] order already finalized cart_id=%s state=%s", cartID, state)
		return outcome, nil
	}

	err = u.orders.Finalize(ctx, entities.CheckoutOrder{
		CartID:    cartID,
		State:     state,
		Amount:    amount,
		SecureKey: secureKey,
		CreatedAt: u.clock().UTC(),
	})
	if errors.Is(err, entities.ErrOrderAlreadyFinalized) {
		log.Printf("[payment][return] duplicate finalization absorbed cart_id=%s state=%s", cartID, state)
		return outcome, nil
	}
	if err != nil {
		return entities.ReturnOutcome{}, err
	}

	if err := u.ledger.AppendMessage(ctx, cartID, message); err != nil {
		log.Printf("[payment][return] appending order message failed cart_id=%s err=%v", cartID, err)
	}
	log.Printf("[payment][return] order finalized cart_id=%s state=%s", cartID, state)
	return outcome, nil
}

func parseSettled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// cardPaymentMessage renders the 3-D Secure flag and acquirer decline
// code of a card payment as operator-readable text.
func cardPaymentMessage(source entities.PaymentSource) string {
	var b strings.Builder

	switch source.CardVerified {
	case "Y":
		b.WriteString("3-D Secure was used. ")
	case "N":
		b.WriteString("3-D Secure was not used. ")
	case "A":
		b.WriteString("3-D Secure was attempted but not supported by the card issuer or the card holder is not participating. ")
	default:
		b.WriteString("3-D Secure: No connection to acquirer. ")
	}

	switch source.ErrorCode {
	case "":
		// No error.
	case "04":
		b.WriteString("The card is reported lost or stolen. ")
	case "05":
		b.WriteString("General decline. The card holder should contact the issuer to find out why the payment failed. ")
	case "51":
		b.WriteString("Insufficient funds. The card holder should verify that there is balance on the account and the online payments are actived. ")
	case "54":
		b.WriteString("Expired card. ")
	case "61":
		b.WriteString("Withdrawal amount limit exceeded. ")
	case "62":
		b.WriteString("Restricted card. The card holder should verify that the online payments are actived. ")
	case "1000":
		b.WriteString("Timeout communicating with the acquirer. The payment should be tried again later. ")
	default:
		b.WriteString("No error for code \"" + source.ErrorCode + "\" ")
	}

	if source.CardCountry != "" {
		b.WriteString("Card ISO 3166-1 country code: " + source.CardCountry + " ")
	}
	if source.ClientIPCountry != "" {
		b.WriteString("Client ISO 3166-1 country code: " + source.ClientIPCountry + " ")
	}

	return b.String()
}
