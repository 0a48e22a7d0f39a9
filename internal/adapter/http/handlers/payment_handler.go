package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"vismapay_checkout/internal/adapter/http/dto/request"
	response "vismapay_checkout/internal/adapter/http/dto/response"
	"vismapay_checkout/internal/domain/entities"
	"vismapay_checkout/internal/usecase"
	"vismapay_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for Visma Pay payments.

type PaymentHandler struct {
	initiator   usecase.IPaymentInitiatorUseCase
	verifier    usecase.IReturnVerifierUseCase
	settlement  usecase.ISettlementUseCase
	messages    usecase.IOrderMessageUseCase
	shopBaseURL string
}

func NewPaymentHandler(
	initiator usecase.IPaymentInitiatorUseCase,
	verifier usecase.IReturnVerifierUseCase,
	settlement usecase.ISettlementUseCase,
	messages usecase.IOrderMessageUseCase,
	shopBaseURL string,
) *PaymentHandler {
	return &PaymentHandler{
		initiator:   initiator,
		verifier:    verifier,
		settlement:  settlement,
		messages:    messages,
		shopBaseURL: shopBaseURL,
	}
}

// CreatePayment godoc
// @Summary      Create a payment
// @Description  Creates a Visma Pay charge for the cart and returns the URL the customer pays at.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        cart_id  path      string                        true  "Cart ID"
// @Param        cart     body      request.PaymentCreateRequest  true  "Cart snapshot"
// @Success      200      {object}  response.PaymentCreateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments/{cart_id} [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	cartID := c.Param("cart_id")
	log.Printf("[payment][handler] create start cart_id=%s", cartID)

	var req request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid payload cart_id=%s err=%v", cartID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	paymentURL, err := h.initiator.CreatePayment(c.Request.Context(), req.ToCart(cartID), req.SelectedMethod)
	if err != nil {
		log.Printf("[payment][handler] create failed cart_id=%s err=%v", cartID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success cart_id=%s", cartID)

	c.JSON(http.StatusOK, response.PaymentCreateResponse{PaymentURL: paymentURL})
}

// HandleReturn godoc
// @Summary      Handle a payment return or notify callback
// @Description  Validates the gateway callback, finalizes the order once and returns where to send the customer next. The gateway calls this both when the customer returns and server to server.
// @Tags         payments
// @Produce      json
// @Param        id_cart       query     string  true   "Cart ID"
// @Param        key           query     string  false  "Cart secure key"
// @Param        RETURN_CODE   query     string  true   "Gateway return code"
// @Param        ORDER_NUMBER  query     string  true   "Order number"
// @Param        SETTLED       query     string  false  "Settlement flag"
// @Param        AUTHCODE      query     string  false  "Callback authcode"
// @Param        CONTACT_ID    query     string  false  "Contact ID"
// @Param        INCIDENT_ID   query     string  false  "Incident ID"
// @Success      200  {object}  response.ReturnResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments/return [get]
func (h *PaymentHandler) HandleReturn(c *gin.Context) {
	cartID := callbackParam(c, "id_cart")
	secureKey := callbackParam(c, "key")
	payload := entities.CallbackPayload{
		ReturnCode:  callbackParam(c, "RETURN_CODE"),
		OrderNumber: callbackParam(c, "ORDER_NUMBER"),
		Settled:     callbackParam(c, "SETTLED"),
		Authcode:    callbackParam(c, "AUTHCODE"),
		ContactID:   callbackParam(c, "CONTACT_ID"),
		IncidentID:  callbackParam(c, "INCIDENT_ID"),
	}

	outcome, err := h.verifier.HandleReturn(c.Request.Context(), cartID, secureKey, payload)
	if err != nil {
		log.Printf("[payment][handler] return failed cart_id=%s err=%v", cartID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] return handled cart_id=%s state=%s", cartID, outcome.State)

	c.JSON(http.StatusOK, response.FromReturnOutcome(outcome, h.redirectURL(outcome.State, cartID, secureKey)))
}

// SettlePayment godoc
// @Summary      Settle an authorized payment
// @Description  Requests capture of a previously authorized payment. Admin-facing; the message explains the gateway's decision.
// @Tags         payments
// @Produce      json
// @Param        cart_id  path      string  true  "Cart ID"
// @Success      200      {object}  response.SettlementResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /payments/{cart_id}/settle [post]
func (h *PaymentHandler) SettlePayment(c *gin.Context) {
	cartID := c.Param("cart_id")
	log.Printf("[payment][handler] settle start cart_id=%s", cartID)

	result, err := h.settlement.Settle(c.Request.Context(), cartID)
	if err != nil {
		log.Printf("[payment][handler] settle failed cart_id=%s err=%v", cartID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettlementResult(result))
}

// ListOrderMessages godoc
// @Summary      List reconciliation messages for a cart
// @Tags         payments
// @Produce      json
// @Param        cart_id  path      string  true  "Cart ID"
// @Success      200      {array}   response.OrderMessageResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /payments/{cart_id}/messages [get]
func (h *PaymentHandler) ListOrderMessages(c *gin.Context) {
	cartID := c.Param("cart_id")

	messages, err := h.messages.List(c.Request.Context(), cartID)
	if err != nil {
		log.Printf("[payment][handler] list messages failed cart_id=%s err=%v", cartID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderMessages(messages))
}

// redirectURL points the customer at the confirmation page when the
// payment went through and back to the cart when it did not.
func (h *PaymentHandler) redirectURL(state entities.OrderState, cartID, secureKey string) string {
	q := url.Values{}
	q.Set("id_cart", cartID)
	if secureKey != "" {
		q.Set("key", secureKey)
	}
	switch state {
	case entities.OrderStateAccepted, entities.OrderStateAuthorized:
		return h.shopBaseURL + "/order-confirmation?" + q.Encode()
	default:
		return h.shopBaseURL + "/order?" + q.Encode()
	}
}

// callbackParam reads a callback field from the query string first and
// the POST form second. The gateway uses GET for the customer return
// and POST for the server-to-server notify.
func callbackParam(c *gin.Context, name string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return c.PostForm(name)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCart), errors.Is(err, usecase.ErrInvalidCartID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMalformedCallback):
		return pkg.NewDomainErrorSimple("MALFORMED_CALLBACK", "Malformed payment callback", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoPaymentMethods):
		return pkg.NewDomainErrorSimple("NO_PAYMENT_METHODS", "No payment methods available", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentCreateFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_CREATE_FAILED", "Creating the payment failed, please try again", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSettlementOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
