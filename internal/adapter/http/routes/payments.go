package routes

import (
	"vismapay_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		// The gateway calls the return endpoint with GET for the
		// customer return and POST for the server-to-server notify.
		payments.GET("/return", paymentHandler.HandleReturn)
		payments.POST("/return", paymentHandler.HandleReturn)

		payments.POST("/:cart_id", paymentHandler.CreatePayment)
		payments.POST("/:cart_id/settle", paymentHandler.SettlePayment)
		payments.GET("/:cart_id/messages", paymentHandler.ListOrderMessages)
	}
}
