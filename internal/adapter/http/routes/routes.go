package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "vismapay_checkout/docs" // This will be auto-generated
	"vismapay_checkout/internal/adapter/http/handlers"
	repository2 "vismapay_checkout/internal/adapter/persistence/repository"
	"vismapay_checkout/internal/infrastructure/config"
	"vismapay_checkout/internal/infrastructure/database"
	"vismapay_checkout/internal/infrastructure/vismapay"
	"vismapay_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	cfg := config.FromEnv()
	ddb := database.ConnectDynamoDB()

	ledgerRepo := repository2.NewOrderLedgerDynamoRepository(ddb)
	orderRepo := repository2.NewCheckoutOrderDynamoRepository(ddb)

	gateway, err := vismapay.NewClient(cfg.APIKey, cfg.PrivateKey, cfg.APIURL, cfg.APIVersion, isGatewayMockEnabled())
	if err != nil {
		log.Fatalf("Visma Pay gateway not configured: %v", err)
	}

	initiator := usecase.NewPaymentInitiatorUseCase(ledgerRepo, gateway, usecase.InitiatorOptions{
		OrderPrefix:      cfg.OrderPrefix,
		SendItems:        cfg.SendItems,
		SendConfirmation: cfg.SendConfirmation,
		EnabledMethods:   cfg.EnabledMethods,
		ReturnURL:        cfg.ReturnURL,
	})
	verifier := usecase.NewReturnVerifierUseCase(ledgerRepo, orderRepo, gateway)
	settlement := usecase.NewSettlementUseCase(ledgerRepo, orderRepo, gateway)
	messages := usecase.NewOrderMessageUseCase(ledgerRepo)

	paymentHandler := handlers.NewPaymentHandler(initiator, verifier, settlement, messages, cfg.ShopBaseURL)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func isGatewayMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("VP_GATEWAY_MOCK"))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
