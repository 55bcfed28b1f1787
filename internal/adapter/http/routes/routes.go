package routes

import (
	"log"
	"os"
	"strconv"

	_ "furnicraft/docs" // This will be auto-generated
	"furnicraft/internal/adapter/http/handlers"
	repository2 "furnicraft/internal/adapter/persistence/repository"
	"furnicraft/internal/infrastructure/database"
	"furnicraft/internal/infrastructure/payments"
	"furnicraft/internal/usecase"
	"furnicraft/internal/usecase/interfaces"

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
	ddb := database.ConnectDynamoDB()

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	fabricRepo := repository2.NewFabricDynamoRepository(ddb)
	draftRepo := repository2.NewDraftOrderDynamoRepository(ddb)
	orderRepo := repository2.NewSaleOrderDynamoRepository(ddb)
	jobCardRepo := repository2.NewJobCardDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(catalogRepo, fabricRepo)
	draftUseCase := usecase.NewDraftOrderUseCase(quoteUseCase, draftRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(
		quoteUseCase,
		draftRepo,
		orderRepo,
		jobCardRepo,
		paymentGateway,
		advancePercentFromEnv(),
	)
	productionUseCase := usecase.NewProductionUseCase(orderRepo, jobCardRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	draftHandler := handlers.NewDraftHandler(draftUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	orderHandler := handlers.NewOrderHandler(productionUseCase)
	jobCardHandler := handlers.NewJobCardHandler(productionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, quoteHandler, draftHandler, checkoutHandler)
	addProductionRoutes(v1, orderHandler, jobCardHandler)
}

// advancePercentFromEnv reads CHECKOUT_ADVANCE_PERCENT; the use case
// falls back to its default for zero or out-of-range values.
func advancePercentFromEnv() int {
	v := os.Getenv("CHECKOUT_ADVANCE_PERCENT")
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid CHECKOUT_ADVANCE_PERCENT=%q, using default", v)
		return 0
	}
	return n
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
