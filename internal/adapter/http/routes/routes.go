package routes

import (
	"log"
	"os"

	_ "repairdesk/docs" // swagger registration
	"repairdesk/internal/adapter/http/handlers"
	"repairdesk/internal/adapter/persistence/repository"
	"repairdesk/internal/infrastructure/database"
	"repairdesk/internal/infrastructure/payments"
	"repairdesk/internal/usecase"
	"repairdesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	deviceRepo := repository.NewDeviceDynamoRepository(ddb)
	itemRepo := repository.NewRepairItemDynamoRepository(ddb)
	transactionRepo := repository.NewTransactionDynamoRepository(ddb)
	warrantyRepo := repository.NewWarrantyDynamoRepository(ddb)
	auditLogRepo := repository.NewAuditLogDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("payment gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	authUseCase := usecase.NewAuthUseCase(userRepo)
	deviceUseCase := usecase.NewDeviceUseCase(deviceRepo, auditLogRepo)
	itemUseCase := usecase.NewRepairItemUseCase(itemRepo, deviceRepo)
	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo, deviceRepo, paymentGateway)
	warrantyUseCase := usecase.NewWarrantyUseCase(warrantyRepo, deviceRepo, itemRepo)
	orderUseCase := usecase.NewRepairOrderUseCase(deviceRepo, itemRepo, transactionRepo, warrantyRepo)

	authHandler := handlers.NewAuthHandler(authUseCase)
	deviceHandler := handlers.NewDeviceHandler(deviceUseCase)
	itemHandler := handlers.NewRepairItemHandler(itemUseCase)
	transactionHandler := handlers.NewTransactionHandler(transactionUseCase)
	warrantyHandler := handlers.NewWarrantyHandler(warrantyUseCase)
	orderHandler := handlers.NewRepairOrderHandler(orderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authUseCase, authHandler)
	addRepairRoutes(v1, authUseCase, deviceHandler, itemHandler, transactionHandler, warrantyHandler, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
