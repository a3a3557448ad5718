package routes

import (
	"repairdesk/internal/adapter/http/handlers"
	"repairdesk/internal/adapter/http/middleware"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth         = "/auth"
	PathUsers        = "/users"
	PathDevices      = "/devices"
	PathRepairItems  = "/repair-items"
	PathTransactions = "/transactions"
)

func addAuthRoutes(rg *gin.RouterGroup, auth usecase.IAuthUseCase, authHandler *handlers.AuthHandler) {
	rg.Group(PathAuth).POST("/login", authHandler.Login)

	users := rg.Group(PathUsers)
	users.Use(middleware.RequireAuth(auth, entities.RoleAdmin))
	users.POST("", authHandler.CreateUser)
}

func addRepairRoutes(
	rg *gin.RouterGroup,
	auth usecase.IAuthUseCase,
	deviceHandler *handlers.DeviceHandler,
	itemHandler *handlers.RepairItemHandler,
	transactionHandler *handlers.TransactionHandler,
	warrantyHandler *handlers.WarrantyHandler,
	orderHandler *handlers.RepairOrderHandler,
) {
	devices := rg.Group(PathDevices)
	devices.Use(middleware.RequireAuth(auth))
	{
		devices.POST("", deviceHandler.RegisterDevice)
		devices.GET("/:id", deviceHandler.GetDevice)
		// Role enforcement for status changes lives in the usecase so the
		// audit guarantee (no entry on forbidden calls) stays in one place.
		devices.PATCH("/:id/status", deviceHandler.ChangeStatus)
		devices.GET("/:id/audit-logs", deviceHandler.ListAuditLogs)

		devices.POST("/:id/repair-items", itemHandler.AddItem)
		devices.GET("/:id/repair-items", itemHandler.ListByDevice)

		devices.POST("/:id/transactions", transactionHandler.CreateTransaction)
		devices.GET("/:id/transactions", transactionHandler.ListByDevice)

		devices.POST("/:id/warranties", warrantyHandler.IssueWarranty)
		devices.GET("/:id/warranties", warrantyHandler.ListByDevice)

		devices.GET("/:id/billing", orderHandler.GetSnapshot)
	}

	items := rg.Group(PathRepairItems)
	items.Use(middleware.RequireAuth(auth))
	items.DELETE("/:id", itemHandler.DeleteItem)

	transactions := rg.Group(PathTransactions)
	transactions.Use(middleware.RequireAuth(auth))
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
}
