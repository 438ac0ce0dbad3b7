package routes

import (
	"logistics_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathShipments         = "/shipments"
	PathLogisticsExpenses = "/logistics-expenses"
)

func addLogisticsRoutes(rg *gin.RouterGroup, shipmentHandler *handlers.ShipmentHandler, expenseHandler *handlers.LogisticsExpenseHandler) {
	shipments := rg.Group(PathShipments)
	{
		shipments.GET("", shipmentHandler.ListShipments)
		shipments.GET("/analytics", shipmentHandler.GetShipmentAnalytics)
		shipments.GET("/:id", shipmentHandler.GetShipment)
		shipments.POST("", shipmentHandler.CreateShipment)
		shipments.PUT("/:id", shipmentHandler.UpdateShipment)
		shipments.PUT("/:id/status", shipmentHandler.UpdateShipmentStatus)
		shipments.DELETE("/:id", shipmentHandler.DeleteShipment)
	}

	expenses := rg.Group(PathLogisticsExpenses)
	{
		expenses.GET("", expenseHandler.ListLogisticsExpenses)
		expenses.GET("/route/:route", expenseHandler.ListLogisticsExpensesByRoute)
		expenses.GET("/:id", expenseHandler.GetLogisticsExpense)
		expenses.POST("", expenseHandler.CreateLogisticsExpense)
		expenses.PUT("/:id", expenseHandler.UpdateLogisticsExpense)
		expenses.PUT("/:id/status", expenseHandler.UpdateLogisticsExpenseStatus)
		expenses.DELETE("/:id", expenseHandler.DeleteLogisticsExpense)
	}
}
