package controllers

import (
	"RadiologyCenter/handlers"
	"RadiologyCenter/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupAccountingRoutes registers the reporting and payment endpoints,
// restricted to Accountants and Administrators.
func SetupAccountingRoutes(router *gin.Engine, accountingHandler *handlers.AccountingHandler) {
	accounting := router.Group("/api/accounting")
	accounting.Use(middlewares.TokenAuthMiddleware())
	accounting.Use(middlewares.RoleAuthMiddleware("Accountant", "Administrator"))
	{
		accounting.GET("/reports", accountingHandler.GetRevenueReport)
		accounting.GET("/payments", accountingHandler.GetAllPayments)
		accounting.GET("/payments/all", accountingHandler.GetAllPayments)
		accounting.GET("/payments/:id", accountingHandler.GetPaymentByID)
		accounting.GET("/payments/appointment/:id", accountingHandler.GetPaymentByAppointmentID)
		accounting.POST("/payments", accountingHandler.CreatePayment)
		accounting.PUT("/payments/:id", accountingHandler.UpdatePayment)
		accounting.DELETE("/payments/:id", accountingHandler.DeletePayment)
	}
}
