package routes

import (
	"github.com/gin-gonic/gin"

	"hospital_billing/internal/adapter/http/handlers"
)

const (
	PathInvoices = "/invoices"
)

func addInvoiceRoutes(
	rg *gin.RouterGroup,
	reportHandler *handlers.ReportHandler,
	invoiceHandler *handlers.InvoiceHandler,
	exportHandler *handlers.ExportHandler,
	paymentHandler *handlers.InvoicePaymentHandler,
) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", reportHandler.ListInvoices)
		invoices.GET("/totals", reportHandler.GetTotals)
		invoices.GET("/overview", reportHandler.GetOverview)
		invoices.GET("/export/:format", exportHandler.ExportInvoices)

		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.GET("/:id/print", invoiceHandler.PrintInvoice)

		invoices.POST("/:id/payments", paymentHandler.PayDue)
		invoices.GET("/:id/payments", paymentHandler.ListPayments)
	}
}
