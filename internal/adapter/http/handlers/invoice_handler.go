package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	response "hospital_billing/internal/adapter/http/dto/response"
	"hospital_billing/internal/domain/billing"
	"hospital_billing/internal/usecase"
	"hospital_billing/pkg"
)

// InvoiceHandler serves the invoice detail of one billing record.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// GetInvoice godoc
// @Summary      Invoice detail
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id := c.Param("id")
	inv, err := h.usecase.GetInvoice(c.Request.Context(), id)
	if err != nil {
		log.Printf("[invoice][handler] get failed record_id=%s err=%v", id, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv, h.usecase.Hospital(), billing.LineTotals(inv.Items)))
}

// PrintInvoice godoc
// @Summary      Printable invoice
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  string  true  "Record ID"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id}/print [get]
func (h *InvoiceHandler) PrintInvoice(c *gin.Context) {
	id := c.Param("id")
	data, inv, err := h.usecase.PrintInvoice(c.Request.Context(), id)
	if err != nil {
		log.Printf("[invoice][handler] print failed record_id=%s err=%v", id, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] print success record_id=%s invoice=%s bytes=%d", id, inv.InvoiceNo, len(data))
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s.pdf"`, inv.InvoiceNo))
	c.Data(http.StatusOK, "application/pdf", data)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
