package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	response "hospital_billing/internal/adapter/http/dto/response"
	"hospital_billing/internal/config"
	"hospital_billing/internal/usecase"
	"hospital_billing/pkg"
)

// InvoicePaymentHandler handles HTTP requests for invoice payments.

type InvoicePaymentHandler struct {
	usecase usecase.IInvoicePaymentUseCase
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc}
}

// PayDue godoc
// @Summary      Settle the outstanding due of an invoice
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path  string                                true   "Record ID"
// @Param        payload  body  request.InvoicePaymentCreateRequest  false  "Mercado Pago payload"
// @Success      200  {object}  response.InvoicePaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoices/{id}/payments [post]
func (h *InvoicePaymentHandler) PayDue(c *gin.Context) {
	recordID := c.Param("id")
	log.Printf("[payment][handler] pay-due start record_id=%s", recordID)
	mockMode := config.IsPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload record_id=%s err=%v", recordID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload record_id=%s err=%v", recordID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.PayDue(c.Request.Context(), recordID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] pay-due failed record_id=%s err=%v", recordID, err)
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pay-due success record_id=%s payment_id=%s status=%s", recordID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromInvoicePayment(created))
}

// ListPayments godoc
// @Summary      Payments of an invoice
// @Tags         payments
// @Produce      json
// @Param        id   path  string  true  "Record ID"
// @Success      200  {array}   response.InvoicePaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /invoices/{id}/payments [get]
func (h *InvoicePaymentHandler) ListPayments(c *gin.Context) {
	recordID := c.Param("id")

	payments, err := h.usecase.ListByRecordID(c.Request.Context(), recordID)
	if err != nil {
		log.Printf("[payment][handler] list failed record_id=%s err=%v", recordID, err)
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] list success record_id=%s count=%d", recordID, len(payments))

	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProviderAmount):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_AMOUNT", "Payment provider returned an invalid amount", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingDue):
		return pkg.NewDomainErrorSimple("NOTHING_DUE", "Invoice has no outstanding due", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
