package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"hospital_billing/internal/adapter/http/handlers/mocks"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase"
)

func newInvoiceRouter(h *InvoiceHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/invoices/:id", h.GetInvoice)
	r.GET("/v1/invoices/:id/print", h.PrintInvoice)
	return r
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		inv := entities.Invoice{
			InvoiceNo: "INV-072096",
			VisitID:   "V000001",
			Items: []entities.InvoiceLineItem{
				{Code: "CONS", GrossAmount: decimal.NewFromInt(1000), NetBill: decimal.NewFromInt(880)},
				{Code: "LAB", GrossAmount: decimal.NewFromInt(1500), NetBill: decimal.NewFromInt(1320)},
			},
		}
		uc.EXPECT().GetInvoice(gomock.Any(), "P001").Return(inv, nil)
		uc.EXPECT().Hospital().Return(entities.HospitalInfo{Name: "A1 Hospital"})

		w := serve(r, http.MethodGet, "/v1/invoices/P001")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Hospital map[string]any   `json:"hospital"`
			Items    []map[string]any `json:"items"`
			Totals   map[string]any   `json:"totals"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Hospital["name"] != "A1 Hospital" || len(body.Items) != 2 || body.Totals["net_bill"] != "2200.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().GetInvoice(gomock.Any(), "nope").Return(entities.Invoice{}, usecase.ErrRecordNotFound)

		if w := serve(r, http.MethodGet, "/v1/invoices/nope"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_PrintInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().PrintInvoice(gomock.Any(), "P001").Return([]byte("%PDF-1.3"), entities.Invoice{InvoiceNo: "INV-072096"}, nil)

		w := serve(r, http.MethodGet, "/v1/invoices/P001/print")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "application/pdf" || w.Header().Get("Content-Disposition") != `inline; filename="INV-072096.pdf"` {
			t.Fatalf("unexpected headers %v", w.Header())
		}
		if w.Body.String() != "%PDF-1.3" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().PrintInvoice(gomock.Any(), "P001").Return(nil, entities.Invoice{}, errors.New("pdf"))

		if w := serve(r, http.MethodGet, "/v1/invoices/P001/print"); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
