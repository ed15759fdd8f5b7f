package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"hospital_billing/internal/adapter/http/handlers/mocks"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func postJSON(r http.Handler, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInvoicePaymentHandler_PayDue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	newRouter := func(h *InvoicePaymentHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.PayDue)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		r := newRouter(NewInvoicePaymentHandler(uc))

		if w := postJSON(r, "/v1/invoices/P002/payments", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		r := newRouter(NewInvoicePaymentHandler(uc))

		uc.EXPECT().PayDue(gomock.Any(), "P002", json.RawMessage("{}")).Return(entities.InvoicePayment{ID: "pay-1", Status: entities.PaymentStatusApproved}, nil)

		if w := postJSON(r, "/v1/invoices/P002/payments", "{"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"nothing due", usecase.ErrNothingDue, http.StatusConflict},
		{"not found", usecase.ErrRecordNotFound, http.StatusNotFound},
		{"invalid mp payload", usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{"provider unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{"provider amount", usecase.ErrInvalidProviderAmount, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run("maps "+tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
			r := newRouter(NewInvoicePaymentHandler(uc))

			uc.EXPECT().PayDue(gomock.Any(), "P002", gomock.Any()).Return(entities.InvoicePayment{}, tt.err)

			if w := postJSON(r, "/v1/invoices/P002/payments", `{"payment_method_id":"pix"}`); w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
		})
	}

	t.Run("success unwraps mp_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		r := newRouter(NewInvoicePaymentHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().PayDue(gomock.Any(), "P002", json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.InvoicePayment{ID: "pay-1", RecordID: "P002", Amount: decimal.NewFromInt(500), Date: now, Status: entities.PaymentStatusApproved}, nil)

		w := postJSON(r, "/v1/invoices/P002/payments", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != "500.00" || body["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoicePaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InvoicePaymentHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/invoices/:id/payments", h.ListPayments)
		return r
	}

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		r := newRouter(NewInvoicePaymentHandler(uc))

		uc.EXPECT().ListByRecordID(gomock.Any(), "P002").Return(nil, usecase.ErrInvalidRecordID)

		if w := serve(r, http.MethodGet, "/v1/invoices/P002/payments"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		r := newRouter(NewInvoicePaymentHandler(uc))

		uc.EXPECT().ListByRecordID(gomock.Any(), "P002").Return(nil, nil)

		w := serve(r, http.MethodGet, "/v1/invoices/P002/payments")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with [], got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		r := newRouter(NewInvoicePaymentHandler(uc))

		uc.EXPECT().ListByRecordID(gomock.Any(), "P002").Return([]entities.InvoicePayment{{ID: "a"}, {ID: "b"}}, nil)

		w := serve(r, http.MethodGet, "/v1/invoices/P002/payments")
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 || body[1]["payment_id"] != "b" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readMPPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected bare payload passthrough, got payload=%s err=%v", string(payload), err)
	}
}
