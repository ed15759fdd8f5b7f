package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"hospital_billing/internal/domain/entities"
	mock_interfaces "hospital_billing/internal/usecase/interfaces/mocks"
)

func unpaidRecord() entities.BillingRecord {
	return entities.BillingRecord{
		ID:            "5",
		InvoiceNumber: "INV-005",
		InvoiceDate:   "22/07/2025",
		PatientName:   "Michael Wilson",
		PatientType:   entities.PatientTypeCash,
		NetBill:       decimal.RequireFromString("1400"),
		InvoiceDue:    decimal.RequireFromString("250.5"),
		Status:        entities.InvoiceStatusUnpaid,
	}
}

func disableMock(t *testing.T) {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
}

func TestInvoicePaymentUseCase_PayDue_Validations(t *testing.T) {
	disableMock(t)

	t.Run("empty record id", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.PayDue(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidRecordID) {
			t.Fatalf("expected ErrInvalidRecordID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.PayDue(context.Background(), "5", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		uc := NewInvoicePaymentUseCase(repo, nil, nil)

		_, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_PayDue_RecordChecks(t *testing.T) {
	disableMock(t)
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("record repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		records := mock_interfaces.NewMockIRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, records, gateway)

		records.EXPECT().GetByID(gomock.Any(), "5").Return(entities.BillingRecord{}, errors.New("db"))

		_, err := uc.PayDue(context.Background(), "5", payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("record not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		records := mock_interfaces.NewMockIRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, records, gateway)

		records.EXPECT().GetByID(gomock.Any(), "5").Return(entities.BillingRecord{}, nil)

		_, err := uc.PayDue(context.Background(), "5", payload)
		if !errors.Is(err, ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		records := mock_interfaces.NewMockIRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, records, gateway)

		rec := unpaidRecord()
		rec.Status = entities.InvoiceStatusPaid
		rec.InvoiceDue = decimal.Zero
		records.EXPECT().GetByID(gomock.Any(), "5").Return(rec, nil)

		_, err := uc.PayDue(context.Background(), "5", payload)
		if !errors.Is(err, ErrNothingDue) {
			t.Fatalf("expected ErrNothingDue, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		records := mock_interfaces.NewMockIRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, records, gateway)

		records.EXPECT().GetByID(gomock.Any(), "5").Return(unpaidRecord(), nil)

		_, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		records := mock_interfaces.NewMockIRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, records, gateway)
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")

		records.EXPECT().GetByID(gomock.Any(), "5").Return(unpaidRecord(), nil)

		_, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_PayDue_GatewayErrorMapping(t *testing.T) {
	disableMock(t)
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
			records := mock_interfaces.NewMockIRecordRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewInvoicePaymentUseCase(repo, records, gateway)

			records.EXPECT().GetByID(gomock.Any(), "5").Return(unpaidRecord(), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		records := mock_interfaces.NewMockIRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, records, gateway)

		records.EXPECT().GetByID(gomock.Any(), "5").Return(unpaidRecord(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_PayDue_SuccessAndStatuses(t *testing.T) {
	disableMock(t)
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		providerResp   json.RawMessage
		markPaid       bool
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{"id":123}`), markPaid: true},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusDenied, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{`), markPaid: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
			records := mock_interfaces.NewMockIRecordRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewInvoicePaymentUseCase(repo, records, gateway)
			t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
			t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
			t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")

			records.EXPECT().GetByID(gomock.Any(), "5").Return(unpaidRecord(), nil)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "INV-005" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "Invoice INV-005" {
						t.Fatalf("description not set")
					}
					if body["transaction_amount"] != float64(250.5) {
						t.Fatalf("transaction_amount should come from the invoice due, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, tc.providerResp, nil
				},
			)

			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InvoicePayment{})).DoAndReturn(
				func(_ context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
					if p.ProviderPaymentID != "pay-1" || p.RecordID != "5" || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.ID == "" || p.Date.IsZero() {
						t.Fatalf("id and date must be set")
					}
					if !p.Amount.Equal(decimal.RequireFromString("250.5")) {
						t.Fatalf("unexpected amount %s", p.Amount)
					}
					return p, nil
				},
			)
			if tc.markPaid {
				records.EXPECT().MarkPaid(gomock.Any(), "5").Return(entities.BillingRecord{ID: "5", Status: entities.InvoiceStatusPaid}, nil)
			}

			res, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"}}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("provider amount is not finite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		records := mock_interfaces.NewMockIRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, records, gateway)

		records.EXPECT().GetByID(gomock.Any(), "5").Return(unpaidRecord(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"transaction_amount":"NaN"}`), nil)

		_, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidProviderAmount) {
			t.Fatalf("expected ErrInvalidProviderAmount, got %v", err)
		}
	})

	t.Run("approved amount below due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		records := mock_interfaces.NewMockIRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, records, gateway)

		records.EXPECT().GetByID(gomock.Any(), "5").Return(unpaidRecord(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"transaction_amount":100}`), nil)
		// no Create or MarkPaid expected

		_, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidProviderAmount) {
			t.Fatalf("expected ErrInvalidProviderAmount, got %v", err)
		}
	})

	t.Run("rejected amount below due is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		records := mock_interfaces.NewMockIRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, records, gateway)

		records.EXPECT().GetByID(gomock.Any(), "5").Return(unpaidRecord(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "rejected", json.RawMessage(`{"transaction_amount":100}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) { return p, nil },
		)

		res, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err != nil || res.Status != entities.PaymentStatusDenied {
			t.Fatalf("expected denied payment, got %+v err=%v", res, err)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		records := mock_interfaces.NewMockIRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, records, gateway)

		records.EXPECT().GetByID(gomock.Any(), "5").Return(unpaidRecord(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InvoicePayment{}, errors.New("db-create"))

		_, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})

	t.Run("mark paid error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		records := mock_interfaces.NewMockIRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, records, gateway)

		records.EXPECT().GetByID(gomock.Any(), "5").Return(unpaidRecord(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) { return p, nil })
		records.EXPECT().MarkPaid(gomock.Any(), "5").Return(entities.BillingRecord{}, errors.New("db-update"))

		_, err := uc.PayDue(context.Background(), "5", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-update" {
			t.Fatalf("expected db-update error, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_PayDue_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
	records := mock_interfaces.NewMockIRecordRepository(ctrl)
	uc := NewInvoicePaymentUseCase(repo, records, nil)

	records.EXPECT().GetByID(gomock.Any(), "5").Return(unpaidRecord(), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) { return p, nil })
	records.EXPECT().MarkPaid(gomock.Any(), "5").Return(entities.BillingRecord{ID: "5"}, nil)

	res, err := uc.PayDue(context.Background(), "5", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.PaymentStatusApproved || res.ProviderStatus != "approved" {
		t.Fatalf("unexpected payment %+v", res)
	}
	var body map[string]any
	if err := json.Unmarshal(res.ProviderPayloadRaw, &body); err != nil {
		t.Fatalf("mock response should be json: %v", err)
	}
	if body["external_reference"] != "INV-005" || body["status_detail"] != "accredited" {
		t.Fatalf("unexpected mock response %v", body)
	}
}

func TestInvoicePaymentUseCase_ListByRecordID(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.ListByRecordID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidRecordID) {
			t.Fatalf("expected ErrInvalidRecordID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		uc := NewInvoicePaymentUseCase(repo, nil, nil)
		expected := []entities.InvoicePayment{{ID: "p1", Date: time.Now()}}
		repo.EXPECT().ListByRecordID(gomock.Any(), "5").Return(expected, nil)

		res, err := uc.ListByRecordID(context.Background(), " 5 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestInvoicePaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasNonEmptyString", func(t *testing.T) {
		if hasNonEmptyString(map[string]any{}, "x") {
			t.Fatalf("expected false")
		}
		if hasNonEmptyString(map[string]any{"x": 1}, "x") {
			t.Fatalf("expected false for non-string")
		}
		if hasNonEmptyString(map[string]any{"x": "   "}, "x") {
			t.Fatalf("expected false for empty string")
		}
		if !hasNonEmptyString(map[string]any{"x": "ok"}, "x") {
			t.Fatalf("expected true")
		}
	})

	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{}) || hasPayer(map[string]any{"payer": "x"}) || hasPayer(map[string]any{"payer": map[string]any{}}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected true with email")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": nil}) || hasPayerID(map[string]any{"id": " "}) {
			t.Fatalf("expected false for nil or blank id")
		}
	})

	t.Run("ensurePayerDefaults", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		m := map[string]any{}
		ensurePayerDefaults(m)
		if m["payer"].(map[string]any)["type"] != "customer" {
			t.Fatalf("expected type customer")
		}

		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "custom@test.com")
		m2 := map[string]any{"payer": map[string]any{}}
		ensurePayerDefaults(m2)
		if m2["payer"].(map[string]any)["email"] != "custom@test.com" {
			t.Fatalf("expected env email fallback")
		}

		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		m3 := map[string]any{"payer": map[string]any{}}
		ensurePayerDefaults(m3)
		if m3["payer"].(map[string]any)["email"] != "test_user_br@testuser.com" {
			t.Fatalf("expected sandbox fallback email")
		}

		ensurePayerDefaults(map[string]any{"payer": "invalid"})
	})

	t.Run("providerAmount", func(t *testing.T) {
		due := decimal.RequireFromString("10")
		cases := []struct {
			name    string
			resp    string
			want    string
			wantErr bool
		}{
			{name: "missing", resp: `{"id":1}`, want: "10"},
			{name: "not json", resp: `{`, want: "10"},
			{name: "number", resp: `{"transaction_amount":9.999}`, want: "10"},
			{name: "string", resp: `{"transaction_amount":"12.345"}`, want: "12.35"},
			{name: "infinite", resp: `{"transaction_amount":"+Inf"}`, wantErr: true},
			{name: "garbage", resp: `{"transaction_amount":"ten"}`, wantErr: true},
			{name: "negative", resp: `{"transaction_amount":-1}`, wantErr: true},
			{name: "wrong type", resp: `{"transaction_amount":true}`, wantErr: true},
		}
		for _, tc := range cases {
			got, err := providerAmount(json.RawMessage(tc.resp), due)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidProviderAmount) {
					t.Fatalf("%s: expected ErrInvalidProviderAmount, got %v", tc.name, err)
				}
				continue
			}
			if err != nil || !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("%s: expected %s, got %s err=%v", tc.name, tc.want, got, err)
			}
		}
	})

	t.Run("paymentStatusFromProvider", func(t *testing.T) {
		cases := map[string]entities.PaymentStatus{
			"approved":   entities.PaymentStatusApproved,
			"AUTHORIZED": entities.PaymentStatusApproved,
			"rejected":   entities.PaymentStatusDenied,
			"cancelled":  entities.PaymentStatusDenied,
			"in_process": entities.PaymentStatusPending,
			"":           entities.PaymentStatusPending,
		}
		for in, want := range cases {
			if got := paymentStatusFromProvider(in); got != want {
				t.Fatalf("%q: expected %s, got %s", in, want, got)
			}
		}
	})
}
