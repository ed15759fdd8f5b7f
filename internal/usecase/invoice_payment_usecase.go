package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hospital_billing/internal/config"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
	"hospital_billing/internal/observability/metrics"
	"hospital_billing/internal/usecase/interfaces"
)

var (
	ErrNothingDue                     = errors.New("invoice has no outstanding due")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInvalidProviderAmount          = errors.New("payment provider returned an invalid amount")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IInvoicePaymentUseCase settles the outstanding due of an invoice.
//
// An approved payment marks the record Paid with zero due; denied and
// pending payments are stored but leave the record untouched.

type IInvoicePaymentUseCase interface {
	PayDue(ctx context.Context, recordID string, mpPayload json.RawMessage) (entities.InvoicePayment, error)
	ListByRecordID(ctx context.Context, recordID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo       interfaces.IInvoicePaymentRepository
	recordRepo interfaces.IRecordRepository
	gateway    interfaces.IPaymentGateway
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoicePaymentRepository, recordRepo interfaces.IRecordRepository, gateway interfaces.IPaymentGateway) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{repo: repo, recordRepo: recordRepo, gateway: gateway}
}

func (u *InvoicePaymentUseCase) PayDue(ctx context.Context, recordID string, mpPayload json.RawMessage) (entities.InvoicePayment, error) {
	log.Printf("[payment][usecase] pay-due start raw_record_id=%q payload_len=%d", recordID, len(mpPayload))
	mockMode := config.IsPaymentGatewayMockEnabled()
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		log.Printf("[payment][usecase] invalid record_id (empty)")
		return entities.InvoicePayment{}, ErrInvalidRecordID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload record_id=%s", recordID)
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Printf("[payment][usecase] gateway not configured record_id=%s", recordID)
		return entities.InvoicePayment{}, errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		return entities.InvoicePayment{}, errors.New("payment repository not configured")
	}

	rec, err := loadRecord(ctx, u.recordRepo, recordID)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if rec.Paid() || !rec.InvoiceDue.IsPositive() {
		log.Printf("[payment][usecase] nothing due record_id=%s status=%s due=%s", recordID, rec.Status, rec.InvoiceDue.StringFixed(2))
		return entities.InvoicePayment{}, ErrNothingDue
	}
	due := format.RoundCents(rec.InvoiceDue)
	log.Printf("[payment][usecase] record loaded record_id=%s invoice=%s due=%s", recordID, rec.InvoiceNumber, due.StringFixed(2))

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			log.Printf("[payment][usecase] payload is not an object record_id=%s", recordID)
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Printf("[payment][usecase] missing payment_method_id record_id=%s", recordID)
		return entities.InvoicePayment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		normalizeSandboxPayerFromUserID(reqMap)
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer record_id=%s", recordID)
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = rec.InvoiceNumber
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", rec.InvoiceNumber)
	}
	// The stored due is the source of truth for the amount.
	reqMap["transaction_amount"] = due.InexactFloat64()
	mpPayload, err = json.Marshal(reqMap)
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway record_id=%s", recordID)
		providerPaymentID, providerStatus, providerResp, err = mockGatewayResponse(reqMap)
		if err != nil {
			return entities.InvoicePayment{}, err
		}
	} else {
		log.Printf("[payment][usecase] calling payment gateway record_id=%s", recordID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed record_id=%s err=%v", recordID, err)
			metrics.IncPayment(metrics.ResultError)
			return entities.InvoicePayment{}, mapGatewayError(err)
		}
	}
	log.Printf("[payment][usecase] payment gateway success record_id=%s provider_payment_id=%s provider_status=%s", recordID, providerPaymentID, providerStatus)

	amount, err := providerAmount(providerResp, due)
	if err != nil {
		log.Printf("[payment][usecase] provider amount rejected record_id=%s err=%v", recordID, err)
		metrics.IncPayment(metrics.ResultError)
		return entities.InvoicePayment{}, err
	}

	status := paymentStatusFromProvider(providerStatus)
	if status == entities.PaymentStatusApproved && amount.LessThan(due) {
		log.Printf("[payment][usecase] approved amount below due record_id=%s amount=%s due=%s", recordID, amount.StringFixed(2), due.StringFixed(2))
		metrics.IncPayment(metrics.ResultError)
		return entities.InvoicePayment{}, fmt.Errorf("%w: approved %s below due %s", ErrInvalidProviderAmount, amount.StringFixed(2), due.StringFixed(2))
	}

	p := entities.InvoicePayment{
		ID:                 uuid.NewString(),
		RecordID:           rec.ID,
		InvoiceNumber:      rec.InvoiceNumber,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPaymentID:  providerPaymentID,
		ProviderStatus:     providerStatus,
		ProviderPayloadRaw: providerResp,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed record_id=%s payment_id=%s err=%v", recordID, p.ID, err)
		metrics.IncPayment(metrics.ResultError)
		return entities.InvoicePayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.recordRepo.MarkPaid(ctx, rec.ID); err != nil {
			log.Printf("[payment][usecase] mark paid failed record_id=%s payment_id=%s err=%v", recordID, created.ID, err)
			metrics.IncPayment(metrics.ResultError)
			return entities.InvoicePayment{}, err
		}
	}
	metrics.IncPayment(string(created.Status))
	log.Printf("[payment][usecase] pay-due success record_id=%s payment_id=%s status=%s amount=%s", recordID, created.ID, created.Status, created.Amount.StringFixed(2))
	return created, nil
}

func (u *InvoicePaymentUseCase) ListByRecordID(ctx context.Context, recordID string) ([]entities.InvoicePayment, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return nil, ErrInvalidRecordID
	}
	if u.repo == nil {
		return nil, errors.New("payment repository not configured")
	}
	return u.repo.ListByRecordID(ctx, recordID)
}

func mockGatewayResponse(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

// providerAmount reads transaction_amount from the provider response. A
// missing field falls back to the requested due.
func providerAmount(resp json.RawMessage, fallback decimal.Decimal) (decimal.Decimal, error) {
	var body map[string]any
	if len(resp) == 0 || json.Unmarshal(resp, &body) != nil {
		return fallback, nil
	}
	var f float64
	switch v := body["transaction_amount"].(type) {
	case nil:
		return fallback, nil
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidProviderAmount, v)
		}
		f = parsed
	default:
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidProviderAmount, v)
	}
	amount, err := format.AmountFromFloat(f)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidProviderAmount, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative", ErrInvalidProviderAmount)
	}
	return amount, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; fill email only when
	// both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}
	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != configuredUserID {
		return
	}
	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
