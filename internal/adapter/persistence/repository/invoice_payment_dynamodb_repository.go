package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"
)

const paymentsRecordIDIndex = "record_id-index"

type invoicePaymentItem struct {
	ID                 string `dynamodbav:"id"`
	RecordID           string `dynamodbav:"record_id"`
	InvoiceNumber      string `dynamodbav:"invoice_number"`
	Amount             string `dynamodbav:"amount"`
	Date               string `dynamodbav:"date"`
	Status             string `dynamodbav:"status"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus     string `dynamodbav:"provider_status,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// InvoicePaymentDynamoRepository persists InvoicePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: record_id-index (PK: record_id)

type InvoicePaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentDynamoRepository)(nil)

func NewInvoicePaymentDynamoRepository(ddb DynamoAPI, tableName string) *InvoicePaymentDynamoRepository {
	return &InvoicePaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InvoicePaymentDynamoRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	av, err := attributevalue.MarshalMap(toInvoicePaymentItem(p))
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InvoicePayment{}, ErrDuplicatePayment
		}
		return entities.InvoicePayment{}, err
	}
	return p, nil
}

func (r *InvoicePaymentDynamoRepository) ListByRecordID(ctx context.Context, recordID string) ([]entities.InvoicePayment, error) {
	items := make([]entities.InvoicePayment, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRecordIDIndex),
		KeyConditionExpression: aws.String("record_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: recordID},
		},
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it invoicePaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			payment, err := fromInvoicePaymentItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, payment)
		}
	}
	return items, nil
}

func toInvoicePaymentItem(p entities.InvoicePayment) invoicePaymentItem {
	return invoicePaymentItem{
		ID:                 p.ID,
		RecordID:           p.RecordID,
		InvoiceNumber:      p.InvoiceNumber,
		Amount:             moneyToString(p.Amount),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderStatus:     p.ProviderStatus,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromInvoicePaymentItem(it invoicePaymentItem) (entities.InvoicePayment, error) {
	amount, err := parseMoney("amount", it.Amount)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	p := entities.InvoicePayment{
		ID:                it.ID,
		RecordID:          it.RecordID,
		InvoiceNumber:     it.InvoiceNumber,
		Amount:            amount,
		Date:              dt,
		Status:            entities.PaymentStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderStatus:    it.ProviderStatus,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p, nil
}
