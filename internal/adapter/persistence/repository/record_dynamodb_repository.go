package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"
)

type recordItem struct {
	ID            string `dynamodbav:"id"`
	InvoiceNumber string `dynamodbav:"invoice_number"`
	InvoiceDate   string `dynamodbav:"invoice_date"`
	InvoiceDay    string `dynamodbav:"invoice_day,omitempty"`
	PatientName   string `dynamodbav:"patient_name"`
	Doctor        string `dynamodbav:"doctor"`
	PatientType   string `dynamodbav:"patient_type"`
	GrossAmount   string `dynamodbav:"gross_amount"`
	Discount      string `dynamodbav:"discount"`
	PatientShare  string `dynamodbav:"patient_share"`
	TaxAmount     string `dynamodbav:"tax_amount"`
	NetBill       string `dynamodbav:"net_bill"`
	InvoiceDue    string `dynamodbav:"invoice_due"`
	Status        string `dynamodbav:"status"`
	BilledBy      string `dynamodbav:"billed_by"`
	UpdatedAt     string `dynamodbav:"updated_at,omitempty"`
}

// RecordDynamoRepository persists BillingRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// invoice_day holds the yyyy-mm-dd form of invoice_date and is only written
// when the stored date parses. Range reads filter on it, so records with a
// malformed date never enter a bounded range.

type RecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRecordRepository = (*RecordDynamoRepository)(nil)

func NewRecordDynamoRepository(ddb DynamoAPI, tableName string) *RecordDynamoRepository {
	return &RecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RecordDynamoRepository) Create(ctx context.Context, rec entities.BillingRecord) (entities.BillingRecord, error) {
	av, err := attributevalue.MarshalMap(toRecordItem(rec))
	if err != nil {
		return entities.BillingRecord{}, err
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
			return entities.BillingRecord{}, ErrDuplicateRecord
		}
		return entities.BillingRecord{}, err
	}
	return rec, nil
}

func (r *RecordDynamoRepository) FetchAll(ctx context.Context) ([]entities.BillingRecord, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *RecordDynamoRepository) FetchRange(ctx context.Context, from, to time.Time) ([]entities.BillingRecord, error) {
	lo, hi := dayBound(from), dayBound(to)
	in := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ExpressionAttributeNames: map[string]string{"#day": "invoice_day"},
	}
	switch {
	case lo != "" && hi != "":
		in.FilterExpression = aws.String("#day BETWEEN :from AND :to")
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: lo},
			":to":   &types.AttributeValueMemberS{Value: hi},
		}
	case lo != "":
		in.FilterExpression = aws.String("#day >= :from")
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: lo},
		}
	case hi != "":
		in.FilterExpression = aws.String("#day <= :to")
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":to": &types.AttributeValueMemberS{Value: hi},
		}
	default:
		return r.FetchAll(ctx)
	}
	return r.scan(ctx, in)
}

func (r *RecordDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.BillingRecord, error) {
	records := make([]entities.BillingRecord, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it recordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			rec, err := fromRecordItem(it)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

func (r *RecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingRecord{}, nil
	}

	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingRecord{}, err
	}
	return fromRecordItem(it)
}

func (r *RecordDynamoRepository) MarkPaid(ctx context.Context, id string) (entities.BillingRecord, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #due = :due, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
			":due":        &types.AttributeValueMemberS{Value: moneyToString(decimal.Zero)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#due":        "invoice_due",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *RecordDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.BillingRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BillingRecord{}, nil
		}
		return entities.BillingRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BillingRecord{}, nil
	}
	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BillingRecord{}, err
	}
	return fromRecordItem(it)
}

func toRecordItem(rec entities.BillingRecord) recordItem {
	return recordItem{
		ID:            rec.ID,
		InvoiceNumber: rec.InvoiceNumber,
		InvoiceDate:   rec.InvoiceDate,
		InvoiceDay:    invoiceDay(rec.InvoiceDate),
		PatientName:   rec.PatientName,
		Doctor:        rec.Doctor,
		PatientType:   string(rec.PatientType),
		GrossAmount:   moneyToString(rec.GrossAmount),
		Discount:      moneyToString(rec.Discount),
		PatientShare:  moneyToString(rec.PatientShare),
		TaxAmount:     moneyToString(rec.TaxAmount),
		NetBill:       moneyToString(rec.NetBill),
		InvoiceDue:    moneyToString(rec.InvoiceDue),
		Status:        string(rec.Status),
		BilledBy:      rec.BilledBy,
	}
}

func fromRecordItem(it recordItem) (entities.BillingRecord, error) {
	rec := entities.BillingRecord{
		ID:            it.ID,
		InvoiceNumber: it.InvoiceNumber,
		InvoiceDate:   it.InvoiceDate,
		PatientName:   it.PatientName,
		Doctor:        it.Doctor,
		PatientType:   entities.PatientType(it.PatientType),
		Status:        entities.InvoiceStatus(it.Status),
		BilledBy:      it.BilledBy,
	}
	amounts := []struct {
		field string
		raw   string
		dst   *decimal.Decimal
	}{
		{"gross_amount", it.GrossAmount, &rec.GrossAmount},
		{"discount", it.Discount, &rec.Discount},
		{"patient_share", it.PatientShare, &rec.PatientShare},
		{"tax_amount", it.TaxAmount, &rec.TaxAmount},
		{"net_bill", it.NetBill, &rec.NetBill},
		{"invoice_due", it.InvoiceDue, &rec.InvoiceDue},
	}
	for _, a := range amounts {
		d, err := parseMoney(a.field, a.raw)
		if err != nil {
			return entities.BillingRecord{}, fmt.Errorf("record %s: %w", it.ID, err)
		}
		*a.dst = d
	}
	return rec, nil
}
