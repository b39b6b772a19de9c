package repository

import (
	"context"
	"errors"
	"strconv"

	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultOffersTableName = "settlement_offers"
	offersStatusIndex      = "status-index"
	offersClaimIDIndex     = "claim_id-index"
)

type offerItem struct {
	ID         string `dynamodbav:"id"`
	ClaimID    string `dynamodbav:"claim_id"`
	ClaimType  string `dynamodbav:"claim_type,omitempty"`
	ClientName string `dynamodbav:"client_name,omitempty"`

	AssessedAmount       string `dynamodbav:"assessed_amount"`
	Deductions           string `dynamodbav:"deductions"`
	ServiceFeePercentage string `dynamodbav:"service_fee_percentage"`
	ServiceFee           string `dynamodbav:"service_fee"`
	FinalAmount          string `dynamodbav:"final_amount"`

	PaymentMethod           string `dynamodbav:"payment_method,omitempty"`
	PaymentTimelineDays     int    `dynamodbav:"payment_timeline_days"`
	OfferValidityPeriodDays int    `dynamodbav:"offer_validity_period_days"`
	SpecialConditions       string `dynamodbav:"special_conditions,omitempty"`

	Status    string `dynamodbav:"status"`
	CreatedBy string `dynamodbav:"created_by"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	ExpiresAt string `dynamodbav:"expires_at"`

	SubmittedAt        string `dynamodbav:"submitted_at,omitempty"`
	ApprovedAt         string `dynamodbav:"approved_at,omitempty"`
	ApprovedBy         string `dynamodbav:"approved_by,omitempty"`
	ApprovalNotes      string `dynamodbav:"approval_notes,omitempty"`
	RejectionReason    string `dynamodbav:"rejection_reason,omitempty"`
	CancellationReason string `dynamodbav:"cancellation_reason,omitempty"`

	Documents      []string            `dynamodbav:"documents,omitempty"`
	Presentation   *presentationItem   `dynamodbav:"presentation,omitempty"`
	ClientResponse *clientResponseItem `dynamodbav:"client_response,omitempty"`
	Payment        *paymentItem        `dynamodbav:"payment,omitempty"`

	Version int64 `dynamodbav:"version"`
}

type presentationItem struct {
	ContactMethod      string `dynamodbav:"contact_method"`
	OfferLetter        bool   `dynamodbav:"offer_letter"`
	AssessmentReport   bool   `dynamodbav:"assessment_report"`
	TermsAndConditions bool   `dynamodbav:"terms_and_conditions"`
	PaymentSchedule    bool   `dynamodbav:"payment_schedule"`
	CustomMessage      string `dynamodbav:"custom_message,omitempty"`
	SubjectLine        string `dynamodbav:"subject_line"`
	ScheduledSendDate  string `dynamodbav:"scheduled_send_date,omitempty"`
	DeliveryStatus     string `dynamodbav:"delivery_status"`
	PresentedBy        string `dynamodbav:"presented_by,omitempty"`
	PresentedAt        string `dynamodbav:"presented_at"`
	DeliveryUpdatedAt  string `dynamodbav:"delivery_updated_at"`
}

type clientResponseItem struct {
	ResponseType       string `dynamodbav:"response_type"`
	ResponseDate       string `dynamodbav:"response_date"`
	CounterOfferAmount string `dynamodbav:"counter_offer_amount,omitempty"`
	Comments           string `dynamodbav:"comments,omitempty"`
	RecordedBy         string `dynamodbav:"recorded_by,omitempty"`
}

type paymentItem struct {
	PaymentMethod        string `dynamodbav:"payment_method"`
	TransactionReference string `dynamodbav:"transaction_reference"`
	BankName             string `dynamodbav:"bank_name,omitempty"`
	AccountNumber        string `dynamodbav:"account_number,omitempty"`
	AccountName          string `dynamodbav:"account_name,omitempty"`
	PaymentStatus        string `dynamodbav:"payment_status"`
	PaymentNotes         string `dynamodbav:"payment_notes,omitempty"`
	ProviderPayloadRaw   string `dynamodbav:"provider_payload_raw,omitempty"`
	ProcessedBy          string `dynamodbav:"processed_by,omitempty"`
	ProcessedAt          string `dynamodbav:"processed_at"`
	ReceiptNumber        string `dynamodbav:"receipt_number"`
}

// OfferDynamoRepository persists SettlementOffer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//   - GSI: claim_id-index (PK: claim_id)
//
// Every write after Create is conditioned on the stored version.

type OfferDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOfferRepository = (*OfferDynamoRepository)(nil)

func NewOfferDynamoRepository(ddb DynamoAPI, tableName string) *OfferDynamoRepository {
	return &OfferDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOffersTableName),
	}
}

func (r *OfferDynamoRepository) Create(ctx context.Context, o entities.SettlementOffer) (entities.SettlementOffer, error) {
	av, err := attributevalue.MarshalMap(toOfferItem(o))
	if err != nil {
		return entities.SettlementOffer{}, err
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
			return entities.SettlementOffer{}, interfaces.ErrDuplicateOfferID
		}
		return entities.SettlementOffer{}, err
	}
	return o, nil
}

func (r *OfferDynamoRepository) GetByID(ctx context.Context, id string) (entities.SettlementOffer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SettlementOffer{}, err
	}
	if len(out.Item) == 0 {
		return entities.SettlementOffer{}, nil
	}

	var it offerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SettlementOffer{}, err
	}
	return fromOfferItem(it), nil
}

func (r *OfferDynamoRepository) Save(ctx context.Context, o entities.SettlementOffer, expectedVersion int64) (entities.SettlementOffer, error) {
	av, err := attributevalue.MarshalMap(toOfferItem(o))
	if err != nil {
		return entities.SettlementOffer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SettlementOffer{}, interfaces.ErrVersionConflict
		}
		return entities.SettlementOffer{}, err
	}
	return o, nil
}

func (r *OfferDynamoRepository) ListByStatus(ctx context.Context, status entities.OfferStatus) ([]entities.SettlementOffer, error) {
	return r.queryIndex(ctx, offersStatusIndex, "#status = :v", map[string]string{"#status": "status"}, string(status))
}

func (r *OfferDynamoRepository) FindActiveByClaimID(ctx context.Context, claimID string) (entities.SettlementOffer, error) {
	offers, err := r.queryIndex(ctx, offersClaimIDIndex, "#claim_id = :v", map[string]string{"#claim_id": "claim_id"}, claimID)
	if err != nil {
		return entities.SettlementOffer{}, err
	}
	for _, o := range offers {
		if o.IsActive() {
			return o, nil
		}
	}
	return entities.SettlementOffer{}, nil
}

func (r *OfferDynamoRepository) queryIndex(ctx context.Context, index, keyCond string, names map[string]string, value string) ([]entities.SettlementOffer, error) {
	var (
		offers []entities.SettlementOffer
		start  map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.tableName),
			IndexName:                aws.String(index),
			KeyConditionExpression:   aws.String(keyCond),
			ExpressionAttributeNames: names,
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it offerItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			offers = append(offers, fromOfferItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return offers, nil
		}
		start = out.LastEvaluatedKey
	}
}

func toOfferItem(o entities.SettlementOffer) offerItem {
	it := offerItem{
		ID:                      o.ID,
		ClaimID:                 o.ClaimID,
		ClaimType:               o.ClaimType,
		ClientName:              o.ClientName,
		AssessedAmount:          o.Amounts.AssessedAmount.String(),
		Deductions:              o.Amounts.Deductions.String(),
		ServiceFeePercentage:    o.Amounts.ServiceFeePercentage.String(),
		ServiceFee:              o.Amounts.ServiceFee.String(),
		FinalAmount:             o.Amounts.FinalAmount.String(),
		PaymentMethod:           string(o.Terms.PaymentMethod),
		PaymentTimelineDays:     o.Terms.PaymentTimelineDays,
		OfferValidityPeriodDays: o.Terms.OfferValidityPeriodDays,
		SpecialConditions:       o.Terms.SpecialConditions,
		Status:                  string(o.Status),
		CreatedBy:               o.CreatedBy,
		CreatedAt:               formatTime(o.CreatedAt),
		UpdatedAt:               formatTime(o.UpdatedAt),
		ExpiresAt:               formatTime(o.ExpiresAt),
		SubmittedAt:             formatTimePtr(o.SubmittedAt),
		ApprovedAt:              formatTimePtr(o.ApprovedAt),
		ApprovedBy:              o.ApprovedBy,
		ApprovalNotes:           o.ApprovalNotes,
		RejectionReason:         o.RejectionReason,
		CancellationReason:      o.CancellationReason,
		Documents:               o.Documents,
		Version:                 o.Version,
	}
	if p := o.Presentation; p != nil {
		it.Presentation = &presentationItem{
			ContactMethod:      string(p.ContactMethod),
			OfferLetter:        p.Documents.OfferLetter,
			AssessmentReport:   p.Documents.AssessmentReport,
			TermsAndConditions: p.Documents.TermsAndConditions,
			PaymentSchedule:    p.Documents.PaymentSchedule,
			CustomMessage:      p.CustomMessage,
			SubjectLine:        p.SubjectLine,
			ScheduledSendDate:  formatTimePtr(p.ScheduledSendDate),
			DeliveryStatus:     string(p.DeliveryStatus),
			PresentedBy:        p.PresentedBy,
			PresentedAt:        formatTime(p.PresentedAt),
			DeliveryUpdatedAt:  formatTime(p.DeliveryUpdatedAt),
		}
	}
	if cr := o.ClientResponse; cr != nil {
		it.ClientResponse = &clientResponseItem{
			ResponseType: string(cr.ResponseType),
			ResponseDate: formatTime(cr.ResponseDate),
			Comments:     cr.Comments,
			RecordedBy:   cr.RecordedBy,
		}
		if cr.CounterOfferAmount != nil {
			it.ClientResponse.CounterOfferAmount = cr.CounterOfferAmount.String()
		}
	}
	if p := o.Payment; p != nil {
		it.Payment = &paymentItem{
			PaymentMethod:        string(p.PaymentMethod),
			TransactionReference: p.TransactionReference,
			BankName:             p.BankName,
			AccountNumber:        p.AccountNumber,
			AccountName:          p.AccountName,
			PaymentStatus:        string(p.PaymentStatus),
			PaymentNotes:         p.PaymentNotes,
			ProviderPayloadRaw:   string(p.ProviderPayloadRaw),
			ProcessedBy:          p.ProcessedBy,
			ProcessedAt:          formatTime(p.ProcessedAt),
			ReceiptNumber:        p.ReceiptNumber,
		}
	}
	return it
}

func fromOfferItem(it offerItem) entities.SettlementOffer {
	o := entities.SettlementOffer{
		ID:         it.ID,
		ClaimID:    it.ClaimID,
		ClaimType:  it.ClaimType,
		ClientName: it.ClientName,
		Amounts: entities.OfferAmounts{
			AssessedAmount:       parseDecimal(it.AssessedAmount),
			Deductions:           parseDecimal(it.Deductions),
			ServiceFeePercentage: parseDecimal(it.ServiceFeePercentage),
			ServiceFee:           parseDecimal(it.ServiceFee),
			FinalAmount:          parseDecimal(it.FinalAmount),
		},
		Terms: entities.OfferTerms{
			PaymentMethod:           entities.PaymentMethod(it.PaymentMethod),
			PaymentTimelineDays:     it.PaymentTimelineDays,
			OfferValidityPeriodDays: it.OfferValidityPeriodDays,
			SpecialConditions:       it.SpecialConditions,
		},
		Status:             entities.OfferStatus(it.Status),
		CreatedBy:          it.CreatedBy,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		ExpiresAt:          parseTime(it.ExpiresAt),
		SubmittedAt:        parseTimePtr(it.SubmittedAt),
		ApprovedAt:         parseTimePtr(it.ApprovedAt),
		ApprovedBy:         it.ApprovedBy,
		ApprovalNotes:      it.ApprovalNotes,
		RejectionReason:    it.RejectionReason,
		CancellationReason: it.CancellationReason,
		Documents:          it.Documents,
		Version:            it.Version,
	}
	if p := it.Presentation; p != nil {
		o.Presentation = &entities.Presentation{
			PresentationSetup: entities.PresentationSetup{
				ContactMethod: entities.ContactMethod(p.ContactMethod),
				Documents: entities.DocumentPackage{
					OfferLetter:        p.OfferLetter,
					AssessmentReport:   p.AssessmentReport,
					TermsAndConditions: p.TermsAndConditions,
					PaymentSchedule:    p.PaymentSchedule,
				},
				CustomMessage:     p.CustomMessage,
				SubjectLine:       p.SubjectLine,
				ScheduledSendDate: parseTimePtr(p.ScheduledSendDate),
			},
			DeliveryStatus:    entities.DeliveryStatus(p.DeliveryStatus),
			PresentedBy:       p.PresentedBy,
			PresentedAt:       parseTime(p.PresentedAt),
			DeliveryUpdatedAt: parseTime(p.DeliveryUpdatedAt),
		}
	}
	if cr := it.ClientResponse; cr != nil {
		o.ClientResponse = &entities.ClientResponse{
			ResponseType: entities.ResponseType(cr.ResponseType),
			ResponseDate: parseTime(cr.ResponseDate),
			Comments:     cr.Comments,
			RecordedBy:   cr.RecordedBy,
		}
		if cr.CounterOfferAmount != "" {
			amt, err := decimal.NewFromString(cr.CounterOfferAmount)
			if err == nil {
				o.ClientResponse.CounterOfferAmount = &amt
			}
		}
	}
	if p := it.Payment; p != nil {
		o.Payment = &entities.PaymentRecord{
			PaymentDetails: entities.PaymentDetails{
				PaymentMethod:        entities.PaymentMethod(p.PaymentMethod),
				TransactionReference: p.TransactionReference,
				BankName:             p.BankName,
				AccountNumber:        p.AccountNumber,
				AccountName:          p.AccountName,
				PaymentStatus:        entities.PaymentStatus(p.PaymentStatus),
				PaymentNotes:         p.PaymentNotes,
			},
			ProcessedBy:   p.ProcessedBy,
			ProcessedAt:   parseTime(p.ProcessedAt),
			ReceiptNumber: p.ReceiptNumber,
		}
		if p.ProviderPayloadRaw != "" {
			o.Payment.ProviderPayloadRaw = []byte(p.ProviderPayloadRaw)
		}
	}
	return o
}
