package repository

import (
	"context"
	"strings"

	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClaimsTableName = "claims"

type claimItem struct {
	ClaimID        string `dynamodbav:"claim_id"`
	AssessedAmount string `dynamodbav:"assessed_amount"`
	ClaimType      string `dynamodbav:"claim_type"`
	ClientName     string `dynamodbav:"client_name"`
	Status         string `dynamodbav:"status"`
}

// ClaimDynamoStore reads claims written by the claims service.
//
// Table requirements:
//   - PK: claim_id (string)
//   - assessed_amount stored as a decimal string

type ClaimDynamoStore struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClaimStore = (*ClaimDynamoStore)(nil)

func NewClaimDynamoStore(ddb DynamoAPI, tableName string) *ClaimDynamoStore {
	return &ClaimDynamoStore{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultClaimsTableName),
	}
}

func (s *ClaimDynamoStore) GetClaim(ctx context.Context, claimID string) (entities.ClaimSnapshot, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"claim_id": &types.AttributeValueMemberS{Value: claimID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClaimSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClaimSnapshot{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClaimSnapshot{}, err
	}
	return entities.ClaimSnapshot{
		ClaimID:        it.ClaimID,
		AssessedAmount: parseDecimal(it.AssessedAmount),
		ClaimType:      it.ClaimType,
		ClientName:     it.ClientName,
		Status:         entities.ClaimStatus(strings.ToUpper(it.Status)),
	}, nil
}
