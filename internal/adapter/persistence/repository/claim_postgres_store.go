package repository

import (
	"context"
	"errors"
	"strings"

	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ClaimPostgresStore reads claims from the claims service's PostgreSQL table.
type ClaimPostgresStore struct {
	db PgxAPI
}

var _ interfaces.IClaimStore = (*ClaimPostgresStore)(nil)

func NewClaimPostgresStore(db PgxAPI) *ClaimPostgresStore {
	return &ClaimPostgresStore{db: db}
}

func (s *ClaimPostgresStore) GetClaim(ctx context.Context, claimID string) (entities.ClaimSnapshot, error) {
	var (
		c        entities.ClaimSnapshot
		assessed string
		status   string
	)
	err := s.db.QueryRow(ctx, `SELECT claim_id, assessed_amount::text, claim_type, client_name, status
FROM claims WHERE claim_id = $1`, claimID).Scan(&c.ClaimID, &assessed, &c.ClaimType, &c.ClientName, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ClaimSnapshot{}, nil
		}
		return entities.ClaimSnapshot{}, err
	}

	amount, err := decimal.NewFromString(assessed)
	if err != nil {
		return entities.ClaimSnapshot{}, err
	}
	c.AssessedAmount = amount
	c.Status = entities.ClaimStatus(strings.ToUpper(status))
	return c, nil
}
