package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxAPI is the subset of *pgxpool.Pool the PostgreSQL repository uses.
type PgxAPI interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const uniqueViolation = "23505"

const offersSchema = `
CREATE TABLE IF NOT EXISTS settlement_offers (
	id         TEXT PRIMARY KEY,
	claim_id   TEXT NOT NULL,
	status     TEXT NOT NULL,
	version    BIGINT NOT NULL,
	document   JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS settlement_offers_status_idx ON settlement_offers (status);
CREATE INDEX IF NOT EXISTS settlement_offers_claim_id_idx ON settlement_offers (claim_id);
`

// OfferPostgresRepository stores each offer as a JSONB document next to the
// columns it is looked up by.
type OfferPostgresRepository struct {
	db PgxAPI
}

var _ interfaces.IOfferRepository = (*OfferPostgresRepository)(nil)

func NewOfferPostgresRepository(db PgxAPI) *OfferPostgresRepository {
	return &OfferPostgresRepository{db: db}
}

// EnsureSchema creates the offers table and its indexes when missing.
func (r *OfferPostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, offersSchema); err != nil {
		return fmt.Errorf("ensure settlement_offers schema: %w", err)
	}
	return nil
}

func (r *OfferPostgresRepository) Create(ctx context.Context, o entities.SettlementOffer) (entities.SettlementOffer, error) {
	doc, err := json.Marshal(o)
	if err != nil {
		return entities.SettlementOffer{}, err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO settlement_offers (id, claim_id, status, version, document, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`, o.ID, o.ClaimID, string(o.Status), o.Version, doc, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entities.SettlementOffer{}, interfaces.ErrDuplicateOfferID
		}
		return entities.SettlementOffer{}, err
	}
	return o, nil
}

func (r *OfferPostgresRepository) GetByID(ctx context.Context, id string) (entities.SettlementOffer, error) {
	var doc []byte
	err := r.db.QueryRow(ctx, `SELECT document FROM settlement_offers WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.SettlementOffer{}, nil
		}
		return entities.SettlementOffer{}, err
	}
	return decodeOffer(doc)
}

func (r *OfferPostgresRepository) Save(ctx context.Context, o entities.SettlementOffer, expectedVersion int64) (entities.SettlementOffer, error) {
	doc, err := json.Marshal(o)
	if err != nil {
		return entities.SettlementOffer{}, err
	}
	tag, err := r.db.Exec(ctx, `UPDATE settlement_offers
SET status = $2, version = $3, document = $4, updated_at = $5
WHERE id = $1 AND version = $6`, o.ID, string(o.Status), o.Version, doc, o.UpdatedAt, expectedVersion)
	if err != nil {
		return entities.SettlementOffer{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.SettlementOffer{}, interfaces.ErrVersionConflict
	}
	return o, nil
}

func (r *OfferPostgresRepository) ListByStatus(ctx context.Context, status entities.OfferStatus) ([]entities.SettlementOffer, error) {
	rows, err := r.db.Query(ctx, `SELECT document FROM settlement_offers WHERE status = $1 ORDER BY created_at ASC`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []entities.SettlementOffer
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		o, err := decodeOffer(doc)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *OfferPostgresRepository) FindActiveByClaimID(ctx context.Context, claimID string) (entities.SettlementOffer, error) {
	var doc []byte
	err := r.db.QueryRow(ctx, `SELECT document FROM settlement_offers
WHERE claim_id = $1 AND status <> ALL($2)
ORDER BY created_at DESC LIMIT 1`, claimID, terminalStatuses()).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.SettlementOffer{}, nil
		}
		return entities.SettlementOffer{}, err
	}
	return decodeOffer(doc)
}

func terminalStatuses() []string {
	var out []string
	for _, info := range entities.OfferStatuses() {
		if info.Terminal {
			out = append(out, string(info.Status))
		}
	}
	return out
}

func decodeOffer(doc []byte) (entities.SettlementOffer, error) {
	var o entities.SettlementOffer
	if err := json.Unmarshal(doc, &o); err != nil {
		return entities.SettlementOffer{}, fmt.Errorf("decode settlement offer: %w", err)
	}
	return o, nil
}
