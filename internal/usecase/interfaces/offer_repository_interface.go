package interfaces

import (
	"context"
	"errors"

	"claims_settlement/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the stored version no longer matches.
var ErrVersionConflict = errors.New("offer version conflict")

// ErrDuplicateOfferID is returned by Create when the offer id is already taken.
var ErrDuplicateOfferID = errors.New("offer id already exists")

// IOfferRepository abstracts persistence for SettlementOffer.
//
// The settlement service must be able to:
//   - create a draft offer
//   - load an offer by id (a zero value with empty ID means not found)
//   - save a transitioned snapshot only if nobody else saved in between
//   - list offers by status (expiry sweep, dashboards)
//   - find the active offer of a claim (one active offer per claim)

type IOfferRepository interface {
	Create(ctx context.Context, o entities.SettlementOffer) (entities.SettlementOffer, error)
	GetByID(ctx context.Context, id string) (entities.SettlementOffer, error)
	Save(ctx context.Context, o entities.SettlementOffer, expectedVersion int64) (entities.SettlementOffer, error)
	ListByStatus(ctx context.Context, status entities.OfferStatus) ([]entities.SettlementOffer, error)
	FindActiveByClaimID(ctx context.Context, claimID string) (entities.SettlementOffer, error)
}
