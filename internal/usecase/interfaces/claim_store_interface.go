package interfaces

import (
	"context"

	"claims_settlement/internal/domain/entities"
)

// IClaimStore reads claims owned by the claims service. A zero value with
// empty ClaimID means the claim does not exist.
type IClaimStore interface {
	GetClaim(ctx context.Context, claimID string) (entities.ClaimSnapshot, error)
}
