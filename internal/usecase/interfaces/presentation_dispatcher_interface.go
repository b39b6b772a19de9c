package interfaces

import (
	"context"

	"claims_settlement/internal/domain/entities"
)

// IPresentationDispatcher hands a presented offer to the delivery channel.
type IPresentationDispatcher interface {
	Dispatch(ctx context.Context, o entities.SettlementOffer) error
}
