package interfaces

import (
	"context"
	"time"

	"festival_backend/internal/domain/entities"
)

// IFetchLogRepository is the append-only fetch attempt ledger.
type IFetchLogRepository interface {
	Append(ctx context.Context, l entities.FetchLog) (entities.FetchLog, error)
	HasSuccess(ctx context.Context, userID, username, date string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]entities.FetchLog, error)
}

// IFetchClaimRepository guards the daily limit with a conditional write.
//
// Reserve returns false (and no error) when the claim is held by another run
// or already marked successful.
type IFetchClaimRepository interface {
	Reserve(ctx context.Context, key entities.FetchClaimKey, now, staleBefore time.Time) (bool, error)
	Get(ctx context.Context, key entities.FetchClaimKey) (entities.FetchClaim, error)
	MarkSucceeded(ctx context.Context, key entities.FetchClaimKey, now time.Time) error
	Release(ctx context.Context, key entities.FetchClaimKey) error
}
