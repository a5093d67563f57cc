package usecase

import (
	"context"
	"errors"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrFetchRateLimited = errors.New("fetch limit reached for today")
	ErrFetchInProgress  = errors.New("fetch already in progress")
)

// IFetchLedgerUseCase enforces one successful Instagram fetch per
// (user, username, calendar day) and keeps the attempt history.
type IFetchLedgerUseCase interface {
	Today() string
	HasSucceededToday(ctx context.Context, userID, username, date string) (bool, error)
	Record(ctx context.Context, userID, username, date string, status entities.FetchStatus, message string) error
	Reserve(ctx context.Context, userID, username, date string) error
	Complete(ctx context.Context, userID, username, date string) error
	Release(ctx context.Context, userID, username, date string) error
}

type FetchLedgerUseCase struct {
	logs       interfaces.IFetchLogRepository
	claims     interfaces.IFetchClaimRepository
	staleAfter time.Duration
	now        func() time.Time
	log        *zap.Logger
}

var _ IFetchLedgerUseCase = (*FetchLedgerUseCase)(nil)

// NewFetchLedgerUseCase uses the server-local clock. staleAfter bounds how long
// a crashed run can keep a day blocked.
func NewFetchLedgerUseCase(logs interfaces.IFetchLogRepository, claims interfaces.IFetchClaimRepository, staleAfter time.Duration, log *zap.Logger) *FetchLedgerUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &FetchLedgerUseCase{logs: logs, claims: claims, staleAfter: staleAfter, now: time.Now, log: log.Named("fetch_ledger")}
}

// WithClock replaces the time source; tests pin the calendar day with it.
func (u *FetchLedgerUseCase) WithClock(now func() time.Time) *FetchLedgerUseCase {
	u.now = now
	return u
}

func (u *FetchLedgerUseCase) Today() string {
	return u.now().Format("2006-01-02")
}

func (u *FetchLedgerUseCase) HasSucceededToday(ctx context.Context, userID, username, date string) (bool, error) {
	claim, err := u.claims.Get(ctx, claimKey(userID, username, date))
	if err != nil {
		return false, err
	}
	if claim.State == entities.FetchClaimSucceeded {
		return true, nil
	}
	return u.logs.HasSuccess(ctx, userID, username, date)
}

func (u *FetchLedgerUseCase) Record(ctx context.Context, userID, username, date string, status entities.FetchStatus, message string) error {
	_, err := u.logs.Append(ctx, entities.FetchLog{
		UserID:            userID,
		Date:              date,
		InstagramUsername: username,
		Status:            status,
		Message:           message,
		CreatedAt:         u.now().UTC(),
	})
	if err != nil {
		u.log.Error("failed to record fetch attempt",
			zap.String("user_id", userID), zap.String("username", username), zap.String("status", string(status)), zap.Error(err))
	}
	return err
}

// Reserve takes the day's claim. It fails with ErrFetchRateLimited when a
// success is already on record and ErrFetchInProgress when another run holds
// a fresh claim.
func (u *FetchLedgerUseCase) Reserve(ctx context.Context, userID, username, date string) error {
	done, err := u.logs.HasSuccess(ctx, userID, username, date)
	if err != nil {
		return err
	}
	if done {
		return ErrFetchRateLimited
	}

	key := claimKey(userID, username, date)
	now := u.now()
	ok, err := u.claims.Reserve(ctx, key, now, now.Add(-u.staleAfter))
	if err != nil {
		return err
	}
	if ok {
		u.log.Debug("fetch claim reserved", zap.String("claim", key.ID()))
		return nil
	}

	claim, err := u.claims.Get(ctx, key)
	if err != nil {
		return err
	}
	if claim.State == entities.FetchClaimSucceeded {
		return ErrFetchRateLimited
	}
	return ErrFetchInProgress
}

func (u *FetchLedgerUseCase) Complete(ctx context.Context, userID, username, date string) error {
	return u.claims.MarkSucceeded(ctx, claimKey(userID, username, date), u.now())
}

func (u *FetchLedgerUseCase) Release(ctx context.Context, userID, username, date string) error {
	return u.claims.Release(ctx, claimKey(userID, username, date))
}

func claimKey(userID, username, date string) entities.FetchClaimKey {
	return entities.FetchClaimKey{UserID: userID, InstagramUsername: username, Date: date}
}
