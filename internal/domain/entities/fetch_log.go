package entities

import "time"

// FetchStatus is the outcome recorded for one Instagram fetch attempt.
type FetchStatus string

const (
	FetchStatusSuccess     FetchStatus = "success"
	FetchStatusFailed      FetchStatus = "failed"
	FetchStatusRateLimited FetchStatus = "rate_limited_user"
)

// FetchLog is one append-only ledger entry. Entries are never updated; they are
// read back only to answer "did this user already succeed today".
//
// Storage model (DynamoDB):
//   - PK: id
type FetchLog struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id"`
	Date              string      `json:"date"`
	InstagramUsername string      `json:"instagram_username"`
	Status            FetchStatus `json:"status"`
	Message           string      `json:"message"`
	CreatedAt         time.Time   `json:"created_at"`
}

// FetchClaimState tracks the single per-day reservation a user holds on a profile.
type FetchClaimState string

const (
	FetchClaimInProgress FetchClaimState = "in_progress"
	FetchClaimSucceeded  FetchClaimState = "success"
)

// FetchClaimKey identifies the (user, profile, day) tuple the daily limit applies to.
type FetchClaimKey struct {
	UserID            string
	InstagramUsername string
	Date              string
}

// ID is the deterministic primary key of the claim item.
func (k FetchClaimKey) ID() string {
	return k.UserID + "#" + k.InstagramUsername + "#" + k.Date
}

// FetchClaim is the compare-and-set record backing the daily limit.
//
// Storage model (DynamoDB):
//   - PK: id (user#username#date)
type FetchClaim struct {
	Key       FetchClaimKey
	State     FetchClaimState
	ClaimedAt time.Time
	UpdatedAt time.Time
}
