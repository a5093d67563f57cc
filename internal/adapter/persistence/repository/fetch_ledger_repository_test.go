package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/infrastructure/database/dynamodbtest"
)

func TestFetchLogDynamoRepository_HasSuccess(t *testing.T) {
	ctx := context.Background()
	repo := NewFetchLogDynamoRepository(dynamodbtest.New(), "fetch_logs")

	for _, l := range []entities.FetchLog{
		{UserID: "u1", Date: "2024-05-01", InstagramUsername: "fest", Status: entities.FetchStatusFailed},
		{UserID: "u1", Date: "2024-05-01", InstagramUsername: "other", Status: entities.FetchStatusSuccess},
		{UserID: "u2", Date: "2024-05-01", InstagramUsername: "fest", Status: entities.FetchStatusSuccess},
	} {
		if _, err := repo.Append(ctx, l); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	ok, err := repo.HasSuccess(ctx, "u1", "fest", "2024-05-01")
	if err != nil || ok {
		t.Fatalf("expected no success for u1/fest, got ok=%v err=%v", ok, err)
	}

	if _, err := repo.Append(ctx, entities.FetchLog{UserID: "u1", Date: "2024-05-01", InstagramUsername: "fest", Status: entities.FetchStatusSuccess}); err != nil {
		t.Fatalf("append: %v", err)
	}
	ok, err = repo.HasSuccess(ctx, "u1", "fest", "2024-05-01")
	if err != nil || !ok {
		t.Fatalf("expected success for u1/fest, got ok=%v err=%v", ok, err)
	}

	logs, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs for u1, got %d", len(logs))
	}
	for _, l := range logs {
		if l.ID == "" || l.CreatedAt.IsZero() {
			t.Fatalf("expected generated id and timestamp, got %+v", l)
		}
	}
}

func TestFetchClaimDynamoRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewFetchClaimDynamoRepository(dynamodbtest.New(), "fetch_claims")
	key := entities.FetchClaimKey{UserID: "u1", InstagramUsername: "fest", Date: "2024-05-01"}
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	stale := 15 * time.Minute

	ok, err := repo.Reserve(ctx, key, now, now.Add(-stale))
	if err != nil || !ok {
		t.Fatalf("first reserve should win: ok=%v err=%v", ok, err)
	}

	ok, err = repo.Reserve(ctx, key, now.Add(time.Minute), now.Add(time.Minute-stale))
	if err != nil || ok {
		t.Fatalf("second reserve should lose while in progress: ok=%v err=%v", ok, err)
	}

	later := now.Add(20 * time.Minute)
	ok, err = repo.Reserve(ctx, key, later, later.Add(-stale))
	if err != nil || !ok {
		t.Fatalf("stale claim should be taken over: ok=%v err=%v", ok, err)
	}

	if err := repo.MarkSucceeded(ctx, key, later); err != nil {
		t.Fatalf("mark succeeded: %v", err)
	}
	claim, err := repo.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if claim.State != entities.FetchClaimSucceeded || claim.Key != key {
		t.Fatalf("unexpected claim: %+v", claim)
	}

	if err := repo.Release(ctx, key); err != nil {
		t.Fatalf("release of a successful claim should be a no-op, got %v", err)
	}
	next := later.Add(time.Hour)
	ok, err = repo.Reserve(ctx, key, next, next.Add(-stale))
	if err != nil || ok {
		t.Fatalf("successful claim must block the day: ok=%v err=%v", ok, err)
	}
}

func TestFetchClaimDynamoRepository_ReleaseAllowsRetry(t *testing.T) {
	ctx := context.Background()
	repo := NewFetchClaimDynamoRepository(dynamodbtest.New(), "fetch_claims")
	key := entities.FetchClaimKey{UserID: "u1", InstagramUsername: "fest", Date: "2024-05-01"}
	now := time.Now()

	if ok, err := repo.Reserve(ctx, key, now, now.Add(-time.Minute)); err != nil || !ok {
		t.Fatalf("reserve: ok=%v err=%v", ok, err)
	}
	if err := repo.Release(ctx, key); err != nil {
		t.Fatalf("release: %v", err)
	}
	if ok, err := repo.Reserve(ctx, key, now, now.Add(-time.Minute)); err != nil || !ok {
		t.Fatalf("reserve after release: ok=%v err=%v", ok, err)
	}
}

func TestFetchClaimDynamoRepository_StoreError(t *testing.T) {
	fake := dynamodbtest.New()
	fake.FailOn("PutItem", errors.New("throttled"))
	repo := NewFetchClaimDynamoRepository(fake, "fetch_claims")

	_, err := repo.Reserve(context.Background(), entities.FetchClaimKey{UserID: "u"}, time.Now(), time.Now())
	if err == nil || err.Error() != "throttled" {
		t.Fatalf("expected store error, got %v", err)
	}
}
