package repository

import (
	"context"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/infrastructure/database"
	"festival_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fetchClaimItem struct {
	ID                string `dynamodbav:"id"`
	UserID            string `dynamodbav:"user_id"`
	InstagramUsername string `dynamodbav:"instagram_username"`
	Date              string `dynamodbav:"date"`
	State             string `dynamodbav:"state"`
	ClaimedAt         string `dynamodbav:"claimed_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// FetchClaimDynamoRepository holds one claim per (user, username, day).
//
// Table requirements:
//   - PK: id (string, "user#username#date")
//
// A claim can be taken when absent or when an in-progress claim is older than
// the stale cutoff. Timestamps are RFC3339 UTC so string order is time order.
type FetchClaimDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IFetchClaimRepository = (*FetchClaimDynamoRepository)(nil)

func NewFetchClaimDynamoRepository(ddb database.DynamoDBAPI, tableName string) *FetchClaimDynamoRepository {
	return &FetchClaimDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *FetchClaimDynamoRepository) Reserve(ctx context.Context, key entities.FetchClaimKey, now, staleBefore time.Time) (bool, error) {
	av, err := attributevalue.MarshalMap(fetchClaimItem{
		ID:                key.ID(),
		UserID:            key.UserID,
		InstagramUsername: key.InstagramUsername,
		Date:              key.Date,
		State:             string(entities.FetchClaimInProgress),
		ClaimedAt:         claimTime(now),
		UpdatedAt:         claimTime(now),
	})
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR (#state = :in_progress AND #claimed_at < :stale)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#state":      "state",
			"#claimed_at": "claimed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":in_progress": str(string(entities.FetchClaimInProgress)),
			":stale":       str(claimTime(staleBefore)),
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *FetchClaimDynamoRepository) Get(ctx context.Context, key entities.FetchClaimKey) (entities.FetchClaim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": str(key.ID())},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FetchClaim{}, err
	}
	if len(out.Item) == 0 {
		return entities.FetchClaim{}, nil
	}
	var it fetchClaimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FetchClaim{}, err
	}
	return entities.FetchClaim{
		Key:       entities.FetchClaimKey{UserID: it.UserID, InstagramUsername: it.InstagramUsername, Date: it.Date},
		State:     entities.FetchClaimState(it.State),
		ClaimedAt: parseClaimTime(it.ClaimedAt),
		UpdatedAt: parseClaimTime(it.UpdatedAt),
	}, nil
}

func (r *FetchClaimDynamoRepository) MarkSucceeded(ctx context.Context, key entities.FetchClaimKey, now time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              map[string]types.AttributeValue{"id": str(key.ID())},
		UpdateExpression: aws.String("SET #state = :success, #updated_at = :now, #user_id = :user_id, #username = :username, #date = :date, #claimed_at = if_not_exists(#claimed_at, :now)"),
		ExpressionAttributeNames: map[string]string{
			"#state":      "state",
			"#updated_at": "updated_at",
			"#user_id":    "user_id",
			"#username":   "instagram_username",
			"#date":       "date",
			"#claimed_at": "claimed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":success":  str(string(entities.FetchClaimSucceeded)),
			":now":      str(claimTime(now)),
			":user_id":  str(key.UserID),
			":username": str(key.InstagramUsername),
			":date":     str(key.Date),
		},
	})
	return err
}

// Release drops an in-progress claim. A claim already marked successful is kept.
func (r *FetchClaimDynamoRepository) Release(ctx context.Context, key entities.FetchClaimKey) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"id": str(key.ID())},
		ConditionExpression:       aws.String("#state = :in_progress"),
		ExpressionAttributeNames:  map[string]string{"#state": "state"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":in_progress": str(string(entities.FetchClaimInProgress))},
	})
	if isConditionalCheckFailed(err) {
		return nil
	}
	return err
}

// claimTime uses a fixed-width layout so lexical comparison in the condition
// expression matches chronological order.
func claimTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000000Z")
}

func parseClaimTime(s string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05.000000000Z", s)
	return t
}
