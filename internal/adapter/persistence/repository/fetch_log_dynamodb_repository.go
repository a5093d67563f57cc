package repository

import (
	"context"
	"sort"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/infrastructure/database"
	"festival_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type fetchLogItem struct {
	ID                string `dynamodbav:"id"`
	UserID            string `dynamodbav:"user_id"`
	Date              string `dynamodbav:"date"`
	InstagramUsername string `dynamodbav:"instagram_username"`
	Status            string `dynamodbav:"status"`
	Message           string `dynamodbav:"message"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// FetchLogDynamoRepository persists the append-only fetch ledger.
//
// Table requirements:
//   - PK: id (string)
type FetchLogDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IFetchLogRepository = (*FetchLogDynamoRepository)(nil)

func NewFetchLogDynamoRepository(ddb database.DynamoDBAPI, tableName string) *FetchLogDynamoRepository {
	return &FetchLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *FetchLogDynamoRepository) Append(ctx context.Context, l entities.FetchLog) (entities.FetchLog, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toFetchLogItem(l))
	if err != nil {
		return entities.FetchLog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.FetchLog{}, err
	}
	return l, nil
}

func (r *FetchLogDynamoRepository) HasSuccess(ctx context.Context, userID, username, date string) (bool, error) {
	logs, err := r.scan(ctx,
		"#user_id = :user_id AND #date = :date AND #username = :username AND #status = :status",
		map[string]string{"#user_id": "user_id", "#date": "date", "#username": "instagram_username", "#status": "status"},
		map[string]types.AttributeValue{
			":user_id":  str(userID),
			":date":     str(date),
			":username": str(username),
			":status":   str(string(entities.FetchStatusSuccess)),
		},
	)
	if err != nil {
		return false, err
	}
	return len(logs) > 0, nil
}

func (r *FetchLogDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.FetchLog, error) {
	logs, err := r.scan(ctx,
		"#user_id = :user_id",
		map[string]string{"#user_id": "user_id"},
		map[string]types.AttributeValue{":user_id": str(userID)},
	)
	if err != nil {
		return nil, err
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })
	return logs, nil
}

func (r *FetchLogDynamoRepository) scan(ctx context.Context, filter string, names map[string]string, values map[string]types.AttributeValue) ([]entities.FetchLog, error) {
	var (
		out   []entities.FetchLog
		start map[string]types.AttributeValue
	)
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         start,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it fetchLogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromFetchLogItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		start = page.LastEvaluatedKey
	}
}

func toFetchLogItem(l entities.FetchLog) fetchLogItem {
	return fetchLogItem{
		ID:                l.ID,
		UserID:            l.UserID,
		Date:              l.Date,
		InstagramUsername: l.InstagramUsername,
		Status:            string(l.Status),
		Message:           l.Message,
		CreatedAt:         formatTime(l.CreatedAt),
	}
}

func fromFetchLogItem(it fetchLogItem) entities.FetchLog {
	return entities.FetchLog{
		ID:                it.ID,
		UserID:            it.UserID,
		Date:              it.Date,
		InstagramUsername: it.InstagramUsername,
		Status:            entities.FetchStatus(it.Status),
		Message:           it.Message,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
