package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/infrastructure/database"
	"festival_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const mediaCounterID = "media"

type mediaItem struct {
	ID         string `dynamodbav:"id"`
	Alt        string `dynamodbav:"alt"`
	Filename   string `dynamodbav:"filename"`
	MimeType   string `dynamodbav:"mime_type"`
	Size       int64  `dynamodbav:"size"`
	StorageKey string `dynamodbav:"storage_key"`
	URL        string `dynamodbav:"url"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// MediaDynamoRepository persists media metadata.
//
// Table requirements:
//   - media PK: id (string holding a decimal number)
//   - counters PK: id; the "media" row carries the sequence in "seq"
type MediaDynamoRepository struct {
	ddb           database.DynamoDBAPI
	tableName     string
	countersTable string
}

var _ interfaces.IMediaRepository = (*MediaDynamoRepository)(nil)

func NewMediaDynamoRepository(ddb database.DynamoDBAPI, tableName, countersTable string) *MediaDynamoRepository {
	return &MediaDynamoRepository{ddb: ddb, tableName: tableName, countersTable: countersTable}
}

func (r *MediaDynamoRepository) Create(ctx context.Context, m entities.Media) (entities.Media, error) {
	if m.ID == "" {
		id, err := r.nextID(ctx)
		if err != nil {
			return entities.Media{}, err
		}
		m.ID = strconv.FormatInt(id, 10)
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(mediaItem{
		ID:         m.ID,
		Alt:        m.Alt,
		Filename:   m.Filename,
		MimeType:   m.MimeType,
		Size:       m.Size,
		StorageKey: m.StorageKey,
		URL:        m.URL,
		CreatedAt:  formatTime(m.CreatedAt),
	})
	if err != nil {
		return entities.Media{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Media{}, err
	}
	return m, nil
}

func (r *MediaDynamoRepository) GetByID(ctx context.Context, id string) (entities.Media, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": str(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Media{}, err
	}
	if len(out.Item) == 0 {
		return entities.Media{}, nil
	}
	var it mediaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Media{}, err
	}
	return entities.Media{
		ID:         it.ID,
		Alt:        it.Alt,
		Filename:   it.Filename,
		MimeType:   it.MimeType,
		Size:       it.Size,
		StorageKey: it.StorageKey,
		URL:        it.URL,
		CreatedAt:  parseTime(it.CreatedAt),
	}, nil
}

func (r *MediaDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.countersTable),
		Key:                       map[string]types.AttributeValue{"id": str(mediaCounterID)},
		UpdateExpression:          aws.String("ADD #seq :one"),
		ExpressionAttributeNames:  map[string]string{"#seq": "seq"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, fmt.Errorf("allocate media id: %w", err)
	}
	seq, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("allocate media id: counter has no numeric seq")
	}
	return strconv.ParseInt(seq.Value, 10, 64)
}
