package repository

import (
	"context"

	"festival_backend/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// itemTable holds the plain CRUD calls of tables keyed by a string "id".
// I is the dynamodbav-tagged storage struct.
type itemTable[I any] struct {
	ddb  database.DynamoDBAPI
	name string
}

func (t itemTable[I]) create(ctx context.Context, item I) error {
	return t.put(ctx, item, "attribute_not_exists(#id)")
}

// replace overwrites an existing item and reports false when there is none.
func (t itemTable[I]) replace(ctx context.Context, item I) (bool, error) {
	err := t.put(ctx, item, "attribute_exists(#id)")
	if isConditionalCheckFailed(err) {
		return false, nil
	}
	return err == nil, err
}

func (t itemTable[I]) put(ctx context.Context, item I, condition string) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     av,
		ConditionExpression:      aws.String(condition),
		ExpressionAttributeNames: map[string]string{"#id": database.KeyID},
	})
	return err
}

func (t itemTable[I]) get(ctx context.Context, id string) (I, bool, error) {
	var it I
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            map[string]types.AttributeValue{database.KeyID: str(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil || len(out.Item) == 0 {
		return it, false, err
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func (t itemTable[I]) scan(ctx context.Context) ([]I, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(t.name)}
	var items []I
	for {
		page, err := t.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it I
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		if len(page.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
}

func (t itemTable[I]) delete(ctx context.Context, id string) error {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       map[string]types.AttributeValue{database.KeyID: str(id)},
	})
	return err
}
