package database

import (
	"context"
	"errors"
	"fmt"

	"festival_backend/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Key attribute names shared by the repositories and the table bootstrap.
const (
	KeyID              = "id"
	KeyInstagramPostID = "instagram_post_id"
)

// TableSpec names a table and its string hash key.
type TableSpec struct {
	Name string
	Key  string
}

// Specs lists every table the service reads or writes.
func Specs(t config.TableNames) []TableSpec {
	return []TableSpec{
		{Name: t.FetchLogs, Key: KeyID},
		{Name: t.FetchClaims, Key: KeyID},
		{Name: t.InstagramPosts, Key: KeyInstagramPostID},
		{Name: t.Media, Key: KeyID},
		{Name: t.Products, Key: KeyID},
		{Name: t.Orders, Key: KeyID},
		{Name: t.Counters, Key: KeyID},
		{Name: t.Artists, Key: KeyID},
		{Name: t.NewsArticles, Key: KeyID},
		{Name: t.FAQItems, Key: KeyID},
	}
}

// EnsureTables creates missing tables with on-demand billing. It is meant for
// local development; production tables are provisioned outside the service.
func EnsureTables(ctx context.Context, ddb DynamoDBAPI, specs []TableSpec, log *zap.Logger) error {
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", spec.Name, err)
		}

		_, err = ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(spec.Name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(spec.Key), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(spec.Key), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		log.Info("dynamodb table created", zap.String("table", spec.Name), zap.String("key", spec.Key))
	}
	return nil
}
