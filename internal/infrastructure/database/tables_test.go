package database

import (
	"context"
	"testing"

	"festival_backend/internal/infrastructure/config"
	"festival_backend/internal/infrastructure/database/dynamodbtest"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestEnsureTables_CreatesMissingOnce(t *testing.T) {
	fake := dynamodbtest.New()
	specs := Specs(config.TableNames{
		FetchLogs: "fetch_logs", FetchClaims: "fetch_claims", InstagramPosts: "instagram_posts",
		Media: "media", Products: "products", Orders: "orders", Counters: "counters",
		Artists: "artists", NewsArticles: "news_articles", FAQItems: "faq_items",
	})
	ctx := context.Background()

	require.NoError(t, EnsureTables(ctx, fake, specs, zaptest.NewLogger(t)))
	assert.Equal(t, len(specs), fake.Calls("CreateTable"))

	require.NoError(t, EnsureTables(ctx, fake, specs, zaptest.NewLogger(t)))
	assert.Equal(t, len(specs), fake.Calls("CreateTable"))

	_, err := fake.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String("instagram_posts")})
	assert.NoError(t, err)
}
