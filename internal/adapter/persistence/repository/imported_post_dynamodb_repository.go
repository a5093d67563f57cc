package repository

import (
	"context"
	"sort"
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

type importedPostItem struct {
	InstagramPostID  string `dynamodbav:"instagram_post_id"`
	Shortcode        string `dynamodbav:"shortcode"`
	OwnerUsername    string `dynamodbav:"owner_username"`
	OriginalImageURL string `dynamodbav:"original_image_url,omitempty"`
	LocalImageID     *int64 `dynamodbav:"local_image_id,omitempty"`
	OriginalVideoURL string `dynamodbav:"original_video_url,omitempty"`
	LocalVideoID     *int64 `dynamodbav:"local_video_id,omitempty"`
	Caption          string `dynamodbav:"caption"`
	PostDate         string `dynamodbav:"post_date"`
	LikesCount       int64  `dynamodbav:"likes_count"`
	CommentsCount    int64  `dynamodbav:"comments_count"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ImportedPostDynamoRepository persists mirrored Instagram posts.
//
// Table requirements:
//   - PK: instagram_post_id (string)
//
// Keying by the external id makes a second record for the same post impossible.
type ImportedPostDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IImportedPostRepository = (*ImportedPostDynamoRepository)(nil)

func NewImportedPostDynamoRepository(ddb database.DynamoDBAPI, tableName string) *ImportedPostDynamoRepository {
	return &ImportedPostDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ImportedPostDynamoRepository) Create(ctx context.Context, p entities.ImportedPost) (entities.ImportedPost, error) {
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	av, err := attributevalue.MarshalMap(toImportedPostItem(p))
	if err != nil {
		return entities.ImportedPost{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": database.KeyInstagramPostID},
	})
	if err != nil {
		return entities.ImportedPost{}, err
	}
	return p, nil
}

func (r *ImportedPostDynamoRepository) GetByInstagramID(ctx context.Context, instagramPostID string) (entities.ImportedPost, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{database.KeyInstagramPostID: str(instagramPostID)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ImportedPost{}, err
	}
	if len(out.Item) == 0 {
		return entities.ImportedPost{}, nil
	}
	var it importedPostItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ImportedPost{}, err
	}
	return fromImportedPostItem(it), nil
}

func (r *ImportedPostDynamoRepository) UpdateSync(ctx context.Context, p entities.ImportedPost) (entities.ImportedPost, error) {
	expr := "SET #likes = :likes, #comments = :comments, #caption = :caption, #updated_at = :updated_at"
	names := map[string]string{
		"#likes":      "likes_count",
		"#comments":   "comments_count",
		"#caption":    "caption",
		"#updated_at": "updated_at",
	}
	vals := map[string]types.AttributeValue{
		":likes":      &types.AttributeValueMemberN{Value: strconv.FormatInt(p.LikesCount, 10)},
		":comments":   &types.AttributeValueMemberN{Value: strconv.FormatInt(p.CommentsCount, 10)},
		":caption":    str(p.Caption),
		":updated_at": str(formatTime(time.Now().UTC())),
	}
	if p.OriginalImageURL != "" {
		expr += ", #image_url = :image_url"
		names["#image_url"] = "original_image_url"
		vals[":image_url"] = str(p.OriginalImageURL)
	}
	if p.OriginalVideoURL != "" {
		expr += ", #video_url = :video_url"
		names["#video_url"] = "original_video_url"
		vals[":video_url"] = str(p.OriginalVideoURL)
	}
	if p.LocalImageID != nil {
		expr += ", #image_id = :image_id"
		names["#image_id"] = "local_image_id"
		vals[":image_id"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*p.LocalImageID, 10)}
	}
	if p.LocalVideoID != nil {
		expr += ", #video_id = :video_id"
		names["#video_id"] = "local_video_id"
		vals[":video_id"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*p.LocalVideoID, 10)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{database.KeyInstagramPostID: str(p.InstagramPostID)},
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": database.KeyInstagramPostID}),
		ExpressionAttributeValues: vals,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ImportedPost{}, nil
		}
		return entities.ImportedPost{}, err
	}
	var it importedPostItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ImportedPost{}, err
	}
	return fromImportedPostItem(it), nil
}

// List returns posts newest first. An empty owner lists every post.
func (r *ImportedPostDynamoRepository) List(ctx context.Context, ownerUsername string) ([]entities.ImportedPost, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if ownerUsername != "" {
		in.FilterExpression = aws.String("#owner = :owner")
		in.ExpressionAttributeNames = map[string]string{"#owner": "owner_username"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{":owner": str(ownerUsername)}
	}

	var posts []entities.ImportedPost
	for {
		page, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it importedPostItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			posts = append(posts, fromImportedPostItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].PostDate.After(posts[j].PostDate) })
	return posts, nil
}

func toImportedPostItem(p entities.ImportedPost) importedPostItem {
	return importedPostItem{
		InstagramPostID:  p.InstagramPostID,
		Shortcode:        p.Shortcode,
		OwnerUsername:    p.OwnerUsername,
		OriginalImageURL: p.OriginalImageURL,
		LocalImageID:     p.LocalImageID,
		OriginalVideoURL: p.OriginalVideoURL,
		LocalVideoID:     p.LocalVideoID,
		Caption:          p.Caption,
		PostDate:         formatTime(p.PostDate),
		LikesCount:       p.LikesCount,
		CommentsCount:    p.CommentsCount,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func fromImportedPostItem(it importedPostItem) entities.ImportedPost {
	return entities.ImportedPost{
		InstagramPostID:  it.InstagramPostID,
		Shortcode:        it.Shortcode,
		OwnerUsername:    it.OwnerUsername,
		OriginalImageURL: it.OriginalImageURL,
		LocalImageID:     it.LocalImageID,
		OriginalVideoURL: it.OriginalVideoURL,
		LocalVideoID:     it.LocalVideoID,
		Caption:          it.Caption,
		PostDate:         parseTime(it.PostDate),
		LikesCount:       it.LikesCount,
		CommentsCount:    it.CommentsCount,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
