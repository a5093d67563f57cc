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
	"github.com/google/uuid"
)

type orderLineItem struct {
	ProductID string `dynamodbav:"product"`
	Quantity  int64  `dynamodbav:"quantity"`
	Price     int64  `dynamodbav:"price"`
	Name      string `dynamodbav:"name"`
}

type orderItem struct {
	ID               string          `dynamodbav:"id"`
	UserID           string          `dynamodbav:"user_id,omitempty"`
	Items            []orderLineItem `dynamodbav:"items"`
	TotalAmount      int64           `dynamodbav:"total_amount"`
	Currency         string          `dynamodbav:"currency"`
	PaymentReference string          `dynamodbav:"payment_reference,omitempty"`
	Provider         string          `dynamodbav:"provider,omitempty"`
	Status           string          `dynamodbav:"status"`
	CreatedAt        string          `dynamodbav:"created_at"`
	UpdatedAt        string          `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type OrderDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb database.DynamoDBAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	o.CreatedAt, o.UpdatedAt = now, now

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": str(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// UpdateStatus keeps the stored payment reference when paymentReference is empty.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, paymentReference string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     str(string(status)),
			":updated_at": str(now),
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if paymentReference != "" {
			expr += ", #payment_reference = :payment_reference"
			vals[":payment_reference"] = str(paymentReference)
			names["#payment_reference"] = "payment_reference"
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	updateExpr, values, names := build(formatTime(time.Now().UTC()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"id": str(id)},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, li := range o.Items {
		lines = append(lines, orderLineItem{ProductID: li.ProductID, Quantity: li.Quantity, Price: li.Price, Name: li.Name})
	}
	return orderItem{
		ID:               o.ID,
		UserID:           o.UserID,
		Items:            lines,
		TotalAmount:      o.TotalAmount,
		Currency:         string(o.Currency),
		PaymentReference: o.PaymentReference,
		Provider:         o.Provider,
		Status:           string(o.Status),
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	lines := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		lines = append(lines, entities.OrderItem{ProductID: li.ProductID, Quantity: li.Quantity, Price: li.Price, Name: li.Name})
	}
	return entities.Order{
		ID:               it.ID,
		UserID:           it.UserID,
		Items:            lines,
		TotalAmount:      it.TotalAmount,
		Currency:         entities.Currency(it.Currency),
		PaymentReference: it.PaymentReference,
		Provider:         it.Provider,
		Status:           entities.OrderStatus(it.Status),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
