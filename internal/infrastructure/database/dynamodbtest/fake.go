// Package dynamodbtest provides an in-memory DynamoDB used by repository tests.
// It supports the expression subset the repositories emit: SET/ADD/REMOVE
// updates, attribute_exists/attribute_not_exists, begins_with, comparisons,
// AND/OR/NOT and parentheses.
package dynamodbtest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

// Fake is safe for concurrent use.
type Fake struct {
	mu     sync.Mutex
	keys   map[string]string
	tables map[string]map[string]item
	errs   map[string]error
	calls  map[string]int
}

func New() *Fake {
	return &Fake{
		keys:   map[string]string{},
		tables: map[string]map[string]item{},
		errs:   map[string]error{},
		calls:  map[string]int{},
	}
}

// WithKey declares the hash key attribute of a table. Tables default to "id".
func (f *Fake) WithKey(table, attr string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys[table] = attr
	return f
}

// FailOn makes every call of op ("PutItem", "GetItem", ...) return err until
// cleared with a nil err.
func (f *Fake) FailOn(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.errs, op)
		return
	}
	f.errs[op] = err
}

// Calls returns how many times op was invoked.
func (f *Fake) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// Items returns a copy of every item stored in table, ordered by key.
func (f *Fake) Items(table string) []map[string]types.AttributeValue {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sortedItems(table)
}

func (f *Fake) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("PutItem"); err != nil {
		return nil, err
	}
	table := aws.ToString(in.TableName)
	k, err := f.keyOf(table, in.Item)
	if err != nil {
		return nil, err
	}
	current := f.table(table)[k]
	if err := checkCondition(in.ConditionExpression, current, in.ExpressionAttributeNames, in.ExpressionAttributeValues); err != nil {
		return nil, err
	}
	f.table(table)[k] = clone(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *Fake) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetItem"); err != nil {
		return nil, err
	}
	table := aws.ToString(in.TableName)
	k, err := f.keyOf(table, in.Key)
	if err != nil {
		return nil, err
	}
	it, ok := f.table(table)[k]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: clone(it)}, nil
}

func (f *Fake) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("UpdateItem"); err != nil {
		return nil, err
	}
	table := aws.ToString(in.TableName)
	k, err := f.keyOf(table, in.Key)
	if err != nil {
		return nil, err
	}
	current, exists := f.table(table)[k]
	if err := checkCondition(in.ConditionExpression, current, in.ExpressionAttributeNames, in.ExpressionAttributeValues); err != nil {
		return nil, err
	}

	next := clone(current)
	if !exists {
		next = clone(in.Key)
	}
	if err := applyUpdate(aws.ToString(in.UpdateExpression), next, in.ExpressionAttributeNames, in.ExpressionAttributeValues); err != nil {
		return nil, err
	}
	f.table(table)[k] = next

	out := &dynamodb.UpdateItemOutput{}
	switch in.ReturnValues {
	case types.ReturnValueAllNew:
		out.Attributes = clone(next)
	case types.ReturnValueAllOld:
		if exists {
			out.Attributes = clone(current)
		}
	}
	return out, nil
}

func (f *Fake) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DeleteItem"); err != nil {
		return nil, err
	}
	table := aws.ToString(in.TableName)
	k, err := f.keyOf(table, in.Key)
	if err != nil {
		return nil, err
	}
	current := f.table(table)[k]
	if err := checkCondition(in.ConditionExpression, current, in.ExpressionAttributeNames, in.ExpressionAttributeValues); err != nil {
		return nil, err
	}
	delete(f.table(table), k)
	return &dynamodb.DeleteItemOutput{}, nil
}

// Scan ignores Limit and pagination and returns every matching item.
func (f *Fake) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Scan"); err != nil {
		return nil, err
	}
	var out []map[string]types.AttributeValue
	for _, it := range f.sortedItems(aws.ToString(in.TableName)) {
		if in.FilterExpression != nil {
			ok, err := evalCondition(*in.FilterExpression, it, in.ExpressionAttributeNames, in.ExpressionAttributeValues)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		out = append(out, it)
	}
	return &dynamodb.ScanOutput{Items: out, Count: int32(len(out)), ScannedCount: int32(len(out))}, nil
}

func (f *Fake) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateTable"); err != nil {
		return nil, err
	}
	table := aws.ToString(in.TableName)
	if _, ok := f.tables[table]; ok {
		return nil, &types.ResourceInUseException{Message: aws.String("table already exists: " + table)}
	}
	for _, ks := range in.KeySchema {
		if ks.KeyType == types.KeyTypeHash {
			f.keys[table] = aws.ToString(ks.AttributeName)
		}
	}
	f.tables[table] = map[string]item{}
	return &dynamodb.CreateTableOutput{TableDescription: &types.TableDescription{TableName: in.TableName, TableStatus: types.TableStatusActive}}, nil
}

func (f *Fake) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DescribeTable"); err != nil {
		return nil, err
	}
	table := aws.ToString(in.TableName)
	if _, ok := f.tables[table]; !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("table not found: " + table)}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableName: in.TableName, TableStatus: types.TableStatusActive}}, nil
}

func (f *Fake) enter(op string) error {
	f.calls[op]++
	return f.errs[op]
}

func (f *Fake) table(name string) map[string]item {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]item{}
		f.tables[name] = t
	}
	return t
}

func (f *Fake) keyOf(table string, it item) (string, error) {
	attr := f.keys[table]
	if attr == "" {
		attr = "id"
	}
	av, ok := it[attr]
	if !ok {
		return "", fmt.Errorf("dynamodbtest: missing key attribute %q for table %q", attr, table)
	}
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return "S:" + v.Value, nil
	case *types.AttributeValueMemberN:
		return "N:" + v.Value, nil
	}
	return "", fmt.Errorf("dynamodbtest: unsupported key type %T", av)
}

func (f *Fake) sortedItems(table string) []map[string]types.AttributeValue {
	t := f.tables[table]
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, clone(t[k]))
	}
	return out
}

func clone(it item) item {
	if it == nil {
		return item{}
	}
	out := make(item, len(it))
	for k, v := range it {
		out[k] = v
	}
	return out
}

func checkCondition(expr *string, current item, names map[string]string, values map[string]types.AttributeValue) error {
	if expr == nil || *expr == "" {
		return nil
	}
	ok, err := evalCondition(*expr, current, names, values)
	if err != nil {
		return err
	}
	if !ok {
		return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	return nil
}
