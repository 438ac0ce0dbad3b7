package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"logistics_backoffice/internal/domain/query"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories call.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// dynamoTable holds the item plumbing shared by every record table.
//
// Table requirements:
//   - PK: id (string)
//   - is_active (bool) marks soft deletion
//
// Equality filters are pushed down to the Scan as a FilterExpression; regex
// filters, sort and pagination run in memory over the scanned page set.
type dynamoTable[I any, T any] struct {
	ddb        DynamoAPI
	tableName  string
	area       string
	idOf       func(T) string
	toItem     func(T) I
	fromItem   func(I) T
	filterable map[string]string
	fields     map[string]query.Field[T]
}

// activeCondition guards writes so a soft-deleted item is never rewritten.
const activeCondition = "attribute_exists(#id) AND #is_active = :active"

func activeValues() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{":active": &types.AttributeValueMemberBOOL{Value: true}}
}

func (t dynamoTable[I, T]) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (t dynamoTable[I, T]) create(ctx context.Context, rec T) (T, error) {
	var zero T
	av, err := attributevalue.MarshalMap(t.toItem(rec))
	if err != nil {
		return zero, err
	}

	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		log.Printf("[%s][repository] put failed id=%s err=%v", t.area, t.idOf(rec), err)
		return zero, err
	}
	return rec, nil
}

func (t dynamoTable[I, T]) get(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.tableName),
		Key:            t.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}

	var it I
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return zero, err
	}
	return t.fromItem(it), nil
}

// save overwrites an existing active item. A missing or inactive item yields
// the zero value.
func (t dynamoTable[I, T]) save(ctx context.Context, rec T) (T, error) {
	var zero T
	av, err := attributevalue.MarshalMap(t.toItem(rec))
	if err != nil {
		return zero, err
	}

	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.tableName),
		Item:                      av,
		ConditionExpression:       aws.String(activeCondition),
		ExpressionAttributeValues: activeValues(),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#is_active": "is_active",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, nil
		}
		log.Printf("[%s][repository] save failed id=%s err=%v", t.area, t.idOf(rec), err)
		return zero, err
	}
	return rec, nil
}

func (t dynamoTable[I, T]) deactivate(ctx context.Context, id string) (T, error) {
	return t.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #is_active = :is_active, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":is_active":  &types.AttributeValueMemberBOOL{Value: false},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (t dynamoTable[I, T]) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (T, error) {
	var zero T
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	for k, v := range activeValues() {
		values[k] = v
	}

	out, err := t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.tableName),
		Key:                       t.key(id),
		ConditionExpression:       aws.String(activeCondition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#is_active": "is_active"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, nil
		}
		return zero, err
	}
	if len(out.Attributes) == 0 {
		return zero, nil
	}
	var it I
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return zero, err
	}
	return t.fromItem(it), nil
}

func (t dynamoTable[I, T]) list(ctx context.Context, q query.ListQuery) (query.Page[T], error) {
	input := t.scanInput(q.Filters)

	var items []T
	p := dynamodb.NewScanPaginator(t.ddb, input)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			log.Printf("[%s][repository] scan failed err=%v", t.area, err)
			return query.Page[T]{}, err
		}
		var page []I
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return query.Page[T]{}, err
		}
		for _, it := range page {
			items = append(items, t.fromItem(it))
		}
	}
	return query.Apply(items, q, t.fields), nil
}

// scanInput keeps active items and adds one equality condition per
// allow-listed filter. Unknown filter names are ignored.
func (t dynamoTable[I, T]) scanInput(filters map[string]string) *dynamodb.ScanInput {
	conds := []string{"#is_active = :is_active"}
	names := map[string]string{"#is_active": "is_active"}
	values := map[string]types.AttributeValue{
		":is_active": &types.AttributeValueMemberBOOL{Value: true},
	}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		if _, ok := t.filterable[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for i, k := range keys {
		name := fmt.Sprintf("#f%d", i)
		value := fmt.Sprintf(":f%d", i)
		conds = append(conds, fmt.Sprintf("%s = %s", name, value))
		names[name] = t.filterable[k]
		values[value] = &types.AttributeValueMemberS{Value: filters[k]}
	}

	return &dynamodb.ScanInput{
		TableName:                 aws.String(t.tableName),
		FilterExpression:          aws.String(strings.Join(conds, " AND ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
}

// count counts every item of the table, inactive ones included.
func (t dynamoTable[I, T]) count(ctx context.Context) (int64, error) {
	var total int64
	p := dynamodb.NewScanPaginator(t.ddb, &dynamodb.ScanInput{
		TableName: aws.String(t.tableName),
		Select:    types.SelectCount,
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int64(out.Count)
	}
	return total, nil
}
