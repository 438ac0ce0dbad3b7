package repository

import (
	"context"
	"fmt"
	"strconv"

	"logistics_backoffice/internal/domain/identifier"
	"logistics_backoffice/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCountersTableName = "counters"
	ShipmentCounterName      = "shipments"
)

// DynamoCounterSequence draws sequence numbers from an atomic counter item.
//
// Table requirements:
//   - PK: id (string), one item per counter
//   - seq (number), created on first use
type DynamoCounterSequence struct {
	ddb       DynamoAPI
	tableName string
	name      string
}

var _ identifier.Sequence = (*DynamoCounterSequence)(nil)

func NewDynamoCounterSequence(ddb DynamoAPI, name string) *DynamoCounterSequence {
	return &DynamoCounterSequence{
		ddb:       ddb,
		tableName: pkg.GetenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		name:      name,
	}
}

func (s *DynamoCounterSequence) Next(ctx context.Context) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: s.name},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s: missing seq attribute", s.name)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
