package dynamo

import (
	"context"
	"errors"
	"time"

	"chat-assistant-api/internal/repositories"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// API is the subset of the DynamoDB client used by the repositories
type API interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// BaseRepository provides common functionality for all DynamoDB repositories
type BaseRepository struct {
	client API
	table  string
	entity string
	logger *logrus.Logger
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(client API, table, entity string, logger *logrus.Logger) *BaseRepository {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &BaseRepository{
		client: client,
		table:  table,
		entity: entity,
		logger: logger,
	}
}

// Table returns the backing table name
func (r *BaseRepository) Table() string {
	return r.table
}

// query runs a single Query call. Results beyond the first page are not fetched.
func (r *BaseRepository) query(ctx context.Context, op string, key expression.KeyConditionBuilder, scanForward *bool) ([]map[string]types.AttributeValue, error) {
	expr, err := expression.NewBuilder().WithKeyCondition(key).Build()
	if err != nil {
		return nil, repositories.NewRepositoryError(op, r.entity, r.table, err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          scanForward,
	}

	start := time.Now()
	out, err := r.client.Query(ctx, input)
	r.logOperation(op, start, err)
	if err != nil {
		return nil, repositories.NewRepositoryError(op, r.entity, r.table, err)
	}

	return out.Items, nil
}

// put writes item, optionally guarded by a condition
func (r *BaseRepository) put(ctx context.Context, op string, item interface{}, cond *expression.ConditionBuilder) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return repositories.NewRepositoryError(op, r.entity, r.table, err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	}

	if cond != nil {
		expr, err := expression.NewBuilder().WithCondition(*cond).Build()
		if err != nil {
			return repositories.NewRepositoryError(op, r.entity, r.table, err)
		}
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	start := time.Now()
	_, err = r.client.PutItem(ctx, input)
	r.logOperation(op, start, err)
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return repositories.DuplicateError(r.entity, r.table, err)
		}
		return repositories.NewRepositoryError(op, r.entity, r.table, err)
	}

	return nil
}

func (r *BaseRepository) logOperation(op string, start time.Time, err error) {
	fields := logrus.Fields{
		"table":       r.table,
		"operation":   op,
		"duration_ms": float64(time.Since(start).Nanoseconds()) / 1000000,
	}

	if err != nil {
		fields["error"] = err.Error()
		r.logger.WithFields(fields).Debug("DynamoDB operation failed")
		return
	}

	r.logger.WithFields(fields).Debug("DynamoDB operation completed")
}
