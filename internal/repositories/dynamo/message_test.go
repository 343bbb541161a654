package dynamo

import (
	"context"
	"errors"
	"testing"

	"chat-assistant-api/internal/models"
	"chat-assistant-api/internal/repositories"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_ListBySession(t *testing.T) {
	ctx := context.Background()

	t.Run("queries oldest first", func(t *testing.T) {
		client := new(mockDynamoDB)
		client.On("Query", ctx, mock.Anything).Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{
				{
					"sessionId": &types.AttributeValueMemberS{Value: "s-1"},
					"timestamp": &types.AttributeValueMemberN{Value: "1"},
					"role":      &types.AttributeValueMemberS{Value: "user"},
					"content":   &types.AttributeValueMemberS{Value: "hi"},
				},
				{
					"sessionId": &types.AttributeValueMemberS{Value: "s-1"},
					"timestamp": &types.AttributeValueMemberN{Value: "2"},
					"role":      &types.AttributeValueMemberS{Value: "assistant"},
					"content":   &types.AttributeValueMemberS{Value: "hello"},
				},
			},
		}, nil)

		repo := NewMessageRepository(client, "ChatMessages", nil)
		messages, err := repo.ListBySession(ctx, "s-1")
		require.NoError(t, err)

		input := client.Calls[0].Arguments.Get(1).(*dynamodb.QueryInput)
		assert.Equal(t, "ChatMessages", aws.ToString(input.TableName))
		assert.True(t, aws.ToBool(input.ScanIndexForward))
		assert.Contains(t, nameValues(input.ExpressionAttributeNames), "sessionId")
		assert.Equal(t, []string{"s-1"}, stringValues(input.ExpressionAttributeValues))

		require.Len(t, messages, 2)
		assert.Equal(t, models.RoleUser, messages[0].Role)
		assert.Equal(t, int64(2), messages[1].Timestamp)
		assert.Equal(t, "hello", messages[1].Content)
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		client := new(mockDynamoDB)
		client.On("Query", ctx, mock.Anything).Return(nil, errors.New("throttled"))

		repo := NewMessageRepository(client, "ChatMessages", nil)
		_, err := repo.ListBySession(ctx, "s-1")

		var repoErr *repositories.RepositoryError
		require.ErrorAs(t, err, &repoErr)
		assert.Equal(t, "message", repoErr.Entity)
	})
}

func TestMessageRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("puts item without condition", func(t *testing.T) {
		client := new(mockDynamoDB)
		client.On("PutItem", ctx, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		repo := NewMessageRepository(client, "ChatMessages", nil)
		err := repo.Create(ctx, models.NewChatMessage("s-1", 1700000000001, models.RoleAssistant, "answer"))
		require.NoError(t, err)

		input := client.Calls[0].Arguments.Get(1).(*dynamodb.PutItemInput)
		assert.Nil(t, input.ConditionExpression)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "assistant"}, input.Item["role"])
		assert.Equal(t, &types.AttributeValueMemberN{Value: "1700000000001"}, input.Item["timestamp"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "answer"}, input.Item["content"])
	})

	t.Run("invalid message is rejected", func(t *testing.T) {
		client := new(mockDynamoDB)

		repo := NewMessageRepository(client, "ChatMessages", nil)
		err := repo.Create(ctx, models.NewChatMessage("", 1, models.RoleUser, "hi"))
		assert.ErrorIs(t, err, repositories.ErrValidation)
		client.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything)
	})
}
