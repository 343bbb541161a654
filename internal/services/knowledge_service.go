package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
)

// RetrieveAndGenerateAPI is the Bedrock Agent Runtime call used to answer prompts
type RetrieveAndGenerateAPI interface {
	RetrieveAndGenerate(ctx context.Context, params *bedrockagentruntime.RetrieveAndGenerateInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.RetrieveAndGenerateOutput, error)
}

// KnowledgeConfig identifies the knowledge base and the model generating answers
type KnowledgeConfig struct {
	KnowledgeBaseID string
	ModelARN        string
}

type knowledgeService struct {
	client RetrieveAndGenerateAPI
	config KnowledgeConfig
}

// NewKnowledgeService creates a new knowledge service instance
func NewKnowledgeService(client RetrieveAndGenerateAPI, config KnowledgeConfig) KnowledgeService {
	return &knowledgeService{
		client: client,
		config: config,
	}
}

// Answer retrieves from the knowledge base and generates a reply to prompt
func (s *knowledgeService) Answer(ctx context.Context, prompt string) (string, error) {
	out, err := s.client.RetrieveAndGenerate(ctx, &bedrockagentruntime.RetrieveAndGenerateInput{
		Input: &types.RetrieveAndGenerateInput{
			Text: aws.String(prompt),
		},
		RetrieveAndGenerateConfiguration: &types.RetrieveAndGenerateConfiguration{
			Type: types.RetrieveAndGenerateTypeKnowledgeBase,
			KnowledgeBaseConfiguration: &types.KnowledgeBaseRetrieveAndGenerateConfiguration{
				KnowledgeBaseId: aws.String(s.config.KnowledgeBaseID),
				ModelArn:        aws.String(s.config.ModelARN),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("retrieve and generate: %w", err)
	}

	if out.Output == nil || out.Output.Text == nil {
		return "", ErrEmptyAnswer
	}

	return *out.Output.Text, nil
}
