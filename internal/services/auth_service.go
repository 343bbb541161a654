package services

import (
	"context"
	"fmt"

	"chat-assistant-api/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// InitiateAuthAPI is the Cognito call used for password logins
type InitiateAuthAPI interface {
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
}

// authService implements the AuthService interface against a Cognito app client
type authService struct {
	client   InitiateAuthAPI
	clientID string
}

// NewAuthService creates a new auth service instance
func NewAuthService(client InitiateAuthAPI, clientID string) AuthService {
	return &authService{
		client:   client,
		clientID: clientID,
	}
}

// Authenticate runs the USER_PASSWORD_AUTH flow and returns the issued tokens
func (s *authService) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.TokenBundle, error) {
	if req == nil {
		return nil, fmt.Errorf("login request cannot be nil")
	}

	out, err := s.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(s.clientID),
		AuthParameters: map[string]string{
			"USERNAME": req.Username,
			"PASSWORD": req.Password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("initiate auth: %w", err)
	}

	result := out.AuthenticationResult
	if result == nil {
		if out.ChallengeName != "" {
			return nil, fmt.Errorf("%w: challenge %s", ErrNoAuthenticationResult, out.ChallengeName)
		}
		return nil, ErrNoAuthenticationResult
	}

	return &models.TokenBundle{
		AccessToken:  aws.ToString(result.AccessToken),
		IDToken:      aws.ToString(result.IdToken),
		RefreshToken: aws.ToString(result.RefreshToken),
		ExpiresIn:    result.ExpiresIn,
	}, nil
}
