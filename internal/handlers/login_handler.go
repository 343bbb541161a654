package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"chat-assistant-api/internal/models"
	"chat-assistant-api/internal/services"
	"chat-assistant-api/pkg/lambda"
)

// InvalidCredentialsMessage is the only failure detail a login caller ever sees
const InvalidCredentialsMessage = "Invalid username or password"

// LoginHandler exchanges credentials for Cognito tokens
type LoginHandler struct {
	authService services.AuthService
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(authService services.AuthService) *LoginHandler {
	return &LoginHandler{
		authService: authService,
	}
}

// @Summary Login
// @Description Exchange a username and password for Cognito tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.TokenBundle
// @Failure 401 {object} MessageResponse
// @Router /auth/login [post]
func (h *LoginHandler) HandleLogin(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
	// Nothing escapes this handler: every failure is the same 401.
	defer func() {
		if r := recover(); r != nil {
			h.logFailure(req, fmt.Errorf("panic: %v", r))
			resp, err = unauthorizedResponse(), nil
		}
	}()

	body, err := h.login(ctx, req)
	if err != nil {
		h.logFailure(req, err)
		return unauthorizedResponse(), nil
	}

	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			headerContentType:  contentTypeJSON,
			headerAllowOrigin:  "*",
			headerAllowHeaders: "Content-Type",
			headerAllowMethods: "POST,OPTIONS",
		},
		Body: body,
	}, nil
}

func (h *LoginHandler) login(ctx context.Context, req *lambda.Request) ([]byte, error) {
	raw, err := req.DecodedBody()
	if err != nil {
		return nil, err
	}

	var credentials models.LoginRequest
	if err := json.Unmarshal(raw, &credentials); err != nil {
		return nil, fmt.Errorf("invalid login body: %w", err)
	}

	tokens, err := h.authService.Authenticate(ctx, &credentials)
	if err != nil {
		return nil, err
	}

	return json.Marshal(tokens)
}

func (h *LoginHandler) logFailure(req *lambda.Request, err error) {
	logrus.WithFields(logrus.Fields{
		"request_id": req.RequestID,
		"error":      err.Error(),
	}).Error("Login error")
}

func unauthorizedResponse() *lambda.Response {
	body, _ := json.Marshal(MessageResponse{Message: InvalidCredentialsMessage})
	return &lambda.Response{
		StatusCode: http.StatusUnauthorized,
		Headers: map[string]string{
			headerContentType: contentTypeJSON,
			headerAllowOrigin: "*",
		},
		Body: body,
	}
}
