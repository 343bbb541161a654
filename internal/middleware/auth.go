package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// Context keys set by Authentication
const (
	ClaimsKey = "claims"
	UserIDKey = "user_id"
)

// ErrInvalidToken is returned for any token the authorizer rejects
var ErrInvalidToken = errors.New("invalid token")

// AuthConfig holds local authorizer configuration
type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration
	Issuer        string
}

// Authorizer signs and verifies the HS256 tokens used by the development
// server in place of the API Gateway JWT authorizer
type Authorizer struct {
	config *AuthConfig
}

// NewAuthorizer creates a new local authorizer
func NewAuthorizer(config *AuthConfig) *Authorizer {
	if config.TokenDuration == 0 {
		config.TokenDuration = time.Hour
	}
	if config.Issuer == "" {
		config.Issuer = "chat-assistant-local"
	}
	return &Authorizer{config: config}
}

// IssueToken signs a token for the given subject
func (a *Authorizer) IssueToken(subject, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iss": a.config.Issuer,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(a.config.TokenDuration).Unix(),
	}
	if email != "" {
		claims["email"] = email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(a.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken verifies a token and flattens its claims to strings, the way
// the gateway hands them to a function
func (a *Authorizer) ValidateToken(tokenString string) (map[string]string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(a.config.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.config.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims := make(map[string]string, len(mapClaims))
	for name, value := range mapClaims {
		claims[name] = claimString(value)
	}
	return claims, nil
}

func claimString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

// Authentication middleware that validates bearer tokens
func Authentication(authorizer *Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := authorizer.ValidateToken(tokenString)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error": err.Error(),
				"path":  c.Request.URL.Path,
			}).Warn("Token validation failed")

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims["sub"])
		c.Next()
	}
}

// GetClaimsFromContext returns the claims stored by Authentication
func GetClaimsFromContext(c *gin.Context) (map[string]string, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(map[string]string)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
