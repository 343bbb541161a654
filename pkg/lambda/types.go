package lambda

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrMissingIdentity is returned when a request carries no authorizer subject
var ErrMissingIdentity = errors.New("request has no authorizer subject claim")

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method          string            `json:"method"`
	Path            string            `json:"path"`
	Headers         map[string]string `json:"headers"`
	QueryParams     map[string]string `json:"query_params"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"is_base64_encoded"`
	PathParams      map[string]string `json:"path_params"`
	Claims          map[string]string `json:"claims,omitempty"` // verified upstream by the authorizer
	RequestID       string            `json:"request_id"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// DecodedBody returns the raw body bytes, undoing base64 transfer encoding
func (r *Request) DecodedBody() ([]byte, error) {
	if !r.IsBase64Encoded {
		return []byte(r.Body), nil
	}

	body, err := base64.StdEncoding.DecodeString(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 body: %w", err)
	}
	return body, nil
}

// Claim returns an authorizer claim and whether it was present
func (r *Request) Claim(name string) (string, bool) {
	if r.Claims == nil {
		return "", false
	}
	value, ok := r.Claims[name]
	return value, ok
}

// Subject returns the caller identity asserted by the authorizer
func (r *Request) Subject() (string, error) {
	sub, ok := r.Claim("sub")
	if !ok || sub == "" {
		return "", ErrMissingIdentity
	}
	return sub, nil
}

// LogFields returns the request as structured log fields
func (r *Request) LogFields() logrus.Fields {
	return logrus.Fields{
		"request_id":        r.RequestID,
		"method":            r.Method,
		"path":              r.Path,
		"headers":           r.Headers,
		"query_params":      r.QueryParams,
		"path_params":       r.PathParams,
		"claims":            r.Claims,
		"body":              r.Body,
		"is_base64_encoded": r.IsBase64Encoded,
	}
}
