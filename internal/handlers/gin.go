package handlers

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"chat-assistant-api/internal/middleware"
	"chat-assistant-api/pkg/lambda"
)

// Gin mounts a serverless handler on the development server. The request is
// shaped the way API Gateway would deliver it and handler errors are left on
// the context for middleware.ErrorHandler.
func Gin(h lambda.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := requestFromGin(c)
		if err != nil {
			_ = c.Error(err)
			return
		}

		resp, err := h(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			return
		}

		for name, value := range resp.Headers {
			c.Header(name, value)
		}
		c.Status(resp.StatusCode)
		if len(resp.Body) == 0 {
			c.Writer.WriteHeaderNow()
			return
		}
		_, _ = c.Writer.Write(resp.Body)
	}
}

func requestFromGin(c *gin.Context) (*lambda.Request, error) {
	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
	}

	headers := make(map[string]string, len(c.Request.Header))
	for name, values := range c.Request.Header {
		headers[strings.ToLower(name)] = strings.Join(values, ",")
	}

	var query map[string]string
	if values := c.Request.URL.Query(); len(values) > 0 {
		query = make(map[string]string, len(values))
		for name, v := range values {
			query[name] = strings.Join(v, ",")
		}
	}

	var pathParams map[string]string
	if len(c.Params) > 0 {
		pathParams = make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			pathParams[p.Key] = p.Value
		}
	}

	claims, _ := middleware.GetClaimsFromContext(c)

	return &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        string(body),
		PathParams:  pathParams,
		Claims:      claims,
		RequestID:   c.GetString(middleware.RequestIDKey),
	}, nil
}
