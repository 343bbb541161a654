package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// FromAPIGatewayV2 converts an HTTP API (payload format 2.0) event to a generic request
func FromAPIGatewayV2(event events.APIGatewayV2HTTPRequest) *Request {
	req := &Request{
		Method:          event.RequestContext.HTTP.Method,
		Path:            event.RawPath,
		Headers:         event.Headers,
		QueryParams:     event.QueryStringParameters,
		Body:            event.Body,
		IsBase64Encoded: event.IsBase64Encoded,
		PathParams:      event.PathParameters,
		RequestID:       event.RequestContext.RequestID,
	}

	if authorizer := event.RequestContext.Authorizer; authorizer != nil && authorizer.JWT != nil {
		req.Claims = authorizer.JWT.Claims
	}

	return req
}

// ToAPIGatewayV2 converts a generic response to an HTTP API response
func ToAPIGatewayV2(resp *Response) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

// Adapt wraps a handler for lambda.Start. Handler errors are returned to the
// runtime untouched.
func Adapt(h HandlerFunc) func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		req := FromAPIGatewayV2(event)
		if lc, ok := lambdacontext.FromContext(ctx); ok && req.RequestID == "" {
			req.RequestID = lc.AwsRequestID
		}

		resp, err := h(ctx, req)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{}, err
		}
		return ToAPIGatewayV2(resp), nil
	}
}
