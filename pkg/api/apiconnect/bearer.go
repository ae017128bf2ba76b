package apiconnect

import (
	"context"

	"connectrpc.com/connect"
)

// WithBearerToken returns a client interceptor that sends token in the
// Authorization header of every request.
func WithBearerToken(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}
