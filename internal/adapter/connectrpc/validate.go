package connectrpc

import (
	"context"

	"connectrpc.com/connect"
)

type validator interface {
	Validate() error
}

// NewValidateInterceptor rejects requests whose generated Validate method fails, the
// connect counterpart of the gRPC validator middleware.
func NewValidateInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if v, ok := req.Any().(validator); ok {
				if err := v.Validate(); err != nil {
					return nil, connect.NewError(connect.CodeInvalidArgument, err)
				}
			}
			return next(ctx, req)
		}
	}
}
