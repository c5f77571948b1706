package mapping

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/eslsoft/examprep/internal/entity"
)

// errorCode classifies domain errors. connect.Code shares the gRPC numbering, so both
// transports read the same table.
func errorCode(err error) codes.Code {
	switch {
	case errors.Is(err, entity.ErrInvalidUserID):
		return codes.Unauthenticated
	case errors.Is(err, entity.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, entity.ErrInvalidYear), errors.Is(err, entity.ErrInvalidSlug),
		errors.Is(err, entity.ErrInvalidMaterialID), errors.Is(err, entity.ErrInvalidFilter):
		return codes.InvalidArgument
	case errors.Is(err, entity.ErrMissingFileURL), errors.Is(err, entity.ErrMissingVideoURL):
		return codes.FailedPrecondition
	case errors.Is(err, entity.ErrStaleNavigation):
		return codes.Aborted
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case entity.IsRemote(err):
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// ToPbError maps domain errors onto gRPC status errors. Errors that already carry a
// status pass through unchanged.
func ToPbError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(errorCode(err), err.Error())
}

// ToConnectError maps domain errors onto connect codes. Errors that already carry a
// connect code pass through unchanged.
func ToConnectError(err error) error {
	var connectErr *connect.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &connectErr):
		return err
	default:
		return connect.NewError(connect.Code(errorCode(err)), err)
	}
}
