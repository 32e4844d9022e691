package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	// Processing taxonomy. These classify every failure mode of the
	// ingestion and conversion runs.
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrMalformedSource      = errors.New("malformed source file")
	ErrInfeasibleConversion = errors.New("conversion not feasible")
	ErrConversionValue      = errors.New("value failed conversion")
	ErrPersistence          = errors.New("persistence failed")
	ErrTimeout              = errors.New("processing timed out")

	// ErrJobActive guards the single-active-job-per-dataset invariant.
	ErrJobActive = errors.New("dataset already has an active job")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// GRPCError maps domain sentinel errors onto gRPC status codes so the
// taxonomy above can travel through errors.Is right up to the transport
// boundary. Errors that already carry a status pass through unchanged.
func GRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return NotFoundError(err.Error())
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrUnsupportedFileType),
		errors.Is(err, ErrMalformedSource):
		return InvalidArgumentError(err.Error())
	case errors.Is(err, ErrInfeasibleConversion), errors.Is(err, ErrJobActive):
		return FailedPreconditionError(err.Error())
	case errors.Is(err, ErrTimeout):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return InternalError(err.Error())
	}
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
