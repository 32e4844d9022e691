package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCErrorMapsSentinels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code codes.Code
	}{
		{ErrNotFound, codes.NotFound},
		{ErrInvalidInput, codes.InvalidArgument},
		{ErrUnsupportedFileType, codes.InvalidArgument},
		{ErrMalformedSource, codes.InvalidArgument},
		{ErrInfeasibleConversion, codes.FailedPrecondition},
		{ErrJobActive, codes.FailedPrecondition},
		{ErrTimeout, codes.DeadlineExceeded},
		{ErrPersistence, codes.Internal},
		{errors.New("anything else"), codes.Internal},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("context: %w", tc.err)
		assert.Equal(t, tc.code, status.Code(GRPCError(wrapped)), "for %v", tc.err)
	}
}

func TestGRPCErrorPassesStatusThrough(t *testing.T) {
	t.Parallel()

	err := FailedPreconditionError("already running")
	assert.Equal(t, err, GRPCError(err))
	assert.Equal(t, codes.FailedPrecondition, status.Code(GRPCError(err)))

	require.NoError(t, GRPCError(nil))
}

func TestGRPCErrorKeepsMessage(t *testing.T) {
	t.Parallel()

	err := GRPCError(fmt.Errorf("%w: values not convertible to INTEGER", ErrInfeasibleConversion))
	assert.Contains(t, err.Error(), "values not convertible to INTEGER")
	assert.Contains(t, err.Error(), ErrInfeasibleConversion.Error())
}
