package apierr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNewCarriesErrorInfo(t *testing.T) {
	err := New(codes.NotFound, ReasonWindowNotFound, "window gone",
		map[string]string{"resource": "applications/1/windows/2"})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "window gone", st.Message())

	var info *errdetails.ErrorInfo
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			info = ei
		}
	}
	require.NotNil(t, info)
	assert.Equal(t, Domain, info.GetDomain())
	assert.Equal(t, ReasonWindowNotFound, info.GetReason())
	assert.Equal(t, "applications/1/windows/2", info.GetMetadata()["resource"])
}

func TestReason(t *testing.T) {
	assert.Equal(t, ReasonMacroNotFound, Reason(NotFound(ReasonMacroNotFound, "macros/x")))
	assert.Equal(t, "", Reason(status.Error(codes.Internal, "bare")))
	assert.Equal(t, "", Reason(nil))
}

func TestRequiredField(t *testing.T) {
	err := RequiredField("macro.id")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, ReasonRequiredField, Reason(err))
}

func TestPlatformWrapsPlainErrors(t *testing.T) {
	err := Platform(errors.New("AXUIElementCopyAttributeValue failed"))
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, ReasonPlatformError, Reason(err))
}

func TestPlatformPassesStatusThrough(t *testing.T) {
	orig := PermissionDenied(ReasonAccessibilityDenied, "not trusted")
	assert.Equal(t, orig, Platform(orig))
	assert.Nil(t, Platform(nil))
}
