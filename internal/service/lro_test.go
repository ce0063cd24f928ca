package service

import (
	"testing"

	"google.golang.org/grpc/codes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/operations"
)

func TestFinishOperationSuccess(t *testing.T) {
	ops := operations.NewStore()
	svc := New(Deps{Ops: ops})

	name := newOperationName(kindOpenApplication)
	_, err := ops.Create(name, nil)
	require.NoError(t, err)

	svc.finishOperation(kindOpenApplication, name, map[string]any{"pid": 42.0}, nil)

	op, err := ops.Get(name)
	require.NoError(t, err)
	assert.True(t, op.GetDone())
	assert.NotNil(t, op.GetResponse())
	assert.Nil(t, op.GetError())
}

func TestFinishOperationUnpackableResponse(t *testing.T) {
	ops := operations.NewStore()
	svc := New(Deps{Ops: ops})

	name := newOperationName(kindOpenApplication)
	_, err := ops.Create(name, nil)
	require.NoError(t, err)

	// Invalid UTF-8 cannot be packed into a structpb value; the operation
	// must still complete rather than stay pending forever.
	svc.finishOperation(kindOpenApplication, name, map[string]any{"displayName": "\xff\xfe"}, nil)

	op, err := ops.Get(name)
	require.NoError(t, err)
	assert.True(t, op.GetDone())
	assert.Nil(t, op.GetResponse())
	assert.Nil(t, op.GetError())
}

func TestFinishOperationError(t *testing.T) {
	ops := operations.NewStore()
	svc := New(Deps{Ops: ops})

	name := newOperationName(kindExecuteMacro)
	_, err := ops.Create(name, nil)
	require.NoError(t, err)

	svc.finishOperation(kindExecuteMacro, name, nil, apierr.NotFound(apierr.ReasonMacroNotFound, "macros/gone"))

	op, err := ops.Get(name)
	require.NoError(t, err)
	assert.True(t, op.GetDone())
	require.NotNil(t, op.GetError())
	assert.Equal(t, int32(codes.NotFound), op.GetError().GetCode())
}
