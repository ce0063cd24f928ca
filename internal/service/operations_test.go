package service

import (
	"context"
	"testing"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macosusesdk/automationd/internal/operations"
)

func TestListOperationsDoneFilter(t *testing.T) {
	ops := operations.NewStore()
	svc := NewOperationsService(ops)
	ctx := context.Background()

	_, err := ops.Create("operations/executeMacro/done", nil)
	require.NoError(t, err)
	_, err = ops.Create("operations/executeMacro/pending", nil)
	require.NoError(t, err)
	st, err := structpb.NewStruct(map[string]any{"ok": true})
	require.NoError(t, err)
	require.NoError(t, ops.Finish("operations/executeMacro/done", st))

	resp, err := svc.ListOperations(ctx, &longrunningpb.ListOperationsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.GetOperations(), 2)

	resp, err = svc.ListOperations(ctx, &longrunningpb.ListOperationsRequest{Filter: "done=true"})
	require.NoError(t, err)
	require.Len(t, resp.GetOperations(), 1)
	assert.Equal(t, "operations/executeMacro/done", resp.GetOperations()[0].GetName())

	resp, err = svc.ListOperations(ctx, &longrunningpb.ListOperationsRequest{Filter: "done=false"})
	require.NoError(t, err)
	require.Len(t, resp.GetOperations(), 1)
	assert.Equal(t, "operations/executeMacro/pending", resp.GetOperations()[0].GetName())
}

func TestListOperationsRejectsUnknownFilter(t *testing.T) {
	svc := NewOperationsService(operations.NewStore())

	for _, filter := range []string{"done", "done=maybe", "name=x"} {
		_, err := svc.ListOperations(context.Background(), &longrunningpb.ListOperationsRequest{Filter: filter})
		require.Error(t, err, filter)
		assert.Equal(t, codes.InvalidArgument, status.Code(err), filter)
	}
}
