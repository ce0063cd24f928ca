package operations

import (
	"context"
	"testing"
	"time"

	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macosusesdk/automationd/internal/apierr"
)

func result(v map[string]any) *structpb.Struct {
	st, err := structpb.NewStruct(v)
	if err != nil {
		panic(err)
	}
	return st
}

func TestCreateGetFinish(t *testing.T) {
	s := NewStore()

	op, err := s.Create("operations/openApplication/a1", result(map[string]any{"id": "com.apple.TextEdit"}))
	require.NoError(t, err)
	assert.False(t, op.GetDone())
	assert.NotNil(t, op.GetMetadata())

	got, err := s.Get("operations/openApplication/a1")
	require.NoError(t, err)
	assert.False(t, got.GetDone())

	require.NoError(t, s.Finish("operations/openApplication/a1", result(map[string]any{"pid": 321.0})))

	got, err = s.Get("operations/openApplication/a1")
	require.NoError(t, err)
	assert.True(t, got.GetDone())
	require.NotNil(t, got.GetResponse())
	assert.Nil(t, got.GetError())
}

func TestFinishNilResponse(t *testing.T) {
	s := NewStore()
	_, err := s.Create("operations/openApplication/a2", nil)
	require.NoError(t, err)

	require.NoError(t, s.Finish("operations/openApplication/a2", nil))

	got, err := s.Get("operations/openApplication/a2")
	require.NoError(t, err)
	assert.True(t, got.GetDone())
	assert.Nil(t, got.GetResponse())
	assert.Nil(t, got.GetError())

	// Wait must observe the completion, not poll to the deadline.
	op, err := s.Wait(context.Background(), "operations/openApplication/a2", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, op.GetDone())
}

func TestFirstResultWins(t *testing.T) {
	s := NewStore()
	_, err := s.Create("operations/executeMacro/m1", nil)
	require.NoError(t, err)

	require.NoError(t, s.Finish("operations/executeMacro/m1", result(map[string]any{"macro": "macros/x"})))

	// Later failure of an already-done operation is swallowed.
	require.NoError(t, s.Fail("operations/executeMacro/m1", &statuspb.Status{
		Code: int32(codes.Internal), Message: "too late",
	}))

	got, err := s.Get("operations/executeMacro/m1")
	require.NoError(t, err)
	assert.NotNil(t, got.GetResponse())
	assert.Nil(t, got.GetError())
}

func TestFailAndCancel(t *testing.T) {
	s := NewStore()
	_, err := s.Create("operations/createObservation/o1", nil)
	require.NoError(t, err)
	require.NoError(t, s.Fail("operations/createObservation/o1", &statuspb.Status{
		Code: int32(codes.NotFound), Message: "no process",
	}))
	got, err := s.Get("operations/createObservation/o1")
	require.NoError(t, err)
	assert.True(t, got.GetDone())
	assert.Equal(t, int32(codes.NotFound), got.GetError().GetCode())

	_, err = s.Create("operations/createObservation/o2", nil)
	require.NoError(t, err)
	require.NoError(t, s.Cancel("operations/createObservation/o2"))
	got, err = s.Get("operations/createObservation/o2")
	require.NoError(t, err)
	assert.True(t, got.GetDone())
	assert.Equal(t, int32(codes.Canceled), got.GetError().GetCode())

	// Cancelling a done operation leaves the original result in place.
	require.NoError(t, s.Cancel("operations/createObservation/o1"))
	got, err = s.Get("operations/createObservation/o1")
	require.NoError(t, err)
	assert.Equal(t, int32(codes.NotFound), got.GetError().GetCode())
}

func TestNotFound(t *testing.T) {
	s := NewStore()
	_, err := s.Get("operations/nope")
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, apierr.ReasonOperationNotFound, apierr.Reason(err))

	assert.Error(t, s.Delete("operations/nope"))
	assert.Error(t, s.Cancel("operations/nope"))
	assert.Error(t, s.Fail("operations/nope", &statuspb.Status{}))
}

func TestDelete(t *testing.T) {
	s := NewStore()
	_, err := s.Create("operations/x", nil)
	require.NoError(t, err)
	require.NoError(t, s.Delete("operations/x"))
	_, err = s.Get("operations/x")
	assert.Error(t, err)
}

func TestWaitReturnsOnCompletion(t *testing.T) {
	s := NewStore()
	_, err := s.Create("operations/w1", nil)
	require.NoError(t, err)

	go func() {
		time.Sleep(150 * time.Millisecond)
		_ = s.Finish("operations/w1", result(map[string]any{"ok": true}))
	}()

	op, err := s.Wait(context.Background(), "operations/w1", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, op.GetDone())
}

func TestWaitTimeoutReturnsSnapshot(t *testing.T) {
	s := NewStore()
	_, err := s.Create("operations/w2", nil)
	require.NoError(t, err)

	start := time.Now()
	op, err := s.Wait(context.Background(), "operations/w2", 250*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, op.GetDone(), "timeout returns the pending snapshot, not an error")
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestListPrefixAndDoneFilter(t *testing.T) {
	s := NewStore()
	for _, name := range []string{
		"operations/executeMacro/a",
		"operations/executeMacro/b",
		"operations/openApplication/c",
	} {
		_, err := s.Create(name, nil)
		require.NoError(t, err)
	}
	require.NoError(t, s.Finish("operations/executeMacro/a", result(map[string]any{})))

	ops, next, err := s.List("operations/executeMacro/", nil, 10, "")
	require.NoError(t, err)
	assert.Empty(t, next)
	require.Len(t, ops, 2)
	assert.Equal(t, "operations/executeMacro/a", ops[0].GetName())
	assert.Equal(t, "operations/executeMacro/b", ops[1].GetName())

	ops, _, err = s.List("", proto.Bool(true), 10, "")
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "operations/executeMacro/a", ops[0].GetName())

	ops, _, err = s.List("", proto.Bool(false), 10, "")
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "operations/executeMacro/b", ops[0].GetName())
	assert.Equal(t, "operations/openApplication/c", ops[1].GetName())
}

func TestListPagination(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"operations/a", "operations/b", "operations/c"} {
		_, err := s.Create(name, nil)
		require.NoError(t, err)
	}

	page, next, err := s.List("", nil, 2, "")
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotEmpty(t, next)

	page, next, err = s.List("", nil, 2, next)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Empty(t, next)

	_, _, err = s.List("", nil, 2, "garbage!")
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonInvalidPageToken, apierr.Reason(err))
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s := NewStore()
	op, err := s.Create("operations/iso", nil)
	require.NoError(t, err)

	// Mutating the returned snapshot must not leak into the store.
	op.Done = true
	got, err := s.Get("operations/iso")
	require.NoError(t, err)
	assert.False(t, got.GetDone())
}
