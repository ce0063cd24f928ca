package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/pb"
)

func newClockedManager() (*Manager, *time.Time) {
	m := NewManager()
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m.SetClock(func() time.Time { return clock })
	return m, &clock
}

func TestCreateAndGet(t *testing.T) {
	m, _ := newClockedManager()
	s := m.Create(map[string]string{"client": "sdk-test"})
	assert.Equal(t, pb.SessionState_SESSION_ACTIVE, s.State)
	assert.Equal(t, "sdk-test", s.Metadata["client"])
	assert.Equal(t, s.CreateTime.AsTime().Add(TTL), s.ExpireTime.AsTime())

	got, err := m.Get(s.Name)
	require.NoError(t, err)
	assert.Equal(t, s.Name, got.Name)

	_, err = m.Get("sessions/nope")
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, apierr.ReasonSessionNotFound, apierr.Reason(err))
}

func TestGetRefreshesExpiry(t *testing.T) {
	m, clock := newClockedManager()
	s := m.Create(nil)

	*clock = clock.Add(50 * time.Minute)
	got, err := m.Get(s.Name)
	require.NoError(t, err)
	assert.Equal(t, clock.Add(TTL), got.ExpireTime.AsTime())

	// Idle past the refreshed deadline, the reaper takes it.
	*clock = clock.Add(TTL + time.Minute)
	assert.Equal(t, 1, m.Reap())
	_, err = m.Get(s.Name)
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	m, _ := newClockedManager()
	s := m.Create(nil)
	require.NoError(t, m.Delete(s.Name))
	assert.Error(t, m.Delete(s.Name))
}

func TestListKeyset(t *testing.T) {
	m, _ := newClockedManager()
	for i := 0; i < 5; i++ {
		m.Create(nil)
	}

	page1, tok := m.List(2, "")
	require.Len(t, page1, 2)
	require.NotEmpty(t, tok)
	assert.Equal(t, page1[1].Name, tok, "token is the last returned name")

	page2, tok2 := m.List(2, tok)
	require.Len(t, page2, 2)
	assert.Greater(t, page2[0].Name, page1[1].Name, "strictly after the token")

	page3, tok3 := m.List(2, tok2)
	require.Len(t, page3, 1)
	assert.Empty(t, tok3, "drained list carries no token")
}

func TestTransactionLifecycle(t *testing.T) {
	m, _ := newClockedManager()
	s := m.Create(nil)

	tx, err := m.Begin(s.Name, pb.IsolationLevel_ISOLATION_LEVEL_UNSPECIFIED, 0)
	require.NoError(t, err)
	assert.Equal(t, pb.IsolationLevel_READ_COMMITTED, tx.IsolationLevel, "unspecified defaults to read committed")
	assert.Equal(t, pb.TransactionState_TRANSACTION_ACTIVE, tx.State)
	assert.Equal(t, pb.SessionState_SESSION_IN_TRANSACTION, tx.Session.State)

	// A second Begin while one is in flight is a precondition failure.
	_, err = m.Begin(s.Name, pb.IsolationLevel_READ_COMMITTED, 0)
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonSessionNotActive, apierr.Reason(err))

	m.RecordOperation(s.Name, "move_window", "applications/1/windows/2", true, "")
	m.RecordOperation(s.Name, "resize_window", "applications/1/windows/2", true, "")

	committed, err := m.Commit(s.Name, tx.TransactionId)
	require.NoError(t, err)
	assert.Equal(t, pb.TransactionState_TRANSACTION_COMMITTED, committed.State)
	assert.Equal(t, int32(2), committed.OperationsCount)
	assert.Equal(t, pb.SessionState_SESSION_ACTIVE, committed.Session.State)
}

func TestCommitRequiresMatchingTransaction(t *testing.T) {
	m, _ := newClockedManager()
	s := m.Create(nil)

	_, err := m.Commit(s.Name, "tx-none")
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonNoActiveTransaction, apierr.Reason(err))

	_, err = m.Begin(s.Name, pb.IsolationLevel_READ_COMMITTED, 0)
	require.NoError(t, err)
	_, err = m.Commit(s.Name, "tx-wrong")
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonTransactionMismatch, apierr.Reason(err))
}

func TestSerializableRollbackTruncatesHistory(t *testing.T) {
	m, _ := newClockedManager()
	s := m.Create(nil)
	m.RecordOperation(s.Name, "open_application", "applications/100", true, "")

	tx, err := m.Begin(s.Name, pb.IsolationLevel_SERIALIZABLE, 0)
	require.NoError(t, err)

	view, err := m.Snapshot(s.Name)
	require.NoError(t, err)
	require.Len(t, view.Revisions, 1, "serializable begin records a snapshot revision")
	rev := view.Revisions[0]
	assert.Equal(t, int32(1), rev.OperationIndex)

	m.RecordOperation(s.Name, "move_window", "applications/100/windows/1", true, "")
	m.RecordOperation(s.Name, "close_window", "applications/100/windows/1", false, "no close button")

	rolled, err := m.Rollback(s.Name, tx.TransactionId, rev.RevisionId)
	require.NoError(t, err)
	assert.Equal(t, pb.TransactionState_TRANSACTION_ROLLED_BACK, rolled.State)
	assert.Equal(t, int32(2), rolled.OperationsCount)

	view, err = m.Snapshot(s.Name)
	require.NoError(t, err)
	require.Len(t, view.History, 1, "history truncated to the revision offset")
	assert.Equal(t, "open_application", view.History[0].OperationType)
}

func TestRollbackUnknownRevision(t *testing.T) {
	m, _ := newClockedManager()
	s := m.Create(nil)
	tx, err := m.Begin(s.Name, pb.IsolationLevel_READ_COMMITTED, 0)
	require.NoError(t, err)

	_, err = m.Rollback(s.Name, tx.TransactionId, "snapshot-nope")
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonRevisionNotFound, apierr.Reason(err))
}

func TestRecordOperationTagsTransaction(t *testing.T) {
	m, _ := newClockedManager()
	s := m.Create(nil)
	m.RecordOperation(s.Name, "write_clipboard", "clipboard", true, "")

	tx, err := m.Begin(s.Name, pb.IsolationLevel_READ_COMMITTED, 0)
	require.NoError(t, err)
	m.RecordOperation(s.Name, "clear_clipboard", "clipboard", true, "")

	view, err := m.Snapshot(s.Name)
	require.NoError(t, err)
	require.Len(t, view.History, 2)
	assert.Empty(t, view.History[0].TransactionId)
	assert.Equal(t, tx.TransactionId, view.History[1].TransactionId)

	// Unknown sessions are ignored, never an error.
	m.RecordOperation("sessions/nope", "noop", "", true, "")
}

func TestTrackedResourcesDeduplicate(t *testing.T) {
	m, _ := newClockedManager()
	s := m.Create(nil)
	m.TrackApplication(s.Name, "applications/100")
	m.TrackApplication(s.Name, "applications/100")
	m.TrackObservation(s.Name, "applications/100/observations/ob-1")

	view, err := m.Snapshot(s.Name)
	require.NoError(t, err)
	assert.Equal(t, []string{"applications/100"}, view.Applications)
	assert.Equal(t, []string{"applications/100/observations/ob-1"}, view.Observations)
}
