// Package sessions tracks client sessions, their transactions, and the
// operation history that snapshot rollback truncates. Sessions expire an
// hour after last access; a reaper sweeps every minute.
package sessions

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/pb"
)

const (
	// TTL is the idle expiration, refreshed by Get.
	TTL = time.Hour
	// reapInterval is the expiry sweep period.
	reapInterval = time.Minute
	// DefaultPageSize applies to session listings.
	DefaultPageSize = 50
)

type transaction struct {
	id         string
	isolation  pb.IsolationLevel
	startIndex int
	deadline   time.Time
}

type sessionState struct {
	record       *pb.Session
	tx           *transaction
	history      []*pb.OperationRecord
	applications []string
	observations []string
	revisions    []*pb.Revision
	expire       time.Time
}

// Manager owns all session state.
type Manager struct {
	mu       sync.Mutex
	logger   *log.Logger
	sessions map[string]*sessionState
	now      func() time.Time
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{
		logger:   log.New(log.Writer(), "[SESSIONS] ", log.LstdFlags),
		sessions: make(map[string]*sessionState),
		now:      time.Now,
	}
}

// SetClock overrides the manager clock. Tests only.
func (m *Manager) SetClock(now func() time.Time) { m.now = now }

// Create registers a new active session.
func (m *Manager) Create(metadata map[string]string) *pb.Session {
	now := m.now()
	id := uuid.NewString()
	s := &pb.Session{
		Name:           names.Session(id),
		State:          pb.SessionState_SESSION_ACTIVE,
		CreateTime:     timestamppb.New(now),
		LastAccessTime: timestamppb.New(now),
		ExpireTime:     timestamppb.New(now.Add(TTL)),
		Metadata:       metadata,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Name] = &sessionState{record: s, expire: now.Add(TTL)}
	return s.Clone()
}

func (m *Manager) state(name string) (*sessionState, error) {
	st, ok := m.sessions[name]
	if !ok {
		return nil, apierr.NotFound(apierr.ReasonSessionNotFound, name)
	}
	return st, nil
}

// Get returns the session and refreshes its expiration.
func (m *Manager) Get(name string) (*pb.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.state(name)
	if err != nil {
		return nil, err
	}
	now := m.now()
	st.record.LastAccessTime = timestamppb.New(now)
	st.record.ExpireTime = timestamppb.New(now.Add(TTL))
	st.expire = now.Add(TTL)
	return st.record.Clone(), nil
}

// List pages sessions by keyset: names strictly greater than the token,
// ascending. The next token is the last returned name, empty when drained.
func (m *Manager) List(pageSize int32, pageToken string) ([]*pb.Session, string) {
	size := int(pageSize)
	if size <= 0 {
		size = DefaultPageSize
	}
	m.mu.Lock()
	all := make([]*pb.Session, 0, len(m.sessions))
	for _, st := range m.sessions {
		all = append(all, st.record.Clone())
	}
	m.mu.Unlock()
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	var page []*pb.Session
	for _, s := range all {
		if pageToken != "" && s.Name <= pageToken {
			continue
		}
		page = append(page, s)
		if len(page) == size {
			break
		}
	}
	next := ""
	if len(page) == size && len(all) > 0 && page[len(page)-1].Name != all[len(all)-1].Name {
		next = page[len(page)-1].Name
	}
	return page, next
}

// Delete removes the session outright.
func (m *Manager) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.state(name); err != nil {
		return err
	}
	delete(m.sessions, name)
	return nil
}

// Begin opens a transaction. The session must be active with no transaction
// in flight. Serializable isolation records a rollback snapshot at the
// current history offset.
func (m *Manager) Begin(name string, isolation pb.IsolationLevel, timeout time.Duration) (*pb.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.state(name)
	if err != nil {
		return nil, err
	}
	if st.record.State != pb.SessionState_SESSION_ACTIVE {
		return nil, apierr.FailedPrecondition(apierr.ReasonSessionNotActive,
			"session is not active", map[string]string{"session": name})
	}
	if isolation == pb.IsolationLevel_ISOLATION_LEVEL_UNSPECIFIED {
		isolation = pb.IsolationLevel_READ_COMMITTED
	}
	now := m.now()
	tx := &transaction{
		id:         uuid.NewString(),
		isolation:  isolation,
		startIndex: len(st.history),
	}
	if timeout > 0 {
		tx.deadline = now.Add(timeout)
	}
	st.tx = tx
	st.record.State = pb.SessionState_SESSION_IN_TRANSACTION
	st.record.ActiveTransactionId = tx.id
	if isolation == pb.IsolationLevel_SERIALIZABLE {
		st.revisions = append(st.revisions, &pb.Revision{
			RevisionId:     "snapshot-" + tx.id,
			CreateTime:     timestamppb.New(now),
			OperationIndex: int32(tx.startIndex),
		})
	}
	return &pb.Transaction{
		TransactionId:  tx.id,
		IsolationLevel: isolation,
		State:          pb.TransactionState_TRANSACTION_ACTIVE,
		Session:        st.record.Clone(),
	}, nil
}

func (m *Manager) activeTx(st *sessionState, txID string) (*transaction, error) {
	if st.record.State != pb.SessionState_SESSION_IN_TRANSACTION || st.tx == nil {
		return nil, apierr.FailedPrecondition(apierr.ReasonNoActiveTransaction,
			"session has no active transaction", map[string]string{"session": st.record.Name})
	}
	if st.tx.id != txID {
		return nil, apierr.FailedPrecondition(apierr.ReasonTransactionMismatch,
			fmt.Sprintf("transaction %s is not active", txID),
			map[string]string{"session": st.record.Name, "transactionId": txID})
	}
	return st.tx, nil
}

func (m *Manager) closeTx(st *sessionState, tx *transaction, state pb.TransactionState, opsCount int) *pb.Transaction {
	st.tx = nil
	st.record.State = pb.SessionState_SESSION_ACTIVE
	st.record.ActiveTransactionId = ""
	return &pb.Transaction{
		TransactionId:   tx.id,
		IsolationLevel:  tx.isolation,
		State:           state,
		OperationsCount: int32(opsCount),
		Session:         st.record.Clone(),
	}
}

// Commit finalizes the matching transaction.
func (m *Manager) Commit(name, txID string) (*pb.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.state(name)
	if err != nil {
		return nil, err
	}
	tx, err := m.activeTx(st, txID)
	if err != nil {
		return nil, err
	}
	count := len(st.history) - tx.startIndex
	return m.closeTx(st, tx, pb.TransactionState_TRANSACTION_COMMITTED, count), nil
}

// Rollback truncates the session history to the named revision's operation
// index and closes the transaction.
func (m *Manager) Rollback(name, txID, revisionID string) (*pb.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.state(name)
	if err != nil {
		return nil, err
	}
	tx, err := m.activeTx(st, txID)
	if err != nil {
		return nil, err
	}
	var rev *pb.Revision
	for _, r := range st.revisions {
		if r.RevisionId == revisionID {
			rev = r
			break
		}
	}
	if rev == nil {
		return nil, apierr.FailedPrecondition(apierr.ReasonRevisionNotFound,
			"unknown revision id: "+revisionID,
			map[string]string{"session": name, "revisionId": revisionID})
	}
	count := len(st.history) - int(rev.OperationIndex)
	st.history = st.history[:rev.OperationIndex]
	m.logger.Printf("session %s rolled back %d operations to %s", name, count, revisionID)
	return m.closeTx(st, tx, pb.TransactionState_TRANSACTION_ROLLED_BACK, count), nil
}

// RecordOperation appends to the session history, best-effort: an unknown
// session is ignored so mutation handlers never fail on bookkeeping.
func (m *Manager) RecordOperation(name, opType, resource string, success bool, errMsg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[name]
	if !ok {
		return
	}
	rec := &pb.OperationRecord{
		OperationType: opType,
		Resource:      resource,
		Success:       success,
		Error:         errMsg,
		OperationTime: timestamppb.New(m.now()),
	}
	if st.tx != nil {
		rec.TransactionId = st.tx.id
	}
	st.history = append(st.history, rec)
}

// TrackApplication adds an application resource to the session.
func (m *Manager) TrackApplication(name, appName string) {
	m.track(name, appName, true)
}

// TrackObservation adds an observation resource to the session.
func (m *Manager) TrackObservation(name, obsName string) {
	m.track(name, obsName, false)
}

func (m *Manager) track(name, resource string, isApp bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[name]
	if !ok {
		return
	}
	list := &st.observations
	if isApp {
		list = &st.applications
	}
	for _, existing := range *list {
		if existing == resource {
			return
		}
	}
	*list = append(*list, resource)
}

// SnapshotView is the raw material of GetSessionSnapshot; the service layer
// resolves the tracked resource names.
type SnapshotView struct {
	Session      *pb.Session
	Applications []string
	Observations []string
	History      []*pb.OperationRecord
	Revisions    []*pb.Revision
}

// Snapshot returns the session's complete observable state.
func (m *Manager) Snapshot(name string) (*SnapshotView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.state(name)
	if err != nil {
		return nil, err
	}
	view := &SnapshotView{
		Session:      st.record.Clone(),
		Applications: append([]string(nil), st.applications...),
		Observations: append([]string(nil), st.observations...),
	}
	for _, rec := range st.history {
		view.History = append(view.History, rec.Clone())
	}
	for _, rev := range st.revisions {
		view.Revisions = append(view.Revisions, rev.Clone())
	}
	return view, nil
}

// Reap marks overdue sessions expired and removes them; it returns how many
// went.
func (m *Manager) Reap() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	n := 0
	for name, st := range m.sessions {
		if st.expire.Before(now) {
			st.record.State = pb.SessionState_SESSION_EXPIRED
			delete(m.sessions, name)
			n++
		}
	}
	return n
}

// RunReaper sweeps every minute until ctx is cancelled.
func (m *Manager) RunReaper(ctx context.Context) {
	ticker := time.NewTicker(reapInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Reap(); n > 0 {
				m.logger.Printf("expired %d sessions", n)
			}
		}
	}
}
