// Package observation turns host accessibility notifications into bounded
// event streams. Per process there is at most one native observer; every
// observation on that process shares it. Notifications arrive on arbitrary
// threads and are re-dispatched onto the UI-capable worker before any
// suppression or fan-out logic runs.
package observation

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

const (
	// sdkActivationWindow is how long after MarkSDKActivation events for
	// that pid count as self-inflicted.
	sdkActivationWindow = 500 * time.Millisecond

	// breakerWindow / breakerLimit: more than breakerLimit activation
	// events for one pid inside one window trips the breaker until the
	// next window boundary.
	breakerWindow = time.Second
	breakerLimit  = 5

	// streamBuffer is the per-stream ring capacity; overflow drops the
	// oldest event and bumps the observation's dropped counter.
	streamBuffer = 256
)

// Event type constants for activation tracking.
const (
	EventActivated   = "applicationActivated"
	EventDeactivated = "applicationDeactivated"
)

type breakerState struct {
	count       int
	windowStart time.Time
}

type pidObserver struct {
	handle platform.ObserverHandle
	refs   int
}

type observationState struct {
	obs       *pb.Observation
	pid       int32
	cancelled bool
	subs      map[*Subscription]struct{}
}

// Manager owns every observation and the per-pid native observers.
type Manager struct {
	mu     sync.Mutex
	logger *log.Logger
	sys    platform.SystemOperations

	observations map[string]*observationState
	observers    map[int32]*pidObserver
	sdkActivated map[int32]time.Time
	breakers     map[int32]*breakerState
	now          func() time.Time
}

// NewManager returns an empty manager backed by sys.
func NewManager(sys platform.SystemOperations) *Manager {
	return &Manager{
		logger:       log.New(log.Writer(), "[OBSERVE] ", log.LstdFlags),
		sys:          sys,
		observations: make(map[string]*observationState),
		observers:    make(map[int32]*pidObserver),
		sdkActivated: make(map[int32]time.Time),
		breakers:     make(map[int32]*breakerState),
		now:          time.Now,
	}
}

// SetClock overrides the manager clock. Tests only.
func (m *Manager) SetClock(now func() time.Time) { m.now = now }

// Self-activation suppression.

// MarkSDKActivation records that the SDK itself just activated pid; the
// resulting activate/deactivate notifications are not user events.
func (m *Manager) MarkSDKActivation(pid int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sdkActivated[pid] = m.now()
}

// IsSDKActivation reports whether pid was SDK-activated inside the window.
func (m *Manager) IsSDKActivation(pid int32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	ts, ok := m.sdkActivated[pid]
	return ok && m.now().Sub(ts) < sdkActivationWindow
}

// HasRecentSDKActivation prunes expired marks and reports whether any
// remain. Deactivation handlers use this because the deactivated pid is not
// the one that was activated. Known trade-off: rapid consecutive SDK
// activations suppress all deactivations across pids for the window.
func (m *Manager) HasRecentSDKActivation() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for pid, ts := range m.sdkActivated {
		if now.Sub(ts) >= sdkActivationWindow {
			delete(m.sdkActivated, pid)
		}
	}
	return len(m.sdkActivated) > 0
}

// breakerAllows implements the per-pid activation circuit breaker. It is
// level-sensitive: the count resets at the first event past the window
// boundary.
func (m *Manager) breakerAllows(pid int32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	b, ok := m.breakers[pid]
	if !ok || now.Sub(b.windowStart) > breakerWindow {
		m.breakers[pid] = &breakerState{count: 1, windowStart: now}
		return true
	}
	b.count++
	if b.count > breakerLimit {
		return false
	}
	return true
}

// Lifecycle.

// Register attaches (or shares) the native observer for the parent pid and
// stores the observation. Called from the CreateObservation LRO task.
func (m *Manager) Register(ctx context.Context, pid int32, obs *pb.Observation) (*pb.Observation, error) {
	m.mu.Lock()
	po := m.observers[pid]
	m.mu.Unlock()

	if po == nil {
		var types []string
		// An empty observation type subscribes to everything.
		handle, err := m.sys.AttachObserver(ctx, pid, types, func(n platform.Notification) {
			// Arbitrary thread; hop to the UI-capable worker first.
			m.sys.DispatchToUIWorker(func() { m.handleNotification(n) })
		})
		if err != nil {
			return nil, apierr.Platform(err)
		}
		po = &pidObserver{handle: handle}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing := m.observers[pid]; existing != nil && existing != po {
		// Lost the attach race; drop ours outside the lock would be
		// cleaner but detach is idempotent on the simulator and cheap on
		// the host.
		go m.sys.DetachObserver(context.Background(), po.handle)
		po = existing
	}
	po.refs++
	m.observers[pid] = po

	st := &observationState{
		obs:  obs.Clone(),
		pid:  pid,
		subs: make(map[*Subscription]struct{}),
	}
	st.obs.State = pb.ObservationState_OBSERVATION_ACTIVE
	st.obs.CreateTime = timestamppb.New(m.now())
	m.observations[st.obs.Name] = st
	m.logger.Printf("observation %s attached (pid %d)", st.obs.Name, pid)
	return st.obs.Clone(), nil
}

// Get returns a snapshot of the named observation.
func (m *Manager) Get(name string) (*pb.Observation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.observations[name]
	if !ok {
		return nil, false
	}
	return st.obs.Clone(), true
}

// List returns observations, restricted to pid when it is non-zero, sorted
// by name for deterministic pagination.
func (m *Manager) List(pid int32) []*pb.Observation {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*pb.Observation
	for _, st := range m.observations {
		if pid != 0 && st.pid != pid {
			continue
		}
		out = append(out, st.obs.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Cancel detaches the observation, completes its streams, and releases the
// native observer when it was the last reference.
func (m *Manager) Cancel(ctx context.Context, name string) (*pb.Observation, error) {
	m.mu.Lock()
	st, ok := m.observations[name]
	if !ok {
		m.mu.Unlock()
		return nil, apierr.NotFound(apierr.ReasonObservationNotFound, name)
	}
	var detach *pidObserver
	if !st.cancelled {
		st.cancelled = true
		st.obs.State = pb.ObservationState_OBSERVATION_CANCELLED
		for sub := range st.subs {
			sub.complete()
		}
		st.subs = make(map[*Subscription]struct{})
		if po := m.observers[st.pid]; po != nil {
			po.refs--
			if po.refs <= 0 {
				detach = po
				delete(m.observers, st.pid)
			}
		}
	}
	snapshot := st.obs.Clone()
	m.mu.Unlock()

	if detach != nil {
		if err := m.sys.DetachObserver(ctx, detach.handle); err != nil {
			m.logger.Printf("detach observer for %s: %v", name, err)
		}
	}
	return snapshot, nil
}

// Subscribe opens an event stream for one observation. A cancelled
// observation yields an already-completed subscription.
func (m *Manager) Subscribe(name string) (*Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.observations[name]
	if !ok {
		return nil, apierr.NotFound(apierr.ReasonObservationNotFound, name)
	}
	sub := newSubscription(m, st)
	if st.cancelled {
		sub.complete()
		return sub, nil
	}
	st.subs[sub] = struct{}{}
	return sub, nil
}

func (m *Manager) unsubscribe(st *observationState, sub *Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(st.subs, sub)
}

// handleNotification runs on the UI-capable worker. It applies the
// self-activation mask and the circuit breaker, then fans out to every
// matching observation's streams.
func (m *Manager) handleNotification(n platform.Notification) {
	switch n.Type {
	case EventActivated:
		if m.IsSDKActivation(n.Pid) {
			m.countSuppressed(n.Pid, n.Type)
			return
		}
		if !m.breakerAllows(n.Pid) {
			m.countSuppressed(n.Pid, n.Type)
			return
		}
	case EventDeactivated:
		if m.HasRecentSDKActivation() {
			m.countSuppressed(n.Pid, n.Type)
			return
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, st := range m.observations {
		if st.cancelled || st.pid != n.Pid {
			continue
		}
		if st.obs.Type != "" && st.obs.Type != n.Type {
			continue
		}
		ev := &pb.ObservationEvent{
			Observation: st.obs.Name,
			Type:        n.Type,
			Pid:         n.Pid,
			ElementRole: n.ElementRole,
			Title:       n.Title,
			EventTime:   timestamppb.New(n.Time),
			Attributes:  n.Attributes,
		}
		st.obs.EventsDelivered++
		for sub := range st.subs {
			if !sub.push(ev) {
				st.obs.EventsDropped++
			}
		}
	}
}

func (m *Manager) countSuppressed(pid int32, eventType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, st := range m.observations {
		if st.cancelled || st.pid != pid {
			continue
		}
		if st.obs.Type != "" && st.obs.Type != eventType {
			continue
		}
		st.obs.EventsSuppressed++
	}
}

// ObservationName builds "applications/{pid}/observations/{id}".
func ObservationName(pid int32, id string) string {
	return names.Observation(pid, id)
}
