package observation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

func newTestManager(t *testing.T) (*Manager, *platform.Simulator, int32) {
	t.Helper()
	sim := platform.NewSimulator()
	t.Cleanup(sim.Close)
	pid := sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	return NewManager(sim), sim, pid
}

func register(t *testing.T, m *Manager, pid int32, id, eventType string) *pb.Observation {
	t.Helper()
	obs, err := m.Register(context.Background(), pid, &pb.Observation{
		Name: names.Observation(pid, id),
		Type: eventType,
	})
	require.NoError(t, err)
	return obs
}

func recv(t *testing.T, sub *Subscription) *pb.ObservationEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ev, ok := sub.Next(ctx)
	require.True(t, ok, "expected an event before the timeout")
	return ev
}

func TestRegisterAndDeliver(t *testing.T) {
	m, sim, pid := newTestManager(t)
	obs := register(t, m, pid, "ob-1", "")
	assert.Equal(t, pb.ObservationState_OBSERVATION_ACTIVE, obs.State)
	require.NotNil(t, obs.CreateTime)

	sub, err := m.Subscribe(obs.Name)
	require.NoError(t, err)
	defer sub.Close()

	sim.SimEmit(platform.Notification{
		Pid: pid, Type: "focusChanged", ElementRole: "AXTextField", Title: "Search",
	})

	ev := recv(t, sub)
	assert.Equal(t, obs.Name, ev.Observation)
	assert.Equal(t, "focusChanged", ev.Type)
	assert.Equal(t, "AXTextField", ev.ElementRole)
}

func TestTypeFilter(t *testing.T) {
	m, sim, pid := newTestManager(t)
	obs := register(t, m, pid, "ob-1", "windowMoved")

	sub, err := m.Subscribe(obs.Name)
	require.NoError(t, err)
	defer sub.Close()

	sim.SimEmit(platform.Notification{Pid: pid, Type: "focusChanged"})
	sim.SimEmit(platform.Notification{Pid: pid, Type: "windowMoved"})

	ev := recv(t, sub)
	assert.Equal(t, "windowMoved", ev.Type, "non-matching types never reach the stream")
}

func TestObserverSharedAcrossObservations(t *testing.T) {
	m, sim, pid := newTestManager(t)
	a := register(t, m, pid, "ob-a", "")
	b := register(t, m, pid, "ob-b", "")

	subA, err := m.Subscribe(a.Name)
	require.NoError(t, err)
	defer subA.Close()
	subB, err := m.Subscribe(b.Name)
	require.NoError(t, err)
	defer subB.Close()

	sim.SimEmit(platform.Notification{Pid: pid, Type: "focusChanged"})

	assert.Equal(t, "focusChanged", recv(t, subA).Type)
	assert.Equal(t, "focusChanged", recv(t, subB).Type)
}

func TestCancelCompletesStreams(t *testing.T) {
	m, _, pid := newTestManager(t)
	obs := register(t, m, pid, "ob-1", "")

	sub, err := m.Subscribe(obs.Name)
	require.NoError(t, err)

	cancelled, err := m.Cancel(context.Background(), obs.Name)
	require.NoError(t, err)
	assert.Equal(t, pb.ObservationState_OBSERVATION_CANCELLED, cancelled.State)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, ok := sub.Next(ctx)
	assert.False(t, ok, "streams of a cancelled observation complete")

	// Subscribing afterwards yields an already-complete stream.
	late, err := m.Subscribe(obs.Name)
	require.NoError(t, err)
	_, ok = late.Next(ctx)
	assert.False(t, ok)
}

func TestCancelUnknown(t *testing.T) {
	m, _, _ := newTestManager(t)
	_, err := m.Cancel(context.Background(), "applications/1/observations/nope")
	assert.Error(t, err)
	_, err = m.Subscribe("applications/1/observations/nope")
	assert.Error(t, err)
}

func TestSDKActivationMask(t *testing.T) {
	m, sim, pid := newTestManager(t)
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m.SetClock(func() time.Time { return clock })

	obs := register(t, m, pid, "ob-1", EventActivated)
	sub, err := m.Subscribe(obs.Name)
	require.NoError(t, err)
	defer sub.Close()

	m.MarkSDKActivation(pid)
	sim.SimEmit(platform.Notification{Pid: pid, Type: EventActivated})

	require.Eventually(t, func() bool {
		got, _ := m.Get(obs.Name)
		return got.EventsSuppressed == 1
	}, 2*time.Second, 10*time.Millisecond, "self-inflicted activation is suppressed")

	// Past the mask window the same event passes through.
	clock = clock.Add(600 * time.Millisecond)
	sim.SimEmit(platform.Notification{Pid: pid, Type: EventActivated})
	assert.Equal(t, EventActivated, recv(t, sub).Type)
}

func TestDeactivationMaskIsGlobal(t *testing.T) {
	m, sim, pid := newTestManager(t)
	other := sim.SimAddApp("Finder", "com.apple.finder")

	obs := register(t, m, pid, "ob-1", EventDeactivated)
	sub, err := m.Subscribe(obs.Name)
	require.NoError(t, err)
	defer sub.Close()

	// Activating another pid masks deactivations everywhere: the deactivated
	// process is never the activated one.
	m.MarkSDKActivation(other)
	sim.SimEmit(platform.Notification{Pid: pid, Type: EventDeactivated})

	require.Eventually(t, func() bool {
		got, _ := m.Get(obs.Name)
		return got.EventsSuppressed == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestActivationBreaker(t *testing.T) {
	m, sim, pid := newTestManager(t)
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m.SetClock(func() time.Time { return clock })

	obs := register(t, m, pid, "ob-1", EventActivated)
	sub, err := m.Subscribe(obs.Name)
	require.NoError(t, err)
	defer sub.Close()

	// Five activations inside one second pass, the sixth trips the breaker.
	for i := 0; i < 6; i++ {
		sim.SimEmit(platform.Notification{Pid: pid, Type: EventActivated})
	}
	require.Eventually(t, func() bool {
		got, _ := m.Get(obs.Name)
		return got.EventsDelivered == 5 && got.EventsSuppressed == 1
	}, 2*time.Second, 10*time.Millisecond)

	// The breaker resets at the next window boundary.
	clock = clock.Add(2 * time.Second)
	sim.SimEmit(platform.Notification{Pid: pid, Type: EventActivated})
	require.Eventually(t, func() bool {
		got, _ := m.Get(obs.Name)
		return got.EventsDelivered == 6
	}, 2*time.Second, 10*time.Millisecond)
}

func TestList(t *testing.T) {
	m, sim, pid := newTestManager(t)
	other := sim.SimAddApp("Finder", "com.apple.finder")
	register(t, m, pid, "b", "")
	register(t, m, pid, "a", "")
	register(t, m, other, "c", "")

	all := m.List(0)
	require.Len(t, all, 3)
	scoped := m.List(pid)
	require.Len(t, scoped, 2)
	assert.Equal(t, names.Observation(pid, "a"), scoped[0].Name, "sorted by name")
}

func TestSlowStreamDropsOldest(t *testing.T) {
	m, _, pid := newTestManager(t)
	obs := register(t, m, pid, "ob-1", "")
	sub, err := m.Subscribe(obs.Name)
	require.NoError(t, err)
	defer sub.Close()

	// Bypass the dispatcher and fill the ring directly; no consumer runs.
	total := streamBuffer + 10
	for i := 0; i < total; i++ {
		sub.push(&pb.ObservationEvent{Type: "focusChanged", Pid: pid})
	}

	n := 0
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for {
		_, ok := sub.Next(ctx)
		if !ok {
			break
		}
		n++
		if n >= total {
			break
		}
	}
	assert.Equal(t, streamBuffer, n, "overflow evicts the oldest events")
}
