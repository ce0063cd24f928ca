package observation

import (
	"context"
	"sync"

	"github.com/macosusesdk/automationd/pb"
)

// Subscription is one consumer's bounded event queue. push never blocks the
// fan-out path: when the ring is full the oldest event is dropped so a slow
// stream cannot stall the observer callback.
type Subscription struct {
	mgr   *Manager
	state *observationState

	mu     sync.Mutex
	buf    []*pb.ObservationEvent
	done   bool
	notify chan struct{}
}

func newSubscription(m *Manager, st *observationState) *Subscription {
	return &Subscription{
		mgr:    m,
		state:  st,
		notify: make(chan struct{}, 1),
	}
}

// push enqueues an event; it reports false when the ring overflowed and the
// oldest event was dropped to make room.
func (s *Subscription) push(ev *pb.ObservationEvent) bool {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return true
	}
	ok := true
	if len(s.buf) >= streamBuffer {
		s.buf = s.buf[1:]
		ok = false
	}
	s.buf = append(s.buf, ev)
	s.mu.Unlock()
	select {
	case s.notify <- struct{}{}:
	default:
	}
	return ok
}

// complete marks the stream finished; pending events still drain.
func (s *Subscription) complete() {
	s.mu.Lock()
	s.done = true
	s.mu.Unlock()
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Next blocks for the next event. It returns ok=false when the stream is
// complete (observation cancelled) and drained, or when ctx is cancelled.
func (s *Subscription) Next(ctx context.Context) (*pb.ObservationEvent, bool) {
	for {
		s.mu.Lock()
		if len(s.buf) > 0 {
			ev := s.buf[0]
			s.buf = s.buf[1:]
			s.mu.Unlock()
			return ev, true
		}
		done := s.done
		s.mu.Unlock()
		if done {
			return nil, false
		}
		select {
		case <-ctx.Done():
			return nil, false
		case <-s.notify:
		}
	}
}

// Close detaches the subscription from its observation. Other consumers
// keep streaming.
func (s *Subscription) Close() {
	s.complete()
	s.mgr.unsubscribe(s.state, s)
}
