package pb

import (
	"context"
	"sync"

	"google.golang.org/grpc/metadata"
)

// MockObservationStream satisfies Automation_StreamObservationsServer so
// streaming handlers can be exercised without a live grpc.Server. Sent events
// are recorded in order; SetSendError makes subsequent Sends fail to model a
// broken client connection.
type MockObservationStream struct {
	ctx context.Context

	mu      sync.Mutex
	events  []*ObservationEvent
	sendErr error
}

func NewMockObservationStream(ctx context.Context) *MockObservationStream {
	return &MockObservationStream{ctx: ctx}
}

func (m *MockObservationStream) Send(ev *ObservationEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.events = append(m.events, ev)
	return nil
}

// SetSendError fails every Send from now on.
func (m *MockObservationStream) SetSendError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr = err
}

// Events returns a snapshot of everything sent so far.
func (m *MockObservationStream) Events() []*ObservationEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*ObservationEvent, len(m.events))
	copy(out, m.events)
	return out
}

func (m *MockObservationStream) Context() context.Context     { return m.ctx }
func (m *MockObservationStream) SetHeader(metadata.MD) error  { return nil }
func (m *MockObservationStream) SendHeader(metadata.MD) error { return nil }
func (m *MockObservationStream) SetTrailer(metadata.MD)       {}
func (m *MockObservationStream) SendMsg(any) error            { return nil }
func (m *MockObservationStream) RecvMsg(any) error            { return nil }
