package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/observation"
	"github.com/macosusesdk/automationd/internal/operations"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

func newObservationService(t *testing.T) (*Service, *platform.Simulator, int32) {
	t.Helper()
	sim := platform.NewSimulator()
	t.Cleanup(sim.Close)
	pid := sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	svc := New(Deps{
		Sys:         sim,
		Ops:         operations.NewStore(),
		Observation: observation.NewManager(sim),
	})
	return svc, sim, pid
}

// createObservation drives the full LRO flow and returns the started
// observation's name from the operation response.
func createObservation(t *testing.T, svc *Service, parent string) string {
	t.Helper()
	op, err := svc.CreateObservation(context.Background(), &pb.CreateObservationRequest{Parent: parent})
	require.NoError(t, err)

	done, err := svc.ops.Wait(context.Background(), op.GetName(), 5*time.Second)
	require.NoError(t, err)
	require.True(t, done.GetDone())
	require.Nil(t, done.GetError())

	st := &structpb.Struct{}
	require.NoError(t, done.GetResponse().UnmarshalTo(st))
	name := st.GetFields()["name"].GetStringValue()
	require.NotEmpty(t, name)
	return name
}

func TestStreamObservationsDelivers(t *testing.T) {
	svc, sim, pid := newObservationService(t)
	name := createObservation(t, svc, names.Application(pid))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := pb.NewMockObservationStream(ctx)

	errc := make(chan error, 1)
	go func() {
		errc <- svc.StreamObservations(&pb.StreamObservationsRequest{Name: name}, stream)
	}()

	// The subscriber attaches asynchronously; keep emitting until one lands.
	require.Eventually(t, func() bool {
		sim.SimEmit(platform.Notification{Pid: pid, Type: "focusChanged", ElementRole: "AXTextField"})
		return len(stream.Events()) > 0
	}, 5*time.Second, 20*time.Millisecond)

	ev := stream.Events()[0]
	assert.Equal(t, name, ev.Observation)
	assert.Equal(t, "focusChanged", ev.Type)

	// Cancelling the observation completes the stream cleanly.
	_, err := svc.CancelObservation(context.Background(), &pb.CancelObservationRequest{Name: name})
	require.NoError(t, err)

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not terminate after cancellation")
	}
}

func TestStreamObservationsSendFailure(t *testing.T) {
	svc, sim, pid := newObservationService(t)
	name := createObservation(t, svc, names.Application(pid))

	stream := pb.NewMockObservationStream(context.Background())
	sendErr := errors.New("client went away")
	stream.SetSendError(sendErr)

	errc := make(chan error, 1)
	go func() {
		errc <- svc.StreamObservations(&pb.StreamObservationsRequest{Name: name}, stream)
	}()

	go func() {
		for i := 0; i < 100; i++ {
			sim.SimEmit(platform.Notification{Pid: pid, Type: "focusChanged"})
			time.Sleep(10 * time.Millisecond)
		}
	}()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, sendErr)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not surface the send failure")
	}
}
