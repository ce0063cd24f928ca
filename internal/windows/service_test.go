package windows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/platform"
)

func newService(t *testing.T) (*Service, *platform.Simulator, int32) {
	t.Helper()
	sim := platform.NewSimulator()
	t.Cleanup(sim.Close)
	pid := sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	return NewService(sim, NewRegistry(sim)), sim, pid
}

func TestGetComposesBothSources(t *testing.T) {
	svc, sim, pid := newService(t)
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{X: 10, Y: 20, Width: 640, Height: 480})
	w.Layer = 2

	win, err := svc.Get(context.Background(), pid, w.ID)
	require.NoError(t, err)
	assert.Equal(t, names.Window(pid, w.ID), win.Name)
	assert.Equal(t, "Untitled", win.Title)
	assert.Equal(t, 640.0, win.Bounds.Width)
	assert.Equal(t, int32(2), win.ZIndex)
	assert.Equal(t, "com.apple.TextEdit", win.BundleId)
	assert.True(t, win.Visible)
}

func TestGetUnknownWindow(t *testing.T) {
	svc, _, pid := newService(t)
	_, err := svc.Get(context.Background(), pid, 987654)
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, apierr.ReasonWindowNotFound, apierr.Reason(err))
}

func TestMinimizedWindowIsNotVisible(t *testing.T) {
	svc, sim, pid := newService(t)
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{Width: 100, Height: 100})

	win, err := svc.Minimize(context.Background(), pid, w.ID)
	require.NoError(t, err)
	assert.False(t, win.Visible, "a minimized window never reports visible")
	assert.True(t, sim.SimWindowByID(w.ID).Minimized)
}

func TestRestore(t *testing.T) {
	svc, sim, pid := newService(t)
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{Width: 100, Height: 100})
	_, err := svc.Minimize(context.Background(), pid, w.ID)
	require.NoError(t, err)

	win, err := svc.Restore(context.Background(), pid, w.ID)
	require.NoError(t, err)
	assert.True(t, win.Visible)
	assert.False(t, sim.SimWindowByID(w.ID).Minimized)
}

func TestMove(t *testing.T) {
	svc, sim, pid := newService(t)
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{X: 0, Y: 0, Width: 300, Height: 200})

	win, err := svc.Move(context.Background(), pid, w.ID, 150, 250)
	require.NoError(t, err)
	assert.Equal(t, 150.0, win.Bounds.X)
	assert.Equal(t, 250.0, win.Bounds.Y)
	assert.Equal(t, names.Window(pid, w.ID), win.Name, "id stable when the host does not regenerate")
}

func TestResizeSurvivesIDRegeneration(t *testing.T) {
	svc, sim, pid := newService(t)
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{X: 50, Y: 50, Width: 300, Height: 200})
	oldID := w.ID
	_, err := svc.Get(context.Background(), pid, oldID) // warm the snapshot cache
	require.NoError(t, err)
	sim.RegenerateIDOnMutation = true

	win, err := svc.Resize(context.Background(), pid, oldID, 800, 600)
	require.NoError(t, err)
	assert.Equal(t, 800.0, win.Bounds.Width)
	assert.Equal(t, 600.0, win.Bounds.Height)
	assert.NotEqual(t, names.Window(pid, oldID), win.Name,
		"response carries the regenerated identity")
	assert.Equal(t, names.Window(pid, w.ID), win.Name)
}

func TestMoveSurvivesIDRegeneration(t *testing.T) {
	svc, sim, pid := newService(t)
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{X: 50, Y: 50, Width: 300, Height: 200})
	oldID := w.ID
	_, err := svc.Get(context.Background(), pid, oldID)
	require.NoError(t, err)
	sim.RegenerateIDOnMutation = true

	win, err := svc.Move(context.Background(), pid, oldID, 500, 400)
	require.NoError(t, err)
	assert.Equal(t, names.Window(pid, w.ID), win.Name)
	assert.Equal(t, 500.0, win.Bounds.X)
}

func TestFocus(t *testing.T) {
	svc, sim, pid := newService(t)
	a := sim.SimAddWindow(pid, "A", platform.Rect{Width: 100, Height: 100})
	b := sim.SimAddWindow(pid, "B", platform.Rect{X: 200, Width: 100, Height: 100})

	_, err := svc.Focus(context.Background(), pid, b.ID)
	require.NoError(t, err)
	assert.True(t, sim.SimWindowByID(b.ID).Focused)
	assert.False(t, sim.SimWindowByID(a.ID).Focused)
}

func TestClose(t *testing.T) {
	svc, sim, pid := newService(t)
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{Width: 100, Height: 100})

	require.NoError(t, svc.Close(context.Background(), pid, w.ID))
	assert.Nil(t, sim.SimWindowByID(w.ID), "pressing the close button removes the window")
}

func TestCloseWithoutCloseButton(t *testing.T) {
	svc, sim, pid := newService(t)
	w := sim.SimAddWindow(pid, "Palette", platform.Rect{Width: 100, Height: 100})
	w.Closable = false

	err := svc.Close(context.Background(), pid, w.ID)
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Equal(t, apierr.ReasonNoCloseButton, apierr.Reason(err))
}

func TestState(t *testing.T) {
	svc, sim, pid := newService(t)
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{Width: 100, Height: 100})
	w.Minimizable = false

	st, err := svc.State(context.Background(), pid, w.ID)
	require.NoError(t, err)
	assert.Equal(t, names.WindowState(pid, w.ID), st.Name)
	assert.True(t, st.Resizable)
	assert.False(t, st.Minimizable)
	assert.True(t, st.Closable)
	assert.False(t, st.Minimized)
}

func TestListUsesSnapshotOnly(t *testing.T) {
	svc, sim, pid := newService(t)
	sim.SimAddWindow(pid, "A", platform.Rect{Width: 100, Height: 100})
	sim.SimAddWindow(pid, "B", platform.Rect{X: 200, Width: 100, Height: 100})

	wins, err := svc.List(context.Background(), pid)
	require.NoError(t, err)
	assert.Len(t, wins, 2)
	for _, w := range wins {
		assert.Equal(t, "com.apple.TextEdit", w.BundleId)
	}
}
