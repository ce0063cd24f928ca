package windows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macosusesdk/automationd/internal/platform"
)

func TestRefreshAndGet(t *testing.T) {
	sim := platform.NewSimulator()
	defer sim.Close()
	pid := sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{X: 10, Y: 20, Width: 400, Height: 300})

	r := NewRegistry(sim)
	info, ok, err := r.Get(context.Background(), w.ID)
	require.NoError(t, err)
	require.True(t, ok, "miss triggers a refresh that finds the window")
	assert.Equal(t, pid, info.Pid)
	assert.Equal(t, "Untitled", info.Title)
	assert.Equal(t, 400.0, info.Bounds.Width)

	_, ok, err = r.Get(context.Background(), 424242)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStaleEntriesEvictOnRefresh(t *testing.T) {
	sim := platform.NewSimulator()
	defer sim.Close()
	pid := sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{Width: 100, Height: 100})

	r := NewRegistry(sim)
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	r.SetClock(func() time.Time { return clock })
	require.NoError(t, r.Refresh(context.Background(), 0))

	// The window disappears from the host; the cached row ages out on the
	// next refresh past the TTL.
	require.NoError(t, sim.TerminateApplication(context.Background(), pid))
	clock = clock.Add(TTL)
	require.NoError(t, r.Refresh(context.Background(), 0))

	_, ok := r.LastKnown(w.ID)
	assert.False(t, ok)
}

func TestFreshRowSkipsRefresh(t *testing.T) {
	sim := platform.NewSimulator()
	defer sim.Close()
	pid := sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{Width: 100, Height: 100})

	r := NewRegistry(sim)
	require.NoError(t, r.Refresh(context.Background(), 0))

	// Retitle on the host. A fresh cache row is served without re-reading.
	sim.SimWindowByID(w.ID).Title = "Renamed"
	info, ok, err := r.Get(context.Background(), w.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Untitled", info.Title)
}

func TestListForPIDOrdersByLayer(t *testing.T) {
	sim := platform.NewSimulator()
	defer sim.Close()
	pid := sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	back := sim.SimAddWindow(pid, "Back", platform.Rect{Width: 100, Height: 100})
	front := sim.SimAddWindow(pid, "Front", platform.Rect{Width: 100, Height: 100})
	back.Layer = 3
	front.Layer = 0

	other := sim.SimAddApp("Finder", "com.apple.finder")
	sim.SimAddWindow(other, "Desktop", platform.Rect{Width: 100, Height: 100})

	r := NewRegistry(sim)
	infos, err := r.ListForPID(context.Background(), pid)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "Front", infos[0].Title)
	assert.Equal(t, "Back", infos[1].Title)
}

func TestFindByPosition(t *testing.T) {
	sim := platform.NewSimulator()
	defer sim.Close()
	pid := sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	w := sim.SimAddWindow(pid, "A", platform.Rect{X: 100, Y: 100, Width: 300, Height: 200})
	sim.SimAddWindow(pid, "B", platform.Rect{X: 500, Y: 500, Width: 300, Height: 200})

	r := NewRegistry(sim)
	require.NoError(t, r.Refresh(context.Background(), 0))

	found := r.FindByPosition(pid, 102, 98, Tolerance)
	require.NotNil(t, found)
	assert.Equal(t, w.ID, found.WindowID)

	assert.Nil(t, r.FindByPosition(pid, 300, 300, Tolerance), "no window near the point")
}

func TestFindByPositionAmbiguityIsNoMatch(t *testing.T) {
	sim := platform.NewSimulator()
	defer sim.Close()
	pid := sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	sim.SimAddWindow(pid, "A", platform.Rect{X: 100, Y: 100, Width: 300, Height: 200})
	sim.SimAddWindow(pid, "B", platform.Rect{X: 103, Y: 103, Width: 300, Height: 200})

	r := NewRegistry(sim)
	require.NoError(t, r.Refresh(context.Background(), 0))

	assert.Nil(t, r.FindByPosition(pid, 101, 101, Tolerance))
}

func TestFindByBounds(t *testing.T) {
	sim := platform.NewSimulator()
	defer sim.Close()
	pid := sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	// Same origin, different sizes: bounds matching disambiguates where
	// position matching cannot.
	a := sim.SimAddWindow(pid, "A", platform.Rect{X: 0, Y: 0, Width: 300, Height: 200})
	sim.SimAddWindow(pid, "B", platform.Rect{X: 0, Y: 0, Width: 800, Height: 600})

	r := NewRegistry(sim)
	require.NoError(t, r.Refresh(context.Background(), 0))

	found := r.FindByBounds(pid, platform.Rect{X: 2, Y: 2, Width: 301, Height: 199}, Tolerance)
	require.NotNil(t, found)
	assert.Equal(t, a.ID, found.WindowID)
}
