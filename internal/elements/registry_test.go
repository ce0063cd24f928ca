package elements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macosusesdk/automationd/internal/platform"
)

// fakeClock drives a registry through time without sleeping.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClockedRegistry() (*Registry, *fakeClock) {
	r := NewRegistry()
	c := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	r.SetClock(c.now)
	return r, c
}

func button(pid int32, title string) platform.Element {
	return platform.Element{Pid: pid, Role: "AXButton", Title: title}
}

func TestRegisterAndGet(t *testing.T) {
	r, _ := newClockedRegistry()
	id := r.Register(button(100, "OK"))
	assert.Regexp(t, `^elem_\d+_\d{6}$`, id)

	e, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, int32(100), e.Pid)
	assert.Equal(t, "OK", e.Element.Title)

	_, ok = r.Get("elem_0_000000")
	assert.False(t, ok)
}

func TestGetEvictsExpired(t *testing.T) {
	r, c := newClockedRegistry()
	id := r.Register(button(100, "OK"))

	c.advance(TTL - time.Second)
	_, ok := r.Get(id)
	assert.True(t, ok, "entry still fresh just under the TTL")

	c.advance(2 * time.Second)
	_, ok = r.Get(id)
	assert.False(t, ok, "entry gone at the TTL")

	// The expired entry was evicted, not merely hidden.
	assert.Equal(t, 0, r.Stats().Total)
}

func TestUpdateRefreshesTTL(t *testing.T) {
	r, c := newClockedRegistry()
	id := r.Register(button(100, "OK"))

	c.advance(TTL - time.Second)
	require.True(t, r.Update(id, button(100, "Save")))

	c.advance(TTL - time.Second)
	e, ok := r.Get(id)
	require.True(t, ok, "update restarted the TTL window")
	assert.Equal(t, "Save", e.Element.Title)

	c.advance(TTL)
	assert.False(t, r.Update(id, button(100, "Late")), "expired entries cannot be refreshed")
}

func TestListByPid(t *testing.T) {
	r, c := newClockedRegistry()
	a := r.Register(button(100, "A"))
	c.advance(time.Second)
	b := r.Register(button(100, "B"))
	c.advance(time.Second)
	r.Register(button(200, "C"))

	got := r.ListByPid(100)
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0].ID, "oldest first")
	assert.Equal(t, b, got[1].ID)

	assert.Len(t, r.ListByPid(0), 3, "pid 0 spans every process")
	assert.Empty(t, r.ListByPid(999))
}

func TestClearPid(t *testing.T) {
	r, _ := newClockedRegistry()
	r.Register(button(100, "A"))
	r.Register(button(100, "B"))
	keep := r.Register(button(200, "C"))

	assert.Equal(t, 2, r.ClearPid(100))
	_, ok := r.Get(keep)
	assert.True(t, ok)
	assert.Equal(t, 1, r.Stats().Total)
}

func TestReap(t *testing.T) {
	r, c := newClockedRegistry()
	r.Register(button(100, "old"))
	c.advance(TTL)
	fresh := r.Register(button(100, "fresh"))

	assert.Equal(t, 1, r.Reap())
	assert.Equal(t, 0, r.Reap(), "second sweep finds nothing")
	_, ok := r.Get(fresh)
	assert.True(t, ok)
}

func TestStats(t *testing.T) {
	r, c := newClockedRegistry()
	first := c.t
	r.Register(button(100, "A"))
	c.advance(time.Second)
	r.Register(button(200, "B"))

	st := r.Stats()
	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 1, st.ByPid[100])
	assert.Equal(t, 1, st.ByPid[200])
	assert.Equal(t, first, st.Oldest)
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	r, _ := newClockedRegistry()
	id := r.Register(button(100, "OK"))

	e, ok := r.Get(id)
	require.True(t, ok)
	e.Element.Title = "mutated"

	again, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, "OK", again.Element.Title)
}
