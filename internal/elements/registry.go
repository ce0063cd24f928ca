// Package elements is the TTL-cached registry of accessibility element
// handles. Handles go stale quickly on the host side, so entries expire
// after 30 seconds and a reaper sweeps every 10.
package elements

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/macosusesdk/automationd/internal/platform"
)

const (
	// TTL is how long a registered handle stays retrievable.
	TTL = 30 * time.Second
	// reapInterval is the background sweep period.
	reapInterval = 10 * time.Second
)

// Entry is one registered element.
type Entry struct {
	ID         string
	Element    platform.Element
	Pid        int32
	Registered time.Time
}

// Stats summarizes registry occupancy.
type Stats struct {
	Total  int
	ByPid  map[int32]int
	Oldest time.Time
}

// Registry owns the element handles exclusively. The zero TTL lookup
// contract: a Get that observes an expired entry evicts it and reports
// not-found.
type Registry struct {
	mu      sync.Mutex
	logger  *log.Logger
	entries map[string]*Entry
	now     func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		logger:  log.New(log.Writer(), "[ELEMENTS] ", log.LstdFlags),
		entries: make(map[string]*Entry),
		now:     time.Now,
	}
}

// SetClock overrides the registry clock. Tests only.
func (r *Registry) SetClock(now func() time.Time) { r.now = now }

// NewID generates an element id: elem_<msEpoch>_<rand6digits>.
func (r *Registry) NewID() string {
	return fmt.Sprintf("elem_%d_%06d", r.now().UnixMilli(), rand.Intn(1000000))
}

// Register stores the element and returns its id.
func (r *Registry) Register(el platform.Element) string {
	id := r.NewID()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &Entry{ID: id, Element: el, Pid: el.Pid, Registered: r.now()}
	return id
}

func (r *Registry) expired(e *Entry) bool {
	return r.now().Sub(e.Registered) >= TTL
}

// Get returns the entry if present and fresh. An expired entry is evicted on
// the spot.
func (r *Registry) Get(id string) (*Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	if r.expired(e) {
		delete(r.entries, id)
		return nil, false
	}
	cp := *e
	return &cp, true
}

// Handle returns the live element for id, with the same expiry semantics as
// Get.
func (r *Registry) Handle(id string) (*platform.Element, bool) {
	e, ok := r.Get(id)
	if !ok {
		return nil, false
	}
	el := e.Element
	return &el, true
}

// Update replaces the stored element and refreshes its timestamp.
func (r *Registry) Update(id string, el platform.Element) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || r.expired(e) {
		delete(r.entries, id)
		return false
	}
	e.Element = el
	e.Registered = r.now()
	return true
}

// Remove drops one entry.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// ListByPid returns fresh entries for a process, oldest first. Pid 0 lists
// every process.
func (r *Registry) ListByPid(pid int32) []*Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Entry
	for id, e := range r.entries {
		if r.expired(e) {
			delete(r.entries, id)
			continue
		}
		if pid == 0 || e.Pid == pid {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Registered.Before(out[j].Registered) })
	return out
}

// ClearPid drops every entry of a process (used when it terminates).
func (r *Registry) ClearPid(pid int32) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, e := range r.entries {
		if e.Pid == pid {
			delete(r.entries, id)
			n++
		}
	}
	return n
}

// Stats reports current occupancy. Expired entries are not counted but are
// left for the reaper.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := Stats{ByPid: make(map[int32]int)}
	for _, e := range r.entries {
		if r.expired(e) {
			continue
		}
		st.Total++
		st.ByPid[e.Pid]++
		if st.Oldest.IsZero() || e.Registered.Before(st.Oldest) {
			st.Oldest = e.Registered
		}
	}
	return st
}

// Reap evicts expired entries once and returns how many went.
func (r *Registry) Reap() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, e := range r.entries {
		if r.expired(e) {
			delete(r.entries, id)
			n++
		}
	}
	return n
}

// RunReaper sweeps every 10 seconds until ctx is cancelled.
func (r *Registry) RunReaper(ctx context.Context) {
	ticker := time.NewTicker(reapInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Reap(); n > 0 {
				r.logger.Printf("evicted %d stale elements", n)
			}
		}
	}
}
