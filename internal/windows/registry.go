// Package windows reconciles two stale views of host windows: the window
// list snapshot (authoritative for z-order and bundle id, but laggy) and
// fresh per-element attribute reads (authoritative for geometry and state).
// The registry caches the snapshot with a 1 second TTL; the service layers
// the authority model on top.
package windows

import (
	"context"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/macosusesdk/automationd/internal/platform"
)

const (
	// TTL bounds how long a snapshot row may be served without a refresh.
	TTL = time.Second
	// Tolerance is the match slack for position/bounds lookups, in points.
	Tolerance = 5.0
)

// Info is one cached window-list row.
type Info struct {
	WindowID   uint32
	Pid        int32
	Bounds     platform.Rect
	Title      string
	Layer      int32
	IsOnScreen bool
	BundleID   string
	Timestamp  time.Time
}

// Registry is the TTL-cached window snapshot.
type Registry struct {
	mu      sync.Mutex
	logger  *log.Logger
	sys     platform.SystemOperations
	entries map[uint32]*Info
	now     func() time.Time
}

// NewRegistry returns an empty registry backed by sys.
func NewRegistry(sys platform.SystemOperations) *Registry {
	return &Registry{
		logger:  log.New(log.Writer(), "[WINREG] ", log.LstdFlags),
		sys:     sys,
		entries: make(map[uint32]*Info),
		now:     time.Now,
	}
}

// SetClock overrides the registry clock. Tests only.
func (r *Registry) SetClock(now func() time.Time) { r.now = now }

// Refresh queries the host window list (off-screen and minimized included),
// overwrites matching entries with a single timestamp, then evicts anything
// older than the TTL. Pid 0 refreshes all processes.
func (r *Registry) Refresh(ctx context.Context, pid int32) error {
	wins, err := r.sys.ListWindows(ctx, pid)
	if err != nil {
		return err
	}
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range wins {
		r.entries[w.WindowID] = &Info{
			WindowID:   w.WindowID,
			Pid:        w.Pid,
			Bounds:     w.Bounds,
			Title:      w.Title,
			Layer:      w.Layer,
			IsOnScreen: w.IsOnScreen,
			BundleID:   w.BundleID,
			Timestamp:  now,
		}
	}
	for id, e := range r.entries {
		if now.Sub(e.Timestamp) >= TTL {
			delete(r.entries, id)
		}
	}
	return nil
}

func (r *Registry) lookup(id uint32) (*Info, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	cp := *e
	return &cp, true
}

// Get returns the cached entry if fresh, otherwise refreshes everything and
// retries. The entry may still be absent after the refresh.
func (r *Registry) Get(ctx context.Context, id uint32) (*Info, bool, error) {
	if e, ok := r.lookup(id); ok && r.now().Sub(e.Timestamp) < TTL {
		return e, true, nil
	}
	if err := r.Refresh(ctx, 0); err != nil {
		return nil, false, err
	}
	e, ok := r.lookup(id)
	return e, ok, nil
}

// ListForPID refreshes the process scope and returns its windows ordered by
// layer ascending.
func (r *Registry) ListForPID(ctx context.Context, pid int32) ([]*Info, error) {
	if err := r.Refresh(ctx, pid); err != nil {
		return nil, err
	}
	r.mu.Lock()
	var out []*Info
	for _, e := range r.entries {
		if e.Pid == pid {
			cp := *e
			out = append(out, &cp)
		}
	}
	r.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Layer != out[j].Layer {
			return out[i].Layer < out[j].Layer
		}
		return out[i].WindowID < out[j].WindowID
	})
	return out, nil
}

// Invalidate removes one entry; mutations call this to force a re-read.
func (r *Registry) Invalidate(id uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// LastKnown is a pure lookup with no refresh, for latency-sensitive paths.
// The entry may be stale.
func (r *Registry) LastKnown(id uint32) (*Info, bool) {
	return r.lookup(id)
}

// FindByPosition returns the unique cached window of pid whose origin is
// within tol of (x, y). Zero or multiple matches yield nil; ambiguity is no
// match.
func (r *Registry) FindByPosition(pid int32, x, y, tol float64) *Info {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found *Info
	for _, e := range r.entries {
		if e.Pid != pid {
			continue
		}
		if math.Abs(e.Bounds.X-x) <= tol && math.Abs(e.Bounds.Y-y) <= tol {
			if found != nil {
				return nil
			}
			cp := *e
			found = &cp
		}
	}
	return found
}

// FindByBounds returns the unique cached window of pid whose full frame is
// within tol of bounds, with the same ambiguity rule as FindByPosition.
func (r *Registry) FindByBounds(pid int32, bounds platform.Rect, tol float64) *Info {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found *Info
	for _, e := range r.entries {
		if e.Pid != pid {
			continue
		}
		if math.Abs(e.Bounds.X-bounds.X) <= tol &&
			math.Abs(e.Bounds.Y-bounds.Y) <= tol &&
			math.Abs(e.Bounds.Width-bounds.Width) <= tol &&
			math.Abs(e.Bounds.Height-bounds.Height) <= tol {
			if found != nil {
				return nil
			}
			cp := *e
			found = &cp
		}
	}
	return found
}
