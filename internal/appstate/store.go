// Package appstate is the in-memory registry of tracked applications and
// input records. Entries have no TTL; they leave only on explicit delete or
// host-process termination.
package appstate

import (
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/macosusesdk/automationd/pb"
)

// Store maps pid -> Application and resource name -> Input. All access is
// serialized; callers receive copies.
type Store struct {
	mu     sync.RWMutex
	logger *log.Logger
	apps   map[int32]*pb.Application
	inputs map[string]*pb.Input
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		logger: log.New(log.Writer(), "[APPSTATE] ", log.LstdFlags),
		apps:   make(map[int32]*pb.Application),
		inputs: make(map[string]*pb.Input),
	}
}

// AddApplication tracks (or re-tracks) an application.
func (s *Store) AddApplication(app *pb.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps[app.Pid] = app.Clone()
	s.logger.Printf("tracking %s (%s)", app.Name, app.DisplayName)
}

// GetApplication returns a copy of the tracked application.
func (s *Store) GetApplication(pid int32) (*pb.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.apps[pid]
	if !ok {
		return nil, false
	}
	return app.Clone(), true
}

// ListApplications returns all tracked applications sorted by resource name.
func (s *Store) ListApplications() []*pb.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*pb.Application, 0, len(s.apps))
	for _, app := range s.apps {
		out = append(out, app.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RemoveApplication stops tracking a pid.
func (s *Store) RemoveApplication(pid int32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[pid]; !ok {
		return false
	}
	delete(s.apps, pid)
	return true
}

// AddInput records an input by resource name.
func (s *Store) AddInput(in *pb.Input) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs[in.Name] = in.Clone()
}

// UpdateInput mutates a stored input record in place under the store lock.
func (s *Store) UpdateInput(name string, fn func(*pb.Input)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	in, ok := s.inputs[name]
	if !ok {
		return false
	}
	fn(in)
	return true
}

// GetInput returns a copy of the input record.
func (s *Store) GetInput(name string) (*pb.Input, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	in, ok := s.inputs[name]
	if !ok {
		return nil, false
	}
	return in.Clone(), true
}

// ListInputs returns inputs whose resource name starts with prefix (all
// inputs when prefix is empty), sorted by resource name ascending.
func (s *Store) ListInputs(prefix string) []*pb.Input {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*pb.Input, 0, len(s.inputs))
	for name, in := range s.inputs {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			out = append(out, in.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
