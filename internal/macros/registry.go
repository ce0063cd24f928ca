// Package macros stores macro definitions and interprets their action
// lists over the input and selector primitives.
package macros

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/fieldmask"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/pb"
)

// updatableMacroPaths are the mutable fields an update mask may name.
var updatableMacroPaths = map[string]bool{
	"display_name": true,
	"description":  true,
	"actions":      true,
	"parameters":   true,
	"tags":         true,
}

// Registry is the in-memory macro store.
type Registry struct {
	mu     sync.Mutex
	logger *log.Logger
	macros map[string]*pb.Macro
	now    func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		logger: log.New(log.Writer(), "[MACROS] ", log.LstdFlags),
		macros: make(map[string]*pb.Macro),
		now:    time.Now,
	}
}

// Create stores a macro, generating an id when the caller supplied none.
func (r *Registry) Create(m *pb.Macro, id string) (*pb.Macro, error) {
	if id == "" {
		id = uuid.NewString()
	}
	stored := m.Clone()
	stored.Name = names.Macro(id)
	now := timestamppb.New(r.now())
	stored.CreateTime = now
	stored.UpdateTime = now
	stored.ExecutionCount = 0

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.macros[stored.Name]; exists {
		return nil, apierr.InvalidArgument(apierr.ReasonInvalidArgument,
			"macro already exists: "+stored.Name,
			map[string]string{"macroId": id})
	}
	r.macros[stored.Name] = stored
	return stored.Clone(), nil
}

// Get returns a copy of the named macro.
func (r *Registry) Get(name string) (*pb.Macro, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.macros[name]
	if !ok {
		return nil, apierr.NotFound(apierr.ReasonMacroNotFound, name)
	}
	return m.Clone(), nil
}

// List returns all macros sorted by name.
func (r *Registry) List() []*pb.Macro {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*pb.Macro, 0, len(r.macros))
	for _, m := range r.macros {
		out = append(out, m.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Update applies a full replacement (empty mask) or a partial patch.
// Unknown mask paths are rejected.
func (r *Registry) Update(update *pb.Macro, mask *fieldmaskpb.FieldMask) (*pb.Macro, error) {
	if err := fieldmask.ValidateUpdate(mask, updatableMacroPaths); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.macros[update.Name]
	if !ok {
		return nil, apierr.NotFound(apierr.ReasonMacroNotFound, update.Name)
	}
	if fieldmask.IsFullReplace(mask) {
		m.DisplayName = update.DisplayName
		m.Description = update.Description
		m.Actions = pb.CloneActions(update.Actions)
		m.Parameters = cloneParams(update.Parameters)
		m.Tags = append([]string(nil), update.Tags...)
	} else {
		for _, p := range mask.GetPaths() {
			switch p {
			case "display_name":
				m.DisplayName = update.DisplayName
			case "description":
				m.Description = update.Description
			case "actions":
				m.Actions = pb.CloneActions(update.Actions)
			case "parameters":
				m.Parameters = cloneParams(update.Parameters)
			case "tags":
				m.Tags = append([]string(nil), update.Tags...)
			}
		}
	}
	m.UpdateTime = timestamppb.New(r.now())
	return m.Clone(), nil
}

func cloneParams(params []*pb.MacroParameter) []*pb.MacroParameter {
	if params == nil {
		return nil
	}
	out := make([]*pb.MacroParameter, len(params))
	for i, p := range params {
		out[i] = p.Clone()
	}
	return out
}

// Delete removes the macro.
func (r *Registry) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.macros[name]; !ok {
		return apierr.NotFound(apierr.ReasonMacroNotFound, name)
	}
	delete(r.macros, name)
	return nil
}

// IncrementExecutionCount bumps the per-macro counter.
func (r *Registry) IncrementExecutionCount(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.macros[name]; ok {
		m.ExecutionCount++
	}
}
