package windows

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

const (
	verifyInterval = 10 * time.Millisecond
	verifyTimeout  = 2 * time.Second
)

// Service composes Window responses from the split sources of truth and
// runs the mutation protocols, including post-mutation window-id
// regeneration fix-up.
type Service struct {
	logger   *log.Logger
	sys      platform.SystemOperations
	registry *Registry
}

// NewService wires the service over the shared registry.
func NewService(sys platform.SystemOperations, registry *Registry) *Service {
	return &Service{
		logger:   log.New(log.Writer(), "[WINDOWS] ", log.LstdFlags),
		sys:      sys,
		registry: registry,
	}
}

// Registry exposes the underlying snapshot cache.
func (s *Service) Registry() *Registry { return s.registry }

// compose applies the authority model: geometry and state from the fresh
// attribute read, z-order and bundle id from the registry row (may be nil).
// Visibility trusts the fresh read over a stale snapshot: a window that AX
// says is neither minimized nor hidden counts as on-screen.
func compose(pid int32, windowID uint32, attrs platform.WindowAttributes, info *Info) *pb.Window {
	onScreen := false
	var zIndex int32
	bundle := ""
	if info != nil {
		onScreen = info.IsOnScreen
		zIndex = info.Layer
		bundle = info.BundleID
	}
	axVisible := !attrs.Minimized && !attrs.Hidden
	return &pb.Window{
		Name:  names.Window(pid, windowID),
		Title: attrs.Title,
		Bounds: &pb.Bounds{
			X: attrs.Bounds.X, Y: attrs.Bounds.Y,
			Width: attrs.Bounds.Width, Height: attrs.Bounds.Height,
		},
		ZIndex:   zIndex,
		Visible:  (onScreen || axVisible) && axVisible,
		BundleId: bundle,
	}
}

// score ranks candidate elements against an expected-bounds hint: Euclidean
// distance over origin plus size, halved when the title matches. A zero hint
// degenerates to PID-filtered scoring alone.
func score(el *platform.Element, hint platform.Rect, title string) float64 {
	var b platform.Rect
	if el.Bounds != nil {
		b = *el.Bounds
	}
	d := math.Hypot(b.X-hint.X, b.Y-hint.Y) + math.Hypot(b.Width-hint.Width, b.Height-hint.Height)
	if title != "" && el.Title == title {
		d *= 0.5
	}
	return d
}

func best(cands []platform.Element, hint platform.Rect, title string) *platform.Element {
	var found *platform.Element
	bestScore := math.Inf(1)
	for i := range cands {
		if sc := score(&cands[i], hint, title); sc < bestScore {
			bestScore = sc
			found = &cands[i]
		}
	}
	return found
}

// locateElement fetches the window element closest to the expected bounds.
// Minimized windows are absent from the top-level window set, so the lookup
// falls back to scanning window-like children with the same scoring.
func (s *Service) locateElement(ctx context.Context, pid int32, hint platform.Rect, title string) (*platform.Element, error) {
	cands, err := s.sys.WindowElements(ctx, pid)
	if err != nil {
		return nil, apierr.Platform(err)
	}
	if el := best(cands, hint, title); el != nil {
		return el, nil
	}
	children, err := s.sys.ChildWindowElements(ctx, pid)
	if err != nil {
		return nil, apierr.Platform(err)
	}
	if el := best(children, hint, title); el != nil {
		return el, nil
	}
	return nil, nil
}

// resolve locates the element for a known window id, using the registry row
// as the bounds hint when available.
func (s *Service) resolve(ctx context.Context, pid int32, windowID uint32) (*platform.Element, *Info, error) {
	info, ok, err := s.registry.Get(ctx, windowID)
	if err != nil {
		return nil, nil, apierr.Platform(err)
	}
	if !ok {
		return nil, nil, apierr.NotFound(apierr.ReasonWindowNotFound, names.Window(pid, windowID))
	}
	el, err := s.locateElement(ctx, pid, info.Bounds, info.Title)
	if err != nil {
		return nil, nil, err
	}
	if el == nil {
		return nil, nil, apierr.NotFound(apierr.ReasonWindowNotFound, names.Window(pid, windowID))
	}
	return el, info, nil
}

// Get builds a Window response for a known id.
func (s *Service) Get(ctx context.Context, pid int32, windowID uint32) (*pb.Window, error) {
	el, info, err := s.resolve(ctx, pid, windowID)
	if err != nil {
		return nil, err
	}
	attrs, err := s.sys.ReadWindowAttributes(ctx, el)
	if err != nil {
		return nil, apierr.Platform(err)
	}
	return compose(pid, windowID, attrs, info), nil
}

// List composes responses from the registry alone; it performs no
// per-window attribute reads so latency stays bounded regardless of window
// count. Clients needing live state call GetWindowState.
func (s *Service) List(ctx context.Context, pid int32) ([]*pb.Window, error) {
	infos, err := s.registry.ListForPID(ctx, pid)
	if err != nil {
		return nil, apierr.Platform(err)
	}
	out := make([]*pb.Window, 0, len(infos))
	for _, info := range infos {
		out = append(out, &pb.Window{
			Name:  names.Window(info.Pid, info.WindowID),
			Title: info.Title,
			Bounds: &pb.Bounds{
				X: info.Bounds.X, Y: info.Bounds.Y,
				Width: info.Bounds.Width, Height: info.Bounds.Height,
			},
			ZIndex:   info.Layer,
			Visible:  info.IsOnScreen,
			BundleId: info.BundleID,
		})
	}
	return out, nil
}

// State performs the full derived-state read for one window.
func (s *Service) State(ctx context.Context, pid int32, windowID uint32) (*pb.WindowState, error) {
	el, _, err := s.resolve(ctx, pid, windowID)
	if err != nil {
		return nil, err
	}
	st, err := s.sys.ReadWindowState(ctx, el)
	if err != nil {
		return nil, apierr.Platform(err)
	}
	return &pb.WindowState{
		Name:        names.WindowState(pid, windowID),
		Resizable:   st.Resizable,
		Minimizable: st.Minimizable,
		Closable:    st.Closable,
		Modal:       st.Modal,
		Floating:    st.Floating,
		AxHidden:    st.AxHidden,
		Minimized:   st.Minimized,
		Focused:     st.Focused,
		Fullscreen:  st.Fullscreen,
	}, nil
}

// mutation is the shared post-mutation protocol: refresh, detect a
// regenerated id via the requested geometry, re-acquire the element when the
// id moved, then compose preferring the fresh registry row and falling back
// to the pre-mutation snapshot.
func (s *Service) finishMutation(ctx context.Context, pid int32, oldID uint32, preInfo *Info, el *platform.Element, match func() *Info, want platform.Rect, title string) (*pb.Window, error) {
	if err := s.registry.Refresh(ctx, pid); err != nil {
		s.logger.Printf("post-mutation refresh failed for pid %d: %v", pid, err)
	}
	windowID := oldID
	info := s.regLookupFresh(oldID)
	if m := match(); m != nil && m.WindowID != oldID {
		// The host regenerated the window id. Re-acquire the element so
		// the response reflects the new identity.
		windowID = m.WindowID
		info = m
		if reacquired, err := s.locateElement(ctx, pid, want, title); err == nil && reacquired != nil {
			el = reacquired
		}
	}
	s.registry.Invalidate(oldID)
	if info == nil {
		info = preInfo
	}
	attrs, err := s.sys.ReadWindowAttributes(ctx, el)
	if err != nil {
		return nil, apierr.Platform(err)
	}
	return compose(pid, windowID, attrs, info), nil
}

func (s *Service) regLookupFresh(id uint32) *Info {
	if info, ok := s.registry.LastKnown(id); ok {
		return info
	}
	return nil
}

// Move repositions a window. The window id may regenerate; the response
// carries the post-mutation identity.
func (s *Service) Move(ctx context.Context, pid int32, windowID uint32, x, y float64) (*pb.Window, error) {
	preInfo, _ := s.registry.LastKnown(windowID)
	el, _, err := s.resolve(ctx, pid, windowID)
	if err != nil {
		return nil, err
	}
	if err := s.sys.SetWindowPosition(ctx, el, x, y); err != nil {
		s.registry.Invalidate(windowID)
		return nil, apierr.Platform(err)
	}
	want := platform.Rect{X: x, Y: y}
	title := ""
	if preInfo != nil {
		want.Width, want.Height = preInfo.Bounds.Width, preInfo.Bounds.Height
		title = preInfo.Title
	}
	return s.finishMutation(ctx, pid, windowID, preInfo, el,
		func() *Info { return s.registry.FindByPosition(pid, x, y, Tolerance) },
		want, title)
}

// Resize changes a window's size, with the same id-regeneration handling as
// Move.
func (s *Service) Resize(ctx context.Context, pid int32, windowID uint32, width, height float64) (*pb.Window, error) {
	preInfo, _ := s.registry.LastKnown(windowID)
	el, _, err := s.resolve(ctx, pid, windowID)
	if err != nil {
		return nil, err
	}
	if err := s.sys.SetWindowSize(ctx, el, width, height); err != nil {
		s.registry.Invalidate(windowID)
		return nil, apierr.Platform(err)
	}
	want := platform.Rect{Width: width, Height: height}
	title := ""
	if preInfo != nil {
		want.X, want.Y = preInfo.Bounds.X, preInfo.Bounds.Y
		title = preInfo.Title
	}
	return s.finishMutation(ctx, pid, windowID, preInfo, el,
		func() *Info { return s.registry.FindByBounds(pid, want, Tolerance) },
		want, title)
}

// setMinimized writes the attribute and polls it until the host reports the
// expected value, so clients never observe the pre-mutation state.
func (s *Service) setMinimized(ctx context.Context, pid int32, windowID uint32, minimized bool) (*pb.Window, error) {
	el, preInfo, err := s.resolve(ctx, pid, windowID)
	if err != nil {
		return nil, err
	}
	if err := s.sys.SetWindowMinimized(ctx, el, minimized); err != nil {
		s.registry.Invalidate(windowID)
		return nil, apierr.Platform(err)
	}
	deadline := time.Now().Add(verifyTimeout)
	var attrs platform.WindowAttributes
	for {
		attrs, err = s.sys.ReadWindowAttributes(ctx, el)
		if err != nil {
			return nil, apierr.Platform(err)
		}
		if attrs.Minimized == minimized || !time.Now().Before(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			return nil, apierr.Internal(apierr.ReasonTimeout,
				fmt.Sprintf("minimize verification cancelled for window %d", windowID), nil)
		case <-time.After(verifyInterval):
		}
	}
	if err := s.registry.Refresh(ctx, pid); err != nil {
		s.logger.Printf("post-minimize refresh failed for pid %d: %v", pid, err)
	}
	info := s.regLookupFresh(windowID)
	s.registry.Invalidate(windowID)
	if info == nil {
		info = preInfo
	}
	return compose(pid, windowID, attrs, info), nil
}

// Minimize sends a window to the dock and waits for the attribute to settle.
func (s *Service) Minimize(ctx context.Context, pid int32, windowID uint32) (*pb.Window, error) {
	return s.setMinimized(ctx, pid, windowID, true)
}

// Restore reverses Minimize with the same verification.
func (s *Service) Restore(ctx context.Context, pid int32, windowID uint32) (*pb.Window, error) {
	return s.setMinimized(ctx, pid, windowID, false)
}

// Focus raises the window.
func (s *Service) Focus(ctx context.Context, pid int32, windowID uint32) (*pb.Window, error) {
	el, _, err := s.resolve(ctx, pid, windowID)
	if err != nil {
		return nil, err
	}
	if err := s.sys.RaiseWindow(ctx, el); err != nil {
		s.registry.Invalidate(windowID)
		return nil, apierr.Platform(err)
	}
	if err := s.registry.Refresh(ctx, pid); err != nil {
		s.logger.Printf("post-focus refresh failed for pid %d: %v", pid, err)
	}
	return s.Get(ctx, pid, windowID)
}

// Close locates the close-button sub-element and presses it.
func (s *Service) Close(ctx context.Context, pid int32, windowID uint32) error {
	el, _, err := s.resolve(ctx, pid, windowID)
	if err != nil {
		return err
	}
	btn, err := s.sys.CloseButton(ctx, el)
	if err != nil || btn == nil {
		return apierr.FailedPrecondition(apierr.ReasonNoCloseButton,
			fmt.Sprintf("window %d has no close button", windowID),
			map[string]string{"window": names.Window(pid, windowID)})
	}
	if err := s.sys.PressElement(ctx, btn); err != nil {
		s.registry.Invalidate(windowID)
		return apierr.Platform(err)
	}
	s.registry.Invalidate(windowID)
	return nil
}
