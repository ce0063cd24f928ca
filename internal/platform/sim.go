package platform

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Simulator is an in-memory SystemOperations backend. It backs the test
// suite and serves as the default backend on hosts without the accessibility
// bridge. State is scripted through the Sim* mutators.
type Simulator struct {
	mu     sync.Mutex
	logger *log.Logger

	nextPid      int32
	nextWindowID uint32
	nextObserver uint64

	apps      map[int32]*SimApp
	windows   map[uint32]*SimWindow
	displays  []DisplayInfo
	clipboard *ClipboardData
	observers map[ObserverHandle]*simObserver
	frontmost int32

	// RegenerateIDOnMutation makes move/resize assign a fresh window id,
	// mimicking the host behavior the window service reconciles.
	RegenerateIDOnMutation bool

	// Scripted dialog outcomes.
	OpenDialogPaths     []string
	OpenDialogCancelled bool
	SaveDialogPath      string
	SaveDialogCancelled bool

	// OCRText is returned by RecognizeText.
	OCRText string

	uiWork chan func()
	done   chan struct{}
}

// SimApp is a simulated running application.
type SimApp struct {
	Info     AppInfo
	Elements []Element
}

// SimWindow is a simulated window; its address doubles as the element handle.
type SimWindow struct {
	ID        uint32
	Pid       int32
	Bounds    Rect
	Title     string
	Layer     int32
	OnScreen  bool
	Minimized bool
	Hidden    bool
	BundleID  string

	Resizable   bool
	Minimizable bool
	Closable    bool
	Focused     bool
}

type simObserver struct {
	pid   int32
	types []string
	cb    func(Notification)
}

// NewSimulator returns a started simulator with one main display.
func NewSimulator() *Simulator {
	s := &Simulator{
		logger:       log.New(log.Writer(), "[SIM] ", log.LstdFlags),
		nextPid:      100,
		nextWindowID: 1000,
		apps:         make(map[int32]*SimApp),
		windows:      make(map[uint32]*SimWindow),
		observers:    make(map[ObserverHandle]*simObserver),
		clipboard:    &ClipboardData{},
		displays: []DisplayInfo{{
			DisplayID:    1,
			Frame:        Rect{Width: 1920, Height: 1080},
			VisibleFrame: Rect{Y: 25, Width: 1920, Height: 1055},
			Scale:        2.0,
			IsMain:       true,
		}},
		uiWork: make(chan func(), 128),
		done:   make(chan struct{}),
	}
	go s.uiLoop()
	return s
}

func (s *Simulator) uiLoop() {
	for {
		select {
		case fn := <-s.uiWork:
			fn()
		case <-s.done:
			return
		}
	}
}

// Close stops the UI worker goroutine.
func (s *Simulator) Close() { close(s.done) }

// SimAddApp registers a running application and returns its pid.
func (s *Simulator) SimAddApp(name, bundleID string) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	pid := s.nextPid
	s.nextPid++
	s.apps[pid] = &SimApp{Info: AppInfo{Pid: pid, Name: name, BundleID: bundleID}}
	s.frontmost = pid
	return pid
}

// SimAddWindow adds a window for pid and returns it.
func (s *Simulator) SimAddWindow(pid int32, title string, bounds Rect) *SimWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextWindowID
	s.nextWindowID++
	app := s.apps[pid]
	bundle := ""
	if app != nil {
		bundle = app.Info.BundleID
	}
	w := &SimWindow{
		ID: id, Pid: pid, Bounds: bounds, Title: title,
		OnScreen: true, BundleID: bundle,
		Resizable: true, Minimizable: true, Closable: true,
	}
	s.windows[id] = w
	return w
}

// SimWindowByID returns the simulated window, or nil.
func (s *Simulator) SimWindowByID(id uint32) *SimWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows[id]
}

// SimAddElement attaches an element to an application's tree.
func (s *Simulator) SimAddElement(pid int32, el Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el.Pid = pid
	if app := s.apps[pid]; app != nil {
		app.Elements = append(app.Elements, el)
	}
}

// SimEmit delivers a notification to every observer attached to its pid.
func (s *Simulator) SimEmit(n Notification) {
	s.mu.Lock()
	var cbs []func(Notification)
	for _, o := range s.observers {
		if o.pid == n.Pid && typeMatches(o.types, n.Type) {
			cbs = append(cbs, o.cb)
		}
	}
	s.mu.Unlock()
	if n.Time.IsZero() {
		n.Time = time.Now()
	}
	for _, cb := range cbs {
		cb(n)
	}
}

func typeMatches(types []string, t string) bool {
	if len(types) == 0 {
		return true
	}
	for _, want := range types {
		if want == t {
			return true
		}
	}
	return false
}

// Applications

func (s *Simulator) OpenApplication(_ context.Context, id string) (AppInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, app := range s.apps {
		if app.Info.BundleID == id || app.Info.Name == id {
			s.frontmost = app.Info.Pid
			return app.Info, nil
		}
	}
	pid := s.nextPid
	s.nextPid++
	name := id
	if i := strings.LastIndex(id, "."); i >= 0 && strings.Contains(id, ".") {
		name = id[i+1:]
	}
	app := &SimApp{Info: AppInfo{Pid: pid, Name: name, BundleID: id}}
	s.apps[pid] = app
	s.frontmost = pid
	return app.Info, nil
}

func (s *Simulator) ActivateApplication(_ context.Context, pid int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[pid]; !ok {
		return fmt.Errorf("no process %d", pid)
	}
	s.frontmost = pid
	return nil
}

func (s *Simulator) TerminateApplication(_ context.Context, pid int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[pid]; !ok {
		return fmt.Errorf("no process %d", pid)
	}
	delete(s.apps, pid)
	for id, w := range s.windows {
		if w.Pid == pid {
			delete(s.windows, id)
		}
	}
	return nil
}

func (s *Simulator) IsApplicationRunning(_ context.Context, identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pid, err := strconv.ParseInt(identifier, 10, 32); err == nil {
		_, ok := s.apps[int32(pid)]
		return ok, nil
	}
	for _, app := range s.apps {
		if app.Info.BundleID == identifier || app.Info.Name == identifier {
			return true, nil
		}
	}
	return false, nil
}

func (s *Simulator) FrontmostApplication(_ context.Context) (AppInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if app, ok := s.apps[s.frontmost]; ok {
		return app.Info, nil
	}
	return AppInfo{}, fmt.Errorf("no frontmost application")
}

// Windows

func (s *Simulator) ListWindows(_ context.Context, pid int32) ([]WindowInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []WindowInfo
	for _, w := range s.windows {
		if pid != 0 && w.Pid != pid {
			continue
		}
		out = append(out, WindowInfo{
			WindowID: w.ID, Pid: w.Pid, Bounds: w.Bounds, Title: w.Title,
			Layer: w.Layer, IsOnScreen: w.OnScreen && !w.Minimized, BundleID: w.BundleID,
		})
	}
	return out, nil
}

func (s *Simulator) windowElement(w *SimWindow) Element {
	b := w.Bounds
	return Element{Handle: w, Pid: w.Pid, Role: "AXWindow", Title: w.Title, Bounds: &b}
}

func (s *Simulator) WindowElements(_ context.Context, pid int32) ([]Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Element
	for _, w := range s.windows {
		if w.Pid == pid && !w.Minimized {
			out = append(out, s.windowElement(w))
		}
	}
	return out, nil
}

func (s *Simulator) ChildWindowElements(_ context.Context, pid int32) ([]Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Element
	for _, w := range s.windows {
		if w.Pid == pid {
			out = append(out, s.windowElement(w))
		}
	}
	return out, nil
}

func handleWindow(el *Element) (*SimWindow, error) {
	w, ok := el.Handle.(*SimWindow)
	if !ok || w == nil {
		return nil, fmt.Errorf("stale element handle")
	}
	return w, nil
}

func (s *Simulator) ReadWindowAttributes(_ context.Context, el *Element) (WindowAttributes, error) {
	w, err := handleWindow(el)
	if err != nil {
		return WindowAttributes{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return WindowAttributes{Bounds: w.Bounds, Title: w.Title, Minimized: w.Minimized, Hidden: w.Hidden}, nil
}

func (s *Simulator) ReadWindowState(_ context.Context, el *Element) (WindowStateInfo, error) {
	w, err := handleWindow(el)
	if err != nil {
		return WindowStateInfo{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return WindowStateInfo{
		Resizable: w.Resizable, Minimizable: w.Minimizable, Closable: w.Closable,
		AxHidden: w.Hidden, Minimized: w.Minimized, Focused: w.Focused,
	}, nil
}

// regenerate swaps the window id in place, as the host does after geometry
// mutations.
func (s *Simulator) regenerate(w *SimWindow) {
	delete(s.windows, w.ID)
	w.ID = s.nextWindowID
	s.nextWindowID++
	s.windows[w.ID] = w
}

func (s *Simulator) SetWindowPosition(_ context.Context, el *Element, x, y float64) error {
	w, err := handleWindow(el)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Bounds.X, w.Bounds.Y = x, y
	if s.RegenerateIDOnMutation {
		s.regenerate(w)
	}
	return nil
}

func (s *Simulator) SetWindowSize(_ context.Context, el *Element, width, height float64) error {
	w, err := handleWindow(el)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Bounds.Width, w.Bounds.Height = width, height
	if s.RegenerateIDOnMutation {
		s.regenerate(w)
	}
	return nil
}

func (s *Simulator) SetWindowMinimized(_ context.Context, el *Element, minimized bool) error {
	w, err := handleWindow(el)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Minimized = minimized
	return nil
}

func (s *Simulator) RaiseWindow(_ context.Context, el *Element) error {
	w, err := handleWindow(el)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Focused = true
	w.Layer = 0
	s.frontmost = w.Pid
	for _, other := range s.windows {
		if other != w && other.Pid == w.Pid {
			other.Focused = false
			other.Layer++
		}
	}
	return nil
}

func (s *Simulator) CloseButton(_ context.Context, el *Element) (*Element, error) {
	w, err := handleWindow(el)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !w.Closable {
		return nil, fmt.Errorf("window %d has no close button", w.ID)
	}
	return &Element{Handle: w, Pid: w.Pid, Role: "AXButton", Title: "close"}, nil
}

func (s *Simulator) PressElement(_ context.Context, el *Element) error {
	if w, ok := el.Handle.(*SimWindow); ok && el.Role == "AXButton" {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.windows, w.ID)
	}
	return nil
}

// Elements

func (s *Simulator) FindElements(_ context.Context, pid int32, role, text, textContains, textRegex string, max int) ([]Element, error) {
	var re *regexp.Regexp
	if textRegex != "" {
		var err error
		re, err = regexp.Compile(textRegex)
		if err != nil {
			return nil, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	app := s.apps[pid]
	if app == nil {
		return nil, fmt.Errorf("no process %d", pid)
	}
	var out []Element
	for _, el := range app.Elements {
		if role != "" && el.Role != role {
			continue
		}
		if text != "" && el.Title != text && el.Value != text {
			continue
		}
		if textContains != "" && !strings.Contains(el.Title, textContains) && !strings.Contains(el.Value, textContains) {
			continue
		}
		if re != nil && !re.MatchString(el.Title) && !re.MatchString(el.Value) {
			continue
		}
		out = append(out, el)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out, nil
}

// Displays

func (s *Simulator) ListDisplays(_ context.Context) ([]DisplayInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DisplayInfo, len(s.displays))
	copy(out, s.displays)
	return out, nil
}

// Input synthesis. The simulator records nothing beyond the call syntax; the
// input store tracks the records.

func (s *Simulator) Click(context.Context, float64, float64, int32, int32) error { return nil }
func (s *Simulator) TypeText(context.Context, string) error                      { return nil }
func (s *Simulator) PressKey(context.Context, string, []string) error            { return nil }
func (s *Simulator) Scroll(context.Context, float64, float64, float64, float64) error {
	return nil
}
func (s *Simulator) MouseDown(context.Context, float64, float64, int32) error { return nil }
func (s *Simulator) MouseMove(context.Context, float64, float64) error        { return nil }
func (s *Simulator) MouseUp(context.Context, float64, float64, int32) error   { return nil }

// Capture and OCR

func (s *Simulator) capture(w, h int32) (Capture, error) {
	return Capture{Data: []byte("sim-image"), Width: w, Height: h}, nil
}

func (s *Simulator) CaptureDisplay(_ context.Context, displayID uint32, _ CaptureOptions) (Capture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.displays {
		if d.DisplayID == displayID || (displayID == 0 && d.IsMain) {
			return s.capture(int32(d.Frame.Width*d.Scale), int32(d.Frame.Height*d.Scale))
		}
	}
	return Capture{}, fmt.Errorf("no display %d", displayID)
}

func (s *Simulator) CaptureAllDisplays(_ context.Context, _ CaptureOptions) (Capture, error) {
	var w, h int32
	s.mu.Lock()
	for _, d := range s.displays {
		w += int32(d.Frame.Width * d.Scale)
		if int32(d.Frame.Height*d.Scale) > h {
			h = int32(d.Frame.Height * d.Scale)
		}
	}
	s.mu.Unlock()
	return s.capture(w, h)
}

func (s *Simulator) CaptureRegion(_ context.Context, region Rect, _ CaptureOptions) (Capture, error) {
	return s.capture(int32(region.Width), int32(region.Height))
}

func (s *Simulator) CaptureWindow(_ context.Context, windowID uint32, _ CaptureOptions) (Capture, error) {
	s.mu.Lock()
	w, ok := s.windows[windowID]
	s.mu.Unlock()
	if !ok {
		return Capture{}, fmt.Errorf("no window %d", windowID)
	}
	return s.capture(int32(w.Bounds.Width), int32(w.Bounds.Height))
}

func (s *Simulator) RecognizeText(context.Context, []byte) (string, error) {
	return s.OCRText, nil
}

// Clipboard

func (s *Simulator) ReadClipboard(context.Context) (*ClipboardData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *s.clipboard
	return &cp, nil
}

func (s *Simulator) WriteClipboard(_ context.Context, data *ClipboardData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *data
	s.clipboard = &cp
	return nil
}

func (s *Simulator) ClearClipboard(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipboard = &ClipboardData{}
	return nil
}

// Scripting host. The simulator "compiles" by trivial syntax screening and
// "runs" by echoing the source tail.

type simCompiled struct{ source string }

func (s *Simulator) CompileScript(_ context.Context, _ ScriptLanguage, source string) (any, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("empty script")
	}
	return &simCompiled{source: source}, nil
}

func (s *Simulator) RunCompiledScript(_ context.Context, compiled any) (string, error) {
	c, ok := compiled.(*simCompiled)
	if !ok {
		return "", fmt.Errorf("not a simulator script")
	}
	return "ok: " + c.source, nil
}

// File dialogs

func (s *Simulator) ShowOpenDialog(context.Context, OpenDialogOptions) ([]string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.OpenDialogPaths, s.OpenDialogCancelled, nil
}

func (s *Simulator) ShowSaveDialog(context.Context, SaveDialogOptions) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.SaveDialogPath, s.SaveDialogCancelled, nil
}

func (s *Simulator) RevealPath(context.Context, string) error { return nil }

// Observers

func (s *Simulator) AttachObserver(_ context.Context, pid int32, types []string, cb func(Notification)) (ObserverHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[pid]; !ok {
		return 0, fmt.Errorf("no process %d", pid)
	}
	s.nextObserver++
	h := ObserverHandle(s.nextObserver)
	s.observers[h] = &simObserver{pid: pid, types: types, cb: cb}
	return h, nil
}

func (s *Simulator) DetachObserver(_ context.Context, handle ObserverHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.observers[handle]; !ok {
		return fmt.Errorf("no observer %d", handle)
	}
	delete(s.observers, handle)
	return nil
}

func (s *Simulator) DispatchToUIWorker(fn func()) {
	select {
	case s.uiWork <- fn:
	case <-s.done:
	}
}

func (s *Simulator) CheckAccessibilityPermission(context.Context) error { return nil }

var _ SystemOperations = (*Simulator)(nil)
