// Package platform defines the narrow interface the automation core uses to
// talk to the host: accessibility reads and writes, window lists, input
// synthesis, capture, clipboard, scripting and dialogs. The core never calls
// host APIs directly; everything goes through SystemOperations so the whole
// service can run against the in-memory simulator in tests.
package platform

import (
	"context"
	"errors"
	"time"
)

// ErrUnsupported is returned by adapter implementations for operations the
// current backend cannot perform.
var ErrUnsupported = errors.New("platform: operation not supported by this backend")

// Rect is a window or element frame in global coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// IsZero reports whether the rect is the zero value. A zero hint is legal in
// element lookups and falls back to PID-filtered scoring alone.
func (r Rect) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Width == 0 && r.Height == 0
}

// AppInfo describes a running application.
type AppInfo struct {
	Pid      int32
	Name     string
	BundleID string
}

// WindowInfo is one row of the host window list. The list is the authority
// for layer and bundle id; geometry may lag behind the live element.
type WindowInfo struct {
	WindowID   uint32
	Pid        int32
	Bounds     Rect
	Title      string
	Layer      int32
	IsOnScreen bool
	BundleID   string
}

// WindowAttributes is a fresh per-element attribute read. Safe to perform off
// the UI-capable worker.
type WindowAttributes struct {
	Bounds    Rect
	Title     string
	Minimized bool
	Hidden    bool
}

// WindowStateInfo is the full derived window state. Fullscreen is nil when
// the host cannot report it.
type WindowStateInfo struct {
	Resizable   bool
	Minimizable bool
	Closable    bool
	Modal       bool
	Floating    bool
	AxHidden    bool
	Minimized   bool
	Focused     bool
	Fullscreen  *bool
}

// Element is a host accessibility element. Handle is the opaque host object
// and must only be passed back into the adapter that produced it.
type Element struct {
	Handle     any
	Pid        int32
	Role       string
	Title      string
	Value      string
	Bounds     *Rect
	Attributes map[string]string
}

// DisplayInfo describes one attached display. VisibleFrame uses a top-left
// origin.
type DisplayInfo struct {
	DisplayID    uint32
	Frame        Rect
	VisibleFrame Rect
	Scale        float64
	IsMain       bool
}

// Capture is raw screenshot output before format encoding decisions.
type Capture struct {
	Data   []byte
	Width  int32
	Height int32
}

// CaptureOptions carries pass-through encoding options.
type CaptureOptions struct {
	Format  string // "png", "jpeg", "tiff"
	Quality int32  // jpeg only, [0,100]
}

// ClipboardKind enumerates pasteboard flavors in probe order.
type ClipboardKind int

const (
	ClipText ClipboardKind = iota
	ClipRTF
	ClipHTML
	ClipImage
	ClipFiles
	ClipURL
)

// ClipboardData is the full pasteboard state. Available lists present kinds
// in probe order; the payload fields for absent kinds are zero.
type ClipboardData struct {
	Available []ClipboardKind
	Text      string
	RTF       []byte
	HTML      string
	PNG       []byte
	Files     []string
	URL       string
}

// ScriptLanguage selects the host scripting engine.
type ScriptLanguage int

const (
	LangAppleScript ScriptLanguage = iota
	LangJXA
)

// Notification is one accessibility notification. Callbacks receive these on
// arbitrary threads; consumers must re-dispatch via DispatchToUIWorker.
type Notification struct {
	Pid         int32
	Type        string
	ElementRole string
	Title       string
	Attributes  map[string]string
	Time        time.Time
}

// ObserverHandle identifies an attached AX observer.
type ObserverHandle uint64

// OpenDialogOptions configures an open-file panel.
type OpenDialogOptions struct {
	AllowMultiple    bool
	FileTypes        []string
	DefaultDirectory string
}

// SaveDialogOptions configures a save panel.
type SaveDialogOptions struct {
	DefaultDirectory string
	DefaultFilename  string
	ConfirmOverwrite bool
}

// SystemOperations is the platform adapter consumed by the core. Methods
// that mutate UI state (attribute writes, presses, window-list queries,
// dialogs) are marshalled onto the UI-capable worker by the implementation;
// pure attribute reads may run on any goroutine and must not block that
// worker.
type SystemOperations interface {
	// Applications
	OpenApplication(ctx context.Context, id string) (AppInfo, error)
	ActivateApplication(ctx context.Context, pid int32) error
	TerminateApplication(ctx context.Context, pid int32) error
	IsApplicationRunning(ctx context.Context, identifier string) (bool, error)
	FrontmostApplication(ctx context.Context) (AppInfo, error)

	// Windows. ListWindows includes off-screen and minimized windows;
	// pid 0 means all processes.
	ListWindows(ctx context.Context, pid int32) ([]WindowInfo, error)
	// WindowElements returns the top-level window elements of a process;
	// ChildWindowElements returns window-like children, which is where
	// minimized windows surface.
	WindowElements(ctx context.Context, pid int32) ([]Element, error)
	ChildWindowElements(ctx context.Context, pid int32) ([]Element, error)
	ReadWindowAttributes(ctx context.Context, el *Element) (WindowAttributes, error)
	ReadWindowState(ctx context.Context, el *Element) (WindowStateInfo, error)
	SetWindowPosition(ctx context.Context, el *Element, x, y float64) error
	SetWindowSize(ctx context.Context, el *Element, width, height float64) error
	SetWindowMinimized(ctx context.Context, el *Element, minimized bool) error
	RaiseWindow(ctx context.Context, el *Element) error
	CloseButton(ctx context.Context, el *Element) (*Element, error)
	PressElement(ctx context.Context, el *Element) error

	// Elements
	FindElements(ctx context.Context, pid int32, role, text, textContains, textRegex string, max int) ([]Element, error)

	// Displays
	ListDisplays(ctx context.Context) ([]DisplayInfo, error)

	// Input synthesis
	Click(ctx context.Context, x, y float64, button int32, count int32) error
	TypeText(ctx context.Context, text string) error
	PressKey(ctx context.Context, key string, modifiers []string) error
	Scroll(ctx context.Context, x, y, deltaX, deltaY float64) error
	MouseDown(ctx context.Context, x, y float64, button int32) error
	MouseMove(ctx context.Context, x, y float64) error
	MouseUp(ctx context.Context, x, y float64, button int32) error

	// Capture and OCR
	CaptureDisplay(ctx context.Context, displayID uint32, opts CaptureOptions) (Capture, error)
	CaptureAllDisplays(ctx context.Context, opts CaptureOptions) (Capture, error)
	CaptureRegion(ctx context.Context, region Rect, opts CaptureOptions) (Capture, error)
	CaptureWindow(ctx context.Context, windowID uint32, opts CaptureOptions) (Capture, error)
	RecognizeText(ctx context.Context, image []byte) (string, error)

	// Clipboard
	ReadClipboard(ctx context.Context) (*ClipboardData, error)
	WriteClipboard(ctx context.Context, data *ClipboardData) error
	ClearClipboard(ctx context.Context) error

	// Scripting host (AppleScript / JXA). Shell runs in the core.
	CompileScript(ctx context.Context, lang ScriptLanguage, source string) (any, error)
	RunCompiledScript(ctx context.Context, compiled any) (string, error)

	// File dialogs
	ShowOpenDialog(ctx context.Context, opts OpenDialogOptions) (paths []string, cancelled bool, err error)
	ShowSaveDialog(ctx context.Context, opts SaveDialogOptions) (path string, cancelled bool, err error)
	RevealPath(ctx context.Context, path string) error

	// Observers. The callback may fire on any thread.
	AttachObserver(ctx context.Context, pid int32, types []string, cb func(Notification)) (ObserverHandle, error)
	DetachObserver(ctx context.Context, handle ObserverHandle) error

	// DispatchToUIWorker serializes fn onto the UI-capable worker.
	DispatchToUIWorker(fn func())

	// CheckAccessibilityPermission returns nil when the process may drive
	// the accessibility APIs.
	CheckAccessibilityPermission(ctx context.Context) error
}
