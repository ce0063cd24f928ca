// Package names parses and formats the canonical resource names of the
// automation service. Every parser accepts exactly one grammar and rejects
// everything else with an INVALID_RESOURCE_NAME error.
package names

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/macosusesdk/automationd/internal/apierr"
)

// Wildcard is the collection-wide application segment ("applications/-"),
// meaning "no parent / desktop scope".
const Wildcard = "applications/-"

func parsePositiveInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	// Reject "+1", "01" and friends: the canonical form round-trips.
	if strconv.FormatInt(n, 10) != s {
		return 0, false
	}
	return n, true
}

// Application

// ParseApplication parses "applications/{pid}".
func ParseApplication(name string) (int32, error) {
	parts := strings.Split(name, "/")
	if len(parts) == 2 && parts[0] == "applications" {
		if pid, ok := parsePositiveInt(parts[1]); ok {
			return int32(pid), nil
		}
	}
	return 0, apierr.InvalidName("application", name, "applications/{pid}")
}

// ParseApplicationOrWildcard parses "applications/{pid}" or "applications/-".
// The wildcard yields pid 0.
func ParseApplicationOrWildcard(name string) (int32, error) {
	if name == Wildcard {
		return 0, nil
	}
	pid, err := ParseApplication(name)
	if err != nil {
		return 0, apierr.InvalidName("application", name, "applications/{pid} or applications/-")
	}
	return pid, nil
}

// Application formats "applications/{pid}".
func Application(pid int32) string {
	return fmt.Sprintf("applications/%d", pid)
}

// Window

// ParseWindow parses "applications/{pid}/windows/{windowId}".
func ParseWindow(name string) (pid int32, windowID uint32, err error) {
	parts := strings.Split(name, "/")
	if len(parts) == 4 && parts[0] == "applications" && parts[2] == "windows" {
		p, okP := parsePositiveInt(parts[1])
		w, okW := parsePositiveInt(parts[3])
		if okP && okW {
			return int32(p), uint32(w), nil
		}
	}
	return 0, 0, apierr.InvalidName("window", name, "applications/{pid}/windows/{windowId}")
}

// Window formats "applications/{pid}/windows/{windowId}".
func Window(pid int32, windowID uint32) string {
	return fmt.Sprintf("applications/%d/windows/%d", pid, windowID)
}

// ParseWindowState parses "applications/{pid}/windows/{windowId}/state".
func ParseWindowState(name string) (pid int32, windowID uint32, err error) {
	const format = "applications/{pid}/windows/{windowId}/state"
	parts := strings.Split(name, "/")
	if len(parts) == 5 && parts[4] == "state" {
		pid, windowID, err = ParseWindow(strings.Join(parts[:4], "/"))
		if err == nil {
			return pid, windowID, nil
		}
	}
	return 0, 0, apierr.InvalidName("window state", name, format)
}

// WindowState formats ".../state".
func WindowState(pid int32, windowID uint32) string {
	return Window(pid, windowID) + "/state"
}

// Observation

// ParseObservation parses "applications/{pid}/observations/{id}".
func ParseObservation(name string) (pid int32, id string, err error) {
	parts := strings.Split(name, "/")
	if len(parts) == 4 && parts[0] == "applications" && parts[2] == "observations" && parts[3] != "" {
		if p, ok := parsePositiveInt(parts[1]); ok {
			return int32(p), parts[3], nil
		}
	}
	return 0, "", apierr.InvalidName("observation", name, "applications/{pid}/observations/{id}")
}

// Observation formats "applications/{pid}/observations/{id}".
func Observation(pid int32, id string) string {
	return fmt.Sprintf("applications/%d/observations/%s", pid, id)
}

// Element

// ParseElement parses "applications/{pid}/elements/{id}".
func ParseElement(name string) (pid int32, id string, err error) {
	parts := strings.Split(name, "/")
	if len(parts) == 4 && parts[0] == "applications" && parts[2] == "elements" && parts[3] != "" {
		if p, ok := parsePositiveInt(parts[1]); ok {
			return int32(p), parts[3], nil
		}
	}
	return 0, "", apierr.InvalidName("element", name, "applications/{pid}/elements/{id}")
}

// Element formats "applications/{pid}/elements/{id}".
func Element(pid int32, id string) string {
	return fmt.Sprintf("applications/%d/elements/%s", pid, id)
}

// Input

// ParseInput parses "applications/{pid}/inputs/{id}" or "desktopInputs/{id}".
// Desktop-scoped inputs return pid 0.
func ParseInput(name string) (pid int32, id string, err error) {
	parts := strings.Split(name, "/")
	switch {
	case len(parts) == 2 && parts[0] == "desktopInputs" && parts[1] != "":
		return 0, parts[1], nil
	case len(parts) == 4 && parts[0] == "applications" && parts[2] == "inputs" && parts[3] != "":
		if p, ok := parsePositiveInt(parts[1]); ok {
			return int32(p), parts[3], nil
		}
	}
	return 0, "", apierr.InvalidName("input", name,
		"applications/{pid}/inputs/{id} or desktopInputs/{id}")
}

// Input formats the input name for the given scope. Pid 0 is desktop scope.
func Input(pid int32, id string) string {
	if pid == 0 {
		return "desktopInputs/" + id
	}
	return fmt.Sprintf("applications/%d/inputs/%s", pid, id)
}

// Session

// ParseSession parses "sessions/{id}".
func ParseSession(name string) (string, error) {
	parts := strings.Split(name, "/")
	if len(parts) == 2 && parts[0] == "sessions" && parts[1] != "" {
		return parts[1], nil
	}
	return "", apierr.InvalidName("session", name, "sessions/{id}")
}

// Session formats "sessions/{id}".
func Session(id string) string { return "sessions/" + id }

// Macro

// ParseMacro parses "macros/{id}".
func ParseMacro(name string) (string, error) {
	parts := strings.Split(name, "/")
	if len(parts) == 2 && parts[0] == "macros" && parts[1] != "" {
		return parts[1], nil
	}
	return "", apierr.InvalidName("macro", name, "macros/{id}")
}

// Macro formats "macros/{id}".
func Macro(id string) string { return "macros/" + id }

// Operation

// ParseOperation parses "operations/{kind}/{id}" or the generic
// "operations/{id}" (empty kind).
func ParseOperation(name string) (kind, id string, err error) {
	parts := strings.Split(name, "/")
	switch {
	case len(parts) == 3 && parts[0] == "operations" && parts[1] != "" && parts[2] != "":
		return parts[1], parts[2], nil
	case len(parts) == 2 && parts[0] == "operations" && parts[1] != "":
		return "", parts[1], nil
	}
	return "", "", apierr.InvalidName("operation", name,
		"operations/{kind}/{id} or operations/{id}")
}

// Operation formats "operations/{kind}/{id}".
func Operation(kind, id string) string {
	if kind == "" {
		return "operations/" + id
	}
	return "operations/" + kind + "/" + id
}

// Display

// ParseDisplay parses "displays/{displayId}". Display ids are non-negative;
// 0 is the main display alias.
func ParseDisplay(name string) (uint32, error) {
	parts := strings.Split(name, "/")
	if len(parts) == 2 && parts[0] == "displays" {
		if n, err := strconv.ParseUint(parts[1], 10, 32); err == nil && strconv.FormatUint(n, 10) == parts[1] {
			return uint32(n), nil
		}
	}
	return 0, apierr.InvalidName("display", name, "displays/{displayId}")
}

// Display formats "displays/{displayId}".
func Display(id uint32) string {
	return fmt.Sprintf("displays/%d", id)
}

// Clipboard singleton names.
const (
	ClipboardName        = "clipboard"
	ClipboardHistoryName = "clipboard/history"
)
