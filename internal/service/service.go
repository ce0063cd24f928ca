// Package service implements the Automation gRPC surface. Handlers parse and
// validate the request, consult or mutate the registries, delegate platform
// work to the adapter, and shape the response; long-running work is handed to
// the operation store and a background task.
package service

import (
	"log"

	"github.com/google/uuid"

	"github.com/macosusesdk/automationd/internal/appstate"
	"github.com/macosusesdk/automationd/internal/clipboard"
	"github.com/macosusesdk/automationd/internal/elements"
	"github.com/macosusesdk/automationd/internal/filedialog"
	"github.com/macosusesdk/automationd/internal/macros"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/observation"
	"github.com/macosusesdk/automationd/internal/operations"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/internal/screenshot"
	"github.com/macosusesdk/automationd/internal/scripts"
	"github.com/macosusesdk/automationd/internal/sessions"
	"github.com/macosusesdk/automationd/internal/windows"
	"github.com/macosusesdk/automationd/pb"
)

// Operation kinds, used as the middle segment of operation names.
const (
	kindOpenApplication   = "openApplication"
	kindCreateObservation = "createObservation"
	kindExecuteMacro      = "executeMacro"
)

// Deps carries the singletons the service is assembled from.
type Deps struct {
	Sys         platform.SystemOperations
	Apps        *appstate.Store
	Ops         *operations.Store
	Windows     *windows.Service
	Elements    *elements.Registry
	Observation *observation.Manager
	Sessions    *sessions.Manager
	Macros      *macros.Registry
	Executor    *macros.Executor
	Clipboard   *clipboard.Manager
	Screenshots *screenshot.Service
	Scripts     *scripts.Executor
	Dialogs     *filedialog.Service
}

// Service is the Automation server. All state lives in the injected
// registries; the service itself is stateless between requests.
type Service struct {
	pb.UnimplementedAutomationServer
	logger *log.Logger

	sys         platform.SystemOperations
	apps        *appstate.Store
	ops         *operations.Store
	windows     *windows.Service
	elements    *elements.Registry
	observation *observation.Manager
	sessions    *sessions.Manager
	macros      *macros.Registry
	executor    *macros.Executor
	clipboard   *clipboard.Manager
	screenshots *screenshot.Service
	scripts     *scripts.Executor
	dialogs     *filedialog.Service
}

func New(d Deps) *Service {
	return &Service{
		logger:      log.New(log.Writer(), "[SERVICE] ", log.LstdFlags),
		sys:         d.Sys,
		apps:        d.Apps,
		ops:         d.Ops,
		windows:     d.Windows,
		elements:    d.Elements,
		observation: d.Observation,
		sessions:    d.Sessions,
		macros:      d.Macros,
		executor:    d.Executor,
		clipboard:   d.Clipboard,
		screenshots: d.Screenshots,
		scripts:     d.Scripts,
		dialogs:     d.Dialogs,
	}
}

func newOperationName(kind string) string {
	return names.Operation(kind, uuid.NewString())
}

func errMsg(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
