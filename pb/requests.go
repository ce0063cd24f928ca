package pb

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// Applications

type OpenApplicationRequest struct {
	// Id is a bundle identifier ("com.example.app"), an application name, or
	// an absolute path.
	Id string
}

type GetApplicationRequest struct {
	Name     string
	ReadMask *fieldmaskpb.FieldMask
}

type ListApplicationsRequest struct {
	PageSize  int32
	PageToken string
	ReadMask  *fieldmaskpb.FieldMask
}

type ListApplicationsResponse struct {
	Applications  []*Application
	NextPageToken string
}

type DeleteApplicationRequest struct {
	Name string
}

type ActivateApplicationRequest struct {
	Name string
}

// Windows

type GetWindowRequest struct {
	Name     string
	ReadMask *fieldmaskpb.FieldMask
}

type ListWindowsRequest struct {
	Parent    string
	PageSize  int32
	PageToken string
	ReadMask  *fieldmaskpb.FieldMask
}

type ListWindowsResponse struct {
	Windows       []*Window
	NextPageToken string
}

type GetWindowStateRequest struct {
	Name string
}

type MoveWindowRequest struct {
	Name string
	X    float64
	Y    float64
}

type ResizeWindowRequest struct {
	Name   string
	Width  float64
	Height float64
}

type MinimizeWindowRequest struct{ Name string }
type RestoreWindowRequest struct{ Name string }
type FocusWindowRequest struct{ Name string }
type CloseWindowRequest struct{ Name string }

// Displays

type GetDisplayRequest struct{ Name string }

type ListDisplaysRequest struct{}

type ListDisplaysResponse struct {
	Displays []*Display
}

// Elements

type GetElementRequest struct {
	Name     string
	ReadMask *fieldmaskpb.FieldMask
}

type ListElementsRequest struct {
	Parent    string
	PageSize  int32
	PageToken string
}

type ListElementsResponse struct {
	Elements      []*Element
	NextPageToken string
}

// QueryElementsRequest resolves a selector ("role:", "text:", "textContains:",
// "textRegex:", bare string = role) against the live accessibility tree and
// registers the matches.
type QueryElementsRequest struct {
	Parent     string
	Selector   string
	MaxResults int32
}

type QueryElementsResponse struct {
	Elements []*Element
}

// Inputs

type CreateInputRequest struct {
	Parent string
	Input  *Input
}

type GetInputRequest struct{ Name string }

type ListInputsRequest struct {
	Parent    string
	PageSize  int32
	PageToken string
}

type ListInputsResponse struct {
	Inputs        []*Input
	NextPageToken string
}

// Observations

type CreateObservationRequest struct {
	Parent      string
	Observation *Observation
}

type GetObservationRequest struct{ Name string }

type ListObservationsRequest struct {
	Parent    string
	PageSize  int32
	PageToken string
}

type ListObservationsResponse struct {
	Observations  []*Observation
	NextPageToken string
}

type CancelObservationRequest struct{ Name string }

type StreamObservationsRequest struct{ Name string }

// Sessions

type CreateSessionRequest struct {
	Session *Session
}

type GetSessionRequest struct{ Name string }

type ListSessionsRequest struct {
	PageSize  int32
	PageToken string
}

type ListSessionsResponse struct {
	Sessions      []*Session
	NextPageToken string
}

type DeleteSessionRequest struct{ Name string }

type BeginTransactionRequest struct {
	Name           string // session name
	IsolationLevel IsolationLevel
	TimeoutSeconds float64
}

type CommitTransactionRequest struct {
	Name          string
	TransactionId string
}

type RollbackTransactionRequest struct {
	Name          string
	TransactionId string
	RevisionId    string
}

type GetSessionSnapshotRequest struct{ Name string }

// Macros

type CreateMacroRequest struct {
	Macro   *Macro
	MacroId string // optional; generated when empty
}

type GetMacroRequest struct {
	Name     string
	ReadMask *fieldmaskpb.FieldMask
}

type ListMacrosRequest struct {
	PageSize  int32
	PageToken string
}

type ListMacrosResponse struct {
	Macros        []*Macro
	NextPageToken string
}

type UpdateMacroRequest struct {
	Macro      *Macro
	UpdateMask *fieldmaskpb.FieldMask
}

type DeleteMacroRequest struct{ Name string }

type ExecuteMacroRequest struct {
	Name           string
	Parameters     map[string]string
	Parent         string // scope for element/window lookups; "applications/-" = desktop
	TimeoutSeconds float64
}

// Clipboard

type GetClipboardRequest struct{ Name string }

type WriteClipboardRequest struct {
	Content *ClipboardContent
}

type ClearClipboardRequest struct{}

type ListClipboardHistoryRequest struct {
	PageSize  int32
	PageToken string
}

type ListClipboardHistoryResponse struct {
	Entries       []*ClipboardHistoryEntry
	NextPageToken string
}

// Screenshots

// CaptureScreenshotRequest targets exactly one of DisplayId, Element, Window
// or Region. A nil DisplayId with no other target captures all displays.
type CaptureScreenshotRequest struct {
	DisplayId      *int32 // 0 = main display
	Element        string // element resource name
	Window         string // window resource name
	Region         *Bounds
	Format         ImageFormat
	Quality        int32 // jpeg only; clamped to [0,100]
	IncludeOcrText bool
	Padding        float64
}

// Scripts

type ExecuteScriptRequest struct {
	Type             ScriptType
	Source           string
	CompileOnly      bool
	TimeoutSeconds   float64
	WorkingDirectory string // shell only
	Environment      map[string]string
	Stdin            string
	Path             string // overrides PATH for shell
}

type ValidateScriptRequest struct {
	Type   ScriptType
	Source string
}

type ValidateScriptResponse struct {
	Valid   bool
	Message string
}

// File dialogs

type OpenFileDialogRequest struct {
	AllowMultiple    bool
	FileTypes        []string // filename extensions, no dot
	DefaultDirectory string
}

type OpenFileDialogResponse struct {
	Paths     []string
	Cancelled bool
}

type SaveFileDialogRequest struct {
	DefaultDirectory string
	DefaultFilename  string
	ConfirmOverwrite bool
}

type SaveFileDialogResponse struct {
	Path      string
	Cancelled bool
}

type SelectFileRequest struct {
	Path   string
	Reveal bool
}

type SelectDirectoryRequest struct {
	Path          string
	CreateMissing bool
}

type DragFilesRequest struct {
	Paths           []string
	TargetElement   string
	DurationSeconds float64
}
