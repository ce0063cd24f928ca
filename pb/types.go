// Package pb holds the hand-maintained wire surface of the automation
// service. Message layouts mirror the proto definitions one-to-one; the
// google.longrunning.Operations surface comes from the published
// longrunningpb stubs instead.
package pb

import (
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Geometry

type Point struct {
	X float64
	Y float64
}

type Bounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Application is a tracked host application, named applications/{pid}.
type Application struct {
	Name        string
	DisplayName string
	Pid         int32
	BundleId    string
}

// Window is named applications/{pid}/windows/{windowId}. The windowId may
// regenerate after a geometry mutation.
type Window struct {
	Name     string
	Title    string
	Bounds   *Bounds
	ZIndex   int32
	Visible  bool
	BundleId string
}

// WindowState is derived on demand from a fresh attribute read; it is never
// cached. Fullscreen is nil when the host cannot report it.
type WindowState struct {
	Name        string
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

// Display is named displays/{displayId}.
type Display struct {
	Name         string
	Frame        *Bounds
	VisibleFrame *Bounds // top-left origin
	Scale        float64
	IsMain       bool
}

// Element is a registered accessibility element handle,
// named applications/{pid}/elements/{elementId}.
type Element struct {
	Name       string
	Role       string
	Title      string
	Value      string
	Bounds     *Bounds
	Attributes map[string]string
	CreateTime *timestamppb.Timestamp
}

// Input records

type InputState int32

const (
	InputState_INPUT_STATE_UNSPECIFIED InputState = 0
	InputState_PENDING                 InputState = 1
	InputState_EXECUTING               InputState = 2
	InputState_COMPLETED               InputState = 3
	InputState_FAILED                  InputState = 4
)

type MouseButton int32

const (
	MouseButton_MOUSE_BUTTON_UNSPECIFIED MouseButton = 0
	MouseButton_LEFT                     MouseButton = 1
	MouseButton_RIGHT                    MouseButton = 2
	MouseButton_MIDDLE                   MouseButton = 3
)

type ClickAction struct {
	X      float64
	Y      float64
	Button MouseButton
	Count  int32 // 2 = double click; 0 treated as 1
}

type TypeTextAction struct {
	Text string
}

type KeyPressAction struct {
	Key       string
	Modifiers []string
}

type ScrollAction struct {
	X      float64
	Y      float64
	DeltaX float64
	DeltaY float64
}

type DragAction struct {
	FromX           float64
	FromY           float64
	ToX             float64
	ToY             float64
	DurationSeconds float64
}

type MoveMouseAction struct {
	X               float64
	Y               float64
	Animate         bool
	DurationSeconds float64
}

// InputAction is a tagged variant; exactly one field is set.
type InputAction struct {
	Click     *ClickAction
	TypeText  *TypeTextAction
	KeyPress  *KeyPressAction
	Scroll    *ScrollAction
	Drag      *DragAction
	MoveMouse *MoveMouseAction
}

// Input is named {parent}/inputs/{id}, or desktopInputs/{id} when the action
// targets the desktop scope.
type Input struct {
	Name         string
	Action       *InputAction
	State        InputState
	CreateTime   *timestamppb.Timestamp
	CompleteTime *timestamppb.Timestamp
	Error        string
}

// Observations

type ObservationState int32

const (
	ObservationState_OBSERVATION_STATE_UNSPECIFIED ObservationState = 0
	ObservationState_OBSERVATION_ACTIVE            ObservationState = 1
	ObservationState_OBSERVATION_CANCELLED         ObservationState = 2
	ObservationState_OBSERVATION_FAILED            ObservationState = 3
)

// Observation is named {parent}/observations/{id}.
type Observation struct {
	Name             string
	Type             string // notification class, e.g. "focusChanged"; empty = all
	Filter           string
	State            ObservationState
	EventsDelivered  int64
	EventsDropped    int64
	EventsSuppressed int64
	CreateTime       *timestamppb.Timestamp
}

// ObservationEvent is one UI-change notification delivered on a stream.
type ObservationEvent struct {
	Observation string
	Type        string
	Pid         int32
	ElementRole string
	Title       string
	EventTime   *timestamppb.Timestamp
	Attributes  map[string]string
}

// Sessions and transactions

type SessionState int32

const (
	SessionState_SESSION_STATE_UNSPECIFIED SessionState = 0
	SessionState_SESSION_ACTIVE            SessionState = 1
	SessionState_SESSION_IN_TRANSACTION    SessionState = 2
	SessionState_SESSION_EXPIRED           SessionState = 3
)

type IsolationLevel int32

const (
	IsolationLevel_ISOLATION_LEVEL_UNSPECIFIED IsolationLevel = 0
	IsolationLevel_READ_COMMITTED              IsolationLevel = 1
	IsolationLevel_SERIALIZABLE                IsolationLevel = 2
)

type TransactionState int32

const (
	TransactionState_TRANSACTION_STATE_UNSPECIFIED TransactionState = 0
	TransactionState_TRANSACTION_ACTIVE            TransactionState = 1
	TransactionState_TRANSACTION_COMMITTED         TransactionState = 2
	TransactionState_TRANSACTION_ROLLED_BACK       TransactionState = 3
)

// Session is named sessions/{id}.
type Session struct {
	Name                string
	State               SessionState
	CreateTime          *timestamppb.Timestamp
	LastAccessTime      *timestamppb.Timestamp
	ExpireTime          *timestamppb.Timestamp
	Metadata            map[string]string
	ActiveTransactionId string
}

type Transaction struct {
	TransactionId   string
	IsolationLevel  IsolationLevel
	State           TransactionState
	OperationsCount int32
	Session         *Session
}

// OperationRecord is one entry of a session's operation history.
// OperationType names the kind of mutation ("move_window" etc.).
type OperationRecord struct {
	OperationType string
	Resource      string
	Success       bool
	Error         string
	OperationTime *timestamppb.Timestamp
	TransactionId string
}

// Revision marks a rollback point in a session's history.
type Revision struct {
	RevisionId     string
	CreateTime     *timestamppb.Timestamp
	OperationIndex int32
}

// SessionSnapshot is the full observable state of one session.
type SessionSnapshot struct {
	Session      *Session
	Applications []*Application
	Observations []*Observation
	History      []*OperationRecord
	Revisions    []*Revision
}

// Macros

type MacroParameter struct {
	Name         string
	Description  string
	Required     bool
	DefaultValue string
}

// Macro is named macros/{id}.
type Macro struct {
	Name           string
	DisplayName    string
	Description    string
	Actions        []*MacroAction
	Parameters     []*MacroParameter
	Tags           []string
	CreateTime     *timestamppb.Timestamp
	UpdateTime     *timestamppb.Timestamp
	ExecutionCount int64
}

// MacroAction is a tagged variant; exactly one field is set.
type MacroAction struct {
	Input       *InputAction
	Wait        *WaitAction
	Conditional *ConditionalAction
	Loop        *LoopAction
	Assign      *AssignAction
	MethodCall  *MethodCallAction
}

// WaitAction sleeps for DurationSeconds, or polls Condition every 500 ms
// until it holds or TimeoutSeconds (default 30) elapses.
type WaitAction struct {
	DurationSeconds float64
	Condition       *MacroCondition
	TimeoutSeconds  float64
}

type ConditionalAction struct {
	Condition *MacroCondition
	Then      []*MacroAction
	Else      []*MacroAction
}

// ForEachSource is a tagged variant; exactly one field is set. Values is a
// newline- or comma-delimited literal list.
type ForEachSource struct {
	ElementSelector    string
	WindowTitlePattern string
	Values             string
}

type LoopAction struct {
	Count        int32
	While        *MacroCondition
	ForEach      *ForEachSource
	ItemVariable string
	Body         []*MacroAction
}

type LiteralSource struct{ Value string }
type ParameterSource struct{ Name string }
type ExpressionSource struct{ Expression string }
type ElementAttributeSource struct {
	Element   string
	Attribute string
}

// AssignAction sets Variable from exactly one source.
type AssignAction struct {
	Variable         string
	Literal          *LiteralSource
	Parameter        *ParameterSource
	Expression       *ExpressionSource
	ElementAttribute *ElementAttributeSource
}

type MethodCallAction struct {
	Method    string
	Arguments map[string]string
}

// Conditions

type CompoundOperator int32

const (
	CompoundOperator_COMPOUND_OPERATOR_UNSPECIFIED CompoundOperator = 0
	CompoundOperator_AND                           CompoundOperator = 1
	CompoundOperator_OR                            CompoundOperator = 2
	CompoundOperator_NOT                           CompoundOperator = 3
)

type ElementExistsCondition struct {
	Selector string
	Pid      int32
}

type WindowExistsCondition struct {
	TitlePattern string
	Pid          int32
}

type ApplicationRunningCondition struct {
	Identifier string // pid or bundle id
}

type VariableEqualsCondition struct {
	Variable string
	Value    string
}

type CompoundCondition struct {
	Operator   CompoundOperator
	Conditions []*MacroCondition
}

// MacroCondition is a tagged variant; exactly one field is set.
type MacroCondition struct {
	ElementExists      *ElementExistsCondition
	WindowExists       *WindowExistsCondition
	ApplicationRunning *ApplicationRunningCondition
	VariableEquals     *VariableEqualsCondition
	Compound           *CompoundCondition
}

// Clipboard

type ClipboardType int32

const (
	ClipboardType_CLIPBOARD_TYPE_UNSPECIFIED ClipboardType = 0
	ClipboardType_TEXT                       ClipboardType = 1
	ClipboardType_RTF                        ClipboardType = 2
	ClipboardType_HTML                       ClipboardType = 3
	ClipboardType_IMAGE                      ClipboardType = 4
	ClipboardType_FILES                      ClipboardType = 5
	ClipboardType_URL                        ClipboardType = 6
)

type TextContent struct{ Value string }
type RtfContent struct{ Data []byte }
type HtmlContent struct{ Value string }
type ImageContent struct{ PngData []byte }
type FilesContent struct{ Paths []string }
type UrlContent struct{ Value string }

// ClipboardContent is a tagged variant; exactly one field is set.
type ClipboardContent struct {
	Text  *TextContent
	Rtf   *RtfContent
	Html  *HtmlContent
	Image *ImageContent
	Files *FilesContent
	Url   *UrlContent
}

// Clipboard is the singleton resource named "clipboard".
type Clipboard struct {
	Name           string
	Content        *ClipboardContent
	AvailableTypes []ClipboardType
}

type ClipboardHistoryEntry struct {
	Content           *ClipboardContent
	CopyTime          *timestamppb.Timestamp
	SourceApplication string
}

// Screenshots

type ImageFormat int32

const (
	ImageFormat_IMAGE_FORMAT_UNSPECIFIED ImageFormat = 0 // treated as PNG
	ImageFormat_PNG                      ImageFormat = 1
	ImageFormat_JPEG                     ImageFormat = 2
	ImageFormat_TIFF                     ImageFormat = 3
)

type Screenshot struct {
	Data    []byte
	Width   int32
	Height  int32
	Format  ImageFormat
	OcrText string
}

// Scripts

type ScriptType int32

const (
	ScriptType_SCRIPT_TYPE_UNSPECIFIED ScriptType = 0
	ScriptType_APPLESCRIPT             ScriptType = 1
	ScriptType_JXA                     ScriptType = 2
	ScriptType_SHELL                   ScriptType = 3
)

type ScriptResult struct {
	Success    bool
	Output     string
	Stderr     string
	ExitCode   int32
	DurationMs int64
	Message    string
}
