package pb

import (
	"context"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const Automation_ServiceName = "macosusesdk.automation.v1.Automation"

// AutomationServer is the server API for the Automation service.
type AutomationServer interface {
	OpenApplication(context.Context, *OpenApplicationRequest) (*longrunningpb.Operation, error)
	GetApplication(context.Context, *GetApplicationRequest) (*Application, error)
	ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error)
	DeleteApplication(context.Context, *DeleteApplicationRequest) (*emptypb.Empty, error)
	ActivateApplication(context.Context, *ActivateApplicationRequest) (*Application, error)
	GetWindow(context.Context, *GetWindowRequest) (*Window, error)
	ListWindows(context.Context, *ListWindowsRequest) (*ListWindowsResponse, error)
	GetWindowState(context.Context, *GetWindowStateRequest) (*WindowState, error)
	MoveWindow(context.Context, *MoveWindowRequest) (*Window, error)
	ResizeWindow(context.Context, *ResizeWindowRequest) (*Window, error)
	MinimizeWindow(context.Context, *MinimizeWindowRequest) (*Window, error)
	RestoreWindow(context.Context, *RestoreWindowRequest) (*Window, error)
	FocusWindow(context.Context, *FocusWindowRequest) (*Window, error)
	CloseWindow(context.Context, *CloseWindowRequest) (*emptypb.Empty, error)
	GetDisplay(context.Context, *GetDisplayRequest) (*Display, error)
	ListDisplays(context.Context, *ListDisplaysRequest) (*ListDisplaysResponse, error)
	GetElement(context.Context, *GetElementRequest) (*Element, error)
	ListElements(context.Context, *ListElementsRequest) (*ListElementsResponse, error)
	QueryElements(context.Context, *QueryElementsRequest) (*QueryElementsResponse, error)
	CreateInput(context.Context, *CreateInputRequest) (*Input, error)
	GetInput(context.Context, *GetInputRequest) (*Input, error)
	ListInputs(context.Context, *ListInputsRequest) (*ListInputsResponse, error)
	CreateObservation(context.Context, *CreateObservationRequest) (*longrunningpb.Operation, error)
	GetObservation(context.Context, *GetObservationRequest) (*Observation, error)
	ListObservations(context.Context, *ListObservationsRequest) (*ListObservationsResponse, error)
	CancelObservation(context.Context, *CancelObservationRequest) (*Observation, error)
	CreateSession(context.Context, *CreateSessionRequest) (*Session, error)
	GetSession(context.Context, *GetSessionRequest) (*Session, error)
	ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error)
	DeleteSession(context.Context, *DeleteSessionRequest) (*emptypb.Empty, error)
	BeginTransaction(context.Context, *BeginTransactionRequest) (*Transaction, error)
	CommitTransaction(context.Context, *CommitTransactionRequest) (*Transaction, error)
	RollbackTransaction(context.Context, *RollbackTransactionRequest) (*Transaction, error)
	GetSessionSnapshot(context.Context, *GetSessionSnapshotRequest) (*SessionSnapshot, error)
	CreateMacro(context.Context, *CreateMacroRequest) (*Macro, error)
	GetMacro(context.Context, *GetMacroRequest) (*Macro, error)
	ListMacros(context.Context, *ListMacrosRequest) (*ListMacrosResponse, error)
	UpdateMacro(context.Context, *UpdateMacroRequest) (*Macro, error)
	DeleteMacro(context.Context, *DeleteMacroRequest) (*emptypb.Empty, error)
	ExecuteMacro(context.Context, *ExecuteMacroRequest) (*longrunningpb.Operation, error)
	GetClipboard(context.Context, *GetClipboardRequest) (*Clipboard, error)
	WriteClipboard(context.Context, *WriteClipboardRequest) (*Clipboard, error)
	ClearClipboard(context.Context, *ClearClipboardRequest) (*emptypb.Empty, error)
	ListClipboardHistory(context.Context, *ListClipboardHistoryRequest) (*ListClipboardHistoryResponse, error)
	CaptureScreenshot(context.Context, *CaptureScreenshotRequest) (*Screenshot, error)
	ExecuteScript(context.Context, *ExecuteScriptRequest) (*ScriptResult, error)
	ValidateScript(context.Context, *ValidateScriptRequest) (*ValidateScriptResponse, error)
	OpenFileDialog(context.Context, *OpenFileDialogRequest) (*OpenFileDialogResponse, error)
	SaveFileDialog(context.Context, *SaveFileDialogRequest) (*SaveFileDialogResponse, error)
	SelectFile(context.Context, *SelectFileRequest) (*emptypb.Empty, error)
	SelectDirectory(context.Context, *SelectDirectoryRequest) (*emptypb.Empty, error)
	DragFiles(context.Context, *DragFilesRequest) (*emptypb.Empty, error)
	StreamObservations(*StreamObservationsRequest, Automation_StreamObservationsServer) error
}

// Automation_StreamObservationsServer is the server side of the
// StreamObservations server-streaming RPC.
type Automation_StreamObservationsServer interface {
	Send(*ObservationEvent) error
	grpc.ServerStream
}

type automationStreamObservationsServer struct {
	grpc.ServerStream
}

func (x *automationStreamObservationsServer) Send(m *ObservationEvent) error {
	return x.ServerStream.SendMsg(m)
}

// UnimplementedAutomationServer may be embedded for forward compatibility.
type UnimplementedAutomationServer struct{}

func (UnimplementedAutomationServer) OpenApplication(context.Context, *OpenApplicationRequest) (*longrunningpb.Operation, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenApplication not implemented")
}
func (UnimplementedAutomationServer) GetApplication(context.Context, *GetApplicationRequest) (*Application, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetApplication not implemented")
}
func (UnimplementedAutomationServer) ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedAutomationServer) DeleteApplication(context.Context, *DeleteApplicationRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteApplication not implemented")
}
func (UnimplementedAutomationServer) ActivateApplication(context.Context, *ActivateApplicationRequest) (*Application, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ActivateApplication not implemented")
}
func (UnimplementedAutomationServer) GetWindow(context.Context, *GetWindowRequest) (*Window, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWindow not implemented")
}
func (UnimplementedAutomationServer) ListWindows(context.Context, *ListWindowsRequest) (*ListWindowsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWindows not implemented")
}
func (UnimplementedAutomationServer) GetWindowState(context.Context, *GetWindowStateRequest) (*WindowState, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWindowState not implemented")
}
func (UnimplementedAutomationServer) MoveWindow(context.Context, *MoveWindowRequest) (*Window, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MoveWindow not implemented")
}
func (UnimplementedAutomationServer) ResizeWindow(context.Context, *ResizeWindowRequest) (*Window, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResizeWindow not implemented")
}
func (UnimplementedAutomationServer) MinimizeWindow(context.Context, *MinimizeWindowRequest) (*Window, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MinimizeWindow not implemented")
}
func (UnimplementedAutomationServer) RestoreWindow(context.Context, *RestoreWindowRequest) (*Window, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RestoreWindow not implemented")
}
func (UnimplementedAutomationServer) FocusWindow(context.Context, *FocusWindowRequest) (*Window, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FocusWindow not implemented")
}
func (UnimplementedAutomationServer) CloseWindow(context.Context, *CloseWindowRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseWindow not implemented")
}
func (UnimplementedAutomationServer) GetDisplay(context.Context, *GetDisplayRequest) (*Display, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDisplay not implemented")
}
func (UnimplementedAutomationServer) ListDisplays(context.Context, *ListDisplaysRequest) (*ListDisplaysResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDisplays not implemented")
}
func (UnimplementedAutomationServer) GetElement(context.Context, *GetElementRequest) (*Element, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetElement not implemented")
}
func (UnimplementedAutomationServer) ListElements(context.Context, *ListElementsRequest) (*ListElementsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListElements not implemented")
}
func (UnimplementedAutomationServer) QueryElements(context.Context, *QueryElementsRequest) (*QueryElementsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QueryElements not implemented")
}
func (UnimplementedAutomationServer) CreateInput(context.Context, *CreateInputRequest) (*Input, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateInput not implemented")
}
func (UnimplementedAutomationServer) GetInput(context.Context, *GetInputRequest) (*Input, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetInput not implemented")
}
func (UnimplementedAutomationServer) ListInputs(context.Context, *ListInputsRequest) (*ListInputsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInputs not implemented")
}
func (UnimplementedAutomationServer) CreateObservation(context.Context, *CreateObservationRequest) (*longrunningpb.Operation, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateObservation not implemented")
}
func (UnimplementedAutomationServer) GetObservation(context.Context, *GetObservationRequest) (*Observation, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetObservation not implemented")
}
func (UnimplementedAutomationServer) ListObservations(context.Context, *ListObservationsRequest) (*ListObservationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListObservations not implemented")
}
func (UnimplementedAutomationServer) CancelObservation(context.Context, *CancelObservationRequest) (*Observation, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelObservation not implemented")
}
func (UnimplementedAutomationServer) CreateSession(context.Context, *CreateSessionRequest) (*Session, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateSession not implemented")
}
func (UnimplementedAutomationServer) GetSession(context.Context, *GetSessionRequest) (*Session, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSession not implemented")
}
func (UnimplementedAutomationServer) ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSessions not implemented")
}
func (UnimplementedAutomationServer) DeleteSession(context.Context, *DeleteSessionRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteSession not implemented")
}
func (UnimplementedAutomationServer) BeginTransaction(context.Context, *BeginTransactionRequest) (*Transaction, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BeginTransaction not implemented")
}
func (UnimplementedAutomationServer) CommitTransaction(context.Context, *CommitTransactionRequest) (*Transaction, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CommitTransaction not implemented")
}
func (UnimplementedAutomationServer) RollbackTransaction(context.Context, *RollbackTransactionRequest) (*Transaction, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RollbackTransaction not implemented")
}
func (UnimplementedAutomationServer) GetSessionSnapshot(context.Context, *GetSessionSnapshotRequest) (*SessionSnapshot, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSessionSnapshot not implemented")
}
func (UnimplementedAutomationServer) CreateMacro(context.Context, *CreateMacroRequest) (*Macro, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateMacro not implemented")
}
func (UnimplementedAutomationServer) GetMacro(context.Context, *GetMacroRequest) (*Macro, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMacro not implemented")
}
func (UnimplementedAutomationServer) ListMacros(context.Context, *ListMacrosRequest) (*ListMacrosResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMacros not implemented")
}
func (UnimplementedAutomationServer) UpdateMacro(context.Context, *UpdateMacroRequest) (*Macro, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateMacro not implemented")
}
func (UnimplementedAutomationServer) DeleteMacro(context.Context, *DeleteMacroRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteMacro not implemented")
}
func (UnimplementedAutomationServer) ExecuteMacro(context.Context, *ExecuteMacroRequest) (*longrunningpb.Operation, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteMacro not implemented")
}
func (UnimplementedAutomationServer) GetClipboard(context.Context, *GetClipboardRequest) (*Clipboard, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClipboard not implemented")
}
func (UnimplementedAutomationServer) WriteClipboard(context.Context, *WriteClipboardRequest) (*Clipboard, error) {
	return nil, status.Errorf(codes.Unimplemented, "method WriteClipboard not implemented")
}
func (UnimplementedAutomationServer) ClearClipboard(context.Context, *ClearClipboardRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearClipboard not implemented")
}
func (UnimplementedAutomationServer) ListClipboardHistory(context.Context, *ListClipboardHistoryRequest) (*ListClipboardHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClipboardHistory not implemented")
}
func (UnimplementedAutomationServer) CaptureScreenshot(context.Context, *CaptureScreenshotRequest) (*Screenshot, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CaptureScreenshot not implemented")
}
func (UnimplementedAutomationServer) ExecuteScript(context.Context, *ExecuteScriptRequest) (*ScriptResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteScript not implemented")
}
func (UnimplementedAutomationServer) ValidateScript(context.Context, *ValidateScriptRequest) (*ValidateScriptResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateScript not implemented")
}
func (UnimplementedAutomationServer) OpenFileDialog(context.Context, *OpenFileDialogRequest) (*OpenFileDialogResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenFileDialog not implemented")
}
func (UnimplementedAutomationServer) SaveFileDialog(context.Context, *SaveFileDialogRequest) (*SaveFileDialogResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveFileDialog not implemented")
}
func (UnimplementedAutomationServer) SelectFile(context.Context, *SelectFileRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SelectFile not implemented")
}
func (UnimplementedAutomationServer) SelectDirectory(context.Context, *SelectDirectoryRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SelectDirectory not implemented")
}
func (UnimplementedAutomationServer) DragFiles(context.Context, *DragFilesRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DragFiles not implemented")
}
func (UnimplementedAutomationServer) StreamObservations(*StreamObservationsRequest, Automation_StreamObservationsServer) error {
	return status.Errorf(codes.Unimplemented, "method StreamObservations not implemented")
}

// RegisterAutomationServer registers srv on s.
func RegisterAutomationServer(s grpc.ServiceRegistrar, srv AutomationServer) {
	s.RegisterService(&Automation_ServiceDesc, srv)
}

func _Automation_OpenApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).OpenApplication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/OpenApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).OpenApplication(ctx, req.(*OpenApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_GetApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).GetApplication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/GetApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).GetApplication(ctx, req.(*GetApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ListApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ListApplications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ListApplications",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ListApplications(ctx, req.(*ListApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_DeleteApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).DeleteApplication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/DeleteApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).DeleteApplication(ctx, req.(*DeleteApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ActivateApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ActivateApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ActivateApplication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ActivateApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ActivateApplication(ctx, req.(*ActivateApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_GetWindow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetWindowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).GetWindow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/GetWindow",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).GetWindow(ctx, req.(*GetWindowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ListWindows_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWindowsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ListWindows(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ListWindows",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ListWindows(ctx, req.(*ListWindowsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_GetWindowState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetWindowStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).GetWindowState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/GetWindowState",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).GetWindowState(ctx, req.(*GetWindowStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_MoveWindow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MoveWindowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).MoveWindow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/MoveWindow",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).MoveWindow(ctx, req.(*MoveWindowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ResizeWindow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResizeWindowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ResizeWindow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ResizeWindow",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ResizeWindow(ctx, req.(*ResizeWindowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_MinimizeWindow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MinimizeWindowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).MinimizeWindow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/MinimizeWindow",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).MinimizeWindow(ctx, req.(*MinimizeWindowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_RestoreWindow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RestoreWindowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).RestoreWindow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/RestoreWindow",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).RestoreWindow(ctx, req.(*RestoreWindowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_FocusWindow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FocusWindowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).FocusWindow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/FocusWindow",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).FocusWindow(ctx, req.(*FocusWindowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_CloseWindow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloseWindowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).CloseWindow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/CloseWindow",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).CloseWindow(ctx, req.(*CloseWindowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_GetDisplay_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDisplayRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).GetDisplay(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/GetDisplay",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).GetDisplay(ctx, req.(*GetDisplayRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ListDisplays_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDisplaysRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ListDisplays(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ListDisplays",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ListDisplays(ctx, req.(*ListDisplaysRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_GetElement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetElementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).GetElement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/GetElement",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).GetElement(ctx, req.(*GetElementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ListElements_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListElementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ListElements(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ListElements",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ListElements(ctx, req.(*ListElementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_QueryElements_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryElementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).QueryElements(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/QueryElements",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).QueryElements(ctx, req.(*QueryElementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_CreateInput_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateInputRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).CreateInput(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/CreateInput",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).CreateInput(ctx, req.(*CreateInputRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_GetInput_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInputRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).GetInput(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/GetInput",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).GetInput(ctx, req.(*GetInputRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ListInputs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInputsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ListInputs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ListInputs",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ListInputs(ctx, req.(*ListInputsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_CreateObservation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateObservationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).CreateObservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/CreateObservation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).CreateObservation(ctx, req.(*CreateObservationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_GetObservation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetObservationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).GetObservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/GetObservation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).GetObservation(ctx, req.(*GetObservationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ListObservations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListObservationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ListObservations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ListObservations",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ListObservations(ctx, req.(*ListObservationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_CancelObservation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelObservationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).CancelObservation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/CancelObservation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).CancelObservation(ctx, req.(*CancelObservationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_CreateSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).CreateSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/CreateSession",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).CreateSession(ctx, req.(*CreateSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_GetSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).GetSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/GetSession",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).GetSession(ctx, req.(*GetSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ListSessions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSessionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ListSessions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ListSessions",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ListSessions(ctx, req.(*ListSessionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_DeleteSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).DeleteSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/DeleteSession",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).DeleteSession(ctx, req.(*DeleteSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_BeginTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BeginTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).BeginTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/BeginTransaction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).BeginTransaction(ctx, req.(*BeginTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_CommitTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).CommitTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/CommitTransaction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).CommitTransaction(ctx, req.(*CommitTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_RollbackTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RollbackTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).RollbackTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/RollbackTransaction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).RollbackTransaction(ctx, req.(*RollbackTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_GetSessionSnapshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSessionSnapshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).GetSessionSnapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/GetSessionSnapshot",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).GetSessionSnapshot(ctx, req.(*GetSessionSnapshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_CreateMacro_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateMacroRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).CreateMacro(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/CreateMacro",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).CreateMacro(ctx, req.(*CreateMacroRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_GetMacro_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMacroRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).GetMacro(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/GetMacro",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).GetMacro(ctx, req.(*GetMacroRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ListMacros_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMacrosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ListMacros(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ListMacros",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ListMacros(ctx, req.(*ListMacrosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_UpdateMacro_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateMacroRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).UpdateMacro(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/UpdateMacro",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).UpdateMacro(ctx, req.(*UpdateMacroRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_DeleteMacro_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteMacroRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).DeleteMacro(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/DeleteMacro",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).DeleteMacro(ctx, req.(*DeleteMacroRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ExecuteMacro_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteMacroRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ExecuteMacro(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ExecuteMacro",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ExecuteMacro(ctx, req.(*ExecuteMacroRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_GetClipboard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetClipboardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).GetClipboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/GetClipboard",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).GetClipboard(ctx, req.(*GetClipboardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_WriteClipboard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WriteClipboardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).WriteClipboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/WriteClipboard",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).WriteClipboard(ctx, req.(*WriteClipboardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ClearClipboard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearClipboardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ClearClipboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ClearClipboard",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ClearClipboard(ctx, req.(*ClearClipboardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ListClipboardHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListClipboardHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ListClipboardHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ListClipboardHistory",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ListClipboardHistory(ctx, req.(*ListClipboardHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_CaptureScreenshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CaptureScreenshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).CaptureScreenshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/CaptureScreenshot",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).CaptureScreenshot(ctx, req.(*CaptureScreenshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ExecuteScript_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteScriptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ExecuteScript(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ExecuteScript",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ExecuteScript(ctx, req.(*ExecuteScriptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_ValidateScript_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateScriptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).ValidateScript(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/ValidateScript",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).ValidateScript(ctx, req.(*ValidateScriptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_OpenFileDialog_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenFileDialogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).OpenFileDialog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/OpenFileDialog",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).OpenFileDialog(ctx, req.(*OpenFileDialogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_SaveFileDialog_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveFileDialogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).SaveFileDialog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/SaveFileDialog",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).SaveFileDialog(ctx, req.(*SaveFileDialogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_SelectFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SelectFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).SelectFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/SelectFile",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).SelectFile(ctx, req.(*SelectFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_SelectDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SelectDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).SelectDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/SelectDirectory",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).SelectDirectory(ctx, req.(*SelectDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_DragFiles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DragFilesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutomationServer).DragFiles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + Automation_ServiceName + "/DragFiles",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutomationServer).DragFiles(ctx, req.(*DragFilesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Automation_StreamObservations_Handler(srv interface{}, stream grpc.ServerStream) error {
	in := new(StreamObservationsRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(AutomationServer).StreamObservations(in, &automationStreamObservationsServer{ServerStream: stream})
}

// Automation_ServiceDesc is the grpc.ServiceDesc for the Automation service.
var Automation_ServiceDesc = grpc.ServiceDesc{
	ServiceName: Automation_ServiceName,
	HandlerType: (*AutomationServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "OpenApplication", Handler: _Automation_OpenApplication_Handler},
		{MethodName: "GetApplication", Handler: _Automation_GetApplication_Handler},
		{MethodName: "ListApplications", Handler: _Automation_ListApplications_Handler},
		{MethodName: "DeleteApplication", Handler: _Automation_DeleteApplication_Handler},
		{MethodName: "ActivateApplication", Handler: _Automation_ActivateApplication_Handler},
		{MethodName: "GetWindow", Handler: _Automation_GetWindow_Handler},
		{MethodName: "ListWindows", Handler: _Automation_ListWindows_Handler},
		{MethodName: "GetWindowState", Handler: _Automation_GetWindowState_Handler},
		{MethodName: "MoveWindow", Handler: _Automation_MoveWindow_Handler},
		{MethodName: "ResizeWindow", Handler: _Automation_ResizeWindow_Handler},
		{MethodName: "MinimizeWindow", Handler: _Automation_MinimizeWindow_Handler},
		{MethodName: "RestoreWindow", Handler: _Automation_RestoreWindow_Handler},
		{MethodName: "FocusWindow", Handler: _Automation_FocusWindow_Handler},
		{MethodName: "CloseWindow", Handler: _Automation_CloseWindow_Handler},
		{MethodName: "GetDisplay", Handler: _Automation_GetDisplay_Handler},
		{MethodName: "ListDisplays", Handler: _Automation_ListDisplays_Handler},
		{MethodName: "GetElement", Handler: _Automation_GetElement_Handler},
		{MethodName: "ListElements", Handler: _Automation_ListElements_Handler},
		{MethodName: "QueryElements", Handler: _Automation_QueryElements_Handler},
		{MethodName: "CreateInput", Handler: _Automation_CreateInput_Handler},
		{MethodName: "GetInput", Handler: _Automation_GetInput_Handler},
		{MethodName: "ListInputs", Handler: _Automation_ListInputs_Handler},
		{MethodName: "CreateObservation", Handler: _Automation_CreateObservation_Handler},
		{MethodName: "GetObservation", Handler: _Automation_GetObservation_Handler},
		{MethodName: "ListObservations", Handler: _Automation_ListObservations_Handler},
		{MethodName: "CancelObservation", Handler: _Automation_CancelObservation_Handler},
		{MethodName: "CreateSession", Handler: _Automation_CreateSession_Handler},
		{MethodName: "GetSession", Handler: _Automation_GetSession_Handler},
		{MethodName: "ListSessions", Handler: _Automation_ListSessions_Handler},
		{MethodName: "DeleteSession", Handler: _Automation_DeleteSession_Handler},
		{MethodName: "BeginTransaction", Handler: _Automation_BeginTransaction_Handler},
		{MethodName: "CommitTransaction", Handler: _Automation_CommitTransaction_Handler},
		{MethodName: "RollbackTransaction", Handler: _Automation_RollbackTransaction_Handler},
		{MethodName: "GetSessionSnapshot", Handler: _Automation_GetSessionSnapshot_Handler},
		{MethodName: "CreateMacro", Handler: _Automation_CreateMacro_Handler},
		{MethodName: "GetMacro", Handler: _Automation_GetMacro_Handler},
		{MethodName: "ListMacros", Handler: _Automation_ListMacros_Handler},
		{MethodName: "UpdateMacro", Handler: _Automation_UpdateMacro_Handler},
		{MethodName: "DeleteMacro", Handler: _Automation_DeleteMacro_Handler},
		{MethodName: "ExecuteMacro", Handler: _Automation_ExecuteMacro_Handler},
		{MethodName: "GetClipboard", Handler: _Automation_GetClipboard_Handler},
		{MethodName: "WriteClipboard", Handler: _Automation_WriteClipboard_Handler},
		{MethodName: "ClearClipboard", Handler: _Automation_ClearClipboard_Handler},
		{MethodName: "ListClipboardHistory", Handler: _Automation_ListClipboardHistory_Handler},
		{MethodName: "CaptureScreenshot", Handler: _Automation_CaptureScreenshot_Handler},
		{MethodName: "ExecuteScript", Handler: _Automation_ExecuteScript_Handler},
		{MethodName: "ValidateScript", Handler: _Automation_ValidateScript_Handler},
		{MethodName: "OpenFileDialog", Handler: _Automation_OpenFileDialog_Handler},
		{MethodName: "SaveFileDialog", Handler: _Automation_SaveFileDialog_Handler},
		{MethodName: "SelectFile", Handler: _Automation_SelectFile_Handler},
		{MethodName: "SelectDirectory", Handler: _Automation_SelectDirectory_Handler},
		{MethodName: "DragFiles", Handler: _Automation_DragFiles_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "StreamObservations", Handler: _Automation_StreamObservations_Handler, ServerStreams: true},
	},
	Metadata: "macosusesdk/automation/v1/automation.proto",
}
