package service

import (
	"context"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/fieldmask"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/pagination"
	"github.com/macosusesdk/automationd/pb"
)

func (s *Service) CreateMacro(ctx context.Context, req *pb.CreateMacroRequest) (*pb.Macro, error) {
	if req.Macro == nil {
		return nil, apierr.RequiredField("macro")
	}
	m, err := s.macros.Create(req.Macro, req.MacroId)
	s.record(ctx, "create_macro", macroName(m), err)
	return m, err
}

func macroName(m *pb.Macro) string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (s *Service) GetMacro(ctx context.Context, req *pb.GetMacroRequest) (*pb.Macro, error) {
	if _, err := names.ParseMacro(req.Name); err != nil {
		return nil, err
	}
	m, err := s.macros.Get(req.Name)
	if err != nil {
		return nil, err
	}
	return maskMacro(m, req.ReadMask), nil
}

func (s *Service) ListMacros(ctx context.Context, req *pb.ListMacrosRequest) (*pb.ListMacrosResponse, error) {
	all := s.macros.List()
	page, next, err := pagination.Page(all, req.PageSize, req.PageToken, pagination.SessionPageSize)
	if err != nil {
		return nil, err
	}
	return &pb.ListMacrosResponse{Macros: page, NextPageToken: next}, nil
}

func (s *Service) UpdateMacro(ctx context.Context, req *pb.UpdateMacroRequest) (*pb.Macro, error) {
	if req.Macro == nil {
		return nil, apierr.RequiredField("macro")
	}
	if _, err := names.ParseMacro(req.Macro.Name); err != nil {
		return nil, err
	}
	m, err := s.macros.Update(req.Macro, req.UpdateMask)
	s.record(ctx, "update_macro", req.Macro.Name, err)
	return m, err
}

func (s *Service) DeleteMacro(ctx context.Context, req *pb.DeleteMacroRequest) (*emptypb.Empty, error) {
	if _, err := names.ParseMacro(req.Name); err != nil {
		return nil, err
	}
	err := s.macros.Delete(req.Name)
	s.record(ctx, "delete_macro", req.Name, err)
	if err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

// ExecuteMacro validates the macro exists, then runs it behind an operation
// handle. The executor serializes runs internally; queued executions simply
// extend the operation's lifetime.
func (s *Service) ExecuteMacro(ctx context.Context, req *pb.ExecuteMacroRequest) (*longrunningpb.Operation, error) {
	if _, err := names.ParseMacro(req.Name); err != nil {
		return nil, err
	}
	macro, err := s.macros.Get(req.Name)
	if err != nil {
		return nil, err
	}
	if req.Parent != "" && req.Parent != names.Wildcard {
		if _, err := names.ParseApplication(req.Parent); err != nil {
			return nil, err
		}
	}

	opName := newOperationName(kindExecuteMacro)
	op, err := s.ops.Create(opName, metadataPayload(map[string]any{"macro": req.Name}))
	if err != nil {
		return nil, err
	}

	session := sessionFromContext(ctx)
	timeout := time.Duration(req.TimeoutSeconds * float64(time.Second))
	go func() {
		ctx := background()
		execErr := s.executor.Execute(ctx, macro, req.Parameters, req.Parent, timeout)
		if execErr == nil {
			s.macros.IncrementExecutionCount(req.Name)
		}
		if session != "" {
			s.sessions.RecordOperation(session, "execute_macro", req.Name, execErr == nil, errMsg(execErr))
		}
		s.finishOperation(kindExecuteMacro, opName, map[string]any{"macro": req.Name}, execErr)
	}()
	return op, nil
}

func maskMacro(m *pb.Macro, mask *fieldmaskpb.FieldMask) *pb.Macro {
	if fieldmask.ReadAll(mask) {
		return m
	}
	keep := fieldmask.NewKeep(mask, "name")
	out := &pb.Macro{Name: m.Name}
	if keep.Has("display_name") {
		out.DisplayName = m.DisplayName
	}
	if keep.Has("description") {
		out.Description = m.Description
	}
	if keep.Has("actions") {
		out.Actions = m.Actions
	}
	if keep.Has("parameters") {
		out.Parameters = m.Parameters
	}
	if keep.Has("tags") {
		out.Tags = m.Tags
	}
	if keep.Has("create_time") {
		out.CreateTime = m.CreateTime
	}
	if keep.Has("update_time") {
		out.UpdateTime = m.UpdateTime
	}
	if keep.Has("execution_count") {
		out.ExecutionCount = m.ExecutionCount
	}
	return out
}
