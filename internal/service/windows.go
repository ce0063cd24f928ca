package service

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/macosusesdk/automationd/internal/fieldmask"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/pagination"
	"github.com/macosusesdk/automationd/internal/validate"
	"github.com/macosusesdk/automationd/pb"
)

func (s *Service) GetWindow(ctx context.Context, req *pb.GetWindowRequest) (*pb.Window, error) {
	pid, windowID, err := names.ParseWindow(req.Name)
	if err != nil {
		return nil, err
	}
	win, err := s.windows.Get(ctx, pid, windowID)
	if err != nil {
		return nil, err
	}
	return maskWindow(win, req.ReadMask), nil
}

// ListWindows composes from the registry snapshot alone; per-window attribute
// reads would make list latency scale with N.
func (s *Service) ListWindows(ctx context.Context, req *pb.ListWindowsRequest) (*pb.ListWindowsResponse, error) {
	pid, err := names.ParseApplicationOrWildcard(req.Parent)
	if err != nil {
		return nil, err
	}
	wins, err := s.windows.List(ctx, pid)
	if err != nil {
		return nil, err
	}
	page, next, err := pagination.Page(wins, req.PageSize, req.PageToken, pagination.DefaultPageSize)
	if err != nil {
		return nil, err
	}
	out := make([]*pb.Window, len(page))
	for i, w := range page {
		out[i] = maskWindow(w, req.ReadMask)
	}
	return &pb.ListWindowsResponse{Windows: out, NextPageToken: next}, nil
}

func (s *Service) GetWindowState(ctx context.Context, req *pb.GetWindowStateRequest) (*pb.WindowState, error) {
	pid, windowID, err := names.ParseWindowState(req.Name)
	if err != nil {
		return nil, err
	}
	return s.windows.State(ctx, pid, windowID)
}

func (s *Service) MoveWindow(ctx context.Context, req *pb.MoveWindowRequest) (*pb.Window, error) {
	pid, windowID, err := names.ParseWindow(req.Name)
	if err != nil {
		return nil, err
	}
	if err := validate.Coordinate("x", req.X); err != nil {
		return nil, err
	}
	if err := validate.Coordinate("y", req.Y); err != nil {
		return nil, err
	}
	win, err := s.windows.Move(ctx, pid, windowID, req.X, req.Y)
	s.record(ctx, "move_window", req.Name, err)
	return win, err
}

func (s *Service) ResizeWindow(ctx context.Context, req *pb.ResizeWindowRequest) (*pb.Window, error) {
	pid, windowID, err := names.ParseWindow(req.Name)
	if err != nil {
		return nil, err
	}
	if err := validate.Dimension("width", req.Width); err != nil {
		return nil, err
	}
	if err := validate.Dimension("height", req.Height); err != nil {
		return nil, err
	}
	win, err := s.windows.Resize(ctx, pid, windowID, req.Width, req.Height)
	s.record(ctx, "resize_window", req.Name, err)
	return win, err
}

func (s *Service) MinimizeWindow(ctx context.Context, req *pb.MinimizeWindowRequest) (*pb.Window, error) {
	pid, windowID, err := names.ParseWindow(req.Name)
	if err != nil {
		return nil, err
	}
	win, err := s.windows.Minimize(ctx, pid, windowID)
	s.record(ctx, "minimize_window", req.Name, err)
	return win, err
}

func (s *Service) RestoreWindow(ctx context.Context, req *pb.RestoreWindowRequest) (*pb.Window, error) {
	pid, windowID, err := names.ParseWindow(req.Name)
	if err != nil {
		return nil, err
	}
	win, err := s.windows.Restore(ctx, pid, windowID)
	s.record(ctx, "restore_window", req.Name, err)
	return win, err
}

func (s *Service) FocusWindow(ctx context.Context, req *pb.FocusWindowRequest) (*pb.Window, error) {
	pid, windowID, err := names.ParseWindow(req.Name)
	if err != nil {
		return nil, err
	}
	s.observation.MarkSDKActivation(pid)
	win, err := s.windows.Focus(ctx, pid, windowID)
	s.record(ctx, "focus_window", req.Name, err)
	return win, err
}

func (s *Service) CloseWindow(ctx context.Context, req *pb.CloseWindowRequest) (*emptypb.Empty, error) {
	pid, windowID, err := names.ParseWindow(req.Name)
	if err != nil {
		return nil, err
	}
	err = s.windows.Close(ctx, pid, windowID)
	s.record(ctx, "close_window", req.Name, err)
	if err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func maskWindow(win *pb.Window, mask *fieldmaskpb.FieldMask) *pb.Window {
	if fieldmask.ReadAll(mask) {
		return win
	}
	keep := fieldmask.NewKeep(mask, "name")
	out := &pb.Window{Name: win.Name}
	if keep.Has("title") {
		out.Title = win.Title
	}
	if keep.Has("bounds") {
		out.Bounds = win.Bounds
	}
	if keep.Has("z_index") {
		out.ZIndex = win.ZIndex
	}
	if keep.Has("visible") {
		out.Visible = win.Visible
	}
	if keep.Has("bundle_id") {
		out.BundleId = win.BundleId
	}
	return out
}
