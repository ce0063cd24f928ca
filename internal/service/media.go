package service

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/macosusesdk/automationd/pb"
)

func (s *Service) CaptureScreenshot(ctx context.Context, req *pb.CaptureScreenshotRequest) (*pb.Screenshot, error) {
	return s.screenshots.Capture(ctx, req)
}

func (s *Service) ExecuteScript(ctx context.Context, req *pb.ExecuteScriptRequest) (*pb.ScriptResult, error) {
	res, err := s.scripts.Execute(ctx, req)
	s.record(ctx, "execute_script", "", err)
	return res, err
}

func (s *Service) ValidateScript(ctx context.Context, req *pb.ValidateScriptRequest) (*pb.ValidateScriptResponse, error) {
	return s.scripts.Validate(ctx, req)
}

func (s *Service) OpenFileDialog(ctx context.Context, req *pb.OpenFileDialogRequest) (*pb.OpenFileDialogResponse, error) {
	return s.dialogs.Open(ctx, req)
}

func (s *Service) SaveFileDialog(ctx context.Context, req *pb.SaveFileDialogRequest) (*pb.SaveFileDialogResponse, error) {
	return s.dialogs.Save(ctx, req)
}

func (s *Service) SelectFile(ctx context.Context, req *pb.SelectFileRequest) (*emptypb.Empty, error) {
	if err := s.dialogs.SelectFile(ctx, req); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *Service) SelectDirectory(ctx context.Context, req *pb.SelectDirectoryRequest) (*emptypb.Empty, error) {
	if err := s.dialogs.SelectDirectory(ctx, req); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *Service) DragFiles(ctx context.Context, req *pb.DragFilesRequest) (*emptypb.Empty, error) {
	err := s.dialogs.DragFiles(ctx, req)
	s.record(ctx, "drag_files", req.TargetElement, err)
	if err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}
