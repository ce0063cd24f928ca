package service

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/pagination"
	"github.com/macosusesdk/automationd/pb"
)

// GetClipboard reads the singleton pasteboard resource. Only "clipboard"
// exists; any other name is not-found.
func (s *Service) GetClipboard(ctx context.Context, req *pb.GetClipboardRequest) (*pb.Clipboard, error) {
	if req.Name != names.ClipboardName {
		return nil, apierr.NotFound(apierr.ReasonClipboardNotFound, req.Name)
	}
	return s.clipboard.Read(ctx)
}

func (s *Service) WriteClipboard(ctx context.Context, req *pb.WriteClipboardRequest) (*pb.Clipboard, error) {
	if req.Content == nil {
		return nil, apierr.RequiredField("content")
	}
	clip, err := s.clipboard.Write(ctx, req.Content)
	s.record(ctx, "write_clipboard", names.ClipboardName, err)
	return clip, err
}

func (s *Service) ClearClipboard(ctx context.Context, req *pb.ClearClipboardRequest) (*emptypb.Empty, error) {
	err := s.clipboard.Clear(ctx)
	s.record(ctx, "clear_clipboard", names.ClipboardName, err)
	if err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *Service) ListClipboardHistory(ctx context.Context, req *pb.ListClipboardHistoryRequest) (*pb.ListClipboardHistoryResponse, error) {
	all := s.clipboard.History()
	page, next, err := pagination.Page(all, req.PageSize, req.PageToken, pagination.DefaultPageSize)
	if err != nil {
		return nil, err
	}
	return &pb.ListClipboardHistoryResponse{Entries: page, NextPageToken: next}, nil
}
