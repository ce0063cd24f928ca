package service

import (
	"context"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

// GetDisplay resolves "displays/{id}"; id 0 is an alias for the main display.
func (s *Service) GetDisplay(ctx context.Context, req *pb.GetDisplayRequest) (*pb.Display, error) {
	id, err := names.ParseDisplay(req.Name)
	if err != nil {
		return nil, err
	}
	infos, err := s.sys.ListDisplays(ctx)
	if err != nil {
		return nil, apierr.Platform(err)
	}
	for _, info := range infos {
		if info.DisplayID == id || (id == 0 && info.IsMain) {
			return displayToPB(info), nil
		}
	}
	return nil, apierr.NotFound(apierr.ReasonDisplayNotFound, req.Name)
}

func (s *Service) ListDisplays(ctx context.Context, req *pb.ListDisplaysRequest) (*pb.ListDisplaysResponse, error) {
	infos, err := s.sys.ListDisplays(ctx)
	if err != nil {
		return nil, apierr.Platform(err)
	}
	out := make([]*pb.Display, len(infos))
	for i, info := range infos {
		out[i] = displayToPB(info)
	}
	return &pb.ListDisplaysResponse{Displays: out}, nil
}

func displayToPB(info platform.DisplayInfo) *pb.Display {
	return &pb.Display{
		Name:         names.Display(info.DisplayID),
		Frame:        rectToBounds(info.Frame),
		VisibleFrame: rectToBounds(info.VisibleFrame),
		Scale:        info.Scale,
		IsMain:       info.IsMain,
	}
}

func rectToBounds(r platform.Rect) *pb.Bounds {
	return &pb.Bounds{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
