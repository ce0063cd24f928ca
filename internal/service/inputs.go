package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/pagination"
	"github.com/macosusesdk/automationd/internal/validate"
	"github.com/macosusesdk/automationd/pb"
)

// CreateInput records the input, synthesizes it synchronously, and returns
// the final record (completed or failed).
func (s *Service) CreateInput(ctx context.Context, req *pb.CreateInputRequest) (*pb.Input, error) {
	pid, err := names.ParseApplicationOrWildcard(req.Parent)
	if err != nil {
		return nil, err
	}
	if req.Input == nil || req.Input.Action == nil {
		return nil, apierr.RequiredField("input.action")
	}
	if err := validateInputAction(req.Input.Action); err != nil {
		return nil, err
	}

	in := req.Input.Clone()
	in.Name = names.Input(pid, uuid.NewString())
	in.State = pb.InputState_PENDING
	in.CreateTime = timestamppb.Now()
	s.apps.AddInput(in)

	s.apps.UpdateInput(in.Name, func(rec *pb.Input) {
		rec.State = pb.InputState_EXECUTING
	})
	execErr := s.execInput(ctx, in.Action)
	s.apps.UpdateInput(in.Name, func(rec *pb.Input) {
		rec.CompleteTime = timestamppb.Now()
		if execErr != nil {
			rec.State = pb.InputState_FAILED
			rec.Error = execErr.Error()
		} else {
			rec.State = pb.InputState_COMPLETED
		}
	})
	s.record(ctx, "create_input", in.Name, execErr)
	if execErr != nil {
		return nil, execErr
	}
	out, _ := s.apps.GetInput(in.Name)
	return out, nil
}

func (s *Service) GetInput(ctx context.Context, req *pb.GetInputRequest) (*pb.Input, error) {
	if _, _, err := names.ParseInput(req.Name); err != nil {
		return nil, err
	}
	in, ok := s.apps.GetInput(req.Name)
	if !ok {
		return nil, apierr.NotFound(apierr.ReasonInputNotFound, req.Name)
	}
	return in, nil
}

func (s *Service) ListInputs(ctx context.Context, req *pb.ListInputsRequest) (*pb.ListInputsResponse, error) {
	prefix := ""
	if req.Parent != "" {
		pid, err := names.ParseApplicationOrWildcard(req.Parent)
		if err != nil {
			return nil, err
		}
		if pid == 0 {
			prefix = "desktopInputs/"
		} else {
			prefix = req.Parent + "/inputs/"
		}
	}
	all := s.apps.ListInputs(prefix)
	page, next, err := pagination.Page(all, req.PageSize, req.PageToken, pagination.DefaultPageSize)
	if err != nil {
		return nil, err
	}
	return &pb.ListInputsResponse{Inputs: page, NextPageToken: next}, nil
}

func validateInputAction(a *pb.InputAction) error {
	switch {
	case a.Click != nil:
		if err := validate.Coordinate("click.x", a.Click.X); err != nil {
			return err
		}
		return validate.Coordinate("click.y", a.Click.Y)
	case a.TypeText != nil:
		return validate.RequiredString("type_text.text", a.TypeText.Text)
	case a.KeyPress != nil:
		return validate.RequiredString("key_press.key", a.KeyPress.Key)
	case a.Scroll != nil:
		if err := validate.Coordinate("scroll.x", a.Scroll.X); err != nil {
			return err
		}
		return validate.Coordinate("scroll.y", a.Scroll.Y)
	case a.Drag != nil:
		for _, c := range []struct {
			field string
			v     float64
		}{
			{"drag.from_x", a.Drag.FromX},
			{"drag.from_y", a.Drag.FromY},
			{"drag.to_x", a.Drag.ToX},
			{"drag.to_y", a.Drag.ToY},
		} {
			if err := validate.Coordinate(c.field, c.v); err != nil {
				return err
			}
		}
		return validate.NonNegative("drag.duration_seconds", a.Drag.DurationSeconds)
	case a.MoveMouse != nil:
		if err := validate.Coordinate("move_mouse.x", a.MoveMouse.X); err != nil {
			return err
		}
		return validate.Coordinate("move_mouse.y", a.MoveMouse.Y)
	default:
		return apierr.InvalidArgument(apierr.ReasonInvalidAction, "input action has no variant set", nil)
	}
}

// execInput synthesizes one input action via the adapter.
func (s *Service) execInput(ctx context.Context, a *pb.InputAction) error {
	switch {
	case a.Click != nil:
		count := a.Click.Count
		if count <= 0 {
			count = 1
		}
		return apierr.Platform(s.sys.Click(ctx, a.Click.X, a.Click.Y, int32(a.Click.Button), count))
	case a.TypeText != nil:
		return apierr.Platform(s.sys.TypeText(ctx, a.TypeText.Text))
	case a.KeyPress != nil:
		return apierr.Platform(s.sys.PressKey(ctx, a.KeyPress.Key, a.KeyPress.Modifiers))
	case a.Scroll != nil:
		return apierr.Platform(s.sys.Scroll(ctx, a.Scroll.X, a.Scroll.Y, a.Scroll.DeltaX, a.Scroll.DeltaY))
	case a.Drag != nil:
		d := a.Drag
		if err := s.sys.MouseDown(ctx, d.FromX, d.FromY, int32(pb.MouseButton_LEFT)); err != nil {
			return apierr.Platform(err)
		}
		if err := s.sys.MouseMove(ctx, d.ToX, d.ToY); err != nil {
			return apierr.Platform(err)
		}
		return apierr.Platform(s.sys.MouseUp(ctx, d.ToX, d.ToY, int32(pb.MouseButton_LEFT)))
	case a.MoveMouse != nil:
		return apierr.Platform(s.sys.MouseMove(ctx, a.MoveMouse.X, a.MoveMouse.Y))
	default:
		return apierr.InvalidArgument(apierr.ReasonInvalidAction, "input action has no variant set", nil)
	}
}
