// Package filedialog orchestrates open/save panels, programmatic path
// selection and synthesized file drags.
package filedialog

import (
	"context"
	"log"
	"math"
	"os"
	"time"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/elements"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

const (
	minDragSteps    = 10
	dragStepsPerSec = 60

	// dragOriginOffset nudges the grab point off the exact path location so
	// the drop target never coincides with the origin.
	dragOriginOffset = 5.0
)

type Service struct {
	logger   *log.Logger
	sys      platform.SystemOperations
	elements *elements.Registry
}

func NewService(sys platform.SystemOperations, els *elements.Registry) *Service {
	return &Service{
		logger:   log.New(log.Writer(), "[FILEDIALOG] ", log.LstdFlags),
		sys:      sys,
		elements: els,
	}
}

// Open shows an open panel and returns the chosen paths.
func (s *Service) Open(ctx context.Context, req *pb.OpenFileDialogRequest) (*pb.OpenFileDialogResponse, error) {
	paths, cancelled, err := s.sys.ShowOpenDialog(ctx, platform.OpenDialogOptions{
		AllowMultiple:    req.AllowMultiple,
		FileTypes:        req.FileTypes,
		DefaultDirectory: req.DefaultDirectory,
	})
	if err != nil {
		return nil, apierr.Platform(err)
	}
	return &pb.OpenFileDialogResponse{Paths: paths, Cancelled: cancelled}, nil
}

// Save shows a save panel. The confirm-overwrite flag is forwarded to the
// panel; the panel owns the prompt.
func (s *Service) Save(ctx context.Context, req *pb.SaveFileDialogRequest) (*pb.SaveFileDialogResponse, error) {
	path, cancelled, err := s.sys.ShowSaveDialog(ctx, platform.SaveDialogOptions{
		DefaultDirectory: req.DefaultDirectory,
		DefaultFilename:  req.DefaultFilename,
		ConfirmOverwrite: req.ConfirmOverwrite,
	})
	if err != nil {
		return nil, apierr.Platform(err)
	}
	return &pb.SaveFileDialogResponse{Path: path, Cancelled: cancelled}, nil
}

// SelectFile checks that the path is readable and optionally reveals it in
// the file viewer.
func (s *Service) SelectFile(ctx context.Context, req *pb.SelectFileRequest) error {
	if req.Path == "" {
		return apierr.RequiredField("path")
	}
	if err := checkReadable(req.Path); err != nil {
		return err
	}
	if req.Reveal {
		if err := s.sys.RevealPath(ctx, req.Path); err != nil {
			return apierr.Platform(err)
		}
	}
	return nil
}

// SelectDirectory checks that the path is a directory, creating it first
// when asked.
func (s *Service) SelectDirectory(ctx context.Context, req *pb.SelectDirectoryRequest) error {
	if req.Path == "" {
		return apierr.RequiredField("path")
	}
	info, err := os.Stat(req.Path)
	if err != nil {
		if os.IsNotExist(err) && req.CreateMissing {
			if mkErr := os.MkdirAll(req.Path, 0o755); mkErr != nil {
				return apierr.PermissionDenied(apierr.ReasonFileAccessDenied,
					"creating directory: "+mkErr.Error())
			}
			return nil
		}
		return apierr.PermissionDenied(apierr.ReasonFileAccessDenied, err.Error())
	}
	if !info.IsDir() {
		return apierr.FailedPrecondition(apierr.ReasonNotADirectory,
			"not a directory: "+req.Path, nil)
	}
	return nil
}

// DragFiles synthesizes a drag of the given paths onto the target element:
// mouse-down slightly off the origin, a fixed number of interpolated moves,
// mouse-up on the element's center.
func (s *Service) DragFiles(ctx context.Context, req *pb.DragFilesRequest) error {
	if len(req.Paths) == 0 {
		return apierr.RequiredField("paths")
	}
	for _, p := range req.Paths {
		if p == "" {
			return apierr.RequiredField("paths")
		}
		if err := checkReadable(p); err != nil {
			return err
		}
	}
	d := req.DurationSeconds
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return apierr.InvalidArgument(apierr.ReasonInvalidArgument,
			"drag duration must be finite and non-negative", nil)
	}

	_, elementID, err := names.ParseElement(req.TargetElement)
	if err != nil {
		return err
	}
	entry, ok := s.elements.Get(elementID)
	if !ok {
		return apierr.NotFound(apierr.ReasonElementNotFound, req.TargetElement)
	}
	b := entry.Element.Bounds
	if b == nil || b.Width <= 0 || b.Height <= 0 {
		return apierr.FailedPrecondition(apierr.ReasonElementMissingBounds,
			"target element has no usable bounds: "+req.TargetElement, nil)
	}
	toX := b.X + b.Width/2
	toY := b.Y + b.Height/2
	fromX := toX - dragOriginOffset
	fromY := toY - dragOriginOffset

	steps := int(math.Round(d * dragStepsPerSec))
	if steps < minDragSteps {
		steps = minDragSteps
	}
	stepDelay := time.Duration(d / float64(steps) * float64(time.Second))

	if err := s.sys.MouseDown(ctx, fromX, fromY, int32(pb.MouseButton_LEFT)); err != nil {
		return apierr.Platform(err)
	}
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		x := fromX + (toX-fromX)*f
		y := fromY + (toY-fromY)*f
		if err := s.sys.MouseMove(ctx, x, y); err != nil {
			_ = s.sys.MouseUp(ctx, x, y, int32(pb.MouseButton_LEFT))
			return apierr.Platform(err)
		}
		if stepDelay > 0 {
			select {
			case <-time.After(stepDelay):
			case <-ctx.Done():
				_ = s.sys.MouseUp(ctx, x, y, int32(pb.MouseButton_LEFT))
				return ctx.Err()
			}
		}
	}
	if err := s.sys.MouseUp(ctx, toX, toY, int32(pb.MouseButton_LEFT)); err != nil {
		return apierr.Platform(err)
	}
	s.logger.Printf("dragged %d file(s) onto %s over %d steps", len(req.Paths), req.TargetElement, steps)
	return nil
}

func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return apierr.PermissionDenied(apierr.ReasonFileAccessDenied, err.Error())
	}
	f.Close()
	return nil
}
