// Package screenshot validates capture requests and routes them to the
// platform adapter's capture API. OCR is performed by the adapter; this
// package only decides the capture target and pass-through options.
package screenshot

import (
	"context"
	"log"
	"math"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/elements"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

type Service struct {
	logger   *log.Logger
	sys      platform.SystemOperations
	elements *elements.Registry
}

func NewService(sys platform.SystemOperations, els *elements.Registry) *Service {
	return &Service{
		logger:   log.New(log.Writer(), "[SCREENSHOT] ", log.LstdFlags),
		sys:      sys,
		elements: els,
	}
}

// Capture resolves the request's target (display, element, window or region)
// and returns the encoded image. Target precedence follows field order:
// displayId, element, window, region; with nothing set every display is
// captured into one image.
func (s *Service) Capture(ctx context.Context, req *pb.CaptureScreenshotRequest) (*pb.Screenshot, error) {
	if req.Padding < 0 || !isFinite(req.Padding) {
		return nil, apierr.InvalidArgument(apierr.ReasonInvalidDimension,
			"padding must be finite and non-negative", nil)
	}
	opts, format := captureOptions(req)

	cap, err := s.capture(ctx, req, opts)
	if err != nil {
		return nil, err
	}

	out := &pb.Screenshot{
		Data:   cap.Data,
		Width:  cap.Width,
		Height: cap.Height,
		Format: format,
	}
	if req.IncludeOcrText {
		text, err := s.sys.RecognizeText(ctx, cap.Data)
		if err != nil {
			return nil, apierr.Platform(err)
		}
		out.OcrText = text
	}
	return out, nil
}

func (s *Service) capture(ctx context.Context, req *pb.CaptureScreenshotRequest, opts platform.CaptureOptions) (platform.Capture, error) {
	switch {
	case req.DisplayId != nil:
		id := uint32(*req.DisplayId)
		cap, err := s.sys.CaptureDisplay(ctx, id, opts)
		return cap, apierr.Platform(err)

	case req.Element != "":
		_, elementID, err := names.ParseElement(req.Element)
		if err != nil {
			return platform.Capture{}, err
		}
		entry, ok := s.elements.Get(elementID)
		if !ok {
			return platform.Capture{}, apierr.NotFound(apierr.ReasonElementNotFound, req.Element)
		}
		b := entry.Element.Bounds
		if b == nil || b.Width <= 0 || b.Height <= 0 {
			return platform.Capture{}, apierr.FailedPrecondition(apierr.ReasonElementMissingBounds,
				"element has no usable bounds: "+req.Element, nil)
		}
		region := platform.Rect{
			X:      b.X - req.Padding,
			Y:      b.Y - req.Padding,
			Width:  b.Width + 2*req.Padding,
			Height: b.Height + 2*req.Padding,
		}
		cap, err := s.sys.CaptureRegion(ctx, region, opts)
		return cap, apierr.Platform(err)

	case req.Window != "":
		_, windowID, err := names.ParseWindow(req.Window)
		if err != nil {
			return platform.Capture{}, err
		}
		cap, err := s.sys.CaptureWindow(ctx, windowID, opts)
		return cap, apierr.Platform(err)

	case req.Region != nil:
		r := req.Region
		if !isFinite(r.X) || !isFinite(r.Y) || !isFinite(r.Width) || !isFinite(r.Height) {
			return platform.Capture{}, apierr.InvalidArgument(apierr.ReasonInvalidCoordinate,
				"region coordinates must be finite", nil)
		}
		if r.Width <= 0 || r.Height <= 0 {
			return platform.Capture{}, apierr.InvalidArgument(apierr.ReasonInvalidDimension,
				"region dimensions must be positive", nil)
		}
		cap, err := s.sys.CaptureRegion(ctx, platform.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}, opts)
		return cap, apierr.Platform(err)

	default:
		cap, err := s.sys.CaptureAllDisplays(ctx, opts)
		return cap, apierr.Platform(err)
	}
}

func captureOptions(req *pb.CaptureScreenshotRequest) (platform.CaptureOptions, pb.ImageFormat) {
	format := req.Format
	if format == pb.ImageFormat_IMAGE_FORMAT_UNSPECIFIED {
		format = pb.ImageFormat_PNG
	}
	opts := platform.CaptureOptions{Format: formatName(format)}
	if format == pb.ImageFormat_JPEG {
		q := req.Quality
		if q < 0 {
			q = 0
		} else if q > 100 {
			q = 100
		}
		opts.Quality = q
	}
	return opts, format
}

func formatName(f pb.ImageFormat) string {
	switch f {
	case pb.ImageFormat_JPEG:
		return "jpeg"
	case pb.ImageFormat_TIFF:
		return "tiff"
	default:
		return "png"
	}
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
