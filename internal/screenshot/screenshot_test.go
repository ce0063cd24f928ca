package screenshot

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/elements"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

func newTestService(t *testing.T) (*Service, *platform.Simulator, *elements.Registry) {
	t.Helper()
	sim := platform.NewSimulator()
	t.Cleanup(sim.Close)
	els := elements.NewRegistry()
	return NewService(sim, els), sim, els
}

func intp(v int32) *int32 { return &v }

func TestCaptureMainDisplay(t *testing.T) {
	svc, _, _ := newTestService(t)
	shot, err := svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{DisplayId: intp(0)})
	require.NoError(t, err)
	assert.NotEmpty(t, shot.Data)
	assert.Equal(t, pb.ImageFormat_PNG, shot.Format, "format defaults to png")
	assert.Equal(t, int32(3840), shot.Width, "retina display captures at scale")
}

func TestCaptureUnknownDisplay(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{DisplayId: intp(77)})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonPlatformError, apierr.Reason(err))
}

func TestCaptureAllDisplaysByDefault(t *testing.T) {
	svc, _, _ := newTestService(t)
	shot, err := svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, shot.Data)
}

func TestCaptureElementAppliesPadding(t *testing.T) {
	svc, _, els := newTestService(t)
	pid := int32(100)
	id := els.Register(platform.Element{
		Pid: pid, Role: "AXButton",
		Bounds: &platform.Rect{X: 50, Y: 60, Width: 200, Height: 100},
	})

	shot, err := svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{
		Element: names.Element(pid, id),
		Padding: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(220), shot.Width, "padding widens the capture region on both sides")
	assert.Equal(t, int32(120), shot.Height)
}

func TestCaptureElementWithoutBounds(t *testing.T) {
	svc, _, els := newTestService(t)
	id := els.Register(platform.Element{Pid: 100, Role: "AXButton"})
	_, err := svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{
		Element: names.Element(100, id),
	})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonElementMissingBounds, apierr.Reason(err))
}

func TestCaptureUnknownElement(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{
		Element: "applications/100/elements/elem_0_000000",
	})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonElementNotFound, apierr.Reason(err))
}

func TestCaptureWindow(t *testing.T) {
	svc, sim, _ := newTestService(t)
	pid := sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	w := sim.SimAddWindow(pid, "Untitled", platform.Rect{Width: 640, Height: 480})

	shot, err := svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{
		Window: names.Window(pid, w.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, int32(640), shot.Width)
}

func TestCaptureRegionValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{
		Region: &pb.Bounds{X: 0, Y: 0, Width: -5, Height: 10},
	})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonInvalidDimension, apierr.Reason(err))

	_, err = svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{
		Region: &pb.Bounds{X: math.Inf(1), Y: 0, Width: 10, Height: 10},
	})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonInvalidCoordinate, apierr.Reason(err))

	shot, err := svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{
		Region: &pb.Bounds{X: 10, Y: 10, Width: 320, Height: 240},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(320), shot.Width)
}

func TestPaddingValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	for _, padding := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{Padding: padding})
		require.Error(t, err, "padding %v", padding)
		assert.Equal(t, apierr.ReasonInvalidDimension, apierr.Reason(err))
	}
}

func TestJpegQualityClamp(t *testing.T) {
	opts, format := captureOptions(&pb.CaptureScreenshotRequest{
		Format: pb.ImageFormat_JPEG, Quality: 250,
	})
	assert.Equal(t, pb.ImageFormat_JPEG, format)
	assert.Equal(t, "jpeg", opts.Format)
	assert.Equal(t, int32(100), opts.Quality)

	opts, _ = captureOptions(&pb.CaptureScreenshotRequest{
		Format: pb.ImageFormat_JPEG, Quality: -10,
	})
	assert.Equal(t, int32(0), opts.Quality)

	// Quality is a jpeg-only knob.
	opts, _ = captureOptions(&pb.CaptureScreenshotRequest{
		Format: pb.ImageFormat_PNG, Quality: 80,
	})
	assert.Equal(t, int32(0), opts.Quality)
	assert.Equal(t, "png", opts.Format)
}

func TestOCR(t *testing.T) {
	svc, sim, _ := newTestService(t)
	sim.OCRText = "Hello from the screen"

	shot, err := svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{
		DisplayId:      intp(0),
		IncludeOcrText: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello from the screen", shot.OcrText)

	shot, err = svc.Capture(context.Background(), &pb.CaptureScreenshotRequest{DisplayId: intp(0)})
	require.NoError(t, err)
	assert.Empty(t, shot.OcrText)
}
