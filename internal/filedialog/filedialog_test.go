package filedialog

import (
	"context"
	"math"
	"os"
	"path/filepath"
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

func tempFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(p, []byte("content"), 0o644))
	return p
}

func TestOpenDialog(t *testing.T) {
	svc, sim, _ := newTestService(t)
	sim.OpenDialogPaths = []string{"/tmp/a.txt", "/tmp/b.txt"}

	resp, err := svc.Open(context.Background(), &pb.OpenFileDialogRequest{AllowMultiple: true})
	require.NoError(t, err)
	assert.False(t, resp.Cancelled)
	assert.Equal(t, []string{"/tmp/a.txt", "/tmp/b.txt"}, resp.Paths)
}

func TestOpenDialogCancelled(t *testing.T) {
	svc, sim, _ := newTestService(t)
	sim.OpenDialogCancelled = true

	resp, err := svc.Open(context.Background(), &pb.OpenFileDialogRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Cancelled)
	assert.Empty(t, resp.Paths)
}

func TestSaveDialog(t *testing.T) {
	svc, sim, _ := newTestService(t)
	sim.SaveDialogPath = "/tmp/out.txt"

	resp, err := svc.Save(context.Background(), &pb.SaveFileDialogRequest{
		DefaultFilename:  "out.txt",
		ConfirmOverwrite: true,
	})
	require.NoError(t, err)
	assert.False(t, resp.Cancelled)
	assert.Equal(t, "/tmp/out.txt", resp.Path)
}

func TestSelectFile(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := tempFile(t)

	require.NoError(t, svc.SelectFile(context.Background(), &pb.SelectFileRequest{Path: p}))
	require.NoError(t, svc.SelectFile(context.Background(), &pb.SelectFileRequest{Path: p, Reveal: true}))

	err := svc.SelectFile(context.Background(), &pb.SelectFileRequest{})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonRequiredField, apierr.Reason(err))

	err = svc.SelectFile(context.Background(), &pb.SelectFileRequest{Path: "/no/such/file"})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonFileAccessDenied, apierr.Reason(err))
}

func TestSelectDirectory(t *testing.T) {
	svc, _, _ := newTestService(t)
	dir := t.TempDir()

	require.NoError(t, svc.SelectDirectory(context.Background(), &pb.SelectDirectoryRequest{Path: dir}))

	missing := filepath.Join(dir, "nested", "deep")
	err := svc.SelectDirectory(context.Background(), &pb.SelectDirectoryRequest{Path: missing})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonFileAccessDenied, apierr.Reason(err))

	require.NoError(t, svc.SelectDirectory(context.Background(), &pb.SelectDirectoryRequest{
		Path: missing, CreateMissing: true,
	}))
	info, err := os.Stat(missing)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSelectDirectoryRejectsFiles(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := tempFile(t)

	err := svc.SelectDirectory(context.Background(), &pb.SelectDirectoryRequest{Path: p})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonNotADirectory, apierr.Reason(err))
}

func TestDragFiles(t *testing.T) {
	svc, _, els := newTestService(t)
	p := tempFile(t)
	pid := int32(100)
	id := els.Register(platform.Element{
		Pid: pid, Role: "AXGroup",
		Bounds: &platform.Rect{X: 100, Y: 100, Width: 200, Height: 200},
	})

	require.NoError(t, svc.DragFiles(context.Background(), &pb.DragFilesRequest{
		Paths:         []string{p},
		TargetElement: names.Element(pid, id),
	}))
}

func TestDragFilesValidation(t *testing.T) {
	svc, _, els := newTestService(t)
	p := tempFile(t)
	pid := int32(100)
	id := els.Register(platform.Element{
		Pid: pid, Role: "AXGroup",
		Bounds: &platform.Rect{X: 0, Y: 0, Width: 10, Height: 10},
	})
	target := names.Element(pid, id)
	ctx := context.Background()

	err := svc.DragFiles(ctx, &pb.DragFilesRequest{TargetElement: target})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonRequiredField, apierr.Reason(err))

	err = svc.DragFiles(ctx, &pb.DragFilesRequest{
		Paths: []string{"/no/such/file"}, TargetElement: target,
	})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonFileAccessDenied, apierr.Reason(err))

	err = svc.DragFiles(ctx, &pb.DragFilesRequest{
		Paths: []string{p}, TargetElement: target, DurationSeconds: math.Inf(1),
	})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonInvalidArgument, apierr.Reason(err))

	err = svc.DragFiles(ctx, &pb.DragFilesRequest{
		Paths: []string{p}, TargetElement: "not-a-name",
	})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonInvalidResourceName, apierr.Reason(err))

	err = svc.DragFiles(ctx, &pb.DragFilesRequest{
		Paths: []string{p}, TargetElement: names.Element(pid, "elem_0_000000"),
	})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonElementNotFound, apierr.Reason(err))
}

func TestDragFilesRequiresBounds(t *testing.T) {
	svc, _, els := newTestService(t)
	p := tempFile(t)
	pid := int32(100)
	id := els.Register(platform.Element{Pid: pid, Role: "AXGroup"})

	err := svc.DragFiles(context.Background(), &pb.DragFilesRequest{
		Paths: []string{p}, TargetElement: names.Element(pid, id),
	})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonElementMissingBounds, apierr.Reason(err))
}
