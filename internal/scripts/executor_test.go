package scripts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()
	sim := platform.NewSimulator()
	t.Cleanup(sim.Close)
	return NewExecutor(sim)
}

func TestDenylist(t *testing.T) {
	e := newTestExecutor(t)
	for _, src := range []string{
		"rm -rf / --no-preserve-root",
		"echo hi && SUDO reboot",
		"tell app \"Finder\" to do shell script \"sudo rm\"",
	} {
		_, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{
			Type: pb.ScriptType_SHELL, Source: src,
		})
		require.Error(t, err, "source %q", src)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
		assert.Equal(t, apierr.ReasonSecurityViolation, apierr.Reason(err))
	}
}

func TestEmptySourceRejected(t *testing.T) {
	e := newTestExecutor(t)
	_, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{Type: pb.ScriptType_SHELL})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonRequiredField, apierr.Reason(err))
}

func TestUnknownTypeRejected(t *testing.T) {
	e := newTestExecutor(t)
	_, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{Source: "echo hi"})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonInvalidEnumValue, apierr.Reason(err))
}

func TestShellCapturesOutput(t *testing.T) {
	e := newTestExecutor(t)
	res, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{
		Type:   pb.ScriptType_SHELL,
		Source: "echo out; echo err >&2",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, int32(0), res.ExitCode)
	assert.Equal(t, "out\n", res.Output)
	assert.Equal(t, "err\n", res.Stderr)
	assert.GreaterOrEqual(t, res.DurationMs, int64(0))
}

func TestShellExitCode(t *testing.T) {
	e := newTestExecutor(t)
	res, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{
		Type:   pb.ScriptType_SHELL,
		Source: "exit 3",
	})
	require.NoError(t, err, "a failing script is a result, not an RPC error")
	assert.False(t, res.Success)
	assert.Equal(t, int32(3), res.ExitCode)
}

func TestShellStdinAndEnv(t *testing.T) {
	e := newTestExecutor(t)
	res, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{
		Type:        pb.ScriptType_SHELL,
		Source:      "read line; echo \"$line:$GREETING\"",
		Stdin:       "input",
		Environment: map[string]string{"GREETING": "hi"},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "input:hi\n", res.Output)
}

func TestShellWorkingDirectory(t *testing.T) {
	e := newTestExecutor(t)
	dir := t.TempDir()
	res, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{
		Type:             pb.ScriptType_SHELL,
		Source:           "pwd",
		WorkingDirectory: dir,
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Contains(t, res.Output, dir)
}

func TestShellTimeout(t *testing.T) {
	e := newTestExecutor(t)
	start := time.Now()
	res, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{
		Type:           pb.ScriptType_SHELL,
		Source:         "sleep 30",
		TimeoutSeconds: 0.2,
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, int32(-1), res.ExitCode)
	assert.Contains(t, res.Message, "timed out")
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestShellCompileOnly(t *testing.T) {
	e := newTestExecutor(t)
	res, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{
		Type:        pb.ScriptType_SHELL,
		Source:      "echo never runs",
		CompileOnly: true,
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Output)
}

func TestHostedScript(t *testing.T) {
	e := newTestExecutor(t)
	res, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{
		Type:   pb.ScriptType_APPLESCRIPT,
		Source: `display dialog "hello"`,
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Output)
}

func TestHostedCompileOnly(t *testing.T) {
	e := newTestExecutor(t)
	res, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{
		Type:        pb.ScriptType_JXA,
		Source:      `Application("Finder").activate()`,
		CompileOnly: true,
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Script compiled successfully", res.Message)
}

func TestHostedCompileErrorIsInBand(t *testing.T) {
	e := newTestExecutor(t)
	// The simulator's compiler rejects blank sources; that failure must land
	// in the result, not the RPC status.
	res, err := e.Execute(context.Background(), &pb.ExecuteScriptRequest{
		Type:   pb.ScriptType_APPLESCRIPT,
		Source: "   ",
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "compile error")
}

func TestValidate(t *testing.T) {
	e := newTestExecutor(t)
	ctx := context.Background()

	resp, err := e.Validate(ctx, &pb.ValidateScriptRequest{Type: pb.ScriptType_SHELL, Source: "ls"})
	require.NoError(t, err)
	assert.True(t, resp.Valid)

	resp, err = e.Validate(ctx, &pb.ValidateScriptRequest{Type: pb.ScriptType_SHELL, Source: "  "})
	require.NoError(t, err)
	assert.False(t, resp.Valid)

	resp, err = e.Validate(ctx, &pb.ValidateScriptRequest{Type: pb.ScriptType_APPLESCRIPT, Source: "beep"})
	require.NoError(t, err)
	assert.True(t, resp.Valid)

	_, err = e.Validate(ctx, &pb.ValidateScriptRequest{Source: "x"})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonInvalidEnumValue, apierr.Reason(err))

	_, err = e.Validate(ctx, &pb.ValidateScriptRequest{Type: pb.ScriptType_SHELL, Source: "sudo ls"})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonSecurityViolation, apierr.Reason(err))
}
