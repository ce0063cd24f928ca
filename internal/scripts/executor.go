// Package scripts runs AppleScript, JXA and shell sources. AppleScript and
// JXA go through the platform adapter's scripting host; shell runs in-process
// via /bin/bash. A preflight denylist rejects obviously destructive sources
// before anything is compiled or launched; it is defensive-only, not a
// sandbox.
package scripts

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

const (
	// DefaultShellTimeout bounds shell scripts that give no timeout.
	DefaultShellTimeout = 60 * time.Second

	// killGrace is how long a timed-out process group gets between SIGTERM
	// and SIGKILL.
	killGrace = 2 * time.Second

	compiledOKMessage = "Script compiled successfully"
)

// denylist entries are matched as case-insensitive substrings.
var denylist = []string{"rm -rf /", "sudo"}

type Executor struct {
	logger *log.Logger
	sys    platform.SystemOperations
}

func NewExecutor(sys platform.SystemOperations) *Executor {
	return &Executor{
		logger: log.New(log.Writer(), "[SCRIPTS] ", log.LstdFlags),
		sys:    sys,
	}
}

func checkDenylist(source string) error {
	lower := strings.ToLower(source)
	for _, bad := range denylist {
		if strings.Contains(lower, bad) {
			return apierr.PermissionDenied(apierr.ReasonSecurityViolation,
				`script rejected by safety filter: contains "`+bad+`"`)
		}
	}
	return nil
}

// Execute runs the script and returns its result. Compile and runtime
// failures of the script itself are reported in the result, not as RPC
// errors; only invalid requests and filter rejections error out.
func (e *Executor) Execute(ctx context.Context, req *pb.ExecuteScriptRequest) (*pb.ScriptResult, error) {
	if req.Source == "" {
		return nil, apierr.RequiredField("source")
	}
	if err := checkDenylist(req.Source); err != nil {
		return nil, err
	}
	switch req.Type {
	case pb.ScriptType_APPLESCRIPT:
		return e.runHosted(ctx, platform.LangAppleScript, req)
	case pb.ScriptType_JXA:
		return e.runHosted(ctx, platform.LangJXA, req)
	case pb.ScriptType_SHELL:
		return e.runShell(ctx, req)
	default:
		return nil, apierr.InvalidArgument(apierr.ReasonInvalidEnumValue,
			"script type must be APPLESCRIPT, JXA or SHELL", nil)
	}
}

func (e *Executor) runHosted(ctx context.Context, lang platform.ScriptLanguage, req *pb.ExecuteScriptRequest) (*pb.ScriptResult, error) {
	start := time.Now()
	compiled, err := e.sys.CompileScript(ctx, lang, req.Source)
	if err != nil {
		return &pb.ScriptResult{
			Success:    false,
			Message:    "compile error: " + err.Error(),
			DurationMs: time.Since(start).Milliseconds(),
		}, nil
	}
	if req.CompileOnly {
		return &pb.ScriptResult{
			Success:    true,
			Message:    compiledOKMessage,
			DurationMs: time.Since(start).Milliseconds(),
		}, nil
	}

	runCtx := ctx
	if req.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeoutSeconds*float64(time.Second)))
		defer cancel()
	}
	output, err := e.sys.RunCompiledScript(runCtx, compiled)
	if err != nil {
		return &pb.ScriptResult{
			Success:    false,
			Message:    err.Error(),
			DurationMs: time.Since(start).Milliseconds(),
		}, nil
	}
	return &pb.ScriptResult{
		Success:    true,
		Output:     output,
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

// runShell launches /bin/bash -c in its own process group so a timeout can
// take down the whole tree, SIGTERM first, SIGKILL after a grace period.
func (e *Executor) runShell(ctx context.Context, req *pb.ExecuteScriptRequest) (*pb.ScriptResult, error) {
	if req.CompileOnly {
		// Shell has no compile step; a non-empty source is accepted as-is.
		return &pb.ScriptResult{Success: true, Message: compiledOKMessage}, nil
	}

	timeout := DefaultShellTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds * float64(time.Second))
	}

	cmd := exec.Command("/bin/bash", "-c", req.Source)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if req.WorkingDirectory != "" {
		cmd.Dir = req.WorkingDirectory
	}
	cmd.Env = buildEnv(req.Environment, req.Path)
	if req.Stdin != "" {
		cmd.Stdin = strings.NewReader(req.Stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, apierr.Internal(apierr.ReasonPlatformError, "launching shell: "+err.Error(), nil)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var waitErr error
	timedOut := false
	select {
	case waitErr = <-done:
	case <-timer.C:
		timedOut = true
		killGroup(cmd.Process.Pid)
		waitErr = <-done
	case <-ctx.Done():
		killGroup(cmd.Process.Pid)
		<-done
		return nil, ctx.Err()
	}
	duration := time.Since(start)

	result := &pb.ScriptResult{
		Output:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMs: duration.Milliseconds(),
	}
	if timedOut {
		result.Success = false
		result.ExitCode = -1
		result.Message = "script timed out after " + timeout.String()
		return result, nil
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			result.ExitCode = int32(exitErr.ExitCode())
		} else {
			result.ExitCode = -1
			result.Message = waitErr.Error()
		}
		result.Success = false
		return result, nil
	}
	result.Success = true
	return result, nil
}

// killGroup signals the child's process group, escalating to SIGKILL when
// the group survives the grace period.
func killGroup(pid int) {
	_ = syscall.Kill(-pid, syscall.SIGTERM)
	go func() {
		time.Sleep(killGrace)
		_ = syscall.Kill(-pid, syscall.SIGKILL)
	}()
}

// buildEnv overlays the provided map on the process environment; pathOverride
// replaces PATH when set.
func buildEnv(overlay map[string]string, pathOverride string) []string {
	merged := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			merged[kv[:i]] = kv[i+1:]
		}
	}
	for k, v := range overlay {
		merged[k] = v
	}
	if pathOverride != "" {
		merged["PATH"] = pathOverride
	}
	env := make([]string, 0, len(merged))
	for k, v := range merged {
		env = append(env, k+"="+v)
	}
	return env
}

// Validate attempts compilation without execution. Shell sources are valid
// iff non-empty.
func (e *Executor) Validate(ctx context.Context, req *pb.ValidateScriptRequest) (*pb.ValidateScriptResponse, error) {
	if err := checkDenylist(req.Source); err != nil {
		return nil, err
	}
	switch req.Type {
	case pb.ScriptType_SHELL:
		if strings.TrimSpace(req.Source) == "" {
			return &pb.ValidateScriptResponse{Valid: false, Message: "empty script"}, nil
		}
		return &pb.ValidateScriptResponse{Valid: true}, nil
	case pb.ScriptType_APPLESCRIPT, pb.ScriptType_JXA:
		lang := platform.LangAppleScript
		if req.Type == pb.ScriptType_JXA {
			lang = platform.LangJXA
		}
		if _, err := e.sys.CompileScript(ctx, lang, req.Source); err != nil {
			return &pb.ValidateScriptResponse{Valid: false, Message: err.Error()}, nil
		}
		return &pb.ValidateScriptResponse{Valid: true, Message: compiledOKMessage}, nil
	default:
		return nil, apierr.InvalidArgument(apierr.ReasonInvalidEnumValue,
			"script type must be APPLESCRIPT, JXA or SHELL", nil)
	}
}
