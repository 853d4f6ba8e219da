package convert

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// ConvertError is the error class for every failed conversion: which tool
// ran (empty when no tool was dispatched), what it wrote to stderr, and
// the underlying cause.
type ConvertError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *ConvertError) Error() string {
	if e.Tool != "" {
		return fmt.Sprintf("convert: %s: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("convert: %v", e.Err)
}

func (e *ConvertError) Unwrap() error { return e.Err }

// toolError wraps a Runner failure, capping stderr the same way the exec
// log does.
func toolError(tool string, stderr []byte, err error) *ConvertError {
	return &ConvertError{Tool: tool, Stderr: truncate(string(stderr), 8<<10), Err: err}
}

// Runner lets us stub external commands in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	dur := time.Since(start)

	if err != nil {
		slog.Error("exec failed",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", dur.Milliseconds(),
			"error", err,
			"stderr", truncate(errb.String(), 8<<10), // cap at 8KB
		)
	} else {
		slog.Debug("exec ok",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", dur.Milliseconds(),
			"stdout_bytes", out.Len(),
			"stderr_bytes", errb.Len(),
		)
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
