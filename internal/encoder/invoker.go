package encoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"video-streamer/internal/logging"
	"video-streamer/internal/metrics"
)

// InvokeError describes a failed encoder invocation.
type InvokeError struct {
	ExitCode      int
	Stderr        string
	Timeout       bool
	MissingOutput bool
}

func (e *InvokeError) Error() string {
	switch {
	case e.Timeout:
		return "encoder timed out"
	case e.MissingOutput:
		return "encoder exited successfully but produced no output file"
	default:
		msg := fmt.Sprintf("encoder exited with code %d", e.ExitCode)
		if e.Stderr != "" {
			msg += ": " + lastLines(e.Stderr, 5)
		}
		return msg
	}
}

// lastLines returns the trailing n non-empty lines of s; encoder stderr is
// verbose and only the tail carries the actual failure.
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// Invoker executes the external encoder synchronously.
type Invoker struct {
	cfg Config
}

// NewInvoker creates an Invoker for the configured encoder.
func NewInvoker(cfg Config) *Invoker {
	return &Invoker{cfg: cfg}
}

// Available reports whether the configured encoder executable can be located.
func (inv *Invoker) Available() bool {
	_, err := exec.LookPath(inv.cfg.Path)
	return err == nil
}

// Version returns the first line of the encoder's -version output, for
// startup and health reporting.
func (inv *Invoker) Version(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, inv.cfg.Path, "-version").Output()
	if err != nil {
		return "", fmt.Errorf("failed to get encoder version: %w", err)
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}

// Run executes the encoder with the given argument vector and waits for it
// to finish. Success requires a zero exit status and a non-empty file at
// outputPath. The configured timeout kills the process and is reported as a
// timeout error. Run never retries.
func (inv *Invoker) Run(ctx context.Context, args []string, outputPath string) error {
	if inv.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, inv.cfg.Path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	metrics.EncodeJobsInProgress.Inc()
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)
	metrics.EncodeJobsInProgress.Dec()
	metrics.EncodeJobDuration.Observe(elapsed.Seconds())

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			logging.Error("encoder timed out after %v", elapsed)
			return &InvokeError{Timeout: true, Stderr: stderr.String()}
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		logging.Error("encoder failed with code %d after %v", exitCode, elapsed)
		return &InvokeError{ExitCode: exitCode, Stderr: stderr.String()}
	}

	info, err := os.Stat(outputPath)
	if err != nil || info.Size() == 0 {
		logging.Error("encoder reported success but output %s is missing or empty", outputPath)
		return &InvokeError{MissingOutput: true, Stderr: stderr.String()}
	}

	logging.Debug("encoder finished in %v, output %s (%d bytes)", elapsed, outputPath, info.Size())
	return nil
}
