package service

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/compozy/versioninfo/internal/domain"
	"github.com/spf13/afero"
)

// gitDescribeService shells out to the git executable. Paths are checked on
// the OS filesystem, the same one the child process sees.
type gitDescribeService struct {
	osFs   afero.Fs
	binary string
	// timeout for command execution
	timeout time.Duration
}

// GitBinaryService is the exec-backed implementation of both DescribeService
// and ToolVersionService.
type GitBinaryService interface {
	DescribeService
	ToolVersionService
}

// NewGitDescribeService creates a service running binary (looked up on PATH).
func NewGitDescribeService(binary string, timeout time.Duration) GitBinaryService {
	if binary == "" {
		binary = DefaultGitBinary
	}
	if timeout <= 0 {
		timeout = DefaultDescribeTimeout
	}
	return &gitDescribeService{
		osFs:    afero.NewOsFs(),
		binary:  binary,
		timeout: timeout,
	}
}

// lookPath resolves the binary on PATH.
func (s *gitDescribeService) lookPath() (string, error) {
	path, err := exec.LookPath(s.binary)
	if err != nil {
		// ErrNotFound, ErrDot, or a path that is not executable.
		return "", fmt.Errorf("%w: %v", domain.ErrToolNotFound, err)
	}
	return path, nil
}

// executeCommand runs a command with timeout and proper resource cleanup.
// Exit failures, timeouts and empty output are wrapped in unavailable;
// failures to start the process map to ErrSpawn.
func (s *gitDescribeService) executeCommand(
	ctx context.Context,
	unavailable error,
	dir, name string,
	args ...string,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %v", unavailable, ctx.Err())
		}
		return "", fmt.Errorf("%w: %s: %v", domain.ErrSpawn, name, err)
	}
	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: command timed out after %v", unavailable, s.timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %v (stderr: %s)", unavailable, err, msg)
		}
		return "", fmt.Errorf("%w: %v", unavailable, err)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", fmt.Errorf("%w: empty output", unavailable)
	}
	return out, nil
}

// Describe runs `git describe --tags --abbrev=8` in dir.
func (s *gitDescribeService) Describe(ctx context.Context, dir string) (string, error) {
	path, err := s.lookPath()
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	ok, err := afero.DirExists(s.osFs, dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDescribeUnavailable, err)
	}
	if !ok {
		return "", fmt.Errorf("%w: repository directory %s does not exist", domain.ErrDescribeUnavailable, dir)
	}
	return s.executeCommand(ctx, domain.ErrDescribeUnavailable, dir, path, "describe", "--tags", "--abbrev=8")
}

var gitVersionPattern = regexp.MustCompile(`(\d+(?:\.\d+)+)`)

// ToolVersion runs `git --version` and returns the dotted version number.
func (s *gitDescribeService) ToolVersion(ctx context.Context) (string, error) {
	path, err := s.lookPath()
	if err != nil {
		return "", err
	}
	out, err := s.executeCommand(ctx, domain.ErrToolVersionUnavailable, "", path, "--version")
	if err != nil {
		return "", err
	}
	v := gitVersionPattern.FindString(out)
	if v == "" {
		return "", fmt.Errorf("%w: unrecognized version output %q", domain.ErrToolVersionUnavailable, out)
	}
	return v, nil
}
