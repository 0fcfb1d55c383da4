package rclone

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/cloudshift-cli/cloudshift/pkg/common"
)

// Client provides the rclone operations the transfer flow needs.
type Client interface {
	// Check verifies the rclone binary is usable and returns its version line.
	Check(ctx context.Context) (string, error)
	// ListRemotes returns the names of remotes in rclone's configuration.
	ListRemotes(ctx context.Context) ([]string, error)
	// ConfigCreate runs rclone's interactive remote-setup wizard, which
	// opens a browser for OAuth itself.
	ConfigCreate(ctx context.Context, name, remoteType string) error
	// ListFolders lists top-level folders of a remote.
	ListFolders(ctx context.Context, remote string) ([]string, error)
	// Mkdir creates a folder on a remote if it does not exist.
	Mkdir(ctx context.Context, remote, path string) error
	// Transfer runs the copy/sync subcommand, streaming subprocess output
	// to out as it arrives. Blocks until the subprocess exits.
	Transfer(ctx context.Context, spec Spec, out io.Writer) error
}

// Spec describes one transfer invocation.
type Spec struct {
	Mode      Mode
	SrcRemote string
	SrcPath   string
	DstRemote string
	DstPath   string
	ExtraArgs []string
}

// Source returns the rclone-style source argument, e.g. "srcAcct:/Photos".
func (s Spec) Source() string {
	return s.SrcRemote + ":" + s.SrcPath
}

// Destination returns the rclone-style destination argument.
func (s Spec) Destination() string {
	return s.DstRemote + ":" + s.DstPath
}

// args builds the full rclone argument list for the transfer.
func (s Spec) args() []string {
	args := []string{s.Mode.subcommand(), s.Source(), s.Destination(), "--progress"}
	args = append(args, s.Mode.flags()...)
	args = append(args, s.ExtraArgs...)
	return args
}

// ShellClient implements Client by shelling out to the rclone command
type ShellClient struct {
	binary string

	// Wired to the process's streams by default; injectable for tests.
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	lookPath func(string) (string, error)
}

// NewShellClient creates a client that invokes the given rclone binary.
func NewShellClient(binary string) *ShellClient {
	return &ShellClient{
		binary:   binary,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		lookPath: exec.LookPath,
	}
}

func (c *ShellClient) Check(ctx context.Context) (string, error) {
	if _, err := c.lookPath(c.binary); err != nil {
		return "", common.NewToolNotFoundError(c.binary)
	}

	output, err := exec.CommandContext(ctx, c.binary, "version").Output()
	if err != nil {
		return "", fmt.Errorf("rclone version check failed: %w", err)
	}

	version, _, _ := strings.Cut(strings.TrimSpace(string(output)), "\n")
	return version, nil
}

func (c *ShellClient) ListRemotes(ctx context.Context) ([]string, error) {
	output, err := c.output(exec.CommandContext(ctx, c.binary, "listremotes"))
	if err != nil {
		return nil, fmt.Errorf("rclone listremotes failed: %w", err)
	}

	var remotes []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(strings.TrimSpace(line), ":")
		if line != "" {
			remotes = append(remotes, line)
		}
	}
	return remotes, nil
}

// ConfigCreate hands the terminal to rclone's wizard: it prompts, opens the
// browser for OAuth and writes its own configuration file.
func (c *ShellClient) ConfigCreate(ctx context.Context, name, remoteType string) error {
	cmd := exec.CommandContext(ctx, c.binary, "config", "create", name, remoteType)
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rclone config create failed: %w", err)
	}
	return nil
}

func (c *ShellClient) ListFolders(ctx context.Context, remote string) ([]string, error) {
	output, err := c.output(exec.CommandContext(ctx, c.binary, "lsf", remote+":", "--dirs-only"))
	if err != nil {
		return nil, fmt.Errorf("rclone lsf failed for %s: %w", remote, err)
	}

	var folders []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(strings.TrimSpace(line), "/")
		if line != "" {
			folders = append(folders, line)
		}
	}
	return folders, nil
}

func (c *ShellClient) Mkdir(ctx context.Context, remote, path string) error {
	if _, err := c.output(exec.CommandContext(ctx, c.binary, "mkdir", remote+":"+path)); err != nil {
		return fmt.Errorf("rclone mkdir failed for %s:%s: %w", remote, path, err)
	}
	return nil
}

// Transfer streams rclone's stdout and stderr to out line by line as the
// subprocess produces them. The command runs under ctx, so cancelling the
// context kills the subprocess; rclone owns any partial destination state.
func (c *ShellClient) Transfer(ctx context.Context, spec Spec, out io.Writer) error {
	cmd := exec.CommandContext(ctx, c.binary, spec.args()...)
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return common.NewTransferError(exitErr.ExitCode(), err)
	}
	return fmt.Errorf("failed to run rclone: %w", err)
}

// output runs a command and returns trimmed stdout, attaching stderr to the
// error on failure.
func (c *ShellClient) output(cmd *exec.Cmd) (string, error) {
	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
