package common

import (
	"context"
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitCancelled    = 1
	ExitConfigFailed = 2
	ExitToolNotFound = 3
	ExitFailure      = 4
	ExitInterrupted  = 130
)

// ToolNotFoundError indicates the rclone binary could not be located.
type ToolNotFoundError struct {
	Name string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%s not found on PATH: install it or point --rclone at the binary", e.Name)
}

// ConfigError indicates that loading the configuration or setting up a
// remote failed. Remote is empty for config-file failures.
type ConfigError struct {
	Remote string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Remote == "" {
		return fmt.Sprintf("configuration failed: %v", e.Err)
	}
	return fmt.Sprintf("configuring remote %q failed: %v", e.Remote, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CancelledError indicates the user declined at the confirmation step.
type CancelledError struct{}

func (e *CancelledError) Error() string {
	return "transfer cancelled by user"
}

// TransferError carries the exit code of a failed transfer subprocess.
type TransferError struct {
	ExitCode int
	Err      error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer failed (rclone exit code %d): %v", e.ExitCode, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

func NewToolNotFoundError(name string) error {
	return &ToolNotFoundError{Name: name}
}

func NewConfigError(remote string, err error) error {
	return &ConfigError{Remote: remote, Err: err}
}

func NewCancelledError() error {
	return &CancelledError{}
}

func NewTransferError(exitCode int, err error) error {
	return &TransferError{ExitCode: exitCode, Err: err}
}

// ExitCode maps an error from a run to the process exit code. The transfer
// subprocess's own exit code is passed through verbatim.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var transferErr *TransferError
	if errors.As(err, &transferErr) {
		return transferErr.ExitCode
	}

	var toolErr *ToolNotFoundError
	if errors.As(err, &toolErr) {
		return ExitToolNotFound
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return ExitConfigFailed
	}

	var cancelledErr *CancelledError
	if errors.As(err, &cancelledErr) {
		return ExitCancelled
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	// Unclassified failures must not look like a user cancellation.
	return ExitFailure
}
