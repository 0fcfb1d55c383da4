package rclone

import "fmt"

// Mode selects the transfer behavior.
type Mode string

const (
	// ModeCopy adds all files to the destination, leaving the source intact.
	ModeCopy Mode = "copy"
	// ModeSync makes the destination match the source exactly, deleting
	// extraneous destination files.
	ModeSync Mode = "sync"
	// ModeMigrate copies only files absent from the destination, comparing
	// by checksum.
	ModeMigrate Mode = "migrate"
)

// ParseMode validates a free-form mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCopy, ModeSync, ModeMigrate:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown transfer mode %q (want copy, sync or migrate)", s)
}

// Destructive reports whether the mode can delete destination files.
func (m Mode) Destructive() bool {
	return m == ModeSync
}

// subcommand is the rclone verb for the mode. Migrate is a flavored copy.
func (m Mode) subcommand() string {
	if m == ModeSync {
		return "sync"
	}
	return "copy"
}

// flags returns the mode-specific rclone flags.
func (m Mode) flags() []string {
	switch m {
	case ModeSync:
		return []string{"--delete-after", "--delete-excluded"}
	case ModeMigrate:
		return []string{"--ignore-existing", "--checksum"}
	default:
		return []string{"--create-empty-src-dirs"}
	}
}
