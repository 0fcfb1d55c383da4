// internal/transfer/transfer.go
package transfer

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudshift-cli/cloudshift/internal/config"
	"github.com/cloudshift-cli/cloudshift/internal/logger"
	"github.com/cloudshift-cli/cloudshift/internal/progress"
	"github.com/cloudshift-cli/cloudshift/internal/prompt"
	"github.com/cloudshift-cli/cloudshift/internal/rclone"
	"github.com/cloudshift-cli/cloudshift/pkg/common"
)

// Plan holds the choices collected from the user for one run. Nothing here
// is persisted; credentials live in rclone's own configuration.
type Plan struct {
	SrcRemote string
	SrcPath   string
	DstRemote string
	DstPath   string
	Mode      rclone.Mode
}

// Orchestrator sequences the interactive flow: verify rclone, set up both
// remotes, pick folders and mode, confirm, then run one transfer.
type Orchestrator struct {
	client  rclone.Client
	prompts *prompt.Prompter
	out     io.Writer
	cfg     *config.Config
}

// New creates an orchestrator.
func New(client rclone.Client, prompts *prompt.Prompter, out io.Writer, cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		client:  client,
		prompts: prompts,
		out:     out,
		cfg:     cfg,
	}
}

// Run executes the flow once. The returned error maps to the process exit
// code via common.ExitCode.
func (o *Orchestrator) Run(ctx context.Context) error {
	version, err := o.client.Check(ctx)
	if err != nil {
		return err
	}
	logger.Debug("Using %s", version)

	plan := &Plan{}

	fmt.Fprintln(o.out, "=== Source account ===")
	if plan.SrcRemote, err = o.ensureRemote(ctx, "source"); err != nil {
		return err
	}

	fmt.Fprintln(o.out, "\n=== Destination account ===")
	if plan.DstRemote, err = o.ensureRemote(ctx, "destination"); err != nil {
		return err
	}

	if plan.SrcPath, err = o.selectFolder(ctx, plan.SrcRemote, "source"); err != nil {
		return err
	}
	if plan.DstPath, err = o.selectFolder(ctx, plan.DstRemote, "destination"); err != nil {
		return err
	}

	if plan.Mode, err = o.selectMode(); err != nil {
		return err
	}

	ok, err := o.confirm(plan)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(o.out, "Operation cancelled.")
		return common.NewCancelledError()
	}

	return o.execute(ctx, plan)
}

// ensureRemote prompts for a remote name and runs rclone's interactive setup
// wizard when the name is not configured yet.
func (o *Orchestrator) ensureRemote(ctx context.Context, role string) (string, error) {
	name, err := o.prompts.Line(fmt.Sprintf("Name of the %s remote", role))
	if err != nil {
		return "", err
	}

	remotes, err := o.client.ListRemotes(ctx)
	if err != nil {
		return "", common.NewConfigError(name, err)
	}
	for _, remote := range remotes {
		if remote == name {
			logger.Debug("Remote %q already configured", name)
			return name, nil
		}
	}

	fmt.Fprintf(o.out, "Remote %q is not configured yet.\n", name)
	fmt.Fprintln(o.out, "A browser window will open; log in and grant the requested permissions.")
	if err := o.client.ConfigCreate(ctx, name, o.cfg.Rclone.RemoteType); err != nil {
		return "", common.NewConfigError(name, err)
	}
	return name, nil
}

// selectFolder offers a numbered listing of the remote's top-level folders,
// falling back to a plain path prompt when the listing fails or is empty.
func (o *Orchestrator) selectFolder(ctx context.Context, remote, role string) (string, error) {
	fmt.Fprintf(o.out, "\nSelect the %s folder on %s:\n", role, remote)

	folders, err := o.client.ListFolders(ctx, remote)
	if err != nil {
		logger.Warn("Could not list folders on %s: %v", remote, err)
	}
	if len(folders) == 0 {
		return o.prompts.Line(fmt.Sprintf("Path of the %s folder", role))
	}
	return o.prompts.Select(fmt.Sprintf("%s folder", role), folders)
}

func (o *Orchestrator) selectMode() (rclone.Mode, error) {
	modes := []rclone.Mode{rclone.ModeCopy, rclone.ModeSync, rclone.ModeMigrate}

	// The configured default is picked on an empty answer.
	def := -1
	if o.cfg.Transfer.DefaultMode != "" {
		mode, err := rclone.ParseMode(o.cfg.Transfer.DefaultMode)
		if err != nil {
			return "", err
		}
		for i, m := range modes {
			if m == mode {
				def = i
			}
		}
	}

	fmt.Fprintln(o.out, "\nSelect operation type:")
	i, err := o.prompts.Choose("Operation", []string{
		"Copy (add all files to the destination)",
		"Sync (make the destination match the source exactly)",
		"Migrate (only copy files missing from the destination)",
	}, def)
	if err != nil {
		return "", err
	}
	return modes[i], nil
}

func (o *Orchestrator) confirm(plan *Plan) (bool, error) {
	fmt.Fprintf(o.out, "\nYou are about to %s files from:\n", plan.Mode)
	fmt.Fprintf(o.out, "  Source:      %s:%s\n", plan.SrcRemote, plan.SrcPath)
	fmt.Fprintf(o.out, "  Destination: %s:%s\n", plan.DstRemote, plan.DstPath)

	switch {
	case plan.Mode.Destructive():
		fmt.Fprintln(o.out, "\nWARNING: sync deletes destination files that do not exist in the source!")
	case plan.Mode == rclone.ModeMigrate:
		fmt.Fprintln(o.out, "\nMigration only copies files that don't exist in the destination.")
		fmt.Fprintln(o.out, "Existing files will be skipped.")
	}

	return o.prompts.Confirm("Do you want to proceed?")
}

// execute creates the destination folder and runs the transfer subprocess,
// streaming its output. The source is never modified; rclone copies.
func (o *Orchestrator) execute(ctx context.Context, plan *Plan) error {
	if err := o.client.Mkdir(ctx, plan.DstRemote, plan.DstPath); err != nil {
		logger.Warn("Could not create destination folder: %v", err)
	}

	spec := rclone.Spec{
		Mode:      plan.Mode,
		SrcRemote: plan.SrcRemote,
		SrcPath:   plan.SrcPath,
		DstRemote: plan.DstRemote,
		DstPath:   plan.DstPath,
		ExtraArgs: o.cfg.Rclone.ExtraArgs,
	}

	relay := progress.NewRelay(o.out)
	relay.Start(spec.Source(), spec.Destination())

	err := o.client.Transfer(ctx, spec, relay)
	relay.Finish(err)
	return err
}
