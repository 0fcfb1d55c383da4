package cli

import (
	"context"
	"os"

	"github.com/cloudshift-cli/cloudshift/internal/prompt"
	"github.com/cloudshift-cli/cloudshift/internal/rclone"
	"github.com/cloudshift-cli/cloudshift/internal/transfer"
	"github.com/spf13/cobra"
)

func newTransferCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer",
		Short: "Interactively transfer files between two cloud accounts",
		Long: `Transfer walks through the full flow: verify rclone, set up the source
and destination remotes (rclone's wizard handles OAuth in the browser), pick
folders and an operation type, confirm, then run the transfer while streaming
rclone's progress output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransfer(cmd.Context(), flags)
		},
	}
}

func runTransfer(ctx context.Context, flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	client := rclone.NewShellClient(cfg.Rclone.Binary)
	prompts := prompt.New(os.Stdin, os.Stdout)

	return transfer.New(client, prompts, os.Stdout, cfg).Run(ctx)
}
