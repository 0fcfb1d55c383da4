package cli

import (
	"fmt"

	"github.com/cloudshift-cli/cloudshift/internal/rclone"
	"github.com/spf13/cobra"
)

func newRemotesCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remotes",
		Short: "List cloud accounts already configured in rclone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			client := rclone.NewShellClient(cfg.Rclone.Binary)
			if _, err := client.Check(cmd.Context()); err != nil {
				return err
			}

			remotes, err := client.ListRemotes(cmd.Context())
			if err != nil {
				return err
			}

			if len(remotes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No remotes configured. Run the transfer flow to add one.")
				return nil
			}
			for _, remote := range remotes {
				fmt.Fprintln(cmd.OutOrStdout(), remote)
			}
			return nil
		},
	}
}
