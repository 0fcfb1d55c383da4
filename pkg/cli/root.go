// pkg/cli/root.go
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudshift-cli/cloudshift/internal/config"
	"github.com/cloudshift-cli/cloudshift/internal/logger"
	"github.com/cloudshift-cli/cloudshift/pkg/common"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile   string
	logLevel     string
	rcloneBinary string
}

func Execute() {
	os.Exit(Run(os.Args[1:]))
}

// Run executes the CLI and returns the process exit code.
func Run(args []string) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An interrupt cancels the root context, which kills a running transfer
	// subprocess. rclone owns transfer state; nothing to clean up here.
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalCh)
	go func() {
		<-signalCh
		logger.Info("Received interrupt signal, stopping...")
		cancel()
	}()

	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "cloudshift",
		Short: "Transfer files between two cloud-storage accounts via rclone",
		Long: `cloudshift walks you through moving files between two cloud-storage
accounts. It delegates authentication and the transfer itself to the rclone
binary, which must be installed separately.

Run it without arguments to start the interactive transfer flow.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransfer(cmd.Context(), flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Path to the YAML config file (default ~/.cloudshift.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.rcloneBinary, "rclone", "", "Name or path of the rclone binary")

	rootCmd.AddCommand(newTransferCommand(flags))
	rootCmd.AddCommand(newRemotesCommand(flags))
	rootCmd.AddCommand(newVersionCommand())

	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		code := common.ExitCode(err)
		switch {
		case code == common.ExitInterrupted:
			logger.Error("Transfer interrupted")
		case isCancelled(err):
			// User declined at the confirmation step; not an error.
		default:
			logger.Error("%v", err)
		}
		return code
	}
	return common.ExitOK
}

func isCancelled(err error) bool {
	var cancelled *common.CancelledError
	return errors.As(err, &cancelled)
}

// loadConfig resolves the effective configuration, applying flag overrides.
// A broken config file is a configuration failure, not a cancellation.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, common.NewConfigError("", err)
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.rcloneBinary != "" {
		cfg.Rclone.Binary = flags.rcloneBinary
	}
	logger.SetLevel(cfg.LogLevel)
	return cfg, nil
}
