// Package cmd provides Cobra CLI commands for dialogbridge.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/build"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "dialogbridge",
		Short: "Run page scripts whose alert, confirm and prompt dialogs wait for you",
		Long: `dialogbridge runs JavaScript in a headless page engine. Every alert,
confirm, prompt or beforeunload dialog the script raises suspends it until the
dialog is answered, from the terminal or by a fixed policy.

Answered dialogs are journaled in a local database and can be listed with
'dialogbridge history'.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	rootCmd.Version = info.String()
}
