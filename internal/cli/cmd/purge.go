package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli/styles"
)

var purgeOlderThan time.Duration

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove journaled dialogs",
	Long: `Delete dialog journal entries. Without --older-than every entry is removed.

Examples:
  dialogbridge purge
  dialogbridge purge --older-than 168h`,
	RunE: runPurge,
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().DurationVar(&purgeOlderThan, "older-than", 0, "only remove entries closed longer ago than this")
}

func runPurge(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	n, err := app.Recorder.Purge(app.Ctx(), purgeOlderThan, time.Now())
	if err != nil {
		fmt.Printf("%s %v\n", app.Theme.ErrorStyle.Render(styles.IconX), err)
		return err
	}
	fmt.Printf("%s removed %d journal entries\n", app.Theme.SuccessStyle.Render(styles.IconTrash), n)
	return nil
}
