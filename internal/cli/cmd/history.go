package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli/styles"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
)

var (
	historyLimit  int
	historyWindow string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled dialogs",
	Long: `Show dialogs released in earlier runs, newest first.

Examples:
  dialogbridge history
  dialogbridge history -n 10
  dialogbridge history --window main`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of entries (default 50)")
	historyCmd.Flags().StringVarP(&historyWindow, "window", "w", "", "only dialogs of this window, oldest first")
}

func runHistory(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	app.PruneJournal()
	ctx := app.Ctx()

	var (
		records []*entity.DialogRecord
		err     error
	)
	if historyWindow != "" {
		records, err = app.Recorder.ForWindow(ctx, entity.WindowID(historyWindow))
	} else {
		records, err = app.Recorder.Recent(ctx, historyLimit)
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println(app.Theme.Subtle.Render(styles.IconInfo + " no dialogs journaled"))
		return nil
	}
	fmt.Println(app.Theme.RenderJournal(records))
	return nil
}
