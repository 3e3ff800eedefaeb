package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli/styles"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	t := app.Theme

	if app.Manager != nil {
		fmt.Printf("%s %s\n", t.Highlight.Render(styles.IconConfig), app.Manager.ConfigFile())
	} else {
		fmt.Printf("%s %s\n", t.WarningStyle.Render(styles.IconWarning), t.Subtle.Render("no config file, using defaults"))
	}

	data, err := json.MarshalIndent(app.Config, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
