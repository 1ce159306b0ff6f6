package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"miniapps/internal/render"
)

var (
	renderOut      string
	renderApps     string
	renderTitle    string
	renderBase     string
	renderTemplate string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the grid page to a file or stdout",
	Long: `Render the grid page once and write the HTML to --out (or stdout).
Useful for publishing the page as a static file.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default: stdout)")
	renderCmd.Flags().StringVar(&renderApps, "apps", "", "catalog file in YAML or JSON (default: built-in)")
	renderCmd.Flags().StringVar(&renderTitle, "title", render.DefaultTitle, "page title")
	renderCmd.Flags().StringVar(&renderBase, "base", "", "base href for relative icon URLs")
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "host page template (default: built-in)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	apps, err := loadApps(renderApps)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	renderer, err := newRenderer(renderTitle, renderBase, renderTemplate)
	if err != nil {
		return fmt.Errorf("initialize renderer: %w", err)
	}

	page, err := renderer.Bytes(apps)
	if err != nil {
		return err
	}

	if renderOut == "" {
		_, err = cmd.OutOrStdout().Write(page)
		return err
	}
	if err := os.WriteFile(renderOut, page, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", renderOut, err)
	}
	cmd.Printf("Rendered %d apps to %s\n", len(apps), renderOut)
	return nil
}
