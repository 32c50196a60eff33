package config

import (
	"fmt"
	"os"

	appconfig "github.com/Iron-Ham/taskmemo/internal/config"
	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect color themes",
	Long: `Inspect and install color themes for the taskmemo TUI.

Custom themes are YAML files in the themes directory
($XDG_CONFIG_HOME/taskmemo/themes), named <theme-name>.yaml.

Use 'theme list' to see all available themes.
Use 'theme info' to view the palette of a specific theme.
Use 'theme export' to dump a theme as YAML.
Use 'theme import' to install a custom theme file.
Select a theme with 'taskmemo config set tui.theme <name>'.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	RunE:  runThemeList,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show information about a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a theme to YAML format.

If no output file is specified, the YAML is printed to stdout.

Examples:
  taskmemo config theme export default
  taskmemo config theme export nord nord.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

var themeImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Install a custom theme file",
	Long: `Validate a theme file and copy it into the themes directory.

A good starting point is an exported built-in theme with a new name:
  taskmemo config theme export nord my-theme.yaml
  # edit name and colors
  taskmemo config theme import my-theme.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeImport,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeInfoCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeImportCmd)
	configCmd.AddCommand(themeCmd)
}

func unknownThemeError(name string) error {
	return fmt.Errorf("unknown theme: %s\n\nRun 'taskmemo config theme list' to see available themes", name)
}

// loadCustomThemes registers the theme files in the themes directory.
// Broken files are reported on stderr and skipped.
func loadCustomThemes(cmd *cobra.Command) {
	styles.ClearCustomThemes()
	_, errs := styles.DiscoverCustomThemes(appconfig.ThemesDir())
	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
}

func runThemeList(cmd *cobra.Command, args []string) error {
	loadCustomThemes(cmd)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}

	custom := styles.CustomThemeNames()
	if len(custom) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Custom themes (%s):\n", appconfig.ThemesDir())
		for _, name := range custom {
			fmt.Fprintf(out, "  - %s\n", name)
		}
	}
	return nil
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	loadCustomThemes(cmd)
	themeName := args[0]
	if !styles.IsValidTheme(themeName) {
		return unknownThemeError(themeName)
	}

	out := cmd.OutOrStdout()
	palette := styles.GetPalette(styles.ThemeName(themeName))

	fmt.Fprintf(out, "Theme: %s\n", themeName)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Colors:")
	fmt.Fprintf(out, "  Primary:     %s\n", palette.Primary)
	fmt.Fprintf(out, "  Increment:   %s\n", palette.Increment)
	fmt.Fprintf(out, "  Add:         %s\n", palette.Add)
	fmt.Fprintf(out, "  Submit:      %s\n", palette.Submit)
	fmt.Fprintf(out, "  Button text: %s\n", palette.ButtonText)
	fmt.Fprintf(out, "  Error:       %s\n", palette.Error)
	fmt.Fprintf(out, "  Muted:       %s\n", palette.Muted)
	fmt.Fprintf(out, "  Surface:     %s\n", palette.Surface)
	fmt.Fprintf(out, "  Text:        %s\n", palette.Text)
	fmt.Fprintf(out, "  Border:      %s\n", palette.Border)
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	loadCustomThemes(cmd)
	themeName := args[0]
	if !styles.IsValidTheme(themeName) {
		return unknownThemeError(themeName)
	}

	data, err := styles.ExportTheme(styles.ThemeName(themeName))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	// If output file specified, write to file
	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runThemeImport(cmd *cobra.Command, args []string) error {
	tf, err := styles.LoadThemeFile(args[0])
	if err != nil {
		return err
	}

	path, err := styles.SaveTheme(appconfig.ThemesDir(), tf)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Theme %s installed to: %s\n", tf.Name, path)
	fmt.Fprintf(out, "Select it with: taskmemo config set tui.theme %s\n", tf.Name)
	return nil
}
