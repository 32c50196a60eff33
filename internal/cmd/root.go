package cmd

import (
	"strings"

	configcmd "github.com/Iron-Ham/taskmemo/internal/cmd/config"
	"github.com/Iron-Ham/taskmemo/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "taskmemo",
	Short: "Counter and todo list with memoized rendering",
	Long: `taskmemo is a terminal app with a counter, a memoized expensive
calculation derived from it, and a todo list that only re-renders when
the list itself changes.

Running taskmemo without a subcommand starts the TUI.`,
	Args:          cobra.NoArgs,
	RunE:          runStart,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/taskmemo/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	configcmd.Register(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/taskmemo")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TASKMEMO")
	// e.g. TASKMEMO_TUI_THEME for tui.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
