package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../internal/cmd.Version=v1.2.3".
var Version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the taskmemo version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "taskmemo %s\n", resolveVersion())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// resolveVersion prefers the linker-provided Version, then the module
// version recorded by go install, then "dev".
func resolveVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
