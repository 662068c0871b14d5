package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/figma-tools/figma-query/pkg/launcher"
)

// Version is set at build time via ldflags
var Version = "dev"

var exitCode int

// Flag parsing is disabled so every argument, including flags, reaches the
// delegate binary untouched. The launcher owns no flags of its own.
var rootCmd = &cobra.Command{
	Use:                "figma-query [args...]",
	Short:              "Launcher for the figma-query binary",
	Long:               "figma-query locates the prebuilt figma-query binary for this platform and runs it, forwarding all arguments, the environment, and the exit code.",
	Version:            Version,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runLauncher,
}

func runLauncher(cmd *cobra.Command, args []string) error {
	dir, err := launcher.ExecutableDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = 1
		return nil
	}

	exitCode = launcher.New(dir).Run(args)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
