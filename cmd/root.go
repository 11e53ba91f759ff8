package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luma/rollcall/cmd/gen"
)

var RootCmd = &cobra.Command{
	Use:   "rollcall",
	Short: "Rollup backend that keeps an attendance roster",
	Long: `Rollcall is the execution backend of a rollup application.

It long-polls the rollup node for inputs, decodes their hex encoded JSON
payloads and applies them to the selected app.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(StartCmd)
	RootCmd.AddCommand(VersionCmd)
	RootCmd.AddCommand(gen.RootCmd)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
