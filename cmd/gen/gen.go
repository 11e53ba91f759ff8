package gen

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate documentation for rollcall",
	Long:  `Generate documentation for rollcall from its command definitions`,
}

func init() {
	RootCmd.AddCommand(ManPagesCmd)
}
