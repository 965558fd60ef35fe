package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the schedctl entry point; subcommand packages attach
// themselves in their init functions.
var RootCmd = &cobra.Command{
	Use:   "schedctl",
	Short: "Scheduler admin CLI",
	Long:  "Command line interface for administering the scheduler database",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// GetRoot returns the assembled command tree for main to execute.
func GetRoot() *cobra.Command {
	return RootCmd
}
