package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crucial707/scheduler/cmd/cli/root"
	"github.com/crucial707/scheduler/internal/config"
	"github.com/crucial707/scheduler/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := db.Migrate(cfg.DatabaseURL()); err != nil {
			return err
		}
		fmt.Println("Migrations applied")
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(migrateCmd)
}
