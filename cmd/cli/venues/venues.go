package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crucial707/scheduler/cmd/cli/output"
	"github.com/crucial707/scheduler/cmd/cli/root"
	"github.com/crucial707/scheduler/internal/config"
	"github.com/crucial707/scheduler/internal/db"
	"github.com/crucial707/scheduler/internal/repo"
)

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "Manage the shared venue list",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all venues ordered by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Connect(config.Load())
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer database.Close()

		venueRepo := repo.NewVenueRepo(database)
		venues, err := venueRepo.List(context.Background())
		if err != nil {
			return fmt.Errorf("list venues: %w", err)
		}
		total, err := venueRepo.Count(context.Background())
		if err != nil {
			return fmt.Errorf("count venues: %w", err)
		}

		rows := make([][]interface{}, 0, len(venues))
		for _, v := range venues {
			rows = append(rows, []interface{}{v.ID, v.Name, v.Location})
		}
		output.RenderTable([]string{"ID", "Name", "Location"}, rows)
		fmt.Printf("%d venue(s)\n", total)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name> <location>",
	Short: "Add a venue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		location := strings.TrimSpace(args[1])
		if name == "" || location == "" {
			return errors.New("both name and location are required")
		}

		database, err := db.Connect(config.Load())
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer database.Close()

		venue, err := repo.NewVenueRepo(database).Create(context.Background(), name, location)
		if err != nil {
			return fmt.Errorf("add venue: %w", err)
		}

		fmt.Printf("Created venue %d (%s, %s)\n", venue.ID, venue.Name, venue.Location)
		return nil
	},
}

func init() {
	venuesCmd.AddCommand(listCmd)
	venuesCmd.AddCommand(addCmd)
	root.RootCmd.AddCommand(venuesCmd)
}
