package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/crucial707/scheduler/cmd/cli/output"
	"github.com/crucial707/scheduler/cmd/cli/root"
	"github.com/crucial707/scheduler/internal/config"
	"github.com/crucial707/scheduler/internal/db"
	"github.com/crucial707/scheduler/internal/repo"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage registered users",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Connect(config.Load())
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer database.Close()

		users, err := repo.NewUserRepo(database).List(context.Background())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		rows := make([][]interface{}, 0, len(users))
		for _, u := range users {
			rows = append(rows, []interface{}{u.ID, u.Username})
		}
		output.RenderTable([]string{"ID", "Username"}, rows)
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create <username> <password>",
	Short: "Register a user (same validation as the web form)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := strings.TrimSpace(args[0])
		password := args[1]
		if username == "" || password == "" {
			return errors.New("username and password required")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		database, err := db.Connect(config.Load())
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer database.Close()

		user, err := repo.NewUserRepo(database).Create(context.Background(), username, string(hash))
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23505" {
				return fmt.Errorf("username %q already taken", username)
			}
			return fmt.Errorf("create user: %w", err)
		}

		fmt.Printf("Created user %d (%s)\n", user.ID, user.Username)
		return nil
	},
}

func init() {
	usersCmd.AddCommand(listCmd)
	usersCmd.AddCommand(createCmd)
	root.RootCmd.AddCommand(usersCmd)
}
