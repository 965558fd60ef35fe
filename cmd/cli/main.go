package main

import (
	"fmt"
	"os"

	"github.com/crucial707/scheduler/cmd/cli/root"

	_ "github.com/crucial707/scheduler/cmd/cli/migrate"
	_ "github.com/crucial707/scheduler/cmd/cli/users"
	_ "github.com/crucial707/scheduler/cmd/cli/venues"
)

func main() {
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
