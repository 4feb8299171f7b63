package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mbeller/hauskasse/infra/initializer"
	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/dto"
)

// Admin tool for tasks that have no HTTP endpoint, chiefly creating the
// first service user before anyone can log in.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands: create-user <username> [email]")
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	deps, _, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		color.Red("Failed to initialize: %v", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create-user":
		if len(os.Args) < 3 {
			fmt.Println("Usage: cli create-user <username> [email]")
			os.Exit(1)
		}
		username := os.Args[2]
		email := ""
		if len(os.Args) > 3 {
			email = os.Args[3]
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			color.Red("Failed to read password: %v", err)
			os.Exit(1)
		}

		user, err := deps.Users.Create(context.Background(), &dto.ServiceUserCreate{
			Username: username,
			Email:    email,
			Password: string(password),
		})
		if err != nil {
			color.Red("Failed to create user: %v", err)
			os.Exit(1)
		}
		color.Green("User %q created with id %d", user.Username, user.ID)
	default:
		color.Yellow("Unknown command: %s", os.Args[1])
		os.Exit(1)
	}
}
