// Command bootstrap-user provisions a user account.
// There is no signup endpoint; accounts are created out of band with this tool.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/adboard/adboard/internal/auth"
	"github.com/adboard/adboard/internal/model"
	"github.com/adboard/adboard/internal/repository"
)

type output struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		name        = flag.String("name", "", "Unique user name")
		password    = flag.String("password", "", "Password for the new user")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	if *name == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "-name and -password are required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	if err := repo.InitSchema(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "initialize schema: %v\n", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	user := &model.User{Name: *name, PasswordHash: hash}
	if err := repo.CreateUser(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "create user: %v\n", err)
		os.Exit(1)
	}

	out := output{UserID: user.ID, Name: user.Name}
	if *format == "json" {
		_ = json.NewEncoder(os.Stdout).Encode(out)
		return
	}

	fmt.Printf("user created\n  id:   %d\n  name: %s\n", out.UserID, out.Name)
}
