// Command seed creates a user account in the configured database. It prompts
// for the password on the terminal so it never lands in shell history.
//
// Usage:
//
//	seed -email admin@warehouse.com -roles Admin,User [-d <dsn>]
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/akarpenko/warehouse-api/internal/dbx"
	"github.com/akarpenko/warehouse-api/internal/server/auth"
	"github.com/akarpenko/warehouse-api/internal/server/config"
	"github.com/akarpenko/warehouse-api/internal/server/models"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/repomanager"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/users"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "email of the account to create")
	roles := flag.String("roles", "User", "comma-separated roles")
	dsn := flag.String("d", os.Getenv("WAREHOUSE_DATABASE_DSN"), "database DSN")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}
	if *dsn == "" {
		log.Fatal("database DSN is required (-d or WAREHOUSE_DATABASE_DSN)")
	}

	password, err := promptPassword()
	if err != nil {
		log.Fatalf("password prompt: %v", err)
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()

	hash, err := auth.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}

	ctx := context.Background()

	repos, err := repomanager.NewPostgres(ctx, *dsn)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer repos.Close()

	var roleList []string
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}

	// check-then-insert runs in one transaction so two concurrent seeds
	// cannot both pass the duplicate check
	var user *models.User
	err = dbx.WithTx(ctx, repos.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewPostgresRepository(tx)

		_, err := repo.FindByEmail(ctx, strings.TrimSpace(*email))
		if err == nil {
			return fmt.Errorf("user %s already exists", *email)
		}
		if !errors.Is(err, users.ErrNotFound) {
			return err
		}

		user, err = repo.Create(ctx, &models.User{
			Email:        strings.TrimSpace(*email),
			PasswordHash: hash,
			Roles:        roleList,
		})
		return err
	})
	if err != nil {
		log.Fatalf("create user: %v", err)
	}

	fmt.Printf("created user %d (%s) with roles %s\n", user.ID, user.Email, strings.Join(user.Roles, ","))
}

func promptPassword() (string, error) {
	fmt.Println("Enter password")

	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// piped input (scripts, tests)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
