// Command devtoken prints a bearer token for local testing of owner routes.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"eventticketing/config"
	"eventticketing/internal/adapters/auth"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		userID string
		mail   string
		expiry time.Duration
	)
	flagSet := pflag.NewFlagSet("devtoken", pflag.ContinueOnError)
	flagSet.StringVar(&userID, "user", "", "user id to place in the sub claim (default: random UUID)")
	flagSet.StringVar(&mail, "email", "organizer@example.com", "email claim")
	flagSet.DurationVar(&expiry, "expiry", 24*time.Hour, "token lifetime")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Environment == "production" {
		return errors.New("refusing to mint tokens in production")
	}
	if userID == "" {
		userID = uuid.NewString()
	}

	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(userID, mail, expiry)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
