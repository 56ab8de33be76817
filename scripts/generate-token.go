//go:build ignore

// This script mints an access token for a local account so protected API
// routes can be exercised with curl.
// Run with: go run scripts/generate-token.go -config config.yaml -account 1 -email alice@example.com

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/chainsafe/cryptoballot/pkg/auth"
	"github.com/chainsafe/cryptoballot/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	accountID := flag.Int64("account", 0, "Account id to embed in the token")
	email := flag.String("email", "", "Account email to embed in the token")
	flag.Parse()

	if *accountID < 1 {
		fmt.Fprintln(os.Stderr, "-account must be a positive id")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadAPIServer(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	token, expiresAt, err := auth.NewTokenIssuer(cfg.Auth).IssueAccess(*accountID, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format(time.RFC3339))
	fmt.Fprintf(os.Stderr, "curl -H \"Authorization: Bearer %s\" http://localhost:%d/username\n", token, cfg.Server.Port)
}
