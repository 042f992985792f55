package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"poap-drops/internal/auth/processor"
	"poap-drops/internal/config"
	"poap-drops/internal/observability"
)

// Prints a bearer token for the operator API.
func main() {
	subject := flag.String("subject", "", "operator identity recorded in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		log.Fatal("-subject is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	token, err := processor.New(cfg.Auth, observability.NewLogger()).
		GenerateOperatorToken(context.Background(), *subject, *ttl)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}
	fmt.Println(token)
}
