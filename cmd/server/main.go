// Command server runs the kelimeci HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// a local .env file is loaded when present. Exit codes: 0 = clean shutdown,
// 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kelimeci/kelimeci-backend/internal/app"
)

func main() {
	// Optional in production; local development keeps secrets in .env.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
