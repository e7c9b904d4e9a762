// Command server runs the HTTP API.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
