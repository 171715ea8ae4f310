package main

import (
	"context"
	"log"

	"github.com/promptlab/promptlab/internal/app"
	"github.com/promptlab/promptlab/internal/config"
	"github.com/promptlab/promptlab/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	ctx := context.Background()

	a, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	a.Run(ctx)
}
