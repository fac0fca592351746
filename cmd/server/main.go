package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/akarpenko/warehouse-api/internal/server"
	"github.com/akarpenko/warehouse-api/internal/server/config"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
