package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/bosphorusfellas/clubclient/internal/client/cli"
	"github.com/bosphorusfellas/clubclient/internal/client/config"
)

func main() {
	// A missing .env is fine; the environment may be set by other means.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
