package main

import (
	"context"
	"log"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/cli"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
