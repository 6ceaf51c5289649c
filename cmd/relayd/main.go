package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/flagx"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/logging"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/relayd"
)

func main() {

	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	addr := fs.String("a", ":8080", "address and port to run relay")
	dbPath := fs.String("d", "relay.db", "path to the relay database file")
	if err := fs.Parse(args); err != nil {
		log.Printf("%v", err)
		return
	}

	ctx := context.Background()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store, err := relayd.OpenStore(ctx, *dbPath)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer store.Close()

	r := relayd.NewRouter(logger, relayd.NewHandler(store))

	logger.Info(ctx, "relay listening", "addr", *addr)
	if err := r.Run(*addr); err != nil {
		log.Printf("%v", err)
	}
}
