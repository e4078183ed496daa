package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"github.com/rogerio-castellano/shop-inventory/internal/cli"
	"github.com/rogerio-castellano/shop-inventory/internal/config"
	"github.com/rogerio-castellano/shop-inventory/internal/logger"
	"github.com/rogerio-castellano/shop-inventory/internal/repo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Environment, cfg.Log.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	inventory := repo.NewInMemoryItemRepository(cfg.Inventory.Capacity)

	ui := cli.New(inventory, os.Stdin, os.Stdout, log, cfg.Input.Strict)
	if err := ui.Run(); err != nil {
		// The loop only stops on quit or exhausted input; either way the
		// session is over and the process exits cleanly.
		log.Error("session aborted", zap.Error(err))
	}
}
