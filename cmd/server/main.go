package main

import (
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/mbeller/hauskasse/infra/initializer"
	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	deps, logger, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("initializing dependencies: %w", err)
	}

	app := webapi.NewApp(cfg, deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)

	return app.Listen(addr)
}
