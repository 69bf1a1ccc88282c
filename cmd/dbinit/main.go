package main

import (
	"context"
	"flag"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/internal/config"
	"github.com/2beens/warmachine/internal/db"
	"github.com/2beens/warmachine/internal/logging"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	d, err := db.Open(ctx, db.ParamsFromConfig(cfg, false))
	if err != nil {
		log.Fatalf("open db: %s", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Errorf("close db: %s", err)
		}
	}()

	log.Infof("initializing [%s] database ...", d.Driver)
	ensured, err := db.Migrate(ctx, d)
	for _, table := range ensured {
		log.Infof("table ready: %s", table)
	}
	if err != nil {
		log.Errorf("migrate: %s", err)
		return
	}
	log.Infoln("database initialized")
}
