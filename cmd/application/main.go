package main

import (
	"flag"
	"log"
	"sync"

	"goshopops_api/config"
	"goshopops_api/internal/supplier/app"
	"goshopops_api/pkg/dbconnect/postgres"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the application config")
	addr := flag.String("addr", ":8081", "listen address of the operations server")
	flag.Parse()

	log.Printf("\nStarted app\n")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Config file not loaded (%v), falling back to environment", err)
		cfg = &config.AppConfig{Postgres: *config.GetPostgresConfig()}
	}
	if cfg.Postgres.Host == "" {
		cfg.Postgres = *config.GetPostgresConfig()
	}

	connector := postgres.NewPgConnector(&cfg.Postgres)

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		server := app.NewOperationsServer(connector, cfg)
		server.Run(*addr)
		wg.Done()
	}()
	wg.Wait()
}
