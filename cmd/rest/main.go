package main

import (
	"context"
	"log"

	"notekeep-be/internal/bootstrap"
	"notekeep-be/internal/config"
	"notekeep-be/internal/server"
	"notekeep-be/internal/tracer"
	"notekeep-be/pkg/database"
)

func main() {
	cfg := config.Load()

	shutdownTracer := tracer.InitTracer(cfg)
	defer shutdownTracer(context.Background())

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
