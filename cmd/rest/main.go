package main

import (
	"context"
	"log"

	"genfy-be/internal/bootstrap"
	"genfy-be/internal/config"
	"genfy-be/internal/pkg/logger"
	"genfy-be/internal/server"
	"genfy-be/internal/tracer"
	"genfy-be/pkg/database"
)

func main() {
	// 0. Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Configuration
	cfg := config.Load()

	// 2. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Dependency container
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Background consumers
	go func() {
		log.Println("Background: starting consumer service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	// 5. HTTP server
	appLog := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	srv := server.New(cfg, container, appLog)

	log.Fatal(srv.Run())
}
