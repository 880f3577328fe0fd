package main

import (
	"log"

	"github.com/meetsync/scheduler-backend/config"
	"github.com/meetsync/scheduler-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "scheduler-backend",
		Version:        cfg.App.Version,
		TimeAPIURL:     cfg.Upstream.TimeAPIBaseURL,
		CallbackSecret: cfg.Auth.CallbackSecret,
		AllowedOrigins: cfg.App.AllowedOrigins,
	})

	log.Printf("scheduler-backend listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
