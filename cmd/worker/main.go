// cmd/worker/main.go
// Worker: refresh cache cuaca untuk kota favorit secara berkala
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"weatherpro/internal/app"
	"weatherpro/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Store.Driver == "memory" {
		log.Println("[WARN] worker with in-memory store shares nothing with the API process")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("init app: %v", err)
	}
	defer a.Close()

	log.Printf("Worker started, interval=%s", cfg.Worker.Interval)
	ticker := time.NewTicker(cfg.Worker.Interval)
	defer ticker.Stop()
	for {
		n, err := a.Service.WarmFavorites(ctx)
		if err != nil {
			log.Printf("[WARN] warm favorites: %v", err)
		}
		log.Printf("Worker heartbeat: warmed %d favorite(s)", n)

		select {
		case <-ctx.Done():
			log.Println("Worker stopped")
			return
		case <-ticker.C:
		}
	}
}
