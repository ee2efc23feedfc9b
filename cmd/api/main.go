// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weatherpro/internal/app"
	"weatherpro/internal/config"
)

var BuildVersion = "dev" // diisi saat ldflags

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	initCtx, initCancel := context.WithTimeout(context.Background(), 90*time.Second)
	a, err := app.New(initCtx, cfg)
	initCancel()
	if err != nil {
		log.Fatalf("init app: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      a.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	log.Printf("%s %s running on %s (store=%s)", cfg.AppName, BuildVersion, srv.Addr, cfg.Store.Driver)
	err = serve(ctx, srv, a)
	stop()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// serve runs srv until ctx is done or the listener fails, then shuts it
// down. store is closed on every path.
func serve(ctx context.Context, srv *http.Server, store io.Closer) error {
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[WARN] close store: %v", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
