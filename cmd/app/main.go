package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mbg-project/internal/config"
	"mbg-project/internal/trace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	tp, err := trace.InitTracer(ctx, "mbg-backend")
	if err != nil {
		log.Fatalf("failed to init tracer: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("tracer shutdown error: %v", err)
		}
	}()

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	if err = application.Run(ctx); err != nil {
		log.Fatalf("failed to run application: %v", err)
	}
	log.Println("service stopped")
}
