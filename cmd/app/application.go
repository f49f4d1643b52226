package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"mbg-project/internal/app"
	"mbg-project/internal/cache"
	"mbg-project/internal/config"
	"mbg-project/internal/db/conn"
	"mbg-project/internal/db/repository"
	"mbg-project/internal/handler"
	"mbg-project/internal/history"
	"mbg-project/internal/kafka"
	"mbg-project/internal/service"
)

type Application struct {
	cfg      *config.Config
	srv      *app.Server
	consumer *kafka.ActivityConsumer
	producer *kafka.ActivityProducer
	catalog  *service.CatalogService
	cache    *cache.ProductCache
	store    *history.RedisStore
}

func NewApplication(cfg *config.Config) (*Application, error) {
	dbConn, err := conn.Connection(&cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err = kafka.EnsureTopicExists(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic); err != nil {
		return nil, fmt.Errorf("ensuring kafka topic: %w", err)
	}

	producer, err := kafka.NewActivityProducer(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic)
	if err != nil {
		return nil, fmt.Errorf("creating kafka producer: %w", err)
	}

	store, err := history.NewRedisStore(cfg.Redis.Addr)
	if err != nil {
		return nil, fmt.Errorf("connecting to history store: %w", err)
	}

	productCache := cache.NewProductCache(1*time.Minute, 30*time.Second)
	productRepo := repository.NewProductRepository(dbConn)
	customerRepo := repository.NewCustomerRepository(dbConn)
	paymentRepo := repository.NewPaymentRepository(dbConn)

	catalogService := service.NewCatalogService(productRepo, customerRepo, productCache, producer)
	paymentService := service.NewPaymentService(paymentRepo, producer)
	activityService := service.NewActivityService()

	consumer, err := kafka.NewActivityConsumer(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic, activityService.HandleActivityMessage)
	if err != nil {
		return nil, fmt.Errorf("creating kafka consumer: %w", err)
	}

	catalogHandler := handler.NewCatalogHandler(catalogService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	historyHandler := handler.NewHistoryHandler(store, activityService)
	srv := app.NewServer(catalogHandler, paymentHandler, historyHandler)

	return &Application{
		cfg:      cfg,
		srv:      srv,
		consumer: consumer,
		producer: producer,
		catalog:  catalogService,
		cache:    productCache,
		store:    store,
	}, nil
}

func (a *Application) Run(ctx context.Context) error {
	if err := a.catalog.ReCache(ctx); err != nil {
		log.Printf("failed to warm product cache: %v", err)
	}

	go func() {
		log.Println("starting activity consumer...")
		if err := a.consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("activity consumer stopped with error: %v", err)
		}
	}()

	go func() {
		log.Printf("starting HTTP server on %s", a.cfg.HTTP.Addr)
		if err := a.srv.Run(a.cfg.HTTP.Addr); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Println("HTTP server stopped")
			} else {
				log.Fatalf("HTTP server error: %v", err)
			}
		}
	}()

	<-ctx.Done()
	log.Println("shutdown signal received...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.Shutdown(shutdownCtx)

	return nil
}

func (a *Application) Shutdown(ctx context.Context) {
	if err := a.srv.Stop(ctx); err != nil {
		log.Printf("error stopping HTTP server: %v", err)
	}
	if err := a.consumer.Close(); err != nil {
		log.Printf("error stopping kafka consumer: %v", err)
	}
	if err := a.producer.Close(); err != nil {
		log.Printf("error stopping kafka producer: %v", err)
	}
	if err := a.store.Close(); err != nil {
		log.Printf("error closing history store: %v", err)
	}
	a.cache.Stop()
}
