package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/casaflow/casaflow/internal/analytics"
	"github.com/casaflow/casaflow/internal/config"
	"github.com/casaflow/casaflow/internal/database"
	"github.com/casaflow/casaflow/internal/mq"
)

func main() {
	cfg := config.Load()
	db := database.Connect()

	if err := db.AutoMigrate(&analytics.EventRecord{}); err != nil {
		log.Fatalf("analytics worker: failed to run migrations: %v", err)
	}

	worker := analytics.NewWorker(analytics.NewStore(db))

	consumer, err := mq.NewConsumer(mq.ConsumerConfig{
		Brokers: cfg.Brokers(),
		Topic:   cfg.KafkaTopic,
		GroupID: "casaflow-analytics-worker",
	}, worker.HandleMessage)
	if err != nil {
		log.Fatalf("analytics worker: failed to initialise consumer: %v", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("analytics worker consuming topic %s", cfg.KafkaTopic)
	if err := worker.RunConsumer(ctx, consumer); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("analytics worker stopped: %v", err)
	}
}
