package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/casaflow/casaflow/internal/analytics"
	"github.com/casaflow/casaflow/internal/config"
	"github.com/casaflow/casaflow/internal/database"
	"github.com/casaflow/casaflow/internal/httpx"
	"github.com/casaflow/casaflow/internal/listing"
	"github.com/casaflow/casaflow/internal/media"
	"github.com/casaflow/casaflow/internal/mq"
	"github.com/casaflow/casaflow/internal/observability"
	"github.com/casaflow/casaflow/internal/wizard"
)

func main() {
	cfg := config.Load()
	db := database.Connect()

	err := db.AutoMigrate(
		&wizard.DraftRecord{},
		&listing.Property{},
		&listing.Land{},
		&listing.BlogPost{},
		&media.Item{},
		&analytics.EventRecord{},
	)
	if err != nil {
		log.Fatalf("casaflow: failed to run migrations: %v", err)
	}

	var tracker analytics.Tracker = analytics.NopTracker{}
	producer, err := mq.NewProducer(mq.ProducerConfig{
		Brokers:  cfg.Brokers(),
		Topic:    cfg.KafkaTopic,
		ClientID: cfg.ServiceName,
	})
	if err != nil {
		log.Printf("casaflow: analytics disabled, producer unavailable: %v", err)
	} else {
		defer producer.Close()
		tracker = analytics.NewKafkaTracker(producer)
	}

	listingRepo := listing.NewRepository(db)
	creators := listing.NewService(listingRepo)
	mediaRepo := media.NewRepository(db)

	service := wizard.NewService(wizard.ServiceConfig{
		Repo:  wizard.NewGormRepository(db),
		Steps: wizard.BuiltinSteps{},
		Creators: wizard.Creators{
			Property: creators,
			Land:     creators,
			Blog:     creators,
		},
		Media:   mediaRepo,
		Tracker: tracker,
	})

	server := httpx.New()
	wizard.RegisterRoutes(server.Router, service)
	listing.RegisterRoutes(server.Router, listingRepo)
	server.Router.Handle("/metrics", observability.Handler())

	port := cfg.ResolveHTTPPort("8080")
	addr := fmt.Sprintf(":%s", port)
	log.Printf("casaflow service listening on %s", addr)

	if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("casaflow service stopped: %v", err)
	}
}
