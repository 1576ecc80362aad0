package database

import (
	"log"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/casaflow/casaflow/internal/config"
)

var (
	once sync.Once
	db   *gorm.DB
)

// Connect initializes a singleton PostgreSQL connection using GORM.
func Connect() *gorm.DB {
	once.Do(func() {
		cfg := config.MustGet()
		conn, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		db = conn
	})

	return db
}

// DB returns the initialized database or nil if Connect was not called.
func DB() *gorm.DB {
	return db
}
