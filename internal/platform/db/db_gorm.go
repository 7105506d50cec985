// Package db opens the gorm database connection for the service.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
)

// Config holds the database connection parameters.
type Config struct {
	// Driver selects the backend: "mysql" (default) or "postgres".
	Driver   string
	User     string
	Password string
	Name     string
	Host     string
	Port     string

	// InstanceName, when set, connects over a Cloud SQL unix socket
	// instead of TCP. MySQL only.
	InstanceName string

	// AutoMigrate creates the users table on startup when true.
	AutoMigrate bool
}

// BuildDSN assembles the driver-specific DSN string for the given config.
func BuildDSN(cfg Config) string {
	if cfg.Driver == "postgres" {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
	}
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// OpenDB connects to the configured database, retrying until the backend is
// reachable, and optionally migrates the schema.
func OpenDB(cfg Config) *gorm.DB {
	dsn := BuildDSN(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector(cfg.Driver, dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

func dialector(driver, dsn string) gorm.Dialector {
	if driver == "postgres" {
		return gpostgres.Open(dsn)
	}
	return gmysql.Open(dsn)
}
