package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"user_backend/internal/app/router"
	"user_backend/internal/feature/users/adapters"
	usershandler "user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/feature/users/usecase"
	"user_backend/internal/platform/cache"
	"user_backend/internal/platform/config"
	"user_backend/internal/platform/db"
	platformredis "user_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// db
	gormDB := db.OpenDB(db.Config{
		Driver:       cfg.DB.Driver,
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Name:         cfg.DB.Name,
		Host:         cfg.DB.Host,
		Port:         cfg.DB.Port,
		InstanceName: cfg.DB.InstanceName,
		AutoMigrate:  cfg.DB.AutoMigrate,
	})

	// Redis (optional: the service runs uncached without it)
	var rdb *redisv9.Client
	if cfg.Redis.Host == "" {
		log.Println("[WARN] Redis not configured. Running without cache.")
	} else if tmp, err := platformredis.NewRedisClient(platformredis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
	}); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository, wrapped with the Redis cache
	userRepo := adapters.NewUserGorm(gormDB)
	cachedRepo := cache.NewCachingUserRepository(rdb, cfg.Cache.TTL, userRepo, "users")

	// Usecase
	userUC := usecase.NewUserUsecase(cachedRepo)

	// Handler
	userH := usershandler.NewUserHandler(userUC)

	r := router.NewRouter(userH)

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
