package database

import (
	"context"
	"log"
	"time"

	"lounge_booking/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when REDIS_ADDR is unset or the server does not answer.
func ConnectRedis(cfg config.Settings) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, change feed stays in-process")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable at %s: %v", cfg.RedisAddr, err)
		_ = client.Close()
		return nil
	}

	log.Println("Redis connected:", cfg.RedisAddr)
	return client
}
