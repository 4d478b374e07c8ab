package repo

import (
	"ClipHub/config"
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// InitRedis initializes the Redis client. Redis only backs the
// liked-status display hint, so an unreachable server downgrades to
// database lookups instead of refusing to start.
func InitRedis() {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.AppConfig.RedisHost, config.AppConfig.RedisPort),
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("init redis fail, liked-status cache disabled: %v", err)
		return
	}
	log.Println("init redis success")
	Redis = client
}
