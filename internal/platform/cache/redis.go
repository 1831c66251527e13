package cache

import (
	"context"

	"codearena/internal/platform/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var RDB *redis.Client

// Connect opens the Redis connection used for the leaderboard cache.
// Returns false when REDIS_ADDR is unset; the gateway then serves
// every leaderboard read straight from the backend.
func Connect() bool {
	if config.AppConfig.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR not set, leaderboard cache disabled")
		return false
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	if _, err := RDB.Ping(context.Background()).Result(); err != nil {
		log.Fatal().Err(err).Msg("could not connect to Redis")
	}
	log.Info().Str("addr", config.AppConfig.RedisAddr).Msg("connected to Redis")
	return true
}

func Close() {
	if RDB != nil {
		RDB.Close()
		log.Info().Msg("Redis connection closed")
	}
}
