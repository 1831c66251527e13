package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const leaderboardCacheKey = "leaderboard:standings"

// LeaderboardService serves standings reads, absorbing the 10-second
// polling load from every connected client behind a short-lived Redis
// cache. With no Redis configured every read goes to the backend.
type LeaderboardService struct {
	proxy *ProxyService
	rdb   *redis.Client
	ttl   time.Duration
	log   zerolog.Logger
}

func NewLeaderboardService(proxy *ProxyService, rdb *redis.Client, ttl time.Duration) *LeaderboardService {
	return &LeaderboardService{
		proxy: proxy,
		rdb:   rdb,
		ttl:   ttl,
		log:   log.With().Str("component", "leaderboard_service").Logger(),
	}
}

// Get returns the standings payload, preferring a fresh cached copy.
func (s *LeaderboardService) Get(ctx context.Context) (int, []byte, error) {
	if s.rdb != nil {
		data, err := s.rdb.Get(ctx, leaderboardCacheKey).Bytes()
		if err == nil {
			return http.StatusOK, data, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Msg("leaderboard cache read failed")
		}
	}

	status, payload, err := s.proxy.Forward(ctx, http.MethodGet, "/api/leaderboard", nil, "")
	if err != nil {
		return 0, nil, err
	}

	if status == http.StatusOK && s.rdb != nil {
		if err := s.rdb.Set(ctx, leaderboardCacheKey, payload, s.ttl).Err(); err != nil {
			s.log.Warn().Err(err).Msg("leaderboard cache write failed")
		}
	}
	return status, payload, nil
}
