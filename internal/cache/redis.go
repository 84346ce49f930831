package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flightinventory/config"
	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps recently read flights so repeated lookups skip Postgres.
// Seat counters go stale the moment a booking lands, so the booking path
// invalidates the entry instead of trusting the TTL.
type RedisCache struct {
	client    *redis.Client
	flightTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightTTL: flightTTL,
	}
}

// GetFlight returns (nil, nil) on a cache miss.
func (c *RedisCache) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	data, err := c.client.Get(ctx, flightKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flight domain.Flight
	if err := json.Unmarshal(data, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (c *RedisCache) SetFlight(ctx context.Context, flight *domain.Flight) error {
	payload, err := json.Marshal(flight)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightKey(flight.ID), payload, c.flightTTL).Err()
}

func (c *RedisCache) InvalidateFlight(ctx context.Context, id int64) error {
	return c.client.Del(ctx, flightKey(id)).Err()
}

func flightKey(id int64) string {
	return fmt.Sprintf("cache:flight:%d", id)
}
