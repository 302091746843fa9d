package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sustieats/order-svc/internal/domain"
)

// RedisCatalogCache caches restaurants, menus included, as JSON keyed by id.
type RedisCatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{Client: client, TTL: ttl}
}

func restaurantKey(id int) string {
	return fmt.Sprintf("restaurant:%d", id)
}

func (c *RedisCatalogCache) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	data, err := c.Client.Get(ctx, restaurantKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var r domain.Restaurant
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal restaurant failed: %w", err)
	}
	return &r, nil
}

func (c *RedisCatalogCache) SetRestaurant(ctx context.Context, r domain.Restaurant) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal restaurant failed: %w", err)
	}
	if err := c.Client.Set(ctx, restaurantKey(r.ID), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *RedisCatalogCache) DeleteRestaurant(ctx context.Context, id int) error {
	if err := c.Client.Del(ctx, restaurantKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
