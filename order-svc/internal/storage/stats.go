package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"sustieats/order-svc/internal/domain"
)

const (
	seenEventTTL = 24 * time.Hour
	dailyTTL     = 7 * 24 * time.Hour
)

// RedisStatsStore aggregates order events into per-restaurant hashes and
// a daily sorted set of placed orders.
type RedisStatsStore struct {
	Client *redis.Client
	Now    func() time.Time
}

func NewRedisStatsStore(client *redis.Client) *RedisStatsStore {
	return &RedisStatsStore{Client: client, Now: time.Now}
}

func statsKey(restaurantID int) string {
	return fmt.Sprintf("stats:restaurant:%d", restaurantID)
}

func dailyKey(day time.Time) string {
	return "stats:daily:" + day.Format("2006-01-02")
}

// RecordEvent applies one event. It reports false when the event id was already seen.
func (s *RedisStatsStore) RecordEvent(ctx context.Context, event domain.OrderEvent) (bool, error) {
	seen := "stats:event:" + event.EventID.String()
	fresh, err := s.Client.SetNX(ctx, seen, 1, seenEventTTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx failed: %w", err)
	}
	if !fresh {
		return false, nil
	}

	key := statsKey(event.RestaurantID)
	pipe := s.Client.TxPipeline()
	switch event.Type {
	case domain.EventOrderPlaced:
		pipe.HIncrBy(ctx, key, "placed", 1)
		pipe.HIncrBy(ctx, key, "revenue_cents", event.Total.Shift(2).Round(0).IntPart())
		if event.DiscountApplied {
			pipe.HIncrBy(ctx, key, "discounted", 1)
		}
		day := dailyKey(s.Now())
		pipe.ZIncrBy(ctx, day, 1, strconv.Itoa(event.RestaurantID))
		pipe.Expire(ctx, day, dailyTTL)
	case domain.EventOrderStatusChanged:
		switch event.Status {
		case domain.StatusDispatched:
			pipe.HIncrBy(ctx, key, "dispatched", 1)
		case domain.StatusCancelled:
			pipe.HIncrBy(ctx, key, "cancelled", 1)
		default:
			return true, nil
		}
	default:
		return true, nil
	}

	if _, err := pipe.Exec(ctx); err != nil {
		s.Client.Del(ctx, seen)
		return false, fmt.Errorf("redis pipeline failed: %w", err)
	}
	return true, nil
}

func (s *RedisStatsStore) RestaurantStats(ctx context.Context, restaurantID int) (*domain.RestaurantStats, error) {
	fields, err := s.Client.HGetAll(ctx, statsKey(restaurantID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	stats := &domain.RestaurantStats{RestaurantID: restaurantID, Revenue: decimal.Zero}
	for name, dst := range map[string]*int{
		"placed":     &stats.Placed,
		"dispatched": &stats.Dispatched,
		"cancelled":  &stats.Cancelled,
		"discounted": &stats.Discounted,
	} {
		if *dst, err = hashInt(fields, name); err != nil {
			return nil, err
		}
	}
	cents, err := hashInt(fields, "revenue_cents")
	if err != nil {
		return nil, err
	}
	stats.Revenue = decimal.New(int64(cents), -2)

	today, err := s.Client.ZScore(ctx, dailyKey(s.Now()), strconv.Itoa(restaurantID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis zscore failed: %w", err)
	}
	stats.PlacedToday = int(today)
	return stats, nil
}

func hashInt(fields map[string]string, name string) (int, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("stats field %s: %w", name, err)
	}
	return v, nil
}
