package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"sustieats/order-svc/internal/domain"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// OrderEventConsumer feeds published order events into the stats store.
type OrderEventConsumer struct {
	Reader MessageReader
	Stats  StatsStore
	log    zerolog.Logger
}

func NewOrderEventConsumer(reader MessageReader, stats StatsStore, log zerolog.Logger) *OrderEventConsumer {
	return &OrderEventConsumer{
		Reader: reader,
		Stats:  stats,
		log:    log.With().Str("component", "stats-consumer").Logger(),
	}
}

// Start reads until ctx is cancelled.
func (c *OrderEventConsumer) Start(ctx context.Context) {
	c.log.Info().Msg("starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.log.Info().Msg("order event consumer stopped")
				return
			}
			c.log.Error().Err(err).Msg("failed to read message")
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.log.Warn().Err(err).Str("key", string(message.Key)).Msg("skipping undecodable message")
			continue
		}
		c.Process(ctx, event)
	}
}

func (c *OrderEventConsumer) Process(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderPlaced && event.Type != domain.EventOrderStatusChanged {
		return
	}

	applied, err := c.Stats.RecordEvent(ctx, event)
	if err != nil {
		c.log.Error().Err(err).Int("order_id", event.OrderID).Msg("failed to record order event")
		return
	}
	if !applied {
		c.log.Debug().Str("event_id", event.EventID.String()).Msg("duplicate order event")
		return
	}
	c.log.Debug().
		Str("type", event.Type).
		Int("order_id", event.OrderID).
		Int("restaurant_id", event.RestaurantID).
		Msg("order event recorded")
}

type StatsService struct {
	stats       StatsStore
	owners      OwnerStore
	restaurants RestaurantStore
}

func NewStatsService(stats StatsStore, owners OwnerStore, restaurants RestaurantStore) *StatsService {
	return &StatsService{stats: stats, owners: owners, restaurants: restaurants}
}

func (s *StatsService) ForRestaurant(ctx context.Context, ownerID, restaurantID int) (*domain.RestaurantStats, error) {
	if _, err := ownedRestaurant(s.owners, s.restaurants, ownerID, restaurantID); err != nil {
		return nil, err
	}
	return s.stats.RestaurantStats(ctx, restaurantID)
}
