package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"sustieats/order-svc/internal/domain"
)

type CatalogService struct {
	restaurants RestaurantStore
	owners      OwnerStore
	cache       CatalogCache
	log         zerolog.Logger
}

// NewCatalogService builds the catalog service. cache may be nil.
func NewCatalogService(restaurants RestaurantStore, owners OwnerStore, cache CatalogCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		restaurants: restaurants,
		owners:      owners,
		cache:       cache,
		log:         log.With().Str("component", "catalog").Logger(),
	}
}

func (s *CatalogService) List(_ context.Context) ([]domain.Restaurant, error) {
	return s.restaurants.LoadRestaurants()
}

func (s *CatalogService) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRestaurant(ctx, id)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.log.Warn().Err(err).Int("restaurant_id", id).Msg("catalog cache read failed")
		}
	}

	all, err := s.restaurants.LoadRestaurants()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			r := all[i]
			if s.cache != nil {
				if err := s.cache.SetRestaurant(ctx, r); err != nil {
					s.log.Warn().Err(err).Int("restaurant_id", id).Msg("catalog cache write failed")
				}
			}
			return &r, nil
		}
	}
	return nil, ErrRestaurantNotFound
}

func (s *CatalogService) Create(_ context.Context, ownerID int, r *domain.Restaurant) error {
	if err := requireActiveOwner(s.owners, ownerID); err != nil {
		return err
	}
	if err := domain.ValidateRestaurant(*r); err != nil {
		return err
	}
	seen := make(map[int]bool, len(r.Menu))
	for _, item := range r.Menu {
		if seen[item.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateMenuItem, item.ID)
		}
		seen[item.ID] = true
	}

	id, err := s.restaurants.NextRestaurantID()
	if err != nil {
		return fmt.Errorf("failed to allocate restaurant id: %w", err)
	}
	r.ID = id
	r.OwnerID = ownerID
	if r.Menu == nil {
		r.Menu = []domain.MenuItem{}
	}
	if err := s.restaurants.AppendRestaurant(*r); err != nil {
		return err
	}

	s.log.Info().Int("restaurant_id", r.ID).Int("owner_id", ownerID).Msg("restaurant created")
	return nil
}

func (s *CatalogService) AddMenuItem(ctx context.Context, ownerID, restaurantID int, item domain.MenuItem) error {
	if err := domain.ValidateMenuItem(item); err != nil {
		return err
	}
	return s.edit(ctx, ownerID, restaurantID, func(r *domain.Restaurant) error {
		if !r.AddMenuItem(item) {
			return fmt.Errorf("%w: %d", ErrDuplicateMenuItem, item.ID)
		}
		return nil
	})
}

func (s *CatalogService) RemoveMenuItem(ctx context.Context, ownerID, restaurantID, itemID int) error {
	return s.edit(ctx, ownerID, restaurantID, func(r *domain.Restaurant) error {
		if !r.RemoveMenuItem(itemID) {
			return ErrItemNotFound
		}
		return nil
	})
}

func (s *CatalogService) SetAvailability(ctx context.Context, ownerID, restaurantID, itemID int, available bool) error {
	return s.edit(ctx, ownerID, restaurantID, func(r *domain.Restaurant) error {
		if !r.SetAvailability(itemID, available) {
			return ErrItemNotFound
		}
		return nil
	})
}

// edit applies change to an owned restaurant, rewrites the table and drops the cached copy.
func (s *CatalogService) edit(ctx context.Context, ownerID, restaurantID int, change func(*domain.Restaurant) error) error {
	owned, err := ownedRestaurant(s.owners, s.restaurants, ownerID, restaurantID)
	if err != nil {
		return err
	}
	if err := change(owned.restaurant()); err != nil {
		return err
	}
	if err := s.restaurants.SaveRestaurants(owned.all); err != nil {
		return fmt.Errorf("failed to save restaurants: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.DeleteRestaurant(ctx, restaurantID); err != nil {
			s.log.Warn().Err(err).Int("restaurant_id", restaurantID).Msg("catalog cache invalidation failed")
		}
	}
	return nil
}
