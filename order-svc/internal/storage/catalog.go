package storage

import "sustieats/order-svc/internal/domain"

func (s *FileStore) LoadRestaurants() ([]domain.Restaurant, error) {
	return loadTable(s, RestaurantsTable, decodeRestaurant)
}

func (s *FileStore) SaveRestaurants(restaurants []domain.Restaurant) error {
	return saveTable(s, RestaurantsTable, restaurants, encodeRestaurant)
}

func (s *FileStore) AppendRestaurant(r domain.Restaurant) error {
	return s.appendLine(RestaurantsTable, encodeRestaurant(r))
}

func (s *FileStore) NextRestaurantID() (int, error) {
	return s.NextID(RestaurantsTable)
}
