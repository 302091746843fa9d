package storage

import "sustieats/order-svc/internal/domain"

func (s *FileStore) LoadOrders() ([]domain.Order, error) {
	return loadTable(s, OrdersTable, decodeOrder)
}

func (s *FileStore) SaveOrders(orders []domain.Order) error {
	return saveTable(s, OrdersTable, orders, encodeOrder)
}

func (s *FileStore) AppendOrder(o domain.Order) error {
	return s.appendLine(OrdersTable, encodeOrder(o))
}

// NextOrderID mints the shared id for the next checkout transaction.
func (s *FileStore) NextOrderID() (int, error) {
	return s.NextID(OrdersTable)
}
