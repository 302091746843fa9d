package storage

import (
	"fmt"

	"sustieats/order-svc/internal/domain"
)

func (s *FileStore) LoadCustomers() ([]*domain.Customer, error) {
	return loadTable(s, CustomersTable, decodeCustomer)
}

func (s *FileStore) SaveCustomers(customers []*domain.Customer) error {
	return saveTable(s, CustomersTable, customers, encodeCustomer)
}

func (s *FileStore) AppendCustomer(c *domain.Customer) error {
	return s.appendLine(CustomersTable, encodeCustomer(c))
}

func (s *FileStore) NextCustomerID() (int, error) {
	return s.NextID(CustomersTable)
}

// UpdateLoyaltyPoints rewrites the customer table with the new balance for id.
func (s *FileStore) UpdateLoyaltyPoints(customerID, points int) error {
	customers, err := s.LoadCustomers()
	if err != nil {
		return err
	}

	found := false
	for _, c := range customers {
		if c.ID == customerID {
			c.LoyaltyPoints = points
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("customer %d: %w", customerID, domain.ErrNotFound)
	}
	return s.SaveCustomers(customers)
}

func (s *FileStore) LoadOwners() ([]*domain.Owner, error) {
	return loadTable(s, OwnersTable, decodeOwner)
}

func (s *FileStore) SaveOwners(owners []*domain.Owner) error {
	return saveTable(s, OwnersTable, owners, encodeOwner)
}

func (s *FileStore) AppendOwner(o *domain.Owner) error {
	return s.appendLine(OwnersTable, encodeOwner(o))
}

func (s *FileStore) NextOwnerID() (int, error) {
	return s.NextID(OwnersTable)
}

func (s *FileStore) LoadAdmins() ([]*domain.Admin, error) {
	return loadTable(s, AdminsTable, decodeAdmin)
}

func (s *FileStore) SaveAdmins(admins []*domain.Admin) error {
	return saveTable(s, AdminsTable, admins, encodeAdmin)
}
