package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"sustieats/order-svc/internal/domain"
)

type AccountService struct {
	customers    CustomerStore
	owners       OwnerStore
	admins       AdminStore
	restaurants  RestaurantStore
	defaultAdmin domain.Admin
	log          zerolog.Logger
}

// NewAccountService builds the account service. defaultAdmin is used only
// when the admin table has no records.
func NewAccountService(customers CustomerStore, owners OwnerStore, admins AdminStore, restaurants RestaurantStore, defaultAdmin domain.Admin, log zerolog.Logger) *AccountService {
	return &AccountService{
		customers:    customers,
		owners:       owners,
		admins:       admins,
		restaurants:  restaurants,
		defaultAdmin: defaultAdmin,
		log:          log.With().Str("component", "accounts").Logger(),
	}
}

func validateContact(name, email, phone, password string) error {
	if err := domain.ValidateField("name", name); err != nil {
		return err
	}
	if err := domain.ValidateOptionalField("email", email); err != nil {
		return err
	}
	if err := domain.ValidateOptionalField("phone", phone); err != nil {
		return err
	}
	return domain.ValidateField("password", password)
}

func (s *AccountService) RegisterCustomer(c *domain.Customer) error {
	if err := validateContact(c.Name, c.Email, c.Phone, c.Password); err != nil {
		return err
	}
	id, err := s.customers.NextCustomerID()
	if err != nil {
		return fmt.Errorf("failed to allocate customer id: %w", err)
	}
	c.ID = id
	c.Active = true
	c.LoyaltyPoints = 0
	if c.Cart == nil {
		c.Cart = domain.NewCart()
	}
	if err := s.customers.AppendCustomer(c); err != nil {
		return err
	}
	s.log.Info().Int("customer_id", id).Msg("customer registered")
	return nil
}

func (s *AccountService) RegisterOwner(o *domain.Owner) error {
	if err := validateContact(o.Name, o.Email, o.Phone, o.Password); err != nil {
		return err
	}
	id, err := s.owners.NextOwnerID()
	if err != nil {
		return fmt.Errorf("failed to allocate owner id: %w", err)
	}
	o.ID = id
	o.Active = true
	if err := s.owners.AppendOwner(o); err != nil {
		return err
	}
	s.log.Info().Int("owner_id", id).Msg("owner registered")
	return nil
}

func (s *AccountService) Login(role domain.Role, id int, password string) (domain.Account, error) {
	switch role {
	case domain.RoleCustomer:
		c, err := s.loginCustomer(id, password)
		if err != nil {
			return nil, err
		}
		return c, nil
	case domain.RoleOwner:
		o, err := s.loginOwner(id, password)
		if err != nil {
			return nil, err
		}
		return o, nil
	case domain.RoleAdmin:
		admin, err := s.findAdmin(id)
		if err != nil {
			return nil, err
		}
		if admin == nil || !admin.Login(password) {
			return nil, ErrInvalidCredentials
		}
		return admin, nil
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidField, role)
	}
}

func (s *AccountService) loginCustomer(id int, password string) (*domain.Customer, error) {
	customers, err := s.customers.LoadCustomers()
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.ID != id {
			continue
		}
		if !c.Login(password) {
			return nil, ErrInvalidCredentials
		}
		if !c.Active {
			return nil, ErrAccountInactive
		}
		return c, nil
	}
	return nil, ErrInvalidCredentials
}

func (s *AccountService) loginOwner(id int, password string) (*domain.Owner, error) {
	owners, err := s.owners.LoadOwners()
	if err != nil {
		return nil, err
	}
	for _, o := range owners {
		if o.ID != id {
			continue
		}
		if !o.Login(password) {
			return nil, ErrInvalidCredentials
		}
		if !o.Active {
			return nil, ErrAccountInactive
		}

		restaurants, err := s.restaurants.LoadRestaurants()
		if err != nil {
			return nil, err
		}
		for _, r := range restaurants {
			if r.OwnerID == o.ID {
				o.RestaurantIDs = append(o.RestaurantIDs, r.ID)
			}
		}
		return o, nil
	}
	return nil, ErrInvalidCredentials
}

func (s *AccountService) findAdmin(id int) (*domain.Admin, error) {
	admins, err := s.admins.LoadAdmins()
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		admins = []*domain.Admin{&s.defaultAdmin}
	}
	for _, a := range admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (s *AccountService) RequireAdmin(adminID int) error {
	admin, err := s.findAdmin(adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotAdmin
	}
	return nil
}

func (s *AccountService) SetCustomerActive(adminID, customerID int, active bool) error {
	if err := s.RequireAdmin(adminID); err != nil {
		return err
	}
	customers, err := s.customers.LoadCustomers()
	if err != nil {
		return err
	}
	for _, c := range customers {
		if c.ID == customerID {
			c.Active = active
			if err := s.customers.SaveCustomers(customers); err != nil {
				return err
			}
			s.log.Info().Int("customer_id", customerID).Bool("active", active).Msg("customer status changed")
			return nil
		}
	}
	return ErrCustomerNotFound
}

func (s *AccountService) SetOwnerActive(adminID, ownerID int, active bool) error {
	if err := s.RequireAdmin(adminID); err != nil {
		return err
	}
	owners, err := s.owners.LoadOwners()
	if err != nil {
		return err
	}
	for _, o := range owners {
		if o.ID == ownerID {
			o.Active = active
			if err := s.owners.SaveOwners(owners); err != nil {
				return err
			}
			s.log.Info().Int("owner_id", ownerID).Bool("active", active).Msg("owner status changed")
			return nil
		}
	}
	return ErrOwnerNotFound
}
