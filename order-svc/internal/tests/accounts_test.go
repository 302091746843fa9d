package tests

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sustieats/order-svc/internal/domain"
	"sustieats/order-svc/internal/mocks"
	"sustieats/order-svc/internal/service"
)

var defaultAdmin = domain.Admin{ID: 300, Name: "admin", Password: "admin"}

func demoCustomers() []*domain.Customer {
	active := domain.NewCustomer()
	active.ID, active.Name, active.Password, active.LoyaltyPoints = 100, "Shaheer Q", "pass", 40

	blocked := domain.NewCustomer()
	blocked.ID, blocked.Name, blocked.Password, blocked.Active = 101, "Blocked", "pw", false

	return []*domain.Customer{active, blocked}
}

type accountMocks struct {
	customers   *mocks.CustomerStore
	owners      *mocks.OwnerStore
	admins      *mocks.AdminStore
	restaurants *mocks.RestaurantStore
}

func newAccountService(t *testing.T) (*service.AccountService, accountMocks) {
	m := accountMocks{
		customers:   mocks.NewCustomerStore(t),
		owners:      mocks.NewOwnerStore(t),
		admins:      mocks.NewAdminStore(t),
		restaurants: mocks.NewRestaurantStore(t),
	}
	svc := service.NewAccountService(m.customers, m.owners, m.admins, m.restaurants, defaultAdmin, zerolog.Nop())
	return svc, m
}

func TestAccountService_Login(t *testing.T) {
	tests := []struct {
		name          string
		role          domain.Role
		id            int
		password      string
		prepareMocks  func(m accountMocks)
		wantRole      domain.Role
		expectedError error
	}{
		{
			name:     "customer",
			role:     domain.RoleCustomer,
			id:       100,
			password: "pass",
			prepareMocks: func(m accountMocks) {
				m.customers.On("LoadCustomers").Return(demoCustomers(), nil).Once()
			},
			wantRole: domain.RoleCustomer,
		},
		{
			name:     "customer_wrong_password",
			role:     domain.RoleCustomer,
			id:       100,
			password: "nope",
			prepareMocks: func(m accountMocks) {
				m.customers.On("LoadCustomers").Return(demoCustomers(), nil).Once()
			},
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:     "customer_deactivated",
			role:     domain.RoleCustomer,
			id:       101,
			password: "pw",
			prepareMocks: func(m accountMocks) {
				m.customers.On("LoadCustomers").Return(demoCustomers(), nil).Once()
			},
			expectedError: service.ErrAccountInactive,
		},
		{
			name:     "unknown_customer",
			role:     domain.RoleCustomer,
			id:       555,
			password: "pass",
			prepareMocks: func(m accountMocks) {
				m.customers.On("LoadCustomers").Return(demoCustomers(), nil).Once()
			},
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:     "owner",
			role:     domain.RoleOwner,
			id:       200,
			password: "owner",
			prepareMocks: func(m accountMocks) {
				m.owners.On("LoadOwners").Return(demoOwners(), nil).Once()
				m.restaurants.On("LoadRestaurants").Return(demoRestaurants(), nil).Once()
			},
			wantRole: domain.RoleOwner,
		},
		{
			name:     "owner_deactivated",
			role:     domain.RoleOwner,
			id:       202,
			password: "pw",
			prepareMocks: func(m accountMocks) {
				m.owners.On("LoadOwners").Return(demoOwners(), nil).Once()
			},
			expectedError: service.ErrAccountInactive,
		},
		{
			name:     "default_admin_when_table_empty",
			role:     domain.RoleAdmin,
			id:       300,
			password: "admin",
			prepareMocks: func(m accountMocks) {
				m.admins.On("LoadAdmins").Return(nil, nil).Once()
			},
			wantRole: domain.RoleAdmin,
		},
		{
			name:     "admin_table_replaces_default",
			role:     domain.RoleAdmin,
			id:       300,
			password: "admin",
			prepareMocks: func(m accountMocks) {
				m.admins.On("LoadAdmins").Return([]*domain.Admin{{ID: 301, Name: "ops", Password: "s3cret"}}, nil).Once()
			},
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:          "unknown_role",
			role:          domain.Role("chef"),
			id:            1,
			password:      "x",
			prepareMocks:  func(m accountMocks) {},
			expectedError: domain.ErrInvalidField,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newAccountService(t)
			testCase.prepareMocks(m)

			account, err := svc.Login(testCase.role, testCase.id, testCase.password)

			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantRole, account.Role())
			assert.Equal(t, testCase.id, domain.Describe(account).ID)
		})
	}
}

func TestAccountService_OwnerLoginListsRestaurants(t *testing.T) {
	svc, m := newAccountService(t)
	m.owners.On("LoadOwners").Return(demoOwners(), nil).Once()
	m.restaurants.On("LoadRestaurants").Return(demoRestaurants(), nil).Once()

	account, err := svc.Login(domain.RoleOwner, 201, "ownerb")
	require.NoError(t, err)

	owner, ok := account.(*domain.Owner)
	require.True(t, ok)
	assert.Equal(t, []int{2}, owner.RestaurantIDs)
}

func TestAccountService_Register(t *testing.T) {
	svc, m := newAccountService(t)
	m.customers.On("NextCustomerID").Return(102, nil).Once()
	m.customers.On("AppendCustomer", mock.MatchedBy(func(c *domain.Customer) bool {
		return c.ID == 102 && c.Active && c.LoyaltyPoints == 0
	})).Return(nil).Once()
	m.owners.On("NextOwnerID").Return(203, nil).Once()
	m.owners.On("AppendOwner", mock.MatchedBy(func(o *domain.Owner) bool {
		return o.ID == 203 && o.Active
	})).Return(nil).Once()

	customer := &domain.Customer{Name: "Hira", Email: "hira@example.com", Phone: "0300-2222222", Password: "pw", LoyaltyPoints: 5000}
	require.NoError(t, svc.RegisterCustomer(customer))
	assert.Equal(t, 102, customer.ID)
	assert.Equal(t, 0, customer.LoyaltyPoints)
	assert.NotNil(t, customer.Cart)

	owner := &domain.Owner{Name: "Bilal", Password: "pw"}
	require.NoError(t, svc.RegisterOwner(owner))
	assert.Equal(t, 203, owner.ID)

	err := svc.RegisterCustomer(&domain.Customer{Name: "Comma, Name", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrInvalidField)

	err = svc.RegisterOwner(&domain.Owner{Name: "No Password"})
	assert.ErrorIs(t, err, domain.ErrInvalidField)
}

func TestAccountService_SetActive(t *testing.T) {
	svc, m := newAccountService(t)
	m.admins.On("LoadAdmins").Return(nil, nil)
	m.customers.On("LoadCustomers").Return(demoCustomers(), nil).Twice()
	m.customers.On("SaveCustomers", mock.MatchedBy(func(all []*domain.Customer) bool {
		return len(all) == 2 && !all[0].Active && !all[1].Active
	})).Return(nil).Once()
	m.owners.On("LoadOwners").Return(demoOwners(), nil).Once()
	m.owners.On("SaveOwners", mock.MatchedBy(func(all []*domain.Owner) bool {
		return all[2].Active
	})).Return(nil).Once()

	require.NoError(t, svc.SetCustomerActive(300, 100, false))
	require.NoError(t, svc.SetOwnerActive(300, 202, true))

	assert.ErrorIs(t, svc.SetCustomerActive(300, 999, true), service.ErrCustomerNotFound)
	assert.ErrorIs(t, svc.SetCustomerActive(100, 100, true), service.ErrNotAdmin)
	assert.ErrorIs(t, svc.SetOwnerActive(200, 201, false), service.ErrNotAdmin)
}
