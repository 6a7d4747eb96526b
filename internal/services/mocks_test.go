package services_test

import (
	"pizzeria/internal/models"
	"pizzeria/pkg/audit"

	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock implementation of repositories.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetByOwner(owner models.Identity) ([]models.CartItem, error) {
	args := m.Called(owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartRepository) GetOwnedItem(owner models.Identity, itemID string) (*models.CartItem, error) {
	args := m.Called(owner, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) Create(item *models.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(itemID string, quantity int) error {
	args := m.Called(itemID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(item *models.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteByOwner(owner models.Identity) (int, error) {
	args := m.Called(owner)
	return args.Int(0), args.Error(1)
}

func (m *MockCartRepository) Migrate(sessionID, userID string) error {
	args := m.Called(sessionID, userID)
	return args.Error(0)
}

// MockPizzaRepository is a mock implementation of repositories.PizzaRepository
type MockPizzaRepository struct {
	mock.Mock
}

func (m *MockPizzaRepository) GetAll(activeOnly bool) ([]models.Pizza, error) {
	args := m.Called(activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pizza), args.Error(1)
}

func (m *MockPizzaRepository) GetByID(id string) (*models.Pizza, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pizza), args.Error(1)
}

func (m *MockPizzaRepository) Create(pizza *models.Pizza) error {
	args := m.Called(pizza)
	return args.Error(0)
}

func (m *MockPizzaRepository) Update(pizza *models.Pizza) error {
	args := m.Called(pizza)
	return args.Error(0)
}

func (m *MockPizzaRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockToppingRepository is a mock implementation of repositories.ToppingRepository
type MockToppingRepository struct {
	mock.Mock
}

func (m *MockToppingRepository) GetAll(activeOnly bool) ([]models.Topping, error) {
	args := m.Called(activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Topping), args.Error(1)
}

func (m *MockToppingRepository) GetByID(id string) (*models.Topping, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Topping), args.Error(1)
}

func (m *MockToppingRepository) GetByIDs(ids []string) ([]models.Topping, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Topping), args.Error(1)
}

func (m *MockToppingRepository) Create(topping *models.Topping) error {
	args := m.Called(topping)
	return args.Error(0)
}

func (m *MockToppingRepository) Update(topping *models.Topping) error {
	args := m.Called(topping)
	return args.Error(0)
}

func (m *MockToppingRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithItems(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetWithDetails(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(statusFilter, search string) ([]models.Order, error) {
	args := m.Called(statusFilter, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockPaymentRepository is a mock implementation of repositories.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(payment *models.Payment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetLatestByOrderID(orderID string) (*models.Payment, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

// MockAuditPublisher is a mock implementation of audit.Publisher
type MockAuditPublisher struct {
	mock.Mock
}

func (m *MockAuditPublisher) Publish(event audit.Event) error {
	args := m.Called(event)
	return args.Error(0)
}
