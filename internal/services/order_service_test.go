package services_test

import (
	"testing"

	"pizzeria/internal/models"
	"pizzeria/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderService() (*services.OrderService, *MockOrderRepository, *MockCartRepository, *MockPaymentRepository, *MockAuditPublisher) {
	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	paymentRepo := new(MockPaymentRepository)
	auditPub := new(MockAuditPublisher)
	svc := services.NewOrderService(orderRepo, cartRepo, paymentRepo, auditPub)
	return svc, orderRepo, cartRepo, paymentRepo, auditPub
}

func guestCustomer() services.CustomerInfo {
	return services.CustomerInfo{
		Name:            "Jordan Doe",
		Email:           "jordan@example.com",
		Phone:           "555-0101",
		DeliveryAddress: "1 Pizza Way",
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	svc, orderRepo, cartRepo, _, auditPub := newOrderService()
	identity := models.SessionIdentity("sess-1")

	pizzaID := "pizza-1"
	items := []models.CartItem{
		{
			ID:        "item-1",
			PizzaID:   &pizzaID,
			Pizza:     &models.Pizza{ID: pizzaID, Name: "Margherita", BasePrice: 12.99},
			Quantity:  2,
			Size:      models.SizeMedium,
			Crust:     models.CrustRegular,
			UnitPrice: 12.99,
			Toppings:  []models.Topping{{ID: "top-1", Name: "Mozzarella", Price: 1.50}},
		},
		{
			ID:         "item-2",
			Quantity:   1,
			Size:       models.SizeSmall,
			Crust:      models.CrustThin,
			IsCustom:   true,
			CustomName: "Custom Pizza",
			UnitPrice:  6.39,
		},
	}

	cartRepo.On("GetByOwner", identity).Return(items, nil).Once()
	orderRepo.On("CreateWithItems", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	auditPub.On("Publish", mock.Anything).Return(nil)

	order, err := svc.CreateOrder(identity, guestCustomer())

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "sess-1", order.SessionID)
	assert.Nil(t, order.UserID)

	// Round-trip: N cart items yield exactly N snapshots whose totals sum
	// to the order subtotal.
	assert.Len(t, order.Items, 2)
	var sum float64
	for _, item := range order.Items {
		sum += item.TotalPrice
	}
	assert.InDelta(t, order.Subtotal, sum, 0.01)

	// subtotal = 28.98 + 6.39, tax = 8% of that, total reconciles
	assert.Equal(t, 35.37, order.Subtotal)
	assert.Equal(t, 2.83, order.Tax)
	assert.Equal(t, 38.20, order.Total)
	assert.InDelta(t, order.Subtotal+order.Tax, order.Total, 0.01)

	// Snapshots carry names and prices by value
	first := order.Items[0]
	assert.Equal(t, "Margherita", first.PizzaName)
	assert.Equal(t, 1.50, first.ToppingsPrice)
	assert.Equal(t, 28.98, first.TotalPrice)
	assert.Len(t, first.Toppings, 1)
	assert.Equal(t, "Mozzarella", first.Toppings[0].ToppingName)
	assert.Equal(t, 1.50, first.Toppings[0].ToppingPrice)

	second := order.Items[1]
	assert.True(t, second.IsCustom)
	assert.Equal(t, "Custom Pizza", second.PizzaName)

	// The source cart is not cleared by conversion
	cartRepo.AssertNotCalled(t, "DeleteByOwner", mock.Anything)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	svc, orderRepo, cartRepo, _, _ := newOrderService()
	identity := models.SessionIdentity("sess-1")

	cartRepo.On("GetByOwner", identity).Return([]models.CartItem{}, nil).Once()

	order, err := svc.CreateOrder(identity, guestCustomer())

	assert.Nil(t, order)
	assert.ErrorIs(t, err, services.ErrEmptyCart)
	// Conversion is never reached; nothing is persisted
	orderRepo.AssertNotCalled(t, "CreateWithItems", mock.Anything)
}

func TestOrderService_CreateOrder_AuthenticatedUser(t *testing.T) {
	svc, orderRepo, cartRepo, _, auditPub := newOrderService()
	identity := models.UserIdentity("user-1")

	items := []models.CartItem{{ID: "item-1", Quantity: 1, UnitPrice: 10.00}}
	cartRepo.On("GetByOwner", identity).Return(items, nil).Once()
	orderRepo.On("CreateWithItems", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	auditPub.On("Publish", mock.Anything).Return(nil)

	order, err := svc.CreateOrder(identity, guestCustomer())

	assert.NoError(t, err)
	assert.NotNil(t, order.UserID)
	assert.Equal(t, "user-1", *order.UserID)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	svc, orderRepo, _, _, auditPub := newOrderService()
	staff := models.UserIdentity("admin-1")

	orderRepo.On("UpdateStatus", "order-1", models.OrderStatusPreparing).Return(nil).Once()
	auditPub.On("Publish", mock.Anything).Return(nil)

	err := svc.UpdateOrderStatus(staff, "order-1", models.OrderStatusPreparing)

	assert.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus_Unknown(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderService()
	staff := models.UserIdentity("admin-1")

	err := svc.UpdateOrderStatus(staff, "order-1", "shipped")

	assert.True(t, services.IsValidation(err), "expected ValidationError, got %v", err)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderService()
	staff := models.UserIdentity("admin-1")

	orderRepo.On("UpdateStatus", "missing", models.OrderStatusCancelled).Return(services.ErrNotFound).Once()

	err := svc.UpdateOrderStatus(staff, "missing", models.OrderStatusCancelled)

	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestOrderService_GetOrders_FilterValidation(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderService()

	orders, err := svc.GetOrders("bogus", "")
	assert.Nil(t, orders)
	assert.True(t, services.IsValidation(err))

	orderRepo.On("GetAll", models.OrderStatusConfirmed, "jordan").Return([]models.Order{{ID: "order-1"}}, nil).Once()
	orders, err = svc.GetOrders(models.OrderStatusConfirmed, "jordan")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_GetOrder_LatestPaymentAfterRetry(t *testing.T) {
	svc, orderRepo, _, paymentRepo, _ := newOrderService()

	order := &models.Order{ID: "order-1", Status: models.OrderStatusConfirmed}
	txn := "TXN-CC-ABCDEF123456"
	latest := &models.Payment{
		ID:            "pay-2",
		OrderID:       "order-1",
		Status:        models.PaymentStatusSuccess,
		TransactionID: &txn,
	}

	orderRepo.On("GetWithDetails", "order-1").Return(order, nil).Once()
	// A declined first attempt also exists; the repo resolves the latest.
	paymentRepo.On("GetLatestByOrderID", "order-1").Return(latest, nil).Once()

	got, err := svc.GetOrder("order-1")

	assert.NoError(t, err)
	assert.NotNil(t, got.Payment)
	assert.Equal(t, "pay-2", got.Payment.ID)
	assert.Equal(t, models.PaymentStatusSuccess, got.Payment.Status)
	paymentRepo.AssertExpectations(t)
}

func TestOrderService_GetOrder_NoPaymentYet(t *testing.T) {
	svc, orderRepo, _, paymentRepo, _ := newOrderService()

	order := &models.Order{ID: "order-1", Status: models.OrderStatusPending}
	orderRepo.On("GetWithDetails", "order-1").Return(order, nil).Once()
	paymentRepo.On("GetLatestByOrderID", "order-1").Return(nil, services.ErrNotFound).Once()

	got, err := svc.GetOrder("order-1")

	assert.NoError(t, err)
	assert.Nil(t, got.Payment)
}
