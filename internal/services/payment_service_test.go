package services_test

import (
	"strings"
	"testing"

	"pizzeria/internal/models"
	"pizzeria/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentService() (*services.PaymentService, *MockPaymentRepository, *MockOrderRepository, *MockCartRepository, *MockAuditPublisher) {
	paymentRepo := new(MockPaymentRepository)
	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	auditPub := new(MockAuditPublisher)
	svc := services.NewPaymentService(paymentRepo, orderRepo, cartRepo, auditPub)
	return svc, paymentRepo, orderRepo, cartRepo, auditPub
}

func pendingOrder() *models.Order {
	return &models.Order{
		ID:        "order-1",
		SessionID: "sess-1",
		Subtotal:  28.98,
		Tax:       2.32,
		Total:     31.30,
		Status:    models.OrderStatusPending,
	}
}

func TestPaymentService_CreditCard_Success(t *testing.T) {
	svc, paymentRepo, orderRepo, cartRepo, auditPub := newPaymentService()
	order := pendingOrder()

	paymentRepo.On("Create", mock.AnythingOfType("*models.Payment")).Return(nil).Once()
	orderRepo.On("UpdateStatus", "order-1", models.OrderStatusConfirmed).Return(nil).Once()
	cartRepo.On("DeleteByOwner", models.SessionIdentity("sess-1")).Return(1, nil).Once()
	auditPub.On("Publish", mock.Anything).Return(nil)

	payment, err := svc.ProcessCreditCard(order, services.CardDetails{
		Number:     "4111111111111111",
		HolderName: "Jordan Doe",
		Expiry:     "12/27",
		CVV:        "123",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)
	assert.NotNil(t, payment.TransactionID)
	assert.True(t, strings.HasPrefix(*payment.TransactionID, "TXN-CC-"))
	assert.Equal(t, "1111", payment.CardLastFour)
	assert.Nil(t, payment.FailureReason)
	// Amount comes from the frozen order total, never from client input
	assert.Equal(t, 31.30, payment.Amount)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestPaymentService_CreditCard_Declined(t *testing.T) {
	svc, paymentRepo, orderRepo, cartRepo, auditPub := newPaymentService()
	order := pendingOrder()

	paymentRepo.On("Create", mock.AnythingOfType("*models.Payment")).Return(nil).Once()
	auditPub.On("Publish", mock.Anything).Return(nil)

	payment, err := svc.ProcessCreditCard(order, services.CardDetails{
		Number:     "4111111111110000",
		HolderName: "Jordan Doe",
		Expiry:     "12/27",
		CVV:        "123",
	})

	// A decline is a business result, not an error
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, payment.Status)
	assert.Nil(t, payment.TransactionID)
	assert.NotNil(t, payment.FailureReason)
	assert.Equal(t, "0000", payment.CardLastFour)

	// Order stays pending, cart untouched
	assert.Equal(t, models.OrderStatusPending, order.Status)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "DeleteByOwner", mock.Anything)
}

func TestPaymentService_PayPal_Success(t *testing.T) {
	svc, paymentRepo, orderRepo, cartRepo, auditPub := newPaymentService()
	order := pendingOrder()

	paymentRepo.On("Create", mock.AnythingOfType("*models.Payment")).Return(nil).Once()
	orderRepo.On("UpdateStatus", "order-1", models.OrderStatusConfirmed).Return(nil).Once()
	cartRepo.On("DeleteByOwner", models.SessionIdentity("sess-1")).Return(2, nil).Once()
	auditPub.On("Publish", mock.Anything).Return(nil)

	payment, err := svc.ProcessPayPal(order, services.PayPalDetails{Email: "buyer@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)
	assert.True(t, strings.HasPrefix(*payment.TransactionID, "TXN-PP-"))
	assert.Equal(t, "buyer@example.com", payment.PayPalEmail)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
}

func TestPaymentService_PayPal_Declined_CaseInsensitive(t *testing.T) {
	svc, paymentRepo, orderRepo, cartRepo, auditPub := newPaymentService()
	order := pendingOrder()

	paymentRepo.On("Create", mock.AnythingOfType("*models.Payment")).Return(nil).Twice()
	auditPub.On("Publish", mock.Anything).Return(nil)

	for _, email := range []string{"user.FAIL@example.com", "failure@example.com"} {
		payment, err := svc.ProcessPayPal(order, services.PayPalDetails{Email: email})
		assert.NoError(t, err)
		assert.Equal(t, models.PaymentStatusFailed, payment.Status)
		assert.Nil(t, payment.TransactionID)
	}

	assert.Equal(t, models.OrderStatusPending, order.Status)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "DeleteByOwner", mock.Anything)
}

func TestPaymentService_UserOwnedOrderClearsUserCart(t *testing.T) {
	svc, paymentRepo, orderRepo, cartRepo, auditPub := newPaymentService()
	userID := "user-1"
	order := pendingOrder()
	order.UserID = &userID

	paymentRepo.On("Create", mock.AnythingOfType("*models.Payment")).Return(nil).Once()
	orderRepo.On("UpdateStatus", "order-1", models.OrderStatusConfirmed).Return(nil).Once()
	cartRepo.On("DeleteByOwner", models.UserIdentity("user-1")).Return(1, nil).Once()
	auditPub.On("Publish", mock.Anything).Return(nil)

	_, err := svc.ProcessPayPal(order, services.PayPalDetails{Email: "buyer@example.com"})

	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}
