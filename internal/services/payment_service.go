package services

import (
	"log"
	"strings"

	"pizzeria/internal/models"
	"pizzeria/internal/repositories"
	"pizzeria/pkg/audit"

	"github.com/google/uuid"
)

// PaymentService adjudicates payment attempts against pending orders.
// The gateway is a deterministic simulation: card numbers ending in
// "0000" decline, PayPal emails containing "fail" decline, everything
// else succeeds. That rule is a documented contract relied on by tests
// and demos, not a placeholder.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	audit       audit.Publisher
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo repositories.PaymentRepository, orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, auditPub audit.Publisher) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		audit:       auditPub,
	}
}

// CardDetails carries the already shape-validated credit card fields.
type CardDetails struct {
	Number     string
	HolderName string
	Expiry     string
	CVV        string
}

// PayPalDetails carries the already shape-validated PayPal fields.
type PayPalDetails struct {
	Email string
}

// newTransactionID generates a unique gateway token with a method prefix.
func newTransactionID(prefix string) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:12]
	return prefix + token
}

// ProcessCreditCard adjudicates a credit card attempt. Cards whose last
// four digits are "0000" decline; all others succeed. A decline is a
// normal result, not an error: the payment record comes back with
// status failed and the order stays pending.
func (s *PaymentService) ProcessCreditCard(order *models.Order, card CardDetails) (*models.Payment, error) {
	lastFour := card.Number
	if len(lastFour) > 4 {
		lastFour = lastFour[len(lastFour)-4:]
	}
	declined := lastFour == "0000"

	payment := &models.Payment{
		OrderID:       order.ID,
		PaymentMethod: models.PaymentMethodCreditCard,
		Amount:        order.Total, // always the frozen order total, never client input
		CardLastFour:  lastFour,
	}
	if declined {
		payment.Status = models.PaymentStatusFailed
		reason := "Card declined. Please try a different card."
		payment.FailureReason = &reason
	} else {
		payment.Status = models.PaymentStatusSuccess
		txn := newTransactionID("TXN-CC-")
		payment.TransactionID = &txn
	}

	return s.settle(order, payment)
}

// ProcessPayPal adjudicates a PayPal attempt. Payer emails containing
// "fail" (any case) decline; all others succeed.
func (s *PaymentService) ProcessPayPal(order *models.Order, paypal PayPalDetails) (*models.Payment, error) {
	declined := strings.Contains(strings.ToLower(paypal.Email), "fail")

	payment := &models.Payment{
		OrderID:       order.ID,
		PaymentMethod: models.PaymentMethodPayPal,
		Amount:        order.Total,
		PayPalEmail:   paypal.Email,
	}
	if declined {
		payment.Status = models.PaymentStatusFailed
		reason := "PayPal payment declined. Please try again."
		payment.FailureReason = &reason
	} else {
		payment.Status = models.PaymentStatusSuccess
		txn := newTransactionID("TXN-PP-")
		payment.TransactionID = &txn
	}

	return s.settle(order, payment)
}

// settle persists the attempt, then on success confirms the order and
// clears the owner's cart. The payment record is durable before either
// follow-up write; if the process dies in between, the order is still
// correctly confirmed and the customer merely keeps stale cart items.
func (s *PaymentService) settle(order *models.Order, payment *models.Payment) (*models.Payment, error) {
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	if payment.IsSuccessful() {
		if err := s.orderRepo.UpdateStatus(order.ID, models.OrderStatusConfirmed); err != nil {
			return nil, err
		}
		order.Status = models.OrderStatusConfirmed

		if _, err := s.cartRepo.DeleteByOwner(orderOwner(order)); err != nil {
			log.Printf("Warning: failed to clear cart after payment for order %s: %v", order.ID, err)
		}
	}

	details := map[string]interface{}{
		"order_id": order.ID,
		"method":   payment.PaymentMethod,
		"status":   payment.Status,
		"amount":   payment.Amount,
	}
	if payment.FailureReason != nil {
		details["failure_reason"] = *payment.FailureReason
	}
	s.publishEvent("payment_attempt", "Payment", payment.ID, orderOwner(order), details)

	return payment, nil
}

// orderOwner reconstructs the cart-owning identity from an order.
func orderOwner(order *models.Order) models.Identity {
	if order.UserID != nil && *order.UserID != "" {
		return models.UserIdentity(*order.UserID)
	}
	return models.SessionIdentity(order.SessionID)
}

func (s *PaymentService) publishEvent(action, entityType, entityID string, identity models.Identity, details map[string]interface{}) {
	if s.audit == nil {
		return
	}
	err := s.audit.Publish(audit.Event{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     identity.UserID,
		SessionID:  identity.SessionID,
		Details:    details,
	})
	if err != nil {
		log.Printf("Warning: failed to publish audit event %s: %v", action, err)
	}
}
