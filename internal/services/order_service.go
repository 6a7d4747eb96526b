package services

import (
	"errors"
	"log"

	"pizzeria/internal/models"
	"pizzeria/internal/pricing"
	"pizzeria/internal/repositories"
	"pizzeria/pkg/audit"
)

// CustomerInfo is the checkout form data an order is created from.
type CustomerInfo struct {
	Name            string
	Email           string
	Phone           string
	DeliveryAddress string
	Notes           string
}

// OrderService handles order creation from a cart and the order status
// lifecycle staff drive afterwards.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	paymentRepo repositories.PaymentRepository
	audit       audit.Publisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, paymentRepo repositories.PaymentRepository, auditPub audit.Publisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		paymentRepo: paymentRepo,
		audit:       auditPub,
	}
}

// CreateOrder snapshots the caller's cart into an immutable order. All
// names and prices are copied by value so later catalog changes cannot
// alter the record; the order and every item snapshot are written in one
// transaction. The cart is left untouched; it is cleared only after a
// successful payment, so a declined customer can retry checkout.
func (s *OrderService) CreateOrder(identity models.Identity, customer CustomerInfo) (*models.Order, error) {
	items, err := s.cartRepo.GetByOwner(identity)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	totals := pricing.CartTotals(items)

	var userID *string
	if identity.UserID != "" {
		id := identity.UserID
		userID = &id
	}

	order := &models.Order{
		UserID:          userID,
		SessionID:       identity.SessionID,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		DeliveryAddress: customer.DeliveryAddress,
		Notes:           customer.Notes,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Total:           totals.Total,
		Status:          models.OrderStatusPending,
	}

	for _, cartItem := range items {
		toppingsPrice := cartItem.ToppingsTotal()

		orderItem := models.OrderItem{
			PizzaID:       cartItem.PizzaID,
			PizzaName:     cartItem.DisplayName(),
			Quantity:      cartItem.Quantity,
			Size:          cartItem.Size,
			Crust:         cartItem.Crust,
			IsCustom:      cartItem.IsCustom,
			UnitPrice:     cartItem.UnitPrice,
			ToppingsPrice: pricing.Round2(toppingsPrice),
			TotalPrice:    pricing.LineTotal(cartItem),
		}
		for _, topping := range cartItem.Toppings {
			orderItem.Toppings = append(orderItem.Toppings, models.OrderItemTopping{
				ToppingName:  topping.Name,
				ToppingPrice: topping.Price,
			})
		}
		order.Items = append(order.Items, orderItem)
	}

	if err := s.orderRepo.CreateWithItems(order); err != nil {
		return nil, err
	}

	s.publishEvent("order_created", "Order", order.ID, identity, map[string]interface{}{
		"customer_name":  order.CustomerName,
		"customer_email": order.CustomerEmail,
		"total":          order.Total,
		"items_count":    len(order.Items),
	})

	return order, nil
}

// GetOrder retrieves an order with its items, topping snapshots and
// latest payment attempt. Declined attempts before a successful retry
// stay on record but never shadow the attempt that settled the order.
func (s *OrderService) GetOrder(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetWithDetails(id)
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetLatestByOrderID(id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		// No attempt yet; the order has not been paid.
		return order, nil
	}
	order.Payment = payment

	return order, nil
}

// GetOrders retrieves orders for the admin console, optionally filtered
// by status and a customer search term.
func (s *OrderService) GetOrders(statusFilter, search string) ([]models.Order, error) {
	if statusFilter != "" && !models.ValidOrderStatuses[statusFilter] {
		return nil, &ValidationError{Field: "status", Message: "unknown order status"}
	}
	return s.orderRepo.GetAll(statusFilter, search)
}

// UpdateOrderStatus sets an order's status to any of the six known
// states. The set is unconditional: staff may move an order backward to
// correct a mistake. Only membership in the status set is enforced.
func (s *OrderService) UpdateOrderStatus(identity models.Identity, id string, status string) error {
	if !models.ValidOrderStatuses[status] {
		return &ValidationError{Field: "status", Message: "unknown order status"}
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return err
	}

	s.publishEvent("order_status_updated", "Order", id, identity, map[string]interface{}{
		"new_status": status,
	})

	return nil
}

// publishEvent emits one audit event, logging rather than failing the
// order operation when the sink is unavailable.
func (s *OrderService) publishEvent(action, entityType, entityID string, identity models.Identity, details map[string]interface{}) {
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
