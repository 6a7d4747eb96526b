package repositories

import (
	"pizzeria/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// CreateWithItems persists an order together with all of its item
	// and topping snapshots in a single transaction.
	CreateWithItems(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	// GetWithDetails loads an order with its items and item topping
	// snapshots in one stated fetch. The latest payment attempt is
	// resolved separately via PaymentRepository.GetLatestByOrderID.
	GetWithDetails(id string) (*models.Order, error)
	GetAll(statusFilter, search string) ([]models.Order, error)
	UpdateStatus(id string, status string) error
}
