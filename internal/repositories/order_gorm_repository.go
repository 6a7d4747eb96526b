package repositories

import (
	"errors"
	"fmt"

	"pizzeria/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// CreateWithItems persists the order, its item snapshots and their
// topping snapshots inside one transaction. Either every row is written
// or none are; a partial order is never observable.
func (r *GORMOrderRepository) CreateWithItems(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range order.Items {
			item := &order.Items[i]
			if item.ID == "" {
				item.ID = uuid.New().String()
			}
			item.OrderID = order.ID
			for j := range item.Toppings {
				if item.Toppings[j].ID == "" {
					item.Toppings[j].ID = uuid.New().String()
				}
				item.Toppings[j].OrderItemID = item.ID
			}
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves an order without its relations.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetWithDetails retrieves an order with items and topping snapshots
// eagerly loaded. The payment field is left empty; callers resolve the
// latest attempt through PaymentRepository.GetLatestByOrderID, since an
// order may carry several attempts after declines.
func (r *GORMOrderRepository) GetWithDetails(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Items").
		Preload("Items.Toppings").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s with details: %w", id, err)
	}
	return &order, nil
}

// GetAll retrieves orders, newest first, optionally filtered by status
// and by a customer name/email search term.
func (r *GORMOrderRepository) GetAll(statusFilter, search string) ([]models.Order, error) {
	var orders []models.Order
	// Payment rows are preloaded oldest first: GORM assigns scanned rows
	// to the has-one field in order, so the newest attempt wins the slot.
	query := r.db.Preload("Payment", func(db *gorm.DB) *gorm.DB {
		return db.Order("payments.created_at asc")
	}).Order("created_at desc")
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("customer_name LIKE ? OR customer_email LIKE ?", like, like)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s for status update: %w", id, ErrNotFound)
	}
	return nil
}
