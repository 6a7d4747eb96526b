package repositories

import (
	"errors"
	"fmt"

	"pizzeria/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// ownerScope narrows a query to the cart rows belonging to one identity.
func ownerScope(owner models.Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if owner.UserID != "" {
			return db.Where("user_id = ?", owner.UserID)
		}
		return db.Where("session_id = ?", owner.SessionID)
	}
}

// GetByOwner retrieves all cart items for one identity, oldest first,
// with pizza and topping relations loaded.
func (r *GORMCartRepository) GetByOwner(owner models.Identity) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Scopes(ownerScope(owner)).
		Preload("Pizza").
		Preload("Toppings").
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	return items, nil
}

// GetOwnedItem retrieves one cart item, enforcing that the caller's
// identity owns it. A foreign-owned item is reported as ErrNotFound.
func (r *GORMCartRepository) GetOwnedItem(owner models.Identity, itemID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Scopes(ownerScope(owner)).
		Preload("Pizza").
		Preload("Toppings").
		First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item with ID %s: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item %s: %w", itemID, err)
	}
	return &item, nil
}

// Create persists a new cart item together with its topping associations.
func (r *GORMCartRepository) Create(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of an existing cart item.
func (r *GORMCartRepository) UpdateQuantity(itemID string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s for quantity update: %w", itemID, ErrNotFound)
	}
	return nil
}

// Delete removes a cart item and its topping associations.
func (r *GORMCartRepository) Delete(item *models.CartItem) error {
	if err := r.db.Model(item).Association("Toppings").Clear(); err != nil {
		return fmt.Errorf("failed to clear cart item toppings: %w", err)
	}
	res := r.db.Unscoped().Delete(item)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s for deletion: %w", item.ID, ErrNotFound)
	}
	return nil
}

// DeleteByOwner removes every cart item belonging to one identity and
// returns the number of items removed.
func (r *GORMCartRepository) DeleteByOwner(owner models.Identity) (int, error) {
	items, err := r.GetByOwner(owner)
	if err != nil {
		return 0, err
	}
	for i := range items {
		if err := r.Delete(&items[i]); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}

// Migrate reassigns all cart items of an anonymous session to a user and
// clears the session key. Running it again for the same session is a
// no-op, and items the user already owns are left untouched.
func (r *GORMCartRepository) Migrate(sessionID, userID string) error {
	err := r.db.Model(&models.CartItem{}).
		Where("session_id = ? AND user_id IS NULL", sessionID).
		Updates(map[string]interface{}{
			"user_id":    userID,
			"session_id": nil,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to migrate cart from session %s: %w", sessionID, err)
	}
	return nil
}
