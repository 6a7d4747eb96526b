package repositories

import (
	"pizzeria/internal/models"
)

// CartRepository defines the interface for cart line item data access.
// Every read and mutation is scoped to the owning identity.
type CartRepository interface {
	GetByOwner(owner models.Identity) ([]models.CartItem, error)
	GetOwnedItem(owner models.Identity, itemID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(itemID string, quantity int) error
	Delete(item *models.CartItem) error
	DeleteByOwner(owner models.Identity) (int, error)
	Migrate(sessionID, userID string) error
}
