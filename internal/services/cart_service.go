package services

import (
	"fmt"
	"log"

	"pizzeria/internal/models"
	"pizzeria/internal/pricing"
	"pizzeria/internal/repositories"
	"pizzeria/pkg/audit"
)

// CartService handles business logic for the customer's cart. Every
// operation takes the caller's identity explicitly; ownership is checked
// before any mutation.
type CartService struct {
	cartRepo    repositories.CartRepository
	pizzaRepo   repositories.PizzaRepository
	toppingRepo repositories.ToppingRepository
	audit       audit.Publisher
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, pizzaRepo repositories.PizzaRepository, toppingRepo repositories.ToppingRepository, auditPub audit.Publisher) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		pizzaRepo:   pizzaRepo,
		toppingRepo: toppingRepo,
		audit:       auditPub,
	}
}

// validateSelection checks the size, crust and quantity the cart surface
// accepts.
func validateSelection(size, crust string, quantity int) error {
	if !models.ValidSizes[size] {
		return &ValidationError{Field: "size", Message: "must be one of small, medium, large"}
	}
	if !models.ValidCrusts[crust] {
		return &ValidationError{Field: "crust", Message: "must be one of thin, regular, thick, stuffed"}
	}
	if quantity < 1 || quantity > models.MaxCartItemQuantity {
		return &ValidationError{Field: "quantity", Message: "must be between 1 and 20"}
	}
	return nil
}

// ownerFields maps an identity onto the cart item's owner columns.
func ownerFields(identity models.Identity) (sessionID, userID *string) {
	if identity.UserID != "" {
		id := identity.UserID
		return nil, &id
	}
	id := identity.SessionID
	return &id, nil
}

// uniqueIDs drops duplicate topping references while preserving order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// AddPizza adds a predefined pizza to the cart. The unit price is locked
// in from the catalog base price at this moment; later catalog changes do
// not alter it. An empty topping selection defaults to the pizza's own
// default toppings.
func (s *CartService) AddPizza(identity models.Identity, pizzaID, size, crust string, quantity int, toppingIDs []string) (*models.CartItem, error) {
	if err := validateSelection(size, crust, quantity); err != nil {
		return nil, err
	}

	pizza, err := s.pizzaRepo.GetByID(pizzaID)
	if err != nil {
		return nil, err
	}
	// A deactivated pizza is off the menu and indistinguishable from a
	// missing one to the cart surface.
	if !pizza.IsActive {
		return nil, fmt.Errorf("pizza with ID %s: %w", pizzaID, ErrNotFound)
	}

	var toppings []models.Topping
	if len(toppingIDs) == 0 {
		toppings = pizza.Toppings
	} else {
		toppings, err = s.toppingRepo.GetByIDs(uniqueIDs(toppingIDs))
		if err != nil {
			return nil, err
		}
	}

	sessionID, userID := ownerFields(identity)
	item := &models.CartItem{
		SessionID: sessionID,
		UserID:    userID,
		PizzaID:   &pizza.ID,
		Quantity:  quantity,
		Size:      size,
		Crust:     crust,
		IsCustom:  false,
		UnitPrice: pricing.UnitPrice(pizza.BasePrice, size, crust),
		Toppings:  toppings,
	}

	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	item.Pizza = pizza

	s.publishEvent("cart_add_pizza", "CartItem", item.ID, identity, map[string]interface{}{
		"pizza_id":   pizza.ID,
		"pizza_name": pizza.Name,
		"size":       size,
		"crust":      crust,
		"quantity":   quantity,
	})

	return item, nil
}

// AddCustomPizza adds a fully custom pizza built from topping selections.
// The fixed custom base price stands in for a catalog lookup.
func (s *CartService) AddCustomPizza(identity models.Identity, size, crust string, toppingIDs []string, quantity int) (*models.CartItem, error) {
	if err := validateSelection(size, crust, quantity); err != nil {
		return nil, err
	}

	toppings, err := s.toppingRepo.GetByIDs(uniqueIDs(toppingIDs))
	if err != nil {
		return nil, err
	}

	sessionID, userID := ownerFields(identity)
	item := &models.CartItem{
		SessionID:  sessionID,
		UserID:     userID,
		Quantity:   quantity,
		Size:       size,
		Crust:      crust,
		IsCustom:   true,
		CustomName: "Custom Pizza",
		UnitPrice:  pricing.UnitPrice(pricing.CustomPizzaBasePrice, size, crust),
		Toppings:   toppings,
	}

	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}

	s.publishEvent("cart_add_custom_pizza", "CartItem", item.ID, identity, map[string]interface{}{
		"size":     size,
		"crust":    crust,
		"quantity": quantity,
	})

	return item, nil
}

// UpdateQuantity sets the quantity of an owned cart item. A quantity of
// zero or less removes the item instead.
func (s *CartService) UpdateQuantity(identity models.Identity, itemID string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, s.RemoveItem(identity, itemID)
	}
	if quantity > models.MaxCartItemQuantity {
		return nil, &ValidationError{Field: "quantity", Message: "must be between 1 and 20"}
	}

	item, err := s.cartRepo.GetOwnedItem(identity, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity

	s.publishEvent("cart_update_quantity", "CartItem", item.ID, identity, map[string]interface{}{
		"new_quantity": quantity,
	})

	return item, nil
}

// RemoveItem removes an owned cart item. A missing or foreign-owned item
// is reported as not found.
func (s *CartService) RemoveItem(identity models.Identity, itemID string) error {
	item, err := s.cartRepo.GetOwnedItem(identity, itemID)
	if err != nil {
		return err
	}

	s.publishEvent("cart_remove_item", "CartItem", item.ID, identity, map[string]interface{}{
		"pizza_name": item.DisplayName(),
	})

	return s.cartRepo.Delete(item)
}

// ClearCart removes every item in the caller's cart.
func (s *CartService) ClearCart(identity models.Identity) error {
	removed, err := s.cartRepo.DeleteByOwner(identity)
	if err != nil {
		return err
	}

	s.publishEvent("cart_cleared", "", "", identity, map[string]interface{}{
		"items_removed": removed,
	})

	return nil
}

// Items returns the caller's cart items, oldest first.
func (s *CartService) Items(identity models.Identity) ([]models.CartItem, error) {
	return s.cartRepo.GetByOwner(identity)
}

// ItemCount returns the total number of pizzas in the cart, counting
// quantities.
func (s *CartService) ItemCount(identity models.Identity) (int, error) {
	items, err := s.cartRepo.GetByOwner(identity)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

// Subtotal returns the current cart subtotal from the locked-in line
// prices.
func (s *CartService) Subtotal(identity models.Identity) (float64, error) {
	items, err := s.cartRepo.GetByOwner(identity)
	if err != nil {
		return 0, err
	}
	return pricing.CartTotals(items).Subtotal, nil
}

// MigrateSessionCart reassigns an anonymous session's cart items to a
// user after login. It is idempotent and never merges quantities with
// items the user already owns.
func (s *CartService) MigrateSessionCart(sessionID, userID string) error {
	if err := s.cartRepo.Migrate(sessionID, userID); err != nil {
		return err
	}

	s.publishEvent("cart_migrated", "", "", models.UserIdentity(userID), map[string]interface{}{
		"from_session": sessionID,
	})

	return nil
}

// publishEvent emits one audit event. Publish failures are logged, never
// surfaced; the audit sink must not break cart operations.
func (s *CartService) publishEvent(action, entityType, entityID string, identity models.Identity, details map[string]interface{}) {
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
