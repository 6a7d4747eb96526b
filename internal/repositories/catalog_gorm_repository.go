package repositories

import (
	"errors"
	"fmt"

	"pizzeria/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPizzaRepository is a GORM implementation of PizzaRepository.
type GORMPizzaRepository struct {
	db *gorm.DB
}

// NewGORMPizzaRepository creates a new instance of GORMPizzaRepository.
func NewGORMPizzaRepository(db *gorm.DB) *GORMPizzaRepository {
	return &GORMPizzaRepository{
		db: db,
	}
}

// GetAll retrieves pizzas with their default toppings preloaded.
func (r *GORMPizzaRepository) GetAll(activeOnly bool) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	query := r.db.Preload("Toppings")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("failed to get pizzas: %w", err)
	}
	return pizzas, nil
}

// GetByID retrieves a single pizza with its default toppings.
func (r *GORMPizzaRepository) GetByID(id string) (*models.Pizza, error) {
	var pizza models.Pizza
	if err := r.db.Preload("Toppings").First(&pizza, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pizza with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pizza by ID %s: %w", id, err)
	}
	return &pizza, nil
}

// Create creates a new pizza in the database.
func (r *GORMPizzaRepository) Create(pizza *models.Pizza) error {
	if pizza.ID == "" {
		pizza.ID = uuid.New().String()
	}
	if err := r.db.Create(pizza).Error; err != nil {
		return fmt.Errorf("failed to create pizza: %w", err)
	}
	return nil
}

// Update updates an existing pizza, replacing its default topping set.
func (r *GORMPizzaRepository) Update(pizza *models.Pizza) error {
	res := r.db.Omit("Toppings").Save(pizza)
	if res.Error != nil {
		return fmt.Errorf("failed to update pizza: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("pizza with ID %s for update: %w", pizza.ID, ErrNotFound)
	}
	if err := r.db.Model(pizza).Association("Toppings").Replace(pizza.Toppings); err != nil {
		return fmt.Errorf("failed to update pizza toppings: %w", err)
	}
	return nil
}

// Delete deletes a pizza by its ID from the database.
func (r *GORMPizzaRepository) Delete(id string) error {
	res := r.db.Delete(&models.Pizza{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete pizza: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("pizza with ID %s for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// GORMToppingRepository is a GORM implementation of ToppingRepository.
type GORMToppingRepository struct {
	db *gorm.DB
}

// NewGORMToppingRepository creates a new instance of GORMToppingRepository.
func NewGORMToppingRepository(db *gorm.DB) *GORMToppingRepository {
	return &GORMToppingRepository{
		db: db,
	}
}

// GetAll retrieves toppings, optionally only active ones.
func (r *GORMToppingRepository) GetAll(activeOnly bool) ([]models.Topping, error) {
	var toppings []models.Topping
	query := r.db
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&toppings).Error; err != nil {
		return nil, fmt.Errorf("failed to get toppings: %w", err)
	}
	return toppings, nil
}

// GetByID retrieves a single topping by its ID.
func (r *GORMToppingRepository) GetByID(id string) (*models.Topping, error) {
	var topping models.Topping
	if err := r.db.First(&topping, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("topping with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get topping by ID %s: %w", id, err)
	}
	return &topping, nil
}

// GetByIDs retrieves the active toppings matching the given IDs. Any ID
// that does not resolve to an active topping yields ErrNotFound, so a
// deactivated topping cannot be selected through the builder.
func (r *GORMToppingRepository) GetByIDs(ids []string) ([]models.Topping, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var toppings []models.Topping
	if err := r.db.Where("id IN ? AND is_active = ?", ids, true).Find(&toppings).Error; err != nil {
		return nil, fmt.Errorf("failed to get toppings by IDs: %w", err)
	}
	if len(toppings) != len(ids) {
		return nil, fmt.Errorf("one or more toppings in %v: %w", ids, ErrNotFound)
	}
	return toppings, nil
}

// Create creates a new topping in the database.
func (r *GORMToppingRepository) Create(topping *models.Topping) error {
	if topping.ID == "" {
		topping.ID = uuid.New().String()
	}
	if err := r.db.Create(topping).Error; err != nil {
		return fmt.Errorf("failed to create topping: %w", err)
	}
	return nil
}

// Update updates an existing topping in the database.
func (r *GORMToppingRepository) Update(topping *models.Topping) error {
	res := r.db.Save(topping)
	if res.Error != nil {
		return fmt.Errorf("failed to update topping: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("topping with ID %s for update: %w", topping.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a topping by its ID from the database.
func (r *GORMToppingRepository) Delete(id string) error {
	res := r.db.Delete(&models.Topping{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete topping: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("topping with ID %s for deletion: %w", id, ErrNotFound)
	}
	return nil
}
