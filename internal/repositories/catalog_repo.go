package repositories

import (
	"pizzeria/internal/models"
)

// PizzaRepository defines the interface for pizza catalog data access.
type PizzaRepository interface {
	GetAll(activeOnly bool) ([]models.Pizza, error)
	GetByID(id string) (*models.Pizza, error)
	Create(pizza *models.Pizza) error
	Update(pizza *models.Pizza) error
	Delete(id string) error
}

// ToppingRepository defines the interface for topping catalog data access.
type ToppingRepository interface {
	GetAll(activeOnly bool) ([]models.Topping, error)
	GetByID(id string) (*models.Topping, error)
	GetByIDs(ids []string) ([]models.Topping, error)
	Create(topping *models.Topping) error
	Update(topping *models.Topping) error
	Delete(id string) error
}
