package services

import (
	"pizzeria/internal/models"
	"pizzeria/internal/repositories"
)

// CatalogService handles business logic for the pizza and topping
// catalog: the public menu and the admin CRUD screens.
type CatalogService struct {
	pizzaRepo   repositories.PizzaRepository
	toppingRepo repositories.ToppingRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(pizzaRepo repositories.PizzaRepository, toppingRepo repositories.ToppingRepository) *CatalogService {
	return &CatalogService{
		pizzaRepo:   pizzaRepo,
		toppingRepo: toppingRepo,
	}
}

// GetMenu retrieves the active pizzas with their default toppings.
func (s *CatalogService) GetMenu() ([]models.Pizza, error) {
	return s.pizzaRepo.GetAll(true)
}

// GetAllPizzas retrieves every pizza, active or not, for the admin view.
func (s *CatalogService) GetAllPizzas() ([]models.Pizza, error) {
	return s.pizzaRepo.GetAll(false)
}

// GetPizzaByID retrieves a single pizza with its default toppings.
func (s *CatalogService) GetPizzaByID(id string) (*models.Pizza, error) {
	return s.pizzaRepo.GetByID(id)
}

// CreatePizza creates a new pizza on the menu.
func (s *CatalogService) CreatePizza(pizza *models.Pizza) error {
	return s.pizzaRepo.Create(pizza)
}

// UpdatePizza updates an existing pizza.
func (s *CatalogService) UpdatePizza(pizza *models.Pizza) error {
	return s.pizzaRepo.Update(pizza)
}

// DeletePizza deletes a pizza by its ID.
func (s *CatalogService) DeletePizza(id string) error {
	return s.pizzaRepo.Delete(id)
}

// GetActiveToppings retrieves the toppings available to the custom pizza
// builder.
func (s *CatalogService) GetActiveToppings() ([]models.Topping, error) {
	return s.toppingRepo.GetAll(true)
}

// GetAllToppings retrieves every topping for the admin view.
func (s *CatalogService) GetAllToppings() ([]models.Topping, error) {
	return s.toppingRepo.GetAll(false)
}

// CreateTopping creates a new topping.
func (s *CatalogService) CreateTopping(topping *models.Topping) error {
	return s.toppingRepo.Create(topping)
}

// UpdateTopping updates an existing topping. Cart items and order
// snapshots keep their locked-in prices regardless.
func (s *CatalogService) UpdateTopping(topping *models.Topping) error {
	return s.toppingRepo.Update(topping)
}

// DeleteTopping deletes a topping by its ID.
func (s *CatalogService) DeleteTopping(id string) error {
	return s.toppingRepo.Delete(id)
}
