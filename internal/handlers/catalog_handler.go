package handlers

import (
	"log"

	"pizzeria/internal/models"
	"pizzeria/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles the public menu and the staff-facing pizza and
// topping management.
type CatalogHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the menu and admin catalog routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router, guards ...fiber.Handler) {
	router.Get("/menu", h.HandleGetMenu)
	router.Get("/menu/:id", h.HandleGetPizza)
	router.Get("/toppings", h.HandleGetToppings)

	pizzaRoutes := router.Group("/admin/pizzas", guards...)
	pizzaRoutes.Get("/", h.HandleAdminGetPizzas)
	pizzaRoutes.Post("/", h.HandleCreatePizza)
	pizzaRoutes.Put("/:id", h.HandleUpdatePizza)
	pizzaRoutes.Delete("/:id", h.HandleDeletePizza)

	toppingRoutes := router.Group("/admin/toppings", guards...)
	toppingRoutes.Get("/", h.HandleAdminGetToppings)
	toppingRoutes.Post("/", h.HandleCreateTopping)
	toppingRoutes.Put("/:id", h.HandleUpdateTopping)
	toppingRoutes.Delete("/:id", h.HandleDeleteTopping)
}

// HandleGetMenu returns the active pizzas with their default toppings.
func (h *CatalogHandler) HandleGetMenu(c *fiber.Ctx) error {
	pizzas, err := h.service.GetMenu()
	if err != nil {
		log.Printf("Error getting menu: %v", err)
		return respondServiceError(c, err, "Could not retrieve menu")
	}
	return c.JSON(pizzas)
}

// HandleGetPizza returns one pizza with its default toppings.
func (h *CatalogHandler) HandleGetPizza(c *fiber.Ctx) error {
	pizzaID := c.Params("id")
	pizza, err := h.service.GetPizzaByID(pizzaID)
	if err != nil {
		log.Printf("Error getting pizza by ID %s: %v", pizzaID, err)
		return respondServiceError(c, err, "Could not retrieve pizza")
	}
	return c.JSON(pizza)
}

// HandleGetToppings returns the active toppings for the custom pizza
// builder.
func (h *CatalogHandler) HandleGetToppings(c *fiber.Ctx) error {
	toppings, err := h.service.GetActiveToppings()
	if err != nil {
		log.Printf("Error getting toppings: %v", err)
		return respondServiceError(c, err, "Could not retrieve toppings")
	}
	return c.JSON(toppings)
}

// HandleAdminGetPizzas returns every pizza, active or not.
func (h *CatalogHandler) HandleAdminGetPizzas(c *fiber.Ctx) error {
	pizzas, err := h.service.GetAllPizzas()
	if err != nil {
		log.Printf("Error getting pizzas: %v", err)
		return respondServiceError(c, err, "Could not retrieve pizzas")
	}
	return c.JSON(pizzas)
}

// HandleCreatePizza creates a new pizza on the menu.
func (h *CatalogHandler) HandleCreatePizza(c *fiber.Ctx) error {
	var pizza models.Pizza
	if err := c.BodyParser(&pizza); err != nil {
		log.Printf("Error parsing pizza request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(pizza); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.CreatePizza(&pizza); err != nil {
		log.Printf("Error creating pizza: %v", err)
		return respondServiceError(c, err, "Could not create pizza")
	}
	return c.Status(fiber.StatusCreated).JSON(pizza)
}

// HandleUpdatePizza updates an existing pizza. Locked-in cart prices and
// order snapshots are unaffected.
func (h *CatalogHandler) HandleUpdatePizza(c *fiber.Ctx) error {
	var pizza models.Pizza
	if err := c.BodyParser(&pizza); err != nil {
		log.Printf("Error parsing pizza request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	pizza.ID = c.Params("id")

	if err := h.validate.Struct(pizza); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.UpdatePizza(&pizza); err != nil {
		log.Printf("Error updating pizza %s: %v", pizza.ID, err)
		return respondServiceError(c, err, "Could not update pizza")
	}
	return c.JSON(pizza)
}

// HandleDeletePizza deletes a pizza from the menu.
func (h *CatalogHandler) HandleDeletePizza(c *fiber.Ctx) error {
	pizzaID := c.Params("id")
	if err := h.service.DeletePizza(pizzaID); err != nil {
		log.Printf("Error deleting pizza %s: %v", pizzaID, err)
		return respondServiceError(c, err, "Could not delete pizza")
	}
	return c.JSON(fiber.Map{
		"message": "Pizza deleted",
	})
}

// HandleAdminGetToppings returns every topping, active or not.
func (h *CatalogHandler) HandleAdminGetToppings(c *fiber.Ctx) error {
	toppings, err := h.service.GetAllToppings()
	if err != nil {
		log.Printf("Error getting toppings: %v", err)
		return respondServiceError(c, err, "Could not retrieve toppings")
	}
	return c.JSON(toppings)
}

// HandleCreateTopping creates a new topping.
func (h *CatalogHandler) HandleCreateTopping(c *fiber.Ctx) error {
	var topping models.Topping
	if err := c.BodyParser(&topping); err != nil {
		log.Printf("Error parsing topping request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(topping); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.CreateTopping(&topping); err != nil {
		log.Printf("Error creating topping: %v", err)
		return respondServiceError(c, err, "Could not create topping")
	}
	return c.Status(fiber.StatusCreated).JSON(topping)
}

// HandleUpdateTopping updates an existing topping.
func (h *CatalogHandler) HandleUpdateTopping(c *fiber.Ctx) error {
	var topping models.Topping
	if err := c.BodyParser(&topping); err != nil {
		log.Printf("Error parsing topping request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	topping.ID = c.Params("id")

	if err := h.validate.Struct(topping); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.UpdateTopping(&topping); err != nil {
		log.Printf("Error updating topping %s: %v", topping.ID, err)
		return respondServiceError(c, err, "Could not update topping")
	}
	return c.JSON(topping)
}

// HandleDeleteTopping deletes a topping.
func (h *CatalogHandler) HandleDeleteTopping(c *fiber.Ctx) error {
	toppingID := c.Params("id")
	if err := h.service.DeleteTopping(toppingID); err != nil {
		log.Printf("Error deleting topping %s: %v", toppingID, err)
		return respondServiceError(c, err, "Could not delete topping")
	}
	return c.JSON(fiber.Map{
		"message": "Topping deleted",
	})
}
