package handlers

import (
	"log"

	"pizzeria/internal/middleware"
	"pizzeria/internal/pricing"
	"pizzeria/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the customer's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. Every
// route runs behind the identity middleware.
func (h *CartHandler) RegisterRoutes(router fiber.Router, identity fiber.Handler) {
	cartRoutes := router.Group("/cart", identity)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// AddToCartRequest represents the request body for adding a pizza to the
// cart. Omitting pizza_id (or setting is_custom) builds a custom pizza.
type AddToCartRequest struct {
	PizzaID  string   `json:"pizza_id" validate:"omitempty,uuid"`
	Size     string   `json:"size" validate:"required,oneof=small medium large"`
	Crust    string   `json:"crust" validate:"required,oneof=thin regular thick stuffed"`
	Quantity int      `json:"quantity" validate:"required,min=1,max=20"`
	Toppings []string `json:"toppings" validate:"omitempty,dive,uuid"`
	IsCustom bool     `json:"is_custom"`
}

// HandleGetCart returns the cart items with current totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	items, err := h.service.Items(identity)
	if err != nil {
		log.Printf("Error getting cart items: %v", err)
		return respondServiceError(c, err, "Could not retrieve cart")
	}

	totals := pricing.CartTotals(items)
	count := 0
	for _, item := range items {
		count += item.Quantity
	}

	return c.JSON(fiber.Map{
		"items":      items,
		"item_count": count,
		"subtotal":   totals.Subtotal,
		"tax":        totals.Tax,
		"total":      totals.Total,
	})
}

// HandleAddItem adds a predefined or custom pizza to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if !req.IsCustom && req.PizzaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Either pizza_id or is_custom is required.",
		})
	}

	var item interface{}
	var err error
	if req.IsCustom || req.PizzaID == "" {
		item, err = h.service.AddCustomPizza(identity, req.Size, req.Crust, req.Toppings, req.Quantity)
	} else {
		item, err = h.service.AddPizza(identity, req.PizzaID, req.Size, req.Crust, req.Quantity, req.Toppings)
	}
	if err != nil {
		log.Printf("Error adding item to cart: %v", err)
		return respondServiceError(c, err, "Could not add item to cart")
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateQuantity changes the quantity of a cart item. A quantity
// of zero or less removes the item.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)
	itemID := c.Params("id")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing quantity update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	item, err := h.service.UpdateQuantity(identity, itemID, req.Quantity)
	if err != nil {
		log.Printf("Error updating cart item %s: %v", itemID, err)
		return respondServiceError(c, err, "Could not update cart item")
	}

	if item == nil {
		return c.JSON(fiber.Map{
			"message": "Item removed from cart",
		})
	}
	return c.JSON(item)
}

// HandleRemoveItem removes one item from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)
	itemID := c.Params("id")

	if err := h.service.RemoveItem(identity, itemID); err != nil {
		log.Printf("Error removing cart item %s: %v", itemID, err)
		return respondServiceError(c, err, "Could not remove cart item")
	}

	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}

// HandleClearCart removes every item in the caller's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	if err := h.service.ClearCart(identity); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return respondServiceError(c, err, "Could not clear cart")
	}

	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
