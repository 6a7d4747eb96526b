package handlers

import (
	"log"

	"pizzeria/internal/models"
	"pizzeria/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles the staff-facing order console: listing,
// inspection and status updates.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the admin order routes with the Fiber app.
// The caller supplies the auth middleware chain.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, guards ...fiber.Handler) {
	orderRoutes := router.Group("/admin/orders", guards...)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders retrieves orders, newest first, optionally filtered by
// ?status= and a ?search= term over customer name and email.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrders(c.Query("status"), c.Query("search"))
	if err != nil {
		log.Printf("Error getting orders: %v", err)
		return respondServiceError(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order with items, topping
// snapshots and payment.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrder(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return respondServiceError(c, err, "Could not retrieve order")
	}
	return c.JSON(order)
}

// HandleUpdateOrderStatus sets the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	staffID, _ := c.Locals("user_id").(string)
	err := h.service.UpdateOrderStatus(models.UserIdentity(staffID), orderID, updateData.Status)
	if err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		return respondServiceError(c, err, "Could not update order status")
	}

	return c.JSON(fiber.Map{
		"message": "Order " + orderID + " status updated to " + updateData.Status,
	})
}
