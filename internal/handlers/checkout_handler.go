package handlers

import (
	"log"

	"pizzeria/internal/middleware"
	"pizzeria/internal/models"
	"pizzeria/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles checkout submission, payment and order
// confirmation for customers.
type CheckoutHandler struct {
	orderService   *services.OrderService
	paymentService *services.PaymentService
	validate       *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(orderService *services.OrderService, paymentService *services.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{
		orderService:   orderService,
		paymentService: paymentService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router, identity fiber.Handler) {
	router.Post("/checkout", identity, h.HandleCheckout)
	orderRoutes := router.Group("/orders", identity)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Post("/:id/payment", h.HandleProcessPayment)
}

// CheckoutRequest represents the checkout form.
type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" validate:"required,max=255"`
	CustomerEmail   string `json:"customer_email" validate:"required,email,max=255"`
	CustomerPhone   string `json:"customer_phone" validate:"omitempty,max=50"`
	DeliveryAddress string `json:"delivery_address" validate:"omitempty,max=500"`
	Notes           string `json:"notes" validate:"omitempty,max=1000"`
}

// PaymentSubmission represents the payment form. Method-specific fields
// are required only for their method.
type PaymentSubmission struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=credit_card paypal"`
	CardNumber    string `json:"card_number" validate:"required_if=PaymentMethod credit_card,omitempty,len=16,numeric"`
	CardName      string `json:"card_name" validate:"required_if=PaymentMethod credit_card,omitempty,max=255"`
	CardExpiry    string `json:"card_expiry" validate:"required_if=PaymentMethod credit_card,omitempty,len=5"`
	CardCVV       string `json:"card_cvv" validate:"required_if=PaymentMethod credit_card,omitempty,len=3,numeric"`
	PayPalEmail   string `json:"paypal_email" validate:"required_if=PaymentMethod paypal,omitempty,email,max=255"`
}

// validExpiry checks the MM/YY shape of a card expiry.
func validExpiry(expiry string) bool {
	if len(expiry) != 5 || expiry[2] != '/' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if expiry[i] < '0' || expiry[i] > '9' {
			return false
		}
	}
	return true
}

// HandleCheckout converts the caller's cart into a pending order. An
// empty cart is rejected before conversion is ever invoked.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
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

	order, err := h.orderService.CreateOrder(identity, services.CustomerInfo{
		Name:            req.CustomerName,
		Email:           req.CustomerEmail,
		Phone:           req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return respondServiceError(c, err, "Could not create order")
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// ownsOrder checks that the caller's identity owns the order. Orders of
// other customers are indistinguishable from missing ones.
func ownsOrder(identity models.Identity, order *models.Order) bool {
	if identity.UserID != "" {
		return order.UserID != nil && *order.UserID == identity.UserID
	}
	return order.SessionID == identity.SessionID
}

// HandleGetOrder returns an owned order with its items and payment.
func (h *CheckoutHandler) HandleGetOrder(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)
	orderID := c.Params("id")

	order, err := h.orderService.GetOrder(orderID)
	if err != nil {
		log.Printf("Error getting order %s: %v", orderID, err)
		return respondServiceError(c, err, "Could not retrieve order")
	}
	if !ownsOrder(identity, order) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
		})
	}

	return c.JSON(order)
}

// HandleProcessPayment adjudicates a payment attempt against a pending
// order. A decline comes back as 402 with the failure reason so the
// customer can retry; the order and cart are untouched.
func (h *CheckoutHandler) HandleProcessPayment(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)
	orderID := c.Params("id")

	var req PaymentSubmission
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment request body: %v", err)
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
	if req.PaymentMethod == models.PaymentMethodCreditCard && !validExpiry(req.CardExpiry) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  map[string]string{"CardExpiry": "Expiry must be in MM/YY format."},
		})
	}

	order, err := h.orderService.GetOrder(orderID)
	if err != nil {
		log.Printf("Error getting order %s for payment: %v", orderID, err)
		return respondServiceError(c, err, "Could not retrieve order")
	}
	if !ownsOrder(identity, order) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
		})
	}
	if order.Status != models.OrderStatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Order has already been processed",
			"status":  order.Status,
		})
	}

	var payment *models.Payment
	if req.PaymentMethod == models.PaymentMethodCreditCard {
		payment, err = h.paymentService.ProcessCreditCard(order, services.CardDetails{
			Number:     req.CardNumber,
			HolderName: req.CardName,
			Expiry:     req.CardExpiry,
			CVV:        req.CardCVV,
		})
	} else {
		payment, err = h.paymentService.ProcessPayPal(order, services.PayPalDetails{
			Email: req.PayPalEmail,
		})
	}
	if err != nil {
		log.Printf("Error processing payment for order %s: %v", orderID, err)
		return respondServiceError(c, err, "Could not process payment")
	}

	if !payment.IsSuccessful() {
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"message": *payment.FailureReason,
			"payment": payment,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Payment successful! Your order has been confirmed.",
		"payment": payment,
		"order":   order,
	})
}
