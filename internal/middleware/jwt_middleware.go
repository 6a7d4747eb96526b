package middleware

import (
	"log"
	"strings"

	"pizzeria/internal/models"
	"pizzeria/internal/services"

	"github.com/gofiber/fiber/v2"
)

// IdentityKey is the Locals key under which the resolved cart-owning
// identity is stored.
const IdentityKey = "identity"

// SessionHeader carries the anonymous session id for guests.
const SessionHeader = "X-Session-ID"

// bearerToken extracts the token from an Authorization header, or "".
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		// Store claims in Fiber context for subsequent handlers
		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])
		c.Locals("is_admin", claims["is_admin"])

		// Continue to the next handler
		return c.Next()
	}
}

// AdminRequired allows only authenticated staff accounts through. It
// runs after AuthRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, ok := c.Locals("is_admin").(bool)
		if !ok || !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		return c.Next()
	}
}

// ResolveIdentity determines the cart-owning identity for customer
// routes: the JWT user when a valid token is presented, otherwise the
// anonymous session id from the X-Session-ID header. Requests carrying
// neither are rejected, since every cart operation must be scoped to an
// owner.
func ResolveIdentity(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString := bearerToken(c); tokenString != "" {
			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Invalid or expired token",
				})
			}
			if userID, ok := claims["user_id"].(string); ok && userID != "" {
				c.Locals(IdentityKey, models.UserIdentity(userID))
				c.Locals("user_id", userID)
				return c.Next()
			}
		}

		sessionID := c.Get(SessionHeader)
		if sessionID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "X-Session-ID header or Bearer token is required",
			})
		}
		c.Locals(IdentityKey, models.SessionIdentity(sessionID))
		return c.Next()
	}
}

// IdentityFrom reads the identity stored by ResolveIdentity.
func IdentityFrom(c *fiber.Ctx) models.Identity {
	identity, _ := c.Locals(IdentityKey).(models.Identity)
	return identity
}
