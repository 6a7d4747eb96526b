package models

import "gorm.io/gorm"

// Pizza sizes and crust styles accepted by the cart surface.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"

	CrustThin    = "thin"
	CrustRegular = "regular"
	CrustThick   = "thick"
	CrustStuffed = "stuffed"
)

// MaxCartItemQuantity caps the quantity of a single cart line item.
const MaxCartItemQuantity = 20

// ValidSizes is the set of accepted pizza sizes.
var ValidSizes = map[string]bool{SizeSmall: true, SizeMedium: true, SizeLarge: true}

// ValidCrusts is the set of accepted crust styles.
var ValidCrusts = map[string]bool{CrustThin: true, CrustRegular: true, CrustThick: true, CrustStuffed: true}

// CartItem represents one configurable pizza in a customer's cart.
// Exactly one of SessionID and UserID is set; that is the cart's owner.
// UnitPrice is locked in when the item is added and is never recomputed
// from later catalog changes.
type CartItem struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	SessionID  *string   `json:"session_id" gorm:"index;type:varchar(100)"`
	UserID     *string   `json:"user_id" gorm:"index;type:varchar(36)"`
	PizzaID    *string   `json:"pizza_id" gorm:"type:varchar(36)"` // nil for fully custom pizzas
	Pizza      *Pizza    `json:"pizza,omitempty" gorm:"foreignKey:PizzaID"`
	Quantity   int       `json:"quantity" validate:"required,min=1,max=20"`
	Size       string    `json:"size" validate:"required,oneof=small medium large"`
	Crust      string    `json:"crust" validate:"required,oneof=thin regular thick stuffed"`
	IsCustom   bool      `json:"is_custom"`
	CustomName string    `json:"custom_name"` // Display name when there is no catalog pizza
	UnitPrice  float64   `json:"unit_price"`
	Toppings   []Topping `json:"toppings" gorm:"many2many:cart_item_toppings"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// DisplayName returns the customer-facing name of the line item.
func (c *CartItem) DisplayName() string {
	if c.Pizza != nil {
		return c.Pizza.Name
	}
	if c.CustomName != "" {
		return c.CustomName
	}
	return "Custom Pizza"
}

// ToppingsTotal sums the prices of the item's toppings.
func (c *CartItem) ToppingsTotal() float64 {
	var total float64
	for _, t := range c.Toppings {
		total += t.Price
	}
	return total
}
