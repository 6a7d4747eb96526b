package models

import "time"

// Order statuses. An order starts as pending; only a successful payment
// moves it to confirmed, after which staff drive it toward delivered.
// Cancelled is reachable from any non-terminal state.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatuses is the set of statuses the admin surface accepts.
var ValidOrderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusConfirmed: true,
	OrderStatusPreparing: true,
	OrderStatusReady:     true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

// Order is an immutable financial record created from a cart at checkout.
// Subtotal, Tax and Total are frozen at creation; only Status changes
// afterwards.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID          *string     `json:"user_id" gorm:"index;type:varchar(36)"`
	SessionID       string      `json:"session_id" gorm:"index;type:varchar(100)"`
	CustomerName    string      `json:"customer_name" validate:"required,max=255"`
	CustomerEmail   string      `json:"customer_email" validate:"required,email,max=255"`
	CustomerPhone   string      `json:"customer_phone" validate:"omitempty,max=50"`
	DeliveryAddress string      `json:"delivery_address" validate:"omitempty,max=500"`
	Notes           string      `json:"notes" validate:"omitempty,max=1000"`
	Subtotal        float64     `json:"subtotal"`
	Tax             float64     `json:"tax"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	Payment         *Payment    `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is an immutable snapshot of one cart line item at
// order-creation time. The pizza name and topping prices are copied by
// value so later catalog edits cannot alter the record.
type OrderItem struct {
	ID            string             `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID       string             `json:"order_id" gorm:"index;type:varchar(36)"`
	PizzaID       *string            `json:"pizza_id" gorm:"type:varchar(36)"`
	PizzaName     string             `json:"pizza_name"`
	Quantity      int                `json:"quantity"`
	Size          string             `json:"size"`
	Crust         string             `json:"crust"`
	IsCustom      bool               `json:"is_custom"`
	UnitPrice     float64            `json:"unit_price"`
	ToppingsPrice float64            `json:"toppings_price"`
	TotalPrice    float64            `json:"total_price"` // (UnitPrice + ToppingsPrice) * Quantity
	Toppings      []OrderItemTopping `json:"toppings,omitempty" gorm:"foreignKey:OrderItemID"`
}

// OrderItemTopping snapshots one topping's name and price onto an order
// item, independent of the catalog topping's later mutation or deletion.
type OrderItemTopping struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderItemID  string  `json:"order_item_id" gorm:"index;type:varchar(36)"`
	ToppingName  string  `json:"topping_name"`
	ToppingPrice float64 `json:"topping_price"`
}
