package models

import "gorm.io/gorm"

// Pizza represents a predefined pizza on the menu.
type Pizza struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	BasePrice   float64   `json:"base_price" validate:"required,gt=0"`
	ImageURL    string    `json:"image_url" validate:"omitempty,max=500"`
	IsActive    bool      `json:"is_active"`
	Toppings    []Topping `json:"toppings" gorm:"many2many:pizza_toppings"` // Default toppings
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
