package models

import "gorm.io/gorm"

// Topping represents an individual topping customers can add to a pizza.
type Topping struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Price      float64 `json:"price" validate:"gte=0"`
	IsActive   bool    `json:"is_active"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
