package models

import "time"

type Cart struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     string     `gorm:"uniqueIndex"` // Enforces ONE cart per user
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice float64    `json:"total_price"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartItem holds at most one row per distinct product in a cart; adding a
// product that is already present increments Quantity instead.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index" json:"-"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
