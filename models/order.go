package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // Order placed, awaiting fulfilment
	OrderStatusShipped   OrderStatus = "Shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "Delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "Cancelled" // Cancelled before shipping
)

// OrderAddress is the shipping address frozen at checkout time. It carries
// no identity or default flag: later edits or deletion of the source address
// must never change a historical order.
type OrderAddress struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
}

type Order struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	OrderRef       string       `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID         string       `gorm:"index;not null" json:"user_id"`
	User           User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items          []OrderItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount    float64      `json:"total_amount"`
	OrderAddress   OrderAddress `gorm:"embedded;embeddedPrefix:address_" json:"order_address"`
	Status         OrderStatus  `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	IdempotencyKey *string      `gorm:"uniqueIndex" json:"-"`
	CreatedAt      time.Time    `json:"created_at"`
}

// OrderItem snapshots the product fields a customer saw at checkout so the
// order history survives later catalog edits.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"-"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
}
