package models

import "time"

// Address is owned by exactly one user. At most one address per user may
// have IsDefault set; the address controllers enforce this inside the same
// transaction that flips the flag.
type Address struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"index;not null" json:"-"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Phone        string    `gorm:"not null" json:"phone"`
	AddressLine1 string    `gorm:"not null" json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `gorm:"not null" json:"city"`
	State        string    `gorm:"not null" json:"state"`
	ZipCode      string    `gorm:"not null" json:"zip_code"`
	Country      string    `gorm:"default:'USA'" json:"country"`
	IsDefault    bool      `gorm:"default:false" json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
