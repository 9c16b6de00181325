package models

import "time"

// Customer is a dealership customer record. The phone number is a secondary
// lookup key but is not unique.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:64;not null" json:"first_name"`
	LastName  string    `gorm:"size:64;not null" json:"last_name"`
	Phone     string    `gorm:"size:32;not null;index" json:"phone"`
	Email     string    `gorm:"size:128" json:"email,omitempty"`
	Address   string    `gorm:"size:255" json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "ds_customer" }
