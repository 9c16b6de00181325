package models

import "time"

// Vehicle inventory statuses. No transition rules are enforced; any status
// may be written over any other.
const (
	VehicleAvailable   = "available"
	VehicleRented      = "rented"
	VehicleMaintenance = "maintenance"
	VehicleSold        = "sold"
)

// Vehicle is a unit of dealership inventory. The VIN is stored exactly as
// received, with uniqueness enforced by the store.
type Vehicle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VIN       string    `gorm:"column:vin;size:17;not null;uniqueIndex" json:"vin"`
	Make      string    `gorm:"size:64;not null" json:"make"`
	Model     string    `gorm:"size:64;not null" json:"model"`
	Year      int       `gorm:"not null" json:"year"`
	Color     string    `gorm:"size:32" json:"color"`
	Mileage   int64     `gorm:"default:0" json:"mileage"`
	Price     float64   `gorm:"default:0" json:"price"`
	Status    string    `gorm:"size:16;default:available" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the original store's table name.
func (Vehicle) TableName() string { return "ds_vehicle" }
