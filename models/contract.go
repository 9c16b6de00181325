package models

import "time"

// Contract statuses. Like vehicle statuses there is no transition graph;
// updates may set any value.
const (
	ContractActive    = "active"
	ContractReturned  = "returned"
	ContractCompleted = "completed"
	ContractCancelled = "cancelled"
)

// Contract is a rental/lease agreement referencing one vehicle and one
// customer. VINNumber, CustomerName and CustomerPhone are snapshots supplied
// by the caller at creation time; they are never re-synced when the
// referenced vehicle or customer changes.
type Contract struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ContractNumber string `gorm:"column:contract_number;size:64;not null;uniqueIndex" json:"contract_number"`

	VehicleID  uint `gorm:"not null;index" json:"vehicle_id"`
	CustomerID uint `gorm:"not null;index" json:"customer_id"`

	VINNumber     string `gorm:"column:vin_number;size:17" json:"vin_number"`
	CustomerName  string `gorm:"size:128" json:"customer_name"`
	CustomerPhone string `gorm:"size:32" json:"customer_phone"`

	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	PaymentAmount float64    `gorm:"default:0" json:"payment_amount"`
	TaxAmount     float64    `gorm:"default:0" json:"tax_amount"`
	DepositAmount float64    `gorm:"default:0" json:"deposit_amount"`
	Status        string     `gorm:"size:16;default:active" json:"status"`
	CreatedBy     string     `gorm:"size:64" json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vehicle  *Vehicle        `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Customer *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Images   []ContractImage `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE" json:"images"`
}

func (Contract) TableName() string { return "ds_contract" }
