package store

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"dsback/models"
)

const defaultPageSize = 50

type ContractStore struct {
	db *gorm.DB
}

func NewContractStore(db *gorm.DB) *ContractStore {
	return &ContractStore{db: db}
}

// List returns a page of contracts, newest first. Pagination is plain
// offset/limit with no stable cursor; concurrent inserts can shift page
// boundaries.
func (s *ContractStore) List(ctx context.Context, skip, limit int) ([]models.Contract, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	var out []models.Contract
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetByID loads the contract together with its referenced vehicle and
// customer in one joined read. The images list is an empty placeholder; file
// metadata is served by its own endpoint.
func (s *ContractStore) GetByID(ctx context.Context, id uint) (*models.Contract, error) {
	var c models.Contract
	err := s.db.WithContext(ctx).
		Joins("Vehicle").
		Joins("Customer").
		First(&c, "ds_contract.id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	c.Images = []models.ContractImage{}
	return &c, nil
}

func (s *ContractStore) GetByNumber(ctx context.Context, number string) (*models.Contract, error) {
	var c models.Contract
	if err := s.db.WithContext(ctx).Where("contract_number = ?", number).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// Search matches a case-insensitive substring against the contract number
// and the denormalized VIN.
func (s *ContractStore) Search(ctx context.Context, q string) ([]models.Contract, error) {
	pattern := "%" + strings.ToLower(q) + "%"
	var out []models.Contract
	err := s.db.WithContext(ctx).
		Where("lower(contract_number) LIKE ? OR lower(vin_number) LIKE ?", pattern, pattern).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// Create inserts the contract as given. The denormalized vin/customer fields
// are the caller's responsibility; this layer does not look up the
// referenced rows to derive them.
func (s *ContractStore) Create(ctx context.Context, c *models.Contract) error {
	return s.db.WithContext(ctx).Create(c).Error
}

// ContractUpdate carries the optional fields of a partial update. Any status
// value may replace any other; there is no transition graph.
type ContractUpdate struct {
	ContractNumber *string
	VehicleID      *uint
	CustomerID     *uint
	VINNumber      *string
	CustomerName   *string
	CustomerPhone  *string
	StartDate      *time.Time
	EndDate        *time.Time
	PaymentAmount  *float64
	TaxAmount      *float64
	DepositAmount  *float64
	Status         *string
	CreatedBy      *string
}

func (u ContractUpdate) changes() map[string]any {
	m := map[string]any{}
	if u.ContractNumber != nil {
		m["contract_number"] = *u.ContractNumber
	}
	if u.VehicleID != nil {
		m["vehicle_id"] = *u.VehicleID
	}
	if u.CustomerID != nil {
		m["customer_id"] = *u.CustomerID
	}
	if u.VINNumber != nil {
		m["vin_number"] = *u.VINNumber
	}
	if u.CustomerName != nil {
		m["customer_name"] = *u.CustomerName
	}
	if u.CustomerPhone != nil {
		m["customer_phone"] = *u.CustomerPhone
	}
	if u.StartDate != nil {
		m["start_date"] = *u.StartDate
	}
	if u.EndDate != nil {
		m["end_date"] = *u.EndDate
	}
	if u.PaymentAmount != nil {
		m["payment_amount"] = *u.PaymentAmount
	}
	if u.TaxAmount != nil {
		m["tax_amount"] = *u.TaxAmount
	}
	if u.DepositAmount != nil {
		m["deposit_amount"] = *u.DepositAmount
	}
	if u.Status != nil {
		m["status"] = *u.Status
	}
	if u.CreatedBy != nil {
		m["created_by"] = *u.CreatedBy
	}
	return m
}

func (s *ContractStore) Update(ctx context.Context, id uint, upd ContractUpdate) (*models.Contract, error) {
	changes := upd.changes()
	if len(changes) == 0 {
		return nil, ErrNotFound
	}
	res := s.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("id = ?", id).
		Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes the contract and its file metadata rows in one transaction,
// so the cascade holds on backends that do not enforce the declared foreign
// key.
func (s *ContractStore) Delete(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contract_id = ?", id).Delete(&models.ContractImage{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Contract{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
