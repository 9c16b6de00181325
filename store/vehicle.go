package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"dsback/models"
)

type VehicleStore struct {
	db *gorm.DB
}

func NewVehicleStore(db *gorm.DB) *VehicleStore {
	return &VehicleStore{db: db}
}

// List returns all vehicles, newest first.
func (s *VehicleStore) List(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (s *VehicleStore) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

// GetByVIN is an exact-match lookup; the VIN is compared as stored, without
// normalization.
func (s *VehicleStore) GetByVIN(ctx context.Context, vin string) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.db.WithContext(ctx).Where("vin = ?", vin).First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

// Search matches a case-insensitive substring against make and model.
func (s *VehicleStore) Search(ctx context.Context, q string) ([]models.Vehicle, error) {
	pattern := "%" + strings.ToLower(q) + "%"
	var out []models.Vehicle
	err := s.db.WithContext(ctx).
		Where("lower(make) LIKE ? OR lower(model) LIKE ?", pattern, pattern).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// Makes returns the distinct makes present in inventory, for dashboard
// dropdowns.
func (s *VehicleStore) Makes(ctx context.Context) ([]string, error) {
	var out []string
	err := s.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Distinct("make").
		Order("make").
		Pluck("make", &out).Error
	return out, err
}

func (s *VehicleStore) Create(ctx context.Context, v *models.Vehicle) error {
	return s.db.WithContext(ctx).Create(v).Error
}

// VehicleUpdate carries the optional fields of a partial update. Nil fields
// are left untouched.
type VehicleUpdate struct {
	VIN     *string
	Make    *string
	Model   *string
	Year    *int
	Color   *string
	Mileage *int64
	Price   *float64
	Status  *string
}

func (u VehicleUpdate) changes() map[string]any {
	m := map[string]any{}
	if u.VIN != nil {
		m["vin"] = *u.VIN
	}
	if u.Make != nil {
		m["make"] = *u.Make
	}
	if u.Model != nil {
		m["model"] = *u.Model
	}
	if u.Year != nil {
		m["year"] = *u.Year
	}
	if u.Color != nil {
		m["color"] = *u.Color
	}
	if u.Mileage != nil {
		m["mileage"] = *u.Mileage
	}
	if u.Price != nil {
		m["price"] = *u.Price
	}
	if u.Status != nil {
		m["status"] = *u.Status
	}
	return m
}

// Update applies the supplied fields and returns the fresh row. An update
// naming no fields reports ErrNotFound rather than echoing the row back;
// callers depend on this.
func (s *VehicleStore) Update(ctx context.Context, id uint, upd VehicleUpdate) (*models.Vehicle, error) {
	changes := upd.changes()
	if len(changes) == 0 {
		return nil, ErrNotFound
	}
	res := s.db.WithContext(ctx).
		Model(&models.Vehicle{}).
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

// Delete removes the row physically. It reports true iff a row was removed.
func (s *VehicleStore) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Vehicle{}, id)
	return res.RowsAffected > 0, res.Error
}
