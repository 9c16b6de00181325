package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"dsback/models"
)

type CustomerStore struct {
	db *gorm.DB
}

func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

func (s *CustomerStore) List(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (s *CustomerStore) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// GetByPhone returns the first customer with the given phone number. Phone
// numbers are not unique; ties resolve to the oldest row.
func (s *CustomerStore) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).Where("phone = ?", phone).Order("id").First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// Search matches a case-insensitive substring against the full name, so a
// query spanning first and last name ("arah john") still hits.
func (s *CustomerStore) Search(ctx context.Context, q string) ([]models.Customer, error) {
	pattern := "%" + strings.ToLower(q) + "%"
	var out []models.Customer
	err := s.db.WithContext(ctx).
		Where("lower(first_name || ' ' || last_name) LIKE ?", pattern).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (s *CustomerStore) Create(ctx context.Context, c *models.Customer) error {
	return s.db.WithContext(ctx).Create(c).Error
}

// CustomerUpdate carries the optional fields of a partial update.
type CustomerUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Address   *string
}

func (u CustomerUpdate) changes() map[string]any {
	m := map[string]any{}
	if u.FirstName != nil {
		m["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		m["last_name"] = *u.LastName
	}
	if u.Phone != nil {
		m["phone"] = *u.Phone
	}
	if u.Email != nil {
		m["email"] = *u.Email
	}
	if u.Address != nil {
		m["address"] = *u.Address
	}
	return m
}

// Update mirrors VehicleStore.Update, including the empty-update-is-not-found
// behavior.
func (s *CustomerStore) Update(ctx context.Context, id uint, upd CustomerUpdate) (*models.Customer, error) {
	changes := upd.changes()
	if len(changes) == 0 {
		return nil, ErrNotFound
	}
	res := s.db.WithContext(ctx).
		Model(&models.Customer{}).
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

func (s *CustomerStore) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Customer{}, id)
	return res.RowsAffected > 0, res.Error
}
