package store

import (
	"context"

	"gorm.io/gorm"

	"dsback/models"
)

type ContractImageStore struct {
	db *gorm.DB
}

func NewContractImageStore(db *gorm.DB) *ContractImageStore {
	return &ContractImageStore{db: db}
}

// ListByContract returns the file metadata rows for a contract, newest
// upload first.
func (s *ContractImageStore) ListByContract(ctx context.Context, contractID uint) ([]models.ContractImage, error) {
	var out []models.ContractImage
	err := s.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("uploaded_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (s *ContractImageStore) GetByID(ctx context.Context, id uint) (*models.ContractImage, error) {
	var img models.ContractImage
	if err := s.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, translate(err)
	}
	return &img, nil
}

func (s *ContractImageStore) Create(ctx context.Context, img *models.ContractImage) error {
	return s.db.WithContext(ctx).Create(img).Error
}

func (s *ContractImageStore) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.ContractImage{}, id)
	return res.RowsAffected > 0, res.Error
}
