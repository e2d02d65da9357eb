package repositories

import (
	"context"

	"gorm.io/gorm"

	"palmtec-registry/internal/adapters/persistence/models"
	"palmtec-registry/internal/core/domain"
)

// serialRepository implements SerialRepository interface
type serialRepository struct {
	db *gorm.DB
}

// NewSerialRepository creates a new serial repository
func NewSerialRepository(db *gorm.DB) SerialRepository {
	return &serialRepository{db: db}
}

// List returns every serial number record in table order
func (r *serialRepository) List(ctx context.Context) ([]domain.SerialNumber, error) {
	var rows []models.Serialdata
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	serials := make([]domain.SerialNumber, len(rows))
	for i := range rows {
		serials[i] = rows[i].ToDomain()
	}
	return serials, nil
}

// CountAvailable counts approved serial numbers that are not allocated yet
func (r *serialRepository) CountAvailable(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Serialdata{}).
		Where("isApproved = ?", 1).
		Where("isAllocated IS NULL OR isAllocated = ?", domain.AllocationNone).
		Count(&count).Error
	return count, err
}
