package generation_log

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, rec *GenerationRecord) error
	ListRecent(ctx context.Context, limit int) ([]GenerationRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *GenerationRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]GenerationRecord, error) {
	var records []GenerationRecord
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&GenerationRecord{})
}
