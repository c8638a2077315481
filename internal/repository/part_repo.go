package repository

import (
	"context"

	"anoa.com/noorautomobiles/internal/dto"
	"anoa.com/noorautomobiles/internal/model"
	"gorm.io/gorm"
)

type PartRepository interface {
	FindAll(ctx context.Context, filter dto.PartFilter) ([]*model.Part, error)
	FindByID(ctx context.Context, id uint) (*model.Part, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, part *model.Part) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*model.Part, error)
	Delete(ctx context.Context, id uint) error
}

type partRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) PartRepository {
	return &partRepository{db: db}
}

func (r *partRepository) FindAll(ctx context.Context, filter dto.PartFilter) ([]*model.Part, error) {
	query := r.db.WithContext(ctx).Model(&model.Part{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Availability != "" {
		query = query.Where("availability = ?", filter.Availability)
	}

	if filter.Featured == "true" {
		query = query.Where("featured = ?", true)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR description ILIKE ? OR category ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var parts []*model.Part
	if err := query.
		Order("featured DESC").
		Order("created_at DESC").
		Find(&parts).Error; err != nil {
		return nil, err
	}

	return parts, nil
}

func (r *partRepository) FindByID(ctx context.Context, id uint) (*model.Part, error) {
	var part model.Part
	if err := r.db.WithContext(ctx).First(&part, id).Error; err != nil {
		return nil, err
	}
	return &part, nil
}

func (r *partRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).Model(&model.Part{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *partRepository) Create(ctx context.Context, part *model.Part) error {
	return r.db.WithContext(ctx).Create(part).Error
}

func (r *partRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*model.Part, error) {
	var existing model.Part
	if err := r.db.WithContext(ctx).Select("id").First(&existing, id).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&model.Part{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *partRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Part{}, id).Error
}
