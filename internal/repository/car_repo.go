package repository

import (
	"context"
	"time"

	"anoa.com/noorautomobiles/internal/dto"
	"anoa.com/noorautomobiles/internal/model"
	"gorm.io/gorm"
)

type CarRepository interface {
	FindAll(ctx context.Context, filter dto.CarFilter) ([]*model.Car, error)
	FindByID(ctx context.Context, id uint) (*model.Car, error)
	DistinctBrands(ctx context.Context) ([]string, error)
	Create(ctx context.Context, car *model.Car) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*model.Car, error)
	SetDisplayOrder(ctx context.Context, id uint, order int) error
	Delete(ctx context.Context, id uint) error
}

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

// FindAll appends one parameterized clause per present filter. The ordering
// is a fixed contract: featured first, then manual display order, then
// newest-created.
func (r *carRepository) FindAll(ctx context.Context, filter dto.CarFilter) ([]*model.Car, error) {
	query := r.db.WithContext(ctx).Model(&model.Car{})

	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.Featured == "true" {
		query = query.Where("featured = ?", true)
	}

	if filter.Upcoming == "true" {
		query = query.Where("status = ?", model.CarStatusUpcoming)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR brand ILIKE ? OR model ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var cars []*model.Car
	if err := query.
		Order("featured DESC").
		Order("display_order ASC").
		Order("created_at DESC").
		Find(&cars).Error; err != nil {
		return nil, err
	}

	return cars, nil
}

func (r *carRepository) FindByID(ctx context.Context, id uint) (*model.Car, error) {
	var car model.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	var brands []string
	if err := r.db.WithContext(ctx).Model(&model.Car{}).
		Distinct("brand").
		Order("brand ASC").
		Pluck("brand", &brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *carRepository) Create(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// Update applies a sparse column map to an existing row and reads back the
// materialized result. The target must exist before the statement is built.
func (r *carRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*model.Car, error) {
	var existing model.Car
	if err := r.db.WithContext(ctx).Select("id").First(&existing, id).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&model.Car{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *carRepository) SetDisplayOrder(ctx context.Context, id uint, order int) error {
	result := r.db.WithContext(ctx).Model(&model.Car{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"display_order": order,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete hard-deletes the car; the inquiries foreign key detaches dependents
// at the storage layer.
func (r *carRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Car{}, id).Error
}
