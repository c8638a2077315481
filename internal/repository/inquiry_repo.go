package repository

import (
	"context"

	"anoa.com/noorautomobiles/internal/dto"
	"anoa.com/noorautomobiles/internal/model"
	"gorm.io/gorm"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *model.Inquiry) error
	FindAll(ctx context.Context, filter dto.InquiryFilter) ([]*model.Inquiry, error)
	FindByID(ctx context.Context, id uint) (*model.Inquiry, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*model.Inquiry, error)
	Delete(ctx context.Context, id uint) error
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *inquiryRepository) FindAll(ctx context.Context, filter dto.InquiryFilter) ([]*model.Inquiry, error) {
	query := r.db.WithContext(ctx).Preload("Car")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var inquiries []*model.Inquiry
	if err := query.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}

	return inquiries, nil
}

func (r *inquiryRepository) FindByID(ctx context.Context, id uint) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	if err := r.db.WithContext(ctx).Preload("Car").First(&inquiry, id).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// UpdateStatus is the only mutation an inquiry supports after submission.
func (r *inquiryRepository) UpdateStatus(ctx context.Context, id uint, status string) (*model.Inquiry, error) {
	result := r.db.WithContext(ctx).Model(&model.Inquiry{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *inquiryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Inquiry{}, id).Error
}
