package service

import (
	"context"

	"anoa.com/noorautomobiles/internal/dto"
	"anoa.com/noorautomobiles/internal/model"
	"anoa.com/noorautomobiles/internal/repository"
	"anoa.com/noorautomobiles/pkg/apperror"
)

type InquiryService interface {
	Submit(ctx context.Context, req dto.CreateInquiryRequest) (*model.Inquiry, error)
	List(ctx context.Context, filter dto.InquiryFilter) ([]*model.Inquiry, error)
	Get(ctx context.Context, id uint) (*model.Inquiry, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*model.Inquiry, error)
	Delete(ctx context.Context, id uint) error
}

type inquiryService struct {
	repo    repository.InquiryRepository
	carRepo repository.CarRepository
}

func NewInquiryService(repo repository.InquiryRepository, carRepo repository.CarRepository) InquiryService {
	return &inquiryService{repo: repo, carRepo: carRepo}
}

// Submit accepts a public inquiry. A referenced car must exist at submission
// time; afterwards the reference is weak and survives the car's deletion.
func (s *inquiryService) Submit(ctx context.Context, req dto.CreateInquiryRequest) (*model.Inquiry, error) {
	if req.CarID != nil {
		if _, err := s.carRepo.FindByID(ctx, *req.CarID); err != nil {
			return nil, notFoundOr(err, "referenced car not found")
		}
	}

	inquiry := &model.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		CarID:   req.CarID,
		Message: req.Message,
		Status:  model.InquiryPending,
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

func (s *inquiryService) List(ctx context.Context, filter dto.InquiryFilter) ([]*model.Inquiry, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *inquiryService) Get(ctx context.Context, id uint) (*model.Inquiry, error) {
	inquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "inquiry not found")
	}
	return inquiry, nil
}

func (s *inquiryService) UpdateStatus(ctx context.Context, id uint, status string) (*model.Inquiry, error) {
	switch status {
	case model.InquiryPending, model.InquiryContacted, model.InquiryClosed:
	default:
		return nil, apperror.Validation("Status must be one of: pending contacted closed")
	}

	inquiry, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, notFoundOr(err, "inquiry not found")
	}
	return inquiry, nil
}

func (s *inquiryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "inquiry not found")
	}
	return s.repo.Delete(ctx, id)
}
