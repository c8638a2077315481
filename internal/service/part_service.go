package service

import (
	"context"

	"anoa.com/noorautomobiles/internal/dto"
	"anoa.com/noorautomobiles/internal/model"
	"anoa.com/noorautomobiles/internal/repository"
	"anoa.com/noorautomobiles/pkg/apperror"
)

type PartService interface {
	List(ctx context.Context, filter dto.PartFilter) ([]*model.Part, error)
	Get(ctx context.Context, id uint) (*model.Part, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, req dto.CreatePartRequest) (*model.Part, error)
	Update(ctx context.Context, id uint, req dto.UpdatePartRequest) (*model.Part, error)
	Delete(ctx context.Context, id uint) error
}

type partService struct {
	repo repository.PartRepository
}

func NewPartService(repo repository.PartRepository) PartService {
	return &partService{repo: repo}
}

func (s *partService) List(ctx context.Context, filter dto.PartFilter) ([]*model.Part, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *partService) Get(ctx context.Context, id uint) (*model.Part, error) {
	part, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "part not found")
	}
	return part, nil
}

func (s *partService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCategories(ctx)
}

func (s *partService) Create(ctx context.Context, req dto.CreatePartRequest) (*model.Part, error) {
	part := req.ToModel()
	if err := s.repo.Create(ctx, part); err != nil {
		return nil, err
	}
	return part, nil
}

func (s *partService) Update(ctx context.Context, id uint, req dto.UpdatePartRequest) (*model.Part, error) {
	if req.Availability.Set && !isValidAvailability(req.Availability) {
		return nil, apperror.Validation("Availability must be one of: in_stock out_of_stock coming_soon")
	}

	part, err := s.repo.Update(ctx, id, req.Updates())
	if err != nil {
		return nil, notFoundOr(err, "part not found")
	}
	return part, nil
}

func (s *partService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "part not found")
	}
	return s.repo.Delete(ctx, id)
}

func isValidAvailability(availability dto.Nullable[string]) bool {
	if !availability.Valid {
		return false
	}
	switch availability.Value {
	case model.PartInStock, model.PartOutOfStock, model.PartComingSoon:
		return true
	}
	return false
}
