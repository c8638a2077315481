package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/noorautomobiles/internal/dto"
	"anoa.com/noorautomobiles/internal/model"
	"anoa.com/noorautomobiles/internal/repository"
	"anoa.com/noorautomobiles/pkg/apperror"
	"gorm.io/gorm"
)

type CarService interface {
	List(ctx context.Context, filter dto.CarFilter) ([]*model.Car, error)
	Get(ctx context.Context, id uint) (*model.Car, error)
	Brands(ctx context.Context) ([]string, error)
	Create(ctx context.Context, req dto.CreateCarRequest) (*model.Car, error)
	Update(ctx context.Context, id uint, req dto.UpdateCarRequest) (*model.Car, error)
	Reorder(ctx context.Context, ids []uint) error
	Delete(ctx context.Context, id uint) error
}

type carService struct {
	repo repository.CarRepository
}

func NewCarService(repo repository.CarRepository) CarService {
	return &carService{repo: repo}
}

func (s *carService) List(ctx context.Context, filter dto.CarFilter) ([]*model.Car, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *carService) Get(ctx context.Context, id uint) (*model.Car, error) {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "car not found")
	}
	return car, nil
}

func (s *carService) Brands(ctx context.Context) ([]string, error) {
	return s.repo.DistinctBrands(ctx)
}

func (s *carService) Create(ctx context.Context, req dto.CreateCarRequest) (*model.Car, error) {
	car := req.ToModel()
	if err := s.repo.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) Update(ctx context.Context, id uint, req dto.UpdateCarRequest) (*model.Car, error) {
	if req.Status.Set && !isValidCarStatus(req.Status) {
		return nil, apperror.Validation("Status must be one of: available sold reserved upcoming")
	}
	if req.Year.Set && req.Year.Valid && (req.Year.Value < 1900 || req.Year.Value > 2030) {
		return nil, apperror.Validation("Year must be between 1900 and 2030")
	}

	car, err := s.repo.Update(ctx, id, req.Updates())
	if err != nil {
		return nil, notFoundOr(err, "car not found")
	}
	return car, nil
}

// Reorder assigns display_order positionally, one statement per id. The
// sequence is not atomic as a whole: when a later assignment fails, the
// earlier ones have already taken effect and stay applied.
func (s *carService) Reorder(ctx context.Context, ids []uint) error {
	for i, id := range ids {
		if err := s.repo.SetDisplayOrder(ctx, id, i+1); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(fmt.Sprintf("car %d not found, order applied up to position %d", id, i))
			}
			return fmt.Errorf("reorder stopped at position %d (car %d): %w", i+1, id, err)
		}
	}
	return nil
}

func (s *carService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "car not found")
	}
	return s.repo.Delete(ctx, id)
}

func isValidCarStatus(status dto.Nullable[string]) bool {
	if !status.Valid {
		return false
	}
	switch status.Value {
	case model.CarStatusAvailable, model.CarStatusSold, model.CarStatusReserved, model.CarStatusUpcoming:
		return true
	}
	return false
}

// notFoundOr translates a missing-row error into the domain not-found error
// and leaves everything else untouched.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(message)
	}
	return err
}
