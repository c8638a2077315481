package service

import (
	"context"
	"errors"
	"testing"

	"anoa.com/noorautomobiles/internal/dto"
	"anoa.com/noorautomobiles/internal/model"
	"anoa.com/noorautomobiles/pkg/apperror"
	"gorm.io/gorm"
)

type fakeCarRepo struct {
	cars       map[uint]*model.Car
	orders     map[uint]int
	failOrders map[uint]error
	lastFilter dto.CarFilter
}

func newFakeCarRepo(cars ...*model.Car) *fakeCarRepo {
	repo := &fakeCarRepo{
		cars:       map[uint]*model.Car{},
		orders:     map[uint]int{},
		failOrders: map[uint]error{},
	}
	for _, car := range cars {
		repo.cars[car.ID] = car
	}
	return repo
}

func (r *fakeCarRepo) FindAll(ctx context.Context, filter dto.CarFilter) ([]*model.Car, error) {
	r.lastFilter = filter
	var out []*model.Car
	for _, car := range r.cars {
		out = append(out, car)
	}
	return out, nil
}

func (r *fakeCarRepo) FindByID(ctx context.Context, id uint) (*model.Car, error) {
	car, ok := r.cars[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return car, nil
}

func (r *fakeCarRepo) DistinctBrands(ctx context.Context) ([]string, error) {
	return []string{"Honda", "Toyota"}, nil
}

func (r *fakeCarRepo) Create(ctx context.Context, car *model.Car) error {
	car.ID = uint(len(r.cars) + 1)
	r.cars[car.ID] = car
	return nil
}

func (r *fakeCarRepo) Update(ctx context.Context, id uint, updates map[string]interface{}) (*model.Car, error) {
	car, ok := r.cars[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if title, ok := updates["title"].(*string); ok && title != nil {
		car.Title = *title
	}
	return car, nil
}

func (r *fakeCarRepo) SetDisplayOrder(ctx context.Context, id uint, order int) error {
	if err, ok := r.failOrders[id]; ok {
		return err
	}
	if _, ok := r.cars[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.orders[id] = order
	return nil
}

func (r *fakeCarRepo) Delete(ctx context.Context, id uint) error {
	delete(r.cars, id)
	return nil
}

func TestCarServiceGetNotFound(t *testing.T) {
	svc := NewCarService(newFakeCarRepo())

	_, err := svc.Get(context.Background(), 99999)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCarServiceUpdateRejectsBadStatus(t *testing.T) {
	repo := newFakeCarRepo(&model.Car{ID: 1, Title: "Supra"})
	svc := NewCarService(repo)

	req := dto.UpdateCarRequest{
		Status: dto.Nullable[string]{Value: "scrapped", Valid: true, Set: true},
	}
	_, err := svc.Update(context.Background(), 1, req)
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Null status is equally invalid for a NOT NULL enum column.
	req = dto.UpdateCarRequest{Status: dto.Nullable[string]{Set: true}}
	if _, err := svc.Update(context.Background(), 1, req); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected validation error for null status, got %v", err)
	}
}

func TestCarServiceUpdateRejectsImplausibleYear(t *testing.T) {
	repo := newFakeCarRepo(&model.Car{ID: 1})
	svc := NewCarService(repo)

	req := dto.UpdateCarRequest{
		Year: dto.Nullable[int]{Value: 1500, Valid: true, Set: true},
	}
	if _, err := svc.Update(context.Background(), 1, req); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCarServiceUpdateNotFound(t *testing.T) {
	svc := NewCarService(newFakeCarRepo())

	req := dto.UpdateCarRequest{
		Title: dto.Nullable[string]{Value: "New", Valid: true, Set: true},
	}
	if _, err := svc.Update(context.Background(), 42, req); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCarServiceReorderAppliesSequentially(t *testing.T) {
	repo := newFakeCarRepo(
		&model.Car{ID: 1}, &model.Car{ID: 2}, &model.Car{ID: 3},
		&model.Car{ID: 4}, &model.Car{ID: 5},
	)
	svc := NewCarService(repo)

	if err := svc.Reorder(context.Background(), []uint{5, 3, 1, 2, 4}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	want := map[uint]int{5: 1, 3: 2, 1: 3, 2: 4, 4: 5}
	for id, order := range want {
		if repo.orders[id] != order {
			t.Fatalf("car %d: got order %d, want %d", id, repo.orders[id], order)
		}
	}
}

func TestCarServiceReorderPartialFailureLeavesEarlierApplied(t *testing.T) {
	repo := newFakeCarRepo(
		&model.Car{ID: 1}, &model.Car{ID: 2}, &model.Car{ID: 3},
		&model.Car{ID: 4}, &model.Car{ID: 5},
	)
	repo.failOrders[3] = errors.New("connection reset")
	svc := NewCarService(repo)

	err := svc.Reorder(context.Background(), []uint{1, 2, 3, 4, 5})
	if err == nil {
		t.Fatalf("expected reorder to fail on third id")
	}

	// The sequence is not atomic: the first two assignments stay applied.
	if repo.orders[1] != 1 || repo.orders[2] != 2 {
		t.Fatalf("first two assignments must have taken effect: %v", repo.orders)
	}
	if _, ok := repo.orders[4]; ok {
		t.Fatalf("assignments after the failure must not have run: %v", repo.orders)
	}
}

func TestCarServiceReorderUnknownID(t *testing.T) {
	repo := newFakeCarRepo(&model.Car{ID: 1})
	svc := NewCarService(repo)

	err := svc.Reorder(context.Background(), []uint{1, 99})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if repo.orders[1] != 1 {
		t.Fatalf("first assignment must have taken effect before the failure")
	}
}

func TestCarServiceCreateAssignsID(t *testing.T) {
	repo := newFakeCarRepo()
	svc := NewCarService(repo)

	car, err := svc.Create(context.Background(), dto.CreateCarRequest{
		Title: "X", Brand: "Y", Model: "Z", Year: 2020,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if car.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if car.Status != model.CarStatusAvailable {
		t.Fatalf("expected default status, got %s", car.Status)
	}
}
