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

type fakeInquiryRepo struct {
	inquiries map[uint]*model.Inquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: map[uint]*model.Inquiry{}}
}

func (r *fakeInquiryRepo) Create(ctx context.Context, inquiry *model.Inquiry) error {
	inquiry.ID = uint(len(r.inquiries) + 1)
	r.inquiries[inquiry.ID] = inquiry
	return nil
}

func (r *fakeInquiryRepo) FindAll(ctx context.Context, filter dto.InquiryFilter) ([]*model.Inquiry, error) {
	var out []*model.Inquiry
	for _, inquiry := range r.inquiries {
		if filter.Status == "" || inquiry.Status == filter.Status {
			out = append(out, inquiry)
		}
	}
	return out, nil
}

func (r *fakeInquiryRepo) FindByID(ctx context.Context, id uint) (*model.Inquiry, error) {
	inquiry, ok := r.inquiries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inquiry, nil
}

func (r *fakeInquiryRepo) UpdateStatus(ctx context.Context, id uint, status string) (*model.Inquiry, error) {
	inquiry, ok := r.inquiries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	inquiry.Status = status
	return inquiry, nil
}

func (r *fakeInquiryRepo) Delete(ctx context.Context, id uint) error {
	delete(r.inquiries, id)
	return nil
}

func TestInquirySubmitDefaultsToPending(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo(), newFakeCarRepo())

	inquiry, err := svc.Submit(context.Background(), dto.CreateInquiryRequest{
		Name:    "Ali",
		Email:   "ali@example.com",
		Message: "Is the Supra still available?",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if inquiry.Status != model.InquiryPending {
		t.Fatalf("expected pending status, got %s", inquiry.Status)
	}
	if inquiry.CarID != nil {
		t.Fatalf("expected no car reference")
	}
}

func TestInquirySubmitRejectsUnknownCar(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo(), newFakeCarRepo())

	carID := uint(7)
	_, err := svc.Submit(context.Background(), dto.CreateInquiryRequest{
		Name:    "Ali",
		Email:   "ali@example.com",
		Message: "Interested",
		CarID:   &carID,
	})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestInquiryUpdateStatus(t *testing.T) {
	repo := newFakeInquiryRepo()
	repo.inquiries[1] = &model.Inquiry{ID: 1, Status: model.InquiryPending}
	svc := NewInquiryService(repo, newFakeCarRepo())

	inquiry, err := svc.UpdateStatus(context.Background(), 1, model.InquiryContacted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if inquiry.Status != model.InquiryContacted {
		t.Fatalf("expected contacted, got %s", inquiry.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), 1, "spam"); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), 99, model.InquiryClosed); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
