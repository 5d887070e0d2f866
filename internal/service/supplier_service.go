package service

import (
	"context"

	"invtrack/internal/dto"
	"invtrack/internal/model"
	"invtrack/internal/repository"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

// Placeholder values for contact fields the client leaves out.
const (
	defaultContactPerson = "Not specified"
	defaultEmail         = "No email"
	defaultPhoneNumber   = "No phone"
	defaultAddress       = "Address not provided"
	defaultItemsProvided = "Various items"
	defaultStatus        = "Active"
)

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*model.Supplier, error) {
	supplier := &model.Supplier{
		Name:          req.Name,
		ContactPerson: orDefault(req.ContactPerson, defaultContactPerson),
		Email:         orDefault(req.Email, defaultEmail),
		PhoneNumber:   orDefault(req.PhoneNumber, defaultPhoneNumber),
		Address:       orDefault(req.Address, defaultAddress),
		ItemsProvided: orDefault(req.ItemsProvided, defaultItemsProvided),
		Status:        orDefault(req.Status, defaultStatus),
	}
	if req.Rating != nil {
		supplier.Rating = *req.Rating
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) List(ctx context.Context) ([]model.Supplier, error) {
	return s.repo.List(ctx)
}

func orDefault(v *string, def string) string {
	if v != nil && *v != "" {
		return *v
	}
	return def
}
