package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invtrack/internal/dto"
	"invtrack/internal/model"
	"invtrack/internal/service"
)

type stubSupplierRepo struct {
	suppliers []model.Supplier
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	s.ID = len(r.suppliers) + 1
	r.suppliers = append(r.suppliers, *s)
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id int) (*model.Supplier, error) {
	for i := range r.suppliers {
		if r.suppliers[i].ID == id {
			return &r.suppliers[i], nil
		}
	}
	return nil, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	return r.suppliers, nil
}

func TestSupplierCreateFillsPlaceholders(t *testing.T) {
	svc := service.NewSupplierService(&stubSupplierRepo{})

	sup, err := svc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Acme Foods"})
	require.NoError(t, err)

	assert.Equal(t, "Acme Foods", sup.Name)
	assert.Equal(t, "Not specified", sup.ContactPerson)
	assert.Equal(t, "No email", sup.Email)
	assert.Equal(t, "No phone", sup.PhoneNumber)
	assert.Equal(t, "Address not provided", sup.Address)
	assert.Equal(t, "Various items", sup.ItemsProvided)
	assert.Equal(t, "Active", sup.Status)
	assert.Zero(t, sup.Rating)
}

func TestSupplierCreateKeepsProvidedValues(t *testing.T) {
	svc := service.NewSupplierService(&stubSupplierRepo{})

	rating := 4.5
	sup, err := svc.Create(context.Background(), dto.CreateSupplierRequest{
		Name:   "Acme Foods",
		Email:  strPtr("sales@acme.example"),
		Rating: &rating,
	})
	require.NoError(t, err)

	assert.Equal(t, "sales@acme.example", sup.Email)
	assert.Equal(t, 4.5, sup.Rating)
	assert.Equal(t, "No phone", sup.PhoneNumber)
}
