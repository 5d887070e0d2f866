package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"invtrack/internal/dto"
	"invtrack/internal/model"
	"invtrack/internal/repository"
)

// ItemService manages the item lifecycle. Creation requires the full field
// set; updates follow PATCH semantics. Both paths persist the item and run
// the alert evaluator inside a single transaction.
type ItemService interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (*model.Item, error)
	Update(ctx context.Context, id int, req dto.UpdateItemRequest) (*model.Item, error)
	Get(ctx context.Context, id int) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
}

type itemService struct {
	repo      repository.ItemRepository
	evaluator AlertEvaluator
}

func NewItemService(repo repository.ItemRepository, evaluator AlertEvaluator) ItemService {
	return &itemService{repo: repo, evaluator: evaluator}
}

func (s *itemService) Create(ctx context.Context, req dto.CreateItemRequest) (*model.Item, error) {
	item := &model.Item{
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		SupplierID:        req.SupplierID,
		LastRestocked:     req.LastRestocked,
		ExpiryDate:        req.ExpiryDate,
		LowStockThreshold: req.LowStockThreshold,
	}
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, item); err != nil {
			return err
		}
		return s.evaluator.Evaluate(ctx, tx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Update(ctx context.Context, id int, req dto.UpdateItemRequest) (*model.Item, error) {
	var item *model.Item
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		found, err := s.repo.FindByIDTx(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		if err != nil {
			return err
		}
		applyItemPatch(found, req)
		if err := s.repo.SaveTx(tx, found); err != nil {
			return err
		}
		item = found
		return s.evaluator.Evaluate(ctx, tx, found)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// applyItemPatch copies only the fields present in the request; absent fields
// keep their stored value.
func applyItemPatch(item *model.Item, req dto.UpdateItemRequest) {
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.SupplierID != nil {
		item.SupplierID = req.SupplierID
	}
	if req.LastRestocked != nil {
		item.LastRestocked = req.LastRestocked
	}
	if req.ExpiryDate != nil {
		item.ExpiryDate = req.ExpiryDate
	}
	if req.LowStockThreshold != nil {
		item.LowStockThreshold = *req.LowStockThreshold
	}
}

func (s *itemService) Get(ctx context.Context, id int) (*model.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx)
}
