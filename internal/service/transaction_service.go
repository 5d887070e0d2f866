package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"invtrack/internal/dto"
	"invtrack/internal/model"
	"invtrack/internal/repository"
)

// TransactionService posts and deletes inventory transactions. Posting one
// that references an existing item moves the item's quantity and re-evaluates
// its alerts, all in a single commit. A transaction referencing a missing
// item is persisted as-is: the orphan keeps the financial record while the
// inventory mutation is skipped.
//
// Deleting a transaction does NOT reverse its quantity effect. The record is
// the audit of a movement that physically happened; erasing the row does not
// put stock back on the shelf.
type TransactionService interface {
	Post(ctx context.Context, req dto.CreateTransactionRequest) (*model.Transaction, error)
	Delete(ctx context.Context, id int) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
}

type transactionService struct {
	repo      repository.TransactionRepository
	itemRepo  repository.ItemRepository
	evaluator AlertEvaluator
}

func NewTransactionService(repo repository.TransactionRepository, itemRepo repository.ItemRepository, evaluator AlertEvaluator) TransactionService {
	return &transactionService{repo: repo, itemRepo: itemRepo, evaluator: evaluator}
}

func (s *transactionService) Post(ctx context.Context, req dto.CreateTransactionRequest) (*model.Transaction, error) {
	txn := &model.Transaction{
		Date:        req.Date,
		Description: req.Description,
		Amount:      req.Amount,
		Quantity:    req.Quantity,
		Type:        req.Type,
		Category:    "General",
		Status:      "Completed",
		ItemID:      req.ItemID,
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Status != nil {
		txn.Status = *req.Status
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, txn); err != nil {
			return err
		}
		if txn.ItemID == nil {
			return nil
		}

		item, err := s.itemRepo.FindByIDTx(tx, *txn.ItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // orphan transaction: persisted, no mutation
		}
		if err != nil {
			return err
		}

		delta := quantityDelta(txn.Type, txn.Quantity)
		if delta != 0 {
			if err := s.itemRepo.AdjustQuantityTx(tx, item.ID, delta); err != nil {
				return err
			}
			// Re-read so the evaluator sees the post-adjustment quantity.
			if item, err = s.itemRepo.FindByIDTx(tx, item.ID); err != nil {
				return err
			}
		}
		return s.evaluator.Evaluate(ctx, tx, item)
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// quantityDelta maps a transaction type to its stock effect. Matching is
// case-insensitive; unknown types move nothing.
func quantityDelta(txnType string, quantity int) int {
	switch strings.ToLower(txnType) {
	case model.TransactionPurchase:
		return quantity
	case model.TransactionSale:
		return -quantity
	default:
		return 0
	}
}

func (s *transactionService) Delete(ctx context.Context, id int) (*model.Transaction, error) {
	txn, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) List(ctx context.Context) ([]model.Transaction, error) {
	return s.repo.List(ctx)
}
