package repository

import (
	"context"

	"gorm.io/gorm"

	"invtrack/internal/model"
)

type TransactionRepository interface {
	CreateTx(tx *gorm.DB, txn *model.Transaction) error
	FindByID(ctx context.Context, id int) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
	Delete(ctx context.Context, id int) error
	DB() *gorm.DB
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) CreateTx(tx *gorm.DB, txn *model.Transaction) error {
	return tx.Create(txn).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id int) (*model.Transaction, error) {
	var txn model.Transaction
	err := r.db.WithContext(ctx).First(&txn, id).Error
	return &txn, err
}

func (r *transactionRepo) List(ctx context.Context) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := r.db.WithContext(ctx).Order("id ASC").Find(&txns).Error
	return txns, err
}

func (r *transactionRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Transaction{}, id).Error
}

func (r *transactionRepo) DB() *gorm.DB { return r.db }
