package repository

import (
	"context"

	"gorm.io/gorm"

	"invtrack/internal/model"
)

// ItemRepository defines the data access contract for items. Services depend
// on this interface, not on the concrete GORM implementation, which keeps
// unit tests on in-memory stubs.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id int) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	Save(ctx context.Context, item *model.Item) error

	// Tx variants run inside a caller-owned transaction.
	CreateTx(tx *gorm.DB, item *model.Item) error
	FindByIDTx(tx *gorm.DB, id int) (*model.Item, error)
	SaveTx(tx *gorm.DB, item *model.Item) error
	// AdjustQuantityTx applies a relative delta atomically at the storage
	// layer, so concurrent postings on the same item cannot lose updates.
	AdjustQuantityTx(tx *gorm.DB, id int, delta int) error

	// FindExpiredAsOf returns items whose expiry date is on or before the day.
	FindExpiredAsOf(ctx context.Context, day model.Date) ([]model.Item, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id int) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	return &item, err
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) Save(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepo) CreateTx(tx *gorm.DB, item *model.Item) error {
	return tx.Create(item).Error
}

func (r *itemRepo) FindByIDTx(tx *gorm.DB, id int) (*model.Item, error) {
	var item model.Item
	err := tx.First(&item, id).Error
	return &item, err
}

func (r *itemRepo) SaveTx(tx *gorm.DB, item *model.Item) error {
	return tx.Save(item).Error
}

func (r *itemRepo) AdjustQuantityTx(tx *gorm.DB, id int, delta int) error {
	return tx.Model(&model.Item{}).Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *itemRepo) FindExpiredAsOf(ctx context.Context, day model.Date) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date <= ?", day).
		Find(&items).Error
	return items, err
}

func (r *itemRepo) DB() *gorm.DB { return r.db }
