package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"invtrack/internal/model"
)

// AlertRepository gives the evaluator keyed access to item-bound alerts so
// the "at most one alert per (item, kind)" invariant is enforced in one
// place instead of scattered existence checks.
type AlertRepository interface {
	Create(ctx context.Context, alert *model.Alert) error
	List(ctx context.Context) ([]model.Alert, error)

	CreateTx(tx *gorm.DB, alert *model.Alert) error
	// FindByItemAndKindTx returns (nil, nil) when no such alert exists.
	FindByItemAndKindTx(tx *gorm.DB, itemID int, kind string) (*model.Alert, error)
	DeleteByItemAndKindTx(tx *gorm.DB, itemID int, kind string) error
}

type alertRepo struct{ db *gorm.DB }

func NewAlertRepository(db *gorm.DB) AlertRepository { return &alertRepo{db: db} }

func (r *alertRepo) Create(ctx context.Context, alert *model.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepo) List(ctx context.Context) ([]model.Alert, error) {
	var alerts []model.Alert
	err := r.db.WithContext(ctx).Order("id ASC").Find(&alerts).Error
	return alerts, err
}

func (r *alertRepo) CreateTx(tx *gorm.DB, alert *model.Alert) error {
	return tx.Create(alert).Error
}

func (r *alertRepo) FindByItemAndKindTx(tx *gorm.DB, itemID int, kind string) (*model.Alert, error) {
	var alert model.Alert
	err := tx.Where("item_id = ? AND type = ?", itemID, kind).First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepo) DeleteByItemAndKindTx(tx *gorm.DB, itemID int, kind string) error {
	return tx.Where("item_id = ? AND type = ?", itemID, kind).Delete(&model.Alert{}).Error
}
