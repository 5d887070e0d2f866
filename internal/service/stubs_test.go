package service_test

// In-memory repository stubs. DB() returns nil, which makes the services run
// their transaction closures directly (unit test mode).

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"invtrack/internal/model"
)

// ── ItemRepository stub ──────────────────────────────────────────────────────

type stubItemRepo struct {
	items  map[int]*model.Item
	nextID int
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[int]*model.Item), nextID: 1}
}

func (r *stubItemRepo) Create(_ context.Context, item *model.Item) error {
	return r.CreateTx(nil, item)
}

func (r *stubItemRepo) CreateTx(_ *gorm.DB, item *model.Item) error {
	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id int) (*model.Item, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubItemRepo) FindByIDTx(_ *gorm.DB, id int) (*model.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *stubItemRepo) List(_ context.Context) ([]model.Item, error) {
	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]model.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.items[id])
	}
	return out, nil
}

func (r *stubItemRepo) Save(_ context.Context, item *model.Item) error {
	return r.SaveTx(nil, item)
}

func (r *stubItemRepo) SaveTx(_ *gorm.DB, item *model.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) AdjustQuantityTx(_ *gorm.DB, id int, delta int) error {
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity += delta
	return nil
}

func (r *stubItemRepo) FindExpiredAsOf(_ context.Context, day model.Date) ([]model.Item, error) {
	var out []model.Item
	for _, item := range r.items {
		if item.ExpiryDate != nil && !item.ExpiryDate.After(day.Time) {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

// ── AlertRepository stub ─────────────────────────────────────────────────────

type stubAlertRepo struct {
	alerts map[int]*model.Alert
	nextID int
}

func newStubAlertRepo() *stubAlertRepo {
	return &stubAlertRepo{alerts: make(map[int]*model.Alert), nextID: 1}
}

func (r *stubAlertRepo) Create(_ context.Context, alert *model.Alert) error {
	return r.CreateTx(nil, alert)
}

func (r *stubAlertRepo) CreateTx(_ *gorm.DB, alert *model.Alert) error {
	if alert.ID == 0 {
		alert.ID = r.nextID
		r.nextID++
	}
	r.alerts[alert.ID] = alert
	return nil
}

func (r *stubAlertRepo) List(_ context.Context) ([]model.Alert, error) {
	ids := make([]int, 0, len(r.alerts))
	for id := range r.alerts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]model.Alert, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.alerts[id])
	}
	return out, nil
}

func (r *stubAlertRepo) FindByItemAndKindTx(_ *gorm.DB, itemID int, kind string) (*model.Alert, error) {
	for _, a := range r.alerts {
		if a.ItemID != nil && *a.ItemID == itemID && a.Kind == kind {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *stubAlertRepo) DeleteByItemAndKindTx(_ *gorm.DB, itemID int, kind string) error {
	for id, a := range r.alerts {
		if a.ItemID != nil && *a.ItemID == itemID && a.Kind == kind {
			delete(r.alerts, id)
		}
	}
	return nil
}

// byKind returns the alerts recorded for an item with the given kind.
func (r *stubAlertRepo) byKind(itemID int, kind string) []model.Alert {
	var out []model.Alert
	for _, a := range r.alerts {
		if a.ItemID != nil && *a.ItemID == itemID && a.Kind == kind {
			out = append(out, *a)
		}
	}
	return out
}

// ── TransactionRepository stub ───────────────────────────────────────────────

type stubTransactionRepo struct {
	txns   map[int]*model.Transaction
	nextID int
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{txns: make(map[int]*model.Transaction), nextID: 1}
}

func (r *stubTransactionRepo) CreateTx(_ *gorm.DB, txn *model.Transaction) error {
	if txn.ID == 0 {
		txn.ID = r.nextID
		r.nextID++
	}
	r.txns[txn.ID] = txn
	return nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id int) (*model.Transaction, error) {
	txn, ok := r.txns[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *txn
	return &copied, nil
}

func (r *stubTransactionRepo) List(_ context.Context) ([]model.Transaction, error) {
	ids := make([]int, 0, len(r.txns))
	for id := range r.txns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]model.Transaction, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.txns[id])
	}
	return out, nil
}

func (r *stubTransactionRepo) Delete(_ context.Context, id int) error {
	delete(r.txns, id)
	return nil
}

func (r *stubTransactionRepo) DB() *gorm.DB { return nil }
