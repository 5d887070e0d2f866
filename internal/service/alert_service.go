package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"invtrack/internal/dto"
	"invtrack/internal/model"
	"invtrack/internal/repository"
	"invtrack/internal/worker"
)

// AlertEvaluator owns the derived-alert invariant: at most one alert per
// (item, kind), present exactly while the triggering condition holds. Every
// mutation path (item create, item update, transaction posting, expiry sweep)
// goes through Evaluate, inside the same storage transaction as the mutation,
// so an item state and its alerts can never be committed out of step.
type AlertEvaluator interface {
	Evaluate(ctx context.Context, tx *gorm.DB, item *model.Item) error
}

type alertEvaluator struct {
	alerts     repository.AlertRepository
	dispatcher *worker.Dispatcher
}

// NewAlertEvaluator wires the evaluator. dispatcher may be nil; notification
// is best-effort and never affects the transaction outcome.
func NewAlertEvaluator(alerts repository.AlertRepository, dispatcher *worker.Dispatcher) AlertEvaluator {
	return &alertEvaluator{alerts: alerts, dispatcher: dispatcher}
}

func (e *alertEvaluator) Evaluate(ctx context.Context, tx *gorm.DB, item *model.Item) error {
	if err := e.reconcile(ctx, tx, item, model.AlertLowStock, item.LowOnStock(), lowStockAlert); err != nil {
		return err
	}
	return e.reconcile(ctx, tx, item, model.AlertExpiry, item.Expired(model.Today()), expiryAlert)
}

// reconcile moves alert storage toward the desired state for one (item, kind)
// pair: one row while the condition holds, none once it clears.
func (e *alertEvaluator) reconcile(ctx context.Context, tx *gorm.DB, item *model.Item, kind string, active bool, build func(*model.Item) *model.Alert) error {
	existing, err := e.alerts.FindByItemAndKindTx(tx, item.ID, kind)
	if err != nil {
		return err
	}
	switch {
	case active && existing == nil:
		alert := build(item)
		if err := e.alerts.CreateTx(tx, alert); err != nil {
			return err
		}
		e.notify(ctx, alert)
	case !active && existing != nil:
		return e.alerts.DeleteByItemAndKindTx(tx, item.ID, kind)
	}
	return nil
}

func (e *alertEvaluator) notify(ctx context.Context, alert *model.Alert) {
	if e.dispatcher == nil {
		return
	}
	_ = e.dispatcher.EnqueueAlertRaised(ctx, worker.AlertJobPayload{
		Kind:    alert.Kind,
		Title:   alert.Title,
		Message: alert.Message,
		ItemID:  alert.ItemID,
	})
}

func lowStockAlert(item *model.Item) *model.Alert {
	id := item.ID
	return &model.Alert{
		Kind:    model.AlertLowStock,
		Title:   fmt.Sprintf("Low stock for %s", item.Name),
		Message: fmt.Sprintf("Only %d %s left in stock.", item.Quantity, item.Unit),
		ItemID:  &id,
	}
}

func expiryAlert(item *model.Item) *model.Alert {
	id := item.ID
	return &model.Alert{
		Kind:    model.AlertExpiry,
		Title:   fmt.Sprintf("%s expired!", item.Name),
		Message: fmt.Sprintf("%s expired on %s.", item.Name, item.ExpiryDate),
		ItemID:  &id,
	}
}

// ─── AlertService — list / manual create ─────────────────────────────────────

type AlertService interface {
	List(ctx context.Context) ([]model.Alert, error)
	Create(ctx context.Context, req dto.CreateAlertRequest) (*model.Alert, error)
}

type alertService struct {
	repo repository.AlertRepository
}

func NewAlertService(repo repository.AlertRepository) AlertService {
	return &alertService{repo: repo}
}

func (s *alertService) List(ctx context.Context) ([]model.Alert, error) {
	return s.repo.List(ctx)
}

func (s *alertService) Create(ctx context.Context, req dto.CreateAlertRequest) (*model.Alert, error) {
	alert := &model.Alert{
		Kind:    req.Kind,
		Title:   req.Title,
		Message: req.Message,
		ItemID:  req.ItemID,
	}
	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}
