package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"invtrack/internal/model"
	"invtrack/internal/repository"
)

// StartExpirySweep launches a background loop that periodically re-evaluates
// items whose expiry date has passed. Alert evaluation is otherwise
// mutation-driven, so without the sweep an item that is never touched after
// its expiry date would never gain an expiry alert.
func StartExpirySweep(ctx context.Context, items repository.ItemRepository, evaluator AlertEvaluator, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// One pass at startup, then on every tick.
		sweepExpired(ctx, items, evaluator)
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("expiry sweep shutting down")
				return
			case <-ticker.C:
				sweepExpired(ctx, items, evaluator)
			}
		}
	}()
}

func sweepExpired(ctx context.Context, items repository.ItemRepository, evaluator AlertEvaluator) {
	expired, err := items.FindExpiredAsOf(ctx, model.Today())
	if err != nil {
		log.Error().Err(err).Msg("expiry sweep: listing expired items failed")
		return
	}
	for i := range expired {
		item := expired[i]
		err := runTx(ctx, items.DB(), func(tx *gorm.DB) error {
			return evaluator.Evaluate(ctx, tx, &item)
		})
		if err != nil {
			log.Error().Err(err).Int("item_id", item.ID).Msg("expiry sweep: evaluation failed")
		}
	}
	if len(expired) > 0 {
		log.Info().Int("items", len(expired)).Msg("expiry sweep completed")
	}
}
