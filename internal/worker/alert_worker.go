package worker

// alert_worker.go
// Processes alert_raised jobs from QueueAlerts: emails the configured
// recipient about a newly created low-stock or expiry alert. Delivery is
// best-effort; failed sends land in the dead letter queue.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"invtrack/internal/infra"
)

// AlertJobPayload is the job envelope sent to QueueAlerts.
type AlertJobPayload struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
	ItemID  *int   `json:"item_id"`
}

type AlertWorker struct {
	mailer *infra.Mailer
	to     string
}

func NewAlertWorker(mailer *infra.Mailer, to string) *AlertWorker {
	return &AlertWorker{mailer: mailer, to: to}
}

func (w *AlertWorker) Process(ctx context.Context, rdb *redis.Client, queue string, raw json.RawMessage) {
	var payload AlertJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alert_worker: invalid payload")
		return
	}

	log.Info().
		Str("kind", payload.Kind).
		Str("title", payload.Title).
		Msg("alert raised")

	if w.mailer == nil || !w.mailer.Enabled() || w.to == "" {
		return
	}

	subject := fmt.Sprintf("[InvTrack] %s: %s", payload.Kind, payload.Title)
	if err := w.mailer.Send(w.to, subject, payload.Message); err != nil {
		log.Error().Err(err).Str("to", w.to).Msg("alert_worker: failed to send email")
		SendToDLQ(ctx, rdb, queue, "alert_raised", raw, err.Error(), 1)
		return
	}
	log.Info().Str("to", w.to).Msg("alert_worker: notification sent")
}
