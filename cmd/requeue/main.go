// Command requeue puts notifications whose email delivery failed back into
// the dispatcher queue with a fresh attempt counter.
// Usage: go run ./cmd/requeue [--dry-run]
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"heatwatch/internal/config"
	"heatwatch/internal/domain"
	"heatwatch/internal/logging"
	"heatwatch/internal/repository/postgres"
)

const batchSize = 100

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log)
	dryRun := len(os.Args) > 1 && os.Args[1] == "--dry-run"

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	notifRepo := postgres.NewNotificationRepo(db)

	ctx := context.Background()
	offset := 0
	total := 0

	for {
		var ids []uuid.UUID
		err := db.SelectContext(ctx, &ids,
			`SELECT id FROM notifications
			 WHERE delivery_status = $1
			 ORDER BY created_at
			 LIMIT $2 OFFSET $3`, domain.DeliveryFailed, batchSize, offset)
		if err != nil {
			return fmt.Errorf("querying failed notifications at offset %d: %w", offset, err)
		}
		if len(ids) == 0 {
			break
		}

		requeued := 0
		for _, id := range ids {
			if dryRun {
				continue
			}
			if err := notifRepo.UpdateDelivery(ctx, id, domain.DeliveryPending, 0); err != nil {
				logger.Warn("failed to requeue notification",
					slog.String("notification_id", id.String()), slog.String("error", err.Error()))
				continue
			}
			requeued++
		}
		if dryRun {
			requeued = len(ids)
			// Nothing changed, so page past this batch.
			offset += len(ids)
		} else {
			// Requeued rows leave the failed set; only skip the ones that stayed.
			offset += len(ids) - requeued
		}
		total += requeued

		logger.Info("progress", slog.Int("requeued", total))
	}

	logger.Info("requeue complete", slog.Int("notifications", total), slog.Bool("dry_run", dryRun))
	return nil
}
