package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

const (
	sendTimeout         = 30 * time.Second
	defaultPollInterval = 10 * time.Second
)

// DispatcherConfig holds settings for the notification dispatcher.
type DispatcherConfig struct {
	PollInterval time.Duration
	MaxRetries   int
	Concurrency  int
	BatchSize    int
}

// NotificationDispatcher polls pending notifications and emails them to
// their recipients.
type NotificationDispatcher struct {
	notifRepo port.NotificationRepository
	sender    port.EmailSender
	cfg       DispatcherConfig
	wg        sync.WaitGroup

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// NewNotificationDispatcher creates a new NotificationDispatcher.
func NewNotificationDispatcher(notifRepo port.NotificationRepository, sender port.EmailSender, cfg DispatcherConfig) *NotificationDispatcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 1
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = cfg.Concurrency
	}
	return &NotificationDispatcher{
		notifRepo: notifRepo,
		sender:    sender,
		cfg:       cfg,
		inFlight:  make(map[uuid.UUID]struct{}),
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight sends have finished.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, d.cfg.Concurrency)

	slog.Info("notification dispatcher started",
		slog.Duration("poll", d.cfg.PollInterval),
		slog.Int("concurrency", d.cfg.Concurrency),
		slog.Int("max_retries", d.cfg.MaxRetries))

	for {
		select {
		case <-ctx.Done():
			slog.Info("notification dispatcher shutting down, waiting for in-flight sends")
			d.wg.Wait()
			slog.Info("notification dispatcher stopped")
			return
		case <-ticker.C:
			d.poll(ctx, sem)
		}
	}
}

func (d *NotificationDispatcher) poll(ctx context.Context, sem chan struct{}) {
	available := d.cfg.Concurrency - len(sem)
	if available <= 0 {
		return
	}
	if available > d.cfg.BatchSize {
		available = d.cfg.BatchSize
	}

	pending, err := d.notifRepo.ClaimPending(ctx, available, d.cfg.MaxRetries)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("claiming pending notifications failed", slog.String("error", err.Error()))
		}
		return
	}

	for i := range pending {
		n := pending[i]
		if !d.acquire(n.ID) {
			continue
		}

		sem <- struct{}{}
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			defer func() { <-sem }()
			defer d.release(n.ID)

			// Fresh context so in-flight sends complete during shutdown.
			sendCtx, cancel := context.WithTimeout(context.Background(), sendTimeout)
			defer cancel()
			d.Deliver(sendCtx, &n)
		}()
	}
}

func (d *NotificationDispatcher) acquire(id uuid.UUID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, busy := d.inFlight[id]; busy {
		return false
	}
	d.inFlight[id] = struct{}{}
	return true
}

func (d *NotificationDispatcher) release(id uuid.UUID) {
	d.mu.Lock()
	delete(d.inFlight, id)
	d.mu.Unlock()
}

// Deliver sends one claimed notification and records the outcome. A failed
// send stays pending until it has used MaxRetries attempts.
func (d *NotificationDispatcher) Deliver(ctx context.Context, n *domain.Notification) {
	log := slog.With(slog.String("notification_id", n.ID.String()), slog.Int("attempt", n.DeliveryTries))

	status := domain.DeliverySent
	if err := d.sender.SendNotificationEmail(ctx, n.RecipientEmail, n.RecipientName, n); err != nil {
		status = domain.DeliveryPending
		if n.DeliveryTries >= d.cfg.MaxRetries {
			status = domain.DeliveryFailed
		}
		log.Warn("notification email failed", slog.String("error", err.Error()), slog.String("status", string(status)))
	} else {
		log.Info("notification email sent")
	}

	if err := d.notifRepo.UpdateDelivery(ctx, n.ID, status, n.DeliveryTries); err != nil {
		log.Error("recording delivery status failed", slog.String("error", err.Error()))
	}
}
