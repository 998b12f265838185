package watcher

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/chainsnap/internal/domain"
)

// Capturer takes and stashes a snapshot.
type Capturer interface {
	CaptureAndStash(ctx context.Context) (*domain.StashedSnapshot, error)
}

// Comparer compares two stashed snapshots and records the report.
type Comparer interface {
	Compare(ctx context.Context, leftID, rightID string) (*domain.ComparisonReport, error)
}

// Notifier receives every comparison that found discrepancies.
type Notifier interface {
	Notify(ctx context.Context, report *domain.ComparisonReport) error
}

// Config for Watcher.
type Config struct {
	Capturer Capturer
	Comparer Comparer
	Notifier Notifier
	Logger   zerolog.Logger
	Interval time.Duration // Capture interval
}

// Watcher captures a snapshot every interval and compares it with the one
// before, so state that should be stable between captures is checked
// continuously.
type Watcher struct {
	capturer Capturer
	comparer Comparer
	notifier Notifier
	logger   zerolog.Logger
	interval time.Duration

	previous string
}

// New creates a new Watcher. A nil notifier logs mismatches.
func New(cfg Config) *Watcher {
	if cfg.Interval == 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Notifier == nil {
		cfg.Notifier = NewLogNotifier(cfg.Logger)
	}

	return &Watcher{
		capturer: cfg.Capturer,
		comparer: cfg.Comparer,
		notifier: cfg.Notifier,
		logger:   cfg.Logger.With().Str("component", "watcher").Logger(),
		interval: cfg.Interval,
	}
}

// Start runs until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.interval).Msg("snapshot watcher started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Capture immediately on start
	if err := w.tick(ctx); err != nil {
		w.logger.Error().Err(err).Msg("watch tick failed")
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("snapshot watcher shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := w.tick(ctx); err != nil {
				w.logger.Error().Err(err).Msg("watch tick failed")
			}
		}
	}
}

// tick captures one snapshot and compares it with the previous capture.
func (w *Watcher) tick(ctx context.Context) error {
	current, err := w.capturer.CaptureAndStash(ctx)
	if err != nil {
		return err
	}

	previous := w.previous
	w.previous = current.ID
	if previous == "" {
		return nil
	}

	report, err := w.comparer.Compare(ctx, previous, current.ID)
	if err != nil {
		return err
	}
	if report.Equal {
		return nil
	}

	if err := w.notifier.Notify(ctx, report); err != nil {
		w.logger.Error().Err(err).Str("report_id", report.ID).Msg("failed to notify mismatch")
	}
	return nil
}

// LogNotifier logs mismatches.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the report summary.
func (n *LogNotifier) Notify(ctx context.Context, report *domain.ComparisonReport) error {
	n.logger.Warn().
		Str("report_id", report.ID).
		Str("left_id", report.LeftID).
		Str("right_id", report.RightID).
		Int("discrepancies", len(report.Discrepancies)).
		Msg("snapshot drift detected")
	return nil
}
