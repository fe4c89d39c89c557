// internal/watcher/watcher.go

// Package watcher owns the poll-validate-parse-notify cycle and its
// state: the from_date watermark and the text of the last failure alert.
// One sequential loop, no overlap between cycles.
package watcher

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/homewatch/internal/review"
)

// API abstracts the status service.
type API interface {
	HomeworkStatuses(ctx context.Context, from int64) (json.RawMessage, error)
}

// Notifier abstracts operator messaging. Delivery outcome is a bool;
// the notifier never fails loudly.
type Notifier interface {
	Notify(ctx context.Context, text string) bool
}

// Config is the minimal runtime config the watcher needs.
type Config struct {
	Interval time.Duration
	// InitialWatermark is the from_date (unix seconds) of the first
	// request, typically now minus the configured lookback.
	InitialWatermark int64
}

// Watcher drives the cycle. All mutable state lives here and is touched
// only by the run loop.
type Watcher struct {
	cfg      Config
	api      API
	notifier Notifier
	log      zerolog.Logger

	// watermark advances only after an error-free cycle, and never
	// rewinds.
	watermark int64

	// lastAlert is the text of the most recent failure notification;
	// an identical consecutive failure is logged but not re-sent.
	lastAlert string
}

// New creates a watcher with immutable config.
func New(cfg Config, api API, notifier Notifier, log zerolog.Logger) (*Watcher, error) {
	if api == nil {
		return nil, errors.New("watcher: api client required")
	}
	if notifier == nil {
		return nil, errors.New("watcher: notifier required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("watcher: interval must be > 0")
	}
	return &Watcher{
		cfg:       cfg,
		api:       api,
		notifier:  notifier,
		log:       log.With().Str("component", "watcher").Logger(),
		watermark: cfg.InitialWatermark,
	}, nil
}

// RunCycle performs exactly one poll cycle. Any failure is absorbed
// here: rendered to one string, logged, and alerted unless it repeats
// the previous alert verbatim.
func (w *Watcher) RunCycle(ctx context.Context) {
	if err := w.pollOnce(ctx); err != nil {
		w.handleFailure(ctx, err)
		return
	}

	// Condition cleared: the next failure gets alerted even if its text
	// matches one from before the recovery.
	w.lastAlert = ""
}

func (w *Watcher) pollOnce(ctx context.Context) error {
	w.log.Debug().Int64("from_date", w.watermark).Msg("requesting status changes")

	raw, err := w.api.HomeworkStatuses(ctx, w.watermark)
	if err != nil {
		return err
	}

	resp, err := review.CheckResponse(raw)
	if err != nil {
		return err
	}

	if len(resp.Homeworks) == 0 {
		w.log.Debug().Msg("no status changes")
		return nil
	}

	// Only the most recent entry is reported; the service lists newest
	// first and the next cycle's watermark covers the rest.
	text, err := review.ParseStatus(resp.Homeworks[0])
	if err != nil {
		return err
	}

	if !w.notifier.Notify(ctx, text) {
		w.log.Warn().Msg("status change alert not delivered")
	}

	// Advance regardless of delivery outcome: the change was observed,
	// and gating on Telegram health would re-report it every cycle.
	// The watermark never rewinds, whatever the service clock says.
	if resp.CurrentDate != nil && *resp.CurrentDate > w.watermark {
		w.watermark = *resp.CurrentDate
	}

	return nil
}

func (w *Watcher) handleFailure(ctx context.Context, err error) {
	text := "watch cycle failed: " + err.Error()
	w.log.Error().Err(err).Msg("watch cycle failed")

	if text == w.lastAlert {
		w.log.Debug().Msg("repeat failure, alert suppressed")
		return
	}

	// Best effort. The alert text is recorded even if delivery fails:
	// one attempt per distinct condition, not one per cycle.
	w.notifier.Notify(ctx, text)
	w.lastAlert = text
}
