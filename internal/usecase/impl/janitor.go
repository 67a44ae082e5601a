package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// JanitorParams holds dependencies for the session janitor.
type JanitorParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Sweepers []usecase.Sweeper `group:"sweepers"`
}

// SessionJanitor periodically drops idle per-user state.
type SessionJanitor struct {
	sweepers []usecase.Sweeper
	idleTTL  time.Duration
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSessionJanitor creates the janitor and ties it to the fx lifecycle.
func NewSessionJanitor(params JanitorParams) *SessionJanitor {
	janitor := &SessionJanitor{
		sweepers: params.Sweepers,
		idleTTL:  params.Config.Session.IdleTTL,
		interval: params.Config.Session.SweepInterval,
		logger:   params.Logger,
		now:      time.Now,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			janitor.start()

			return nil
		},
		OnStop: janitor.stop,
	})

	return janitor
}

// SweepOnce runs every sweeper once and returns how many entries were dropped.
func (j *SessionJanitor) SweepOnce() int {
	olderThan := j.now().Add(-j.idleTTL)

	removed := 0
	for _, sweeper := range j.sweepers {
		removed += sweeper.Sweep(olderThan)
	}
	if removed > 0 {
		j.logger.Info("Dropped idle session state", slog.Int("count", removed))
	}

	return removed
}

func (j *SessionJanitor) start() {
	if j.interval <= 0 || j.idleTTL <= 0 {
		j.logger.Info("Session janitor disabled")

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan struct{})

	go func() {
		defer close(j.done)

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				j.SweepOnce()
			}
		}
	}()
}

func (j *SessionJanitor) stop(ctx context.Context) error {
	if j.cancel == nil {
		return nil
	}
	j.cancel()

	select {
	case <-j.done:
	case <-ctx.Done():
	}

	return nil
}
