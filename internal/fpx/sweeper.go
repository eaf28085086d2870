package fpx

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"forum-fingerprint-api/internal/logx"
	"forum-fingerprint-api/internal/redisx"
	"forum-fingerprint-api/pkg"
)

var sweepLogger = logx.GetScope("sweeper")

// sweepLeaseKey guards the sweep across processes when Redis is available.
const sweepLeaseKey = "fp:sweep:lease"

// SweeperConfig tunes the retention passes.
type SweeperConfig struct {
	// MaxAge evicts records first observed longer ago than this.
	MaxAge time.Duration
	// MaxPerUser caps retained records per user; zero disables the pass.
	MaxPerUser int
	// Interval is the schedule period, also used as the lease TTL.
	Interval time.Duration
}

// Sweeper enforces retention on a fixed schedule: age cutoff, orphan cleanup
// and the opt-in per-user cap. Each pass is idempotent and independent; a
// failed pass is logged and retried on the next tick.
type Sweeper struct {
	store   *Store
	rdb     *redisx.Client
	cfg     SweeperConfig
	running atomic.Bool
}

func NewSweeper(store *Store, rdb *redisx.Client, cfg SweeperConfig) *Sweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = 24 * time.Hour
	}
	return &Sweeper{store: store, rdb: rdb, cfg: cfg}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.RunOnce(ctx); err != nil {
					sweepLogger.Error("sweep failed", zap.Error(err))
				}
			}
		}
	}()
}

// RunOnce executes a single sweep. Overlapping runs are skipped: an atomic
// guard covers this process and a Redis lease covers the deployment when
// Redis is configured.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		sweepLogger.Debug("sweep already running, skipping")
		return nil
	}
	defer s.running.Store(false)

	if s.rdb != nil {
		ok, err := s.rdb.SetNX(ctx, sweepLeaseKey, time.Now().UTC().Format(time.RFC3339), s.cfg.Interval).Result()
		if err != nil {
			sweepLogger.Warn("sweep lease check failed, proceeding locally", zap.Error(err))
		} else if !ok {
			sweepLogger.Debug("sweep lease held elsewhere, skipping")
			return nil
		}
	}

	started := time.Now()
	var errs []error
	var aged, orphaned, capped int

	if s.cfg.MaxAge > 0 {
		n, err := s.store.DeleteOlderThan(ctx, started.Add(-s.cfg.MaxAge))
		aged = n
		if err != nil {
			errs = append(errs, err)
		}
	}

	n, err := s.store.DeleteOrphans(ctx)
	orphaned = n
	if err != nil {
		errs = append(errs, err)
	}

	if s.cfg.MaxPerUser > 0 {
		n, err := s.store.DeleteExcessPerUser(ctx, s.cfg.MaxPerUser)
		capped = n
		if err != nil {
			errs = append(errs, err)
		}
	}

	sweepLogger.Info("sweep finished",
		zap.Int("aged_out", aged),
		zap.Int("orphaned", orphaned),
		zap.Int("capped", capped),
		zap.String("took", pkg.SmartDurationFormat(time.Since(started))),
	)
	return errors.Join(errs...)
}
