// Package scheduler runs the periodic lifecycle gauge collection.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/assettrack/backend/internal/infrastructure/config"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ErrAlreadyRunning is returned by Start on a started collector
var ErrAlreadyRunning = errors.New("lifecycle collector already running")

// LifecycleCollector samples a SnapshotSource on a cron schedule and fans
// every snapshot out to its sinks. Overlapping runs are skipped.
type LifecycleCollector struct {
	cron    *cron.Cron
	spec    string
	timeout time.Duration
	source  SnapshotSource
	sinks   []SnapshotSink
	logger  *zap.Logger
	now     func() time.Time

	mu      sync.Mutex
	last    *LifecycleSnapshot
	running bool
}

// NewLifecycleCollector validates the cron spec and builds a stopped collector
func NewLifecycleCollector(cfg config.SchedulerConfig, source SnapshotSource, logger *zap.Logger, sinks ...SnapshotSink) (*LifecycleCollector, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := cron.ParseStandard(cfg.LifecycleCronSpec); err != nil {
		return nil, fmt.Errorf("invalid lifecycle cron spec %q: %w", cfg.LifecycleCronSpec, err)
	}
	timeout := cfg.JobTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cl := cronLogger{logger.Named("cron").Sugar()}
	return &LifecycleCollector{
		cron:    cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		spec:    cfg.LifecycleCronSpec,
		timeout: timeout,
		source:  source,
		sinks:   sinks,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Start schedules collection and takes one sample immediately
func (c *LifecycleCollector) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return ErrAlreadyRunning
	}

	base := context.WithoutCancel(ctx)
	if _, err := c.cron.AddFunc(c.spec, func() {
		if err := c.Collect(base); err != nil {
			c.logger.Warn("lifecycle collection failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule lifecycle collection: %w", err)
	}
	c.cron.Start()
	c.running = true

	go func() {
		if err := c.Collect(base); err != nil {
			c.logger.Warn("initial lifecycle collection failed", zap.Error(err))
		}
	}()

	c.logger.Info("Lifecycle collector started", zap.String("spec", c.spec), zap.Duration("timeout", c.timeout))
	return nil
}

// Stop halts the schedule and waits for a running collection or ctx expiry
func (c *LifecycleCollector) Stop(ctx context.Context) error {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return nil
	}
	c.running = false
	c.mu.Unlock()

	select {
	case <-c.cron.Stop().Done():
		c.logger.Info("Lifecycle collector stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("lifecycle collector stop: %w", ctx.Err())
	}
}

// Collect takes one snapshot and hands it to every sink
func (c *LifecycleCollector) Collect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	started := c.now()
	snap, err := c.source.Snapshot(ctx, started)
	if err != nil {
		return err
	}
	for _, sink := range c.sinks {
		sink.Observe(ctx, snap)
	}

	c.mu.Lock()
	c.last = snap
	c.mu.Unlock()

	c.logger.Debug("Lifecycle snapshot collected",
		zap.Int64("active_assignments", snap.ActiveAssignments),
		zap.Int64("overdue_assignments", snap.OverdueAssignments),
		zap.Int64("pending_accessories", snap.PendingAccessories),
		zap.Duration("took", c.now().Sub(started)))
	return nil
}

// Last returns the most recent snapshot, nil before the first collection
func (c *LifecycleCollector) Last() *LifecycleSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
