package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/sectoken-labs/ledgerd/internal/adapter"
	"github.com/sectoken-labs/ledgerd/internal/domain"
	"github.com/sectoken-labs/ledgerd/internal/logger"
	"github.com/sectoken-labs/ledgerd/internal/worker"
)

// DaemonConfig holds configuration for the sync daemon
type DaemonConfig struct {
	Interval time.Duration // Time to sleep between sync passes
}

// daemon drives the sync Processor on a fixed interval. A partial pass (chain
// head further ahead than one window) re-invokes the processor immediately so
// a cold start catches up as fast as the node allows.
type daemon struct {
	config    DaemonConfig
	processor Processor
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewDaemon creates the UTXO sync daemon
func NewDaemon(config DaemonConfig, processor Processor, clock adapter.Clock) worker.Worker {
	return &daemon{
		config:    config,
		processor: processor,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the worker's name
func (d *daemon) Name() string {
	return "utxo-syncd"
}

// Start begins the daemon's main loop
func (d *daemon) Start(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sync daemon already running")
	}
	defer func() {
		d.running.Store(false)
		close(d.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting UTXO sync daemon",
		zap.Duration("interval", d.config.Interval))

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "UTXO sync daemon stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-d.stopChan:
			logger.InfoCtx(ctx, "UTXO sync daemon stop requested")
			return nil
		default:
			result, err := d.processWithRetry(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				logger.ErrorCtx(ctx, err)
			}
			if result.Partial {
				// More windows behind the head; catch up without sleeping
				continue
			}
			if !d.sleep(ctx, d.config.Interval) {
				continue
			}
		}
	}
}

// Stop gracefully stops the daemon with timeout support
func (d *daemon) Stop(ctx context.Context) error {
	if !d.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping UTXO sync daemon")
	close(d.stopChan)

	select {
	case <-d.stoppedCh:
		logger.InfoCtx(ctx, "UTXO sync daemon stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "UTXO sync daemon stop interrupted by context timeout")
		return ctx.Err()
	}
}

// processWithRetry runs one sync pass, retrying with exponential backoff while
// the chain node is unavailable. Other failures are returned to the caller;
// the next tick retries them after the normal interval.
func (d *daemon) processWithRetry(ctx context.Context) (SyncResult, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Second
	b.MaxInterval = 1 * time.Minute
	b.MaxElapsedTime = 10 * time.Minute

	var result SyncResult
	operation := func() error {
		var err error
		result, err = d.processor.Process(ctx)
		if err != nil && !errors.Is(err, domain.ErrServiceUnavailable) {
			return backoff.Permanent(err)
		}
		return err
	}

	notifyOnError := func(err error, duration time.Duration) {
		logger.WarnCtx(ctx, "Chain node unavailable, retrying sync pass",
			zap.Error(err),
			zap.Duration("next_retry_in", duration))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return result, err
	}
	return result, nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation. Returns true if sleep completed normally.
func (d *daemon) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-d.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-d.stopChan:
		return false
	}
}
