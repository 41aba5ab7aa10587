package batch

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sectoken-labs/ledgerd/internal/adapter"
	"github.com/sectoken-labs/ledgerd/internal/chain"
	"github.com/sectoken-labs/ledgerd/internal/claim"
	"github.com/sectoken-labs/ledgerd/internal/domain"
	"github.com/sectoken-labs/ledgerd/internal/logger"
	"github.com/sectoken-labs/ledgerd/internal/messaging"
	"github.com/sectoken-labs/ledgerd/internal/store"
	"github.com/sectoken-labs/ledgerd/internal/store/schema"
	"github.com/sectoken-labs/ledgerd/internal/worker"
)

// ScheduledEventConfig holds configuration for the scheduled event processor
type ScheduledEventConfig struct {
	WorkerPoolSize int           // Concurrent workers, each claiming one issuer at a time
	Interval       time.Duration // Time to sleep between cycles
}

// scheduledEventUpdate is the attribute payload of one scheduled update
type scheduledEventUpdate struct {
	FaceValue      *uint64 `json:"face_value,omitempty"`
	PrincipalValue *uint64 `json:"principal_value,omitempty"`
	Transferable   *bool   `json:"transferable,omitempty"`
	Status         *bool   `json:"status,omitempty"`
}

// scheduledEventProcessor applies issuer-scheduled token attribute updates
// on-chain. Workers coordinate through the claim registry so two workers
// never submit transactions for the same issuer concurrently, which would
// race on the issuer account nonce.
type scheduledEventProcessor struct {
	config    ScheduledEventConfig
	store     store.Store
	sender    chain.Sender
	registry  *claim.Registry
	notifier  *notifier
	json      adapter.JSON
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	fatal     atomic.Pointer[error]
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewScheduledEventProcessor creates the scheduled event batch processor
func NewScheduledEventProcessor(
	config ScheduledEventConfig,
	st store.Store,
	sender chain.Sender,
	registry *claim.Registry,
	publisher messaging.Publisher,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
) worker.Worker {
	return &scheduledEventProcessor{
		config:    config,
		store:     st,
		sender:    sender,
		registry:  registry,
		notifier:  newNotifier(st, publisher, jsonAdapter, clock),
		json:      jsonAdapter,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the worker's name
func (p *scheduledEventProcessor) Name() string {
	return "scheduled-eventd"
}

// Start begins the processor's main loop
func (p *scheduledEventProcessor) Start(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduled event processor already running")
	}
	defer func() {
		p.running.Store(false)
		close(p.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting scheduled event processor",
		zap.Int("worker_pool_size", p.config.WorkerPoolSize),
		zap.Duration("interval", p.config.Interval))

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Scheduled event processor stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-p.stopChan:
			logger.InfoCtx(ctx, "Scheduled event processor stop requested")
			return nil
		default:
			p.runCycle(ctx)
			// One worker's fatal error terminates the whole process rather
			// than silently running the next cycle with the same defect.
			if errPtr := p.fatal.Load(); errPtr != nil {
				return fmt.Errorf("scheduled event worker failed: %w", *errPtr)
			}
			if !p.sleep(ctx, p.config.Interval) {
				continue
			}
		}
	}
}

// Stop gracefully stops the processor with timeout support
func (p *scheduledEventProcessor) Stop(ctx context.Context) error {
	if !p.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping scheduled event processor")
	close(p.stopChan)

	select {
	case <-p.stoppedCh:
		logger.InfoCtx(ctx, "Scheduled event processor stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Scheduled event processor stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runCycle fans workers out over the due queue until it drains
func (p *scheduledEventProcessor) runCycle(ctx context.Context) {
	p.pool = pond.NewPool(p.config.WorkerPoolSize, pond.WithContext(ctx))

	for i := 0; i < p.config.WorkerPoolSize; i++ {
		workerID := uuid.NewString()
		p.pool.Submit(func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-p.stopChan:
					return
				default:
				}

				processed, err := p.processOne(ctx, workerID)
				if err != nil {
					if errors.Is(err, domain.ErrServiceUnavailable) {
						logger.WarnCtx(ctx, "Scheduled event pass hit a transient failure, retrying next cycle", zap.Error(err))
						return
					}
					logger.ErrorCtx(ctx, err)
					p.fatal.CompareAndSwap(nil, &err)
					return
				}
				if !processed {
					return
				}
			}
		})
	}

	p.pool.StopAndWait()
}

// processOne claims and applies a single due event. It reports false when no
// due work remains for this worker.
func (p *scheduledEventProcessor) processOne(ctx context.Context, workerID string) (bool, error) {
	now := p.clock.Now()

	// Query and claim happen inside one registry acquisition so another
	// worker cannot be handed the same issuer's event between the two.
	var event *schema.ScheduledEvent
	err := p.registry.Acquire(workerID, func(excluded []string) (string, error) {
		// Prefer issuers no other worker holds; when every due issuer is
		// already claimed, fall back to the oldest due item so a stuck claim
		// cannot starve the queue.
		found, err := p.store.GetDueScheduledEvent(ctx, now, excluded)
		if err != nil {
			return "", fmt.Errorf("failed to query due scheduled events: %w", err)
		}
		if found == nil && len(excluded) > 0 {
			found, err = p.store.GetDueScheduledEvent(ctx, now, nil)
			if err != nil {
				return "", fmt.Errorf("failed to query due scheduled events: %w", err)
			}
		}
		if found == nil {
			return "", nil
		}
		event = found
		return found.IssuerAddress, nil
	})
	if err != nil {
		return false, err
	}
	if event == nil {
		return false, nil
	}
	defer p.registry.Release(workerID)

	if err := p.applyEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Scheduled event failed",
			zap.String("event_id", event.EventID),
			zap.String("token_address", event.TokenAddress),
			zap.Error(err))

		if err := p.store.UpdateScheduledEventStatus(ctx, event.ID, schema.WorkStatusFailed); err != nil {
			return false, fmt.Errorf("failed to mark scheduled event failed: %w", err)
		}
		err = p.notifier.Notify(ctx, event.IssuerAddress,
			domain.NotificationTypeScheduledEventError,
			domain.NotificationCodeSendFailed,
			map[string]interface{}{
				"scheduled_event_id": event.EventID,
				"token_address":      event.TokenAddress,
				"token_type":         event.TokenType,
			})
		if err != nil {
			return false, fmt.Errorf("failed to write scheduled event notification: %w", err)
		}
		return true, nil
	}

	if err := p.store.UpdateScheduledEventStatus(ctx, event.ID, schema.WorkStatusSucceeded); err != nil {
		return false, fmt.Errorf("failed to mark scheduled event succeeded: %w", err)
	}

	logger.InfoCtx(ctx, "Applied scheduled event",
		zap.String("event_id", event.EventID),
		zap.String("token_address", event.TokenAddress))
	return true, nil
}

// applyEvent submits one setter transaction per attribute present in the payload
func (p *scheduledEventProcessor) applyEvent(ctx context.Context, event *schema.ScheduledEvent) error {
	var update scheduledEventUpdate
	if err := p.json.Unmarshal(event.Data, &update); err != nil {
		return fmt.Errorf("failed to decode event payload: %w", err)
	}

	contract := common.HexToAddress(event.TokenAddress)

	if update.FaceValue != nil {
		if _, err := p.sender.SendContractCall(ctx, contract, "setFaceValue", new(big.Int).SetUint64(*update.FaceValue)); err != nil {
			return fmt.Errorf("failed to set face value: %w", err)
		}
	}
	if update.PrincipalValue != nil {
		if _, err := p.sender.SendContractCall(ctx, contract, "setPrincipalValue", new(big.Int).SetUint64(*update.PrincipalValue)); err != nil {
			return fmt.Errorf("failed to set principal value: %w", err)
		}
	}
	if update.Transferable != nil {
		if _, err := p.sender.SendContractCall(ctx, contract, "setTransferable", *update.Transferable); err != nil {
			return fmt.Errorf("failed to set transferable: %w", err)
		}
	}
	if update.Status != nil {
		if _, err := p.sender.SendContractCall(ctx, contract, "setStatus", *update.Status); err != nil {
			return fmt.Errorf("failed to set status: %w", err)
		}
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation. Returns true if sleep completed normally.
func (p *scheduledEventProcessor) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-p.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-p.stopChan:
		return false
	}
}
