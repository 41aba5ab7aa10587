package batch

import (
	"context"
	"errors"
	"fmt"
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

// PersonalInfoConfig holds configuration for the personal info processor
type PersonalInfoConfig struct {
	WorkerPoolSize int           // Concurrent workers, each claiming one issuer at a time
	BatchSize      int           // Registration items processed per upload per pass
	Interval       time.Duration // Time to sleep between cycles
}

// personalInfoProcessor registers uploaded holder personal information both
// on-chain and into the off-chain index. Issuer exclusivity follows the same
// claim discipline as the scheduled event processor.
type personalInfoProcessor struct {
	config    PersonalInfoConfig
	store     store.Store
	chain     chain.Client
	sender    chain.Sender
	registry  *claim.Registry
	notifier  *notifier
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	fatal     atomic.Pointer[error]
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewPersonalInfoProcessor creates the personal info registration processor
func NewPersonalInfoProcessor(
	config PersonalInfoConfig,
	st store.Store,
	chainClient chain.Client,
	sender chain.Sender,
	registry *claim.Registry,
	publisher messaging.Publisher,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
) worker.Worker {
	return &personalInfoProcessor{
		config:    config,
		store:     st,
		chain:     chainClient,
		sender:    sender,
		registry:  registry,
		notifier:  newNotifier(st, publisher, jsonAdapter, clock),
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the worker's name
func (p *personalInfoProcessor) Name() string {
	return "personal-infod"
}

// Start begins the processor's main loop
func (p *personalInfoProcessor) Start(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return fmt.Errorf("personal info processor already running")
	}
	defer func() {
		p.running.Store(false)
		close(p.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting personal info processor",
		zap.Int("worker_pool_size", p.config.WorkerPoolSize),
		zap.Int("batch_size", p.config.BatchSize),
		zap.Duration("interval", p.config.Interval))

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Personal info processor stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-p.stopChan:
			logger.InfoCtx(ctx, "Personal info processor stop requested")
			return nil
		default:
			p.runCycle(ctx)
			// One worker's fatal error terminates the whole process rather
			// than silently running the next cycle with the same defect.
			if errPtr := p.fatal.Load(); errPtr != nil {
				return fmt.Errorf("personal info worker failed: %w", *errPtr)
			}
			if !p.sleep(ctx, p.config.Interval) {
				continue
			}
		}
	}
}

// Stop gracefully stops the processor with timeout support
func (p *personalInfoProcessor) Stop(ctx context.Context) error {
	if !p.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping personal info processor")
	close(p.stopChan)

	select {
	case <-p.stoppedCh:
		logger.InfoCtx(ctx, "Personal info processor stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Personal info processor stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runCycle fans workers out over pending uploads until none remain
func (p *personalInfoProcessor) runCycle(ctx context.Context) {
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

				processed, err := p.processOneUpload(ctx, workerID)
				if err != nil {
					if errors.Is(err, domain.ErrServiceUnavailable) {
						logger.WarnCtx(ctx, "Personal info pass hit a transient failure, retrying next cycle", zap.Error(err))
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

// processOneUpload claims and works one pending upload. It reports false when
// no pending uploads remain for this worker.
func (p *personalInfoProcessor) processOneUpload(ctx context.Context, workerID string) (bool, error) {
	// Query and claim happen inside one registry acquisition so another
	// worker cannot be handed the same issuer's upload between the two.
	var upload *schema.BatchRegisterUpload
	err := p.registry.Acquire(workerID, func(excluded []string) (string, error) {
		// Prefer issuers no other worker holds; when every pending issuer is
		// already claimed, fall back to the oldest upload so a stuck claim
		// cannot starve the queue.
		found, err := p.store.GetPendingRegisterUpload(ctx, excluded)
		if err != nil {
			return "", fmt.Errorf("failed to query pending uploads: %w", err)
		}
		if found == nil && len(excluded) > 0 {
			found, err = p.store.GetPendingRegisterUpload(ctx, nil)
			if err != nil {
				return "", fmt.Errorf("failed to query pending uploads: %w", err)
			}
		}
		if found == nil {
			return "", nil
		}
		upload = found
		return found.IssuerAddress, nil
	})
	if err != nil {
		return false, err
	}
	if upload == nil {
		return false, nil
	}
	defer p.registry.Release(workerID)

	items, err := p.store.ListPendingRegisterItems(ctx, upload.UploadID, p.config.BatchSize)
	if err != nil {
		return false, fmt.Errorf("failed to list pending registration items: %w", err)
	}

	for _, item := range items {
		if err := p.registerOne(ctx, upload, &item); err != nil {
			logger.WarnCtx(ctx, "Personal info registration failed",
				zap.String("upload_id", upload.UploadID),
				zap.String("account_address", item.AccountAddress),
				zap.Error(err))
			if err := p.store.UpdateRegisterItemStatus(ctx, item.ID, schema.WorkStatusFailed); err != nil {
				return false, fmt.Errorf("failed to mark registration item failed: %w", err)
			}
			continue
		}
		if err := p.store.UpdateRegisterItemStatus(ctx, item.ID, schema.WorkStatusSucceeded); err != nil {
			return false, fmt.Errorf("failed to mark registration item succeeded: %w", err)
		}
	}

	pending, err := p.store.CountRegisterItems(ctx, upload.UploadID, schema.WorkStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to count pending registration items: %w", err)
	}
	if pending > 0 {
		// More batches to go; leave the upload pending for the next pass
		return true, nil
	}

	return true, p.finishUpload(ctx, upload)
}

// registerOne submits one on-chain registration and mirrors it into the
// off-chain index
func (p *personalInfoProcessor) registerOne(ctx context.Context, upload *schema.BatchRegisterUpload, item *schema.BatchRegisterPersonalInfo) error {
	registry := p.chain.CallAddress(ctx, common.HexToAddress(item.TokenAddress), "personalInfoAddress", domain.ZeroAddress)
	if registry == domain.ZeroAddress {
		return fmt.Errorf("token %s has no personal info contract configured", item.TokenAddress)
	}

	_, err := p.sender.SendContractCall(ctx, registry, "register",
		common.HexToAddress(upload.IssuerAddress), string(item.PersonalInfo))
	if err != nil {
		return fmt.Errorf("failed to send register transaction: %w", err)
	}

	err = p.store.UpsertPersonalInfo(ctx, &schema.IDXPersonalInfo{
		AccountAddress: item.AccountAddress,
		IssuerAddress:  upload.IssuerAddress,
		PersonalInfo:   item.PersonalInfo,
	})
	if err != nil {
		return fmt.Errorf("failed to index personal info: %w", err)
	}
	return nil
}

// finishUpload rolls the item outcomes up into the upload status and writes
// the completion notification
func (p *personalInfoProcessor) finishUpload(ctx context.Context, upload *schema.BatchRegisterUpload) error {
	failed, err := p.store.CountRegisterItems(ctx, upload.UploadID, schema.WorkStatusFailed)
	if err != nil {
		return fmt.Errorf("failed to count failed registration items: %w", err)
	}

	status := schema.WorkStatusSucceeded
	code := domain.NotificationCodeProcessed
	if failed > 0 {
		status = schema.WorkStatusFailed
		code = domain.NotificationCodePartialFail
	}

	if err := p.store.UpdateRegisterUploadStatus(ctx, upload.UploadID, status); err != nil {
		return fmt.Errorf("failed to update upload status: %w", err)
	}

	err = p.notifier.Notify(ctx, upload.IssuerAddress,
		domain.NotificationTypeBatchRegisterPersonalInfo,
		code,
		map[string]interface{}{
			"upload_id":    upload.UploadID,
			"failed_count": failed,
		})
	if err != nil {
		return fmt.Errorf("failed to write upload notification: %w", err)
	}

	logger.InfoCtx(ctx, "Finished personal info upload",
		zap.String("upload_id", upload.UploadID),
		zap.Int64("failed_count", failed))
	return nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation. Returns true if sleep completed normally.
func (p *personalInfoProcessor) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-p.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-p.stopChan:
		return false
	}
}
