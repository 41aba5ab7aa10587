package syncer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sectoken-labs/ledgerd/internal/block"
	"github.com/sectoken-labs/ledgerd/internal/domain"
	"github.com/sectoken-labs/ledgerd/internal/ledger"
	"github.com/sectoken-labs/ledgerd/internal/logger"
	"github.com/sectoken-labs/ledgerd/internal/reconciler"
	"github.com/sectoken-labs/ledgerd/internal/store"
)

// SyncResult reports the outcome of one sync pass
type SyncResult struct {
	// Synced is true when the pass processed a block range
	Synced bool
	// Partial is true when the chain head was further ahead than one window;
	// the caller should run another pass immediately instead of sleeping
	Partial bool
}

// Processor runs one watermark-to-head sync pass per invocation.
//
//go:generate mockgen -source=processor.go -destination=../mocks/sync_processor.go -package=mocks -mock_names=Processor=MockSyncProcessor
type Processor interface {
	// Process advances the watermark by at most one block window, applying all
	// token events in that window and rebuilding ledgers for tokens that saw
	// balance changes. The whole pass commits or rolls back as one unit.
	Process(ctx context.Context) (SyncResult, error)
}

type processor struct {
	store       store.Store
	blocks      block.Provider
	reconciler  reconciler.Reconciler
	ledgers     ledger.Builder
	maxBlockLot uint64
}

// NewProcessor creates a sync Processor. maxBlockLot bounds how many blocks
// one pass may cover.
func NewProcessor(s store.Store, blocks block.Provider, rec reconciler.Reconciler, ledgers ledger.Builder, maxBlockLot uint64) Processor {
	if maxBlockLot == 0 {
		maxBlockLot = 1_000_000
	}
	return &processor{
		store:       s,
		blocks:      blocks,
		reconciler:  rec,
		ledgers:     ledgers,
		maxBlockLot: maxBlockLot,
	}
}

// Process advances the watermark by at most one block window
func (p *processor) Process(ctx context.Context) (SyncResult, error) {
	watermark, err := p.store.GetWatermark(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to read watermark: %w", err)
	}

	latest, err := p.blocks.LatestBlockNumber(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: %s", domain.ErrServiceUnavailable, err)
	}

	if latest <= watermark {
		return SyncResult{}, nil
	}

	blockFrom := watermark + 1
	blockTo := latest
	if blockTo > watermark+p.maxBlockLot {
		blockTo = watermark + p.maxBlockLot
	}

	// The whole window is one transaction: event application, ledger
	// snapshots and the watermark advance commit together or not at all, so
	// a crash can never leave the watermark ahead of applied state.
	err = p.store.Transaction(ctx, func(tx store.Store) error {
		tokens, err := tx.ListActiveTokens(ctx)
		if err != nil {
			return fmt.Errorf("failed to list active tokens: %w", err)
		}

		for i := range tokens {
			token := &tokens[i]
			if !domain.IsValidTokenType(token.TokenType) {
				continue
			}

			occurred, err := p.reconciler.SyncToken(ctx, tx, token, blockFrom, blockTo)
			if err != nil {
				return fmt.Errorf("failed to sync token %s: %w", token.TokenAddress, err)
			}
			if occurred {
				if err := p.ledgers.BuildSnapshot(ctx, tx, token.TokenAddress); err != nil {
					return fmt.Errorf("failed to build ledger for %s: %w", token.TokenAddress, err)
				}
			}
		}

		return tx.SetWatermark(ctx, blockTo)
	})
	if err != nil {
		return SyncResult{}, err
	}

	logger.InfoCtx(ctx, "Synced block window",
		zap.Uint64("block_from", blockFrom),
		zap.Uint64("block_to", blockTo),
		zap.Uint64("chain_head", latest))

	return SyncResult{Synced: true, Partial: blockTo < latest}, nil
}
