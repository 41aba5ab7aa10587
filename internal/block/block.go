package block

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sectoken-labs/ledgerd/internal/adapter"
	"github.com/sectoken-labs/ledgerd/internal/logger"
)

// headInfo is the cached chain head
type headInfo struct {
	number   uint64
	cachedAt time.Time
}

// Provider provides cached access to the latest block number and block
// timestamps. Timestamps of confirmed blocks are immutable, so they are
// cached without expiry; the head is cached for a short TTL to cut RPC load
// from tight sync loops.
//
//go:generate mockgen -source=block.go -destination=../mocks/block_provider.go -package=mocks -mock_names=Provider=MockBlockProvider
type Provider interface {
	// LatestBlockNumber returns the latest block number, potentially from cache
	LatestBlockNumber(ctx context.Context) (uint64, error)

	// BlockTimestamp returns the UTC timestamp of a block, potentially from cache
	BlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// Fetcher fetches block information from the chain
//
//go:generate mockgen -source=block.go -destination=../mocks/block_provider.go -package=mocks -mock_names=Fetcher=MockBlockFetcher
type Fetcher interface {
	// FetchLatestBlockNumber fetches the current chain head number
	FetchLatestBlockNumber(ctx context.Context) (uint64, error)

	// FetchBlockTimestamp fetches the timestamp for a given block number
	FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// Config holds configuration for the Provider
type Config struct {
	// HeadTTL is how long the chain head number stays cached
	HeadTTL time.Duration

	// StaleWindow is how long a stale head may substitute for a failed fetch
	StaleWindow time.Duration
}

type provider struct {
	fetcher Fetcher
	config  Config
	clock   adapter.Clock

	mu         sync.RWMutex
	head       *headInfo
	timestamps map[uint64]time.Time
}

// NewProvider creates a caching block Provider over a Fetcher
func NewProvider(fetcher Fetcher, config Config, clock adapter.Clock) Provider {
	return &provider{
		fetcher:    fetcher,
		config:     config,
		clock:      clock,
		timestamps: make(map[uint64]time.Time),
	}
}

// LatestBlockNumber returns the chain head, using cache within the TTL and
// falling back to a stale head when a fresh fetch fails
func (p *provider) LatestBlockNumber(ctx context.Context) (uint64, error) {
	p.mu.RLock()
	cached := p.head
	p.mu.RUnlock()

	now := p.clock.Now()

	if cached != nil && now.Sub(cached.cachedAt) < p.config.HeadTTL {
		return cached.number, nil
	}

	number, err := p.fetcher.FetchLatestBlockNumber(ctx)
	if err != nil {
		if cached != nil && now.Sub(cached.cachedAt) < p.config.StaleWindow {
			logger.DebugCtx(ctx, "Using stale chain head", zap.Uint64("block_number", cached.number))
			return cached.number, nil
		}
		return 0, fmt.Errorf("failed to fetch chain head and no valid cache available: %w", err)
	}

	p.mu.Lock()
	p.head = &headInfo{number: number, cachedAt: now}
	p.mu.Unlock()

	return number, nil
}

// BlockTimestamp returns a block's UTC timestamp, cached forever once fetched
func (p *provider) BlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	p.mu.RLock()
	cached, ok := p.timestamps[blockNumber]
	p.mu.RUnlock()

	if ok {
		return cached, nil
	}

	timestamp, err := p.fetcher.FetchBlockTimestamp(ctx, blockNumber)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to fetch timestamp for block %d: %w", blockNumber, err)
	}
	timestamp = timestamp.UTC()

	p.mu.Lock()
	p.timestamps[blockNumber] = timestamp
	p.mu.Unlock()

	return timestamp, nil
}
