package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/sectoken-labs/ledgerd/internal/adapter"
	"github.com/sectoken-labs/ledgerd/internal/block"
)

// blockFetcher implements block.Fetcher against an Ethereum connection
type blockFetcher struct {
	eth adapter.EthClient
}

// NewBlockFetcher creates a block.Fetcher over an Ethereum connection
func NewBlockFetcher(eth adapter.EthClient) block.Fetcher {
	return &blockFetcher{eth: eth}
}

// FetchLatestBlockNumber fetches the current chain head number
func (f *blockFetcher) FetchLatestBlockNumber(ctx context.Context) (uint64, error) {
	header, err := f.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain head: %w", err)
	}
	return header.Number.Uint64(), nil
}

// FetchBlockTimestamp fetches the timestamp for a given block number
func (f *blockFetcher) FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	header, err := f.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get block %d: %w", blockNumber, err)
	}
	return time.Unix(int64(header.Time), 0).UTC(), nil //nolint:gosec,G115
}
