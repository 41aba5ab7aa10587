package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sectoken-labs/ledgerd/internal/store/schema"
)

// CreditUTXO records a credit event. An existing lot for the same
// (tx hash, account) has its amount incremented; otherwise a new lot is
// inserted. Re-delivery of the identical event within one pass is therefore
// additive onto the same row rather than producing a duplicate.
func (s *pgStore) CreditUTXO(ctx context.Context, input CreditUTXOInput) error {
	var lot schema.UTXO
	err := s.db.WithContext(ctx).
		Where("tx_hash = ? AND account_address = ?", input.TxHash, input.AccountAddress).
		First(&lot).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up utxo lot: %w", err)
		}

		lot = schema.UTXO{
			TxHash:         input.TxHash,
			AccountAddress: input.AccountAddress,
			TokenAddress:   input.TokenAddress,
			Amount:         input.Amount,
			BlockNumber:    input.BlockNumber,
			BlockTimestamp: input.BlockTimestamp.UTC(),
		}
		if err := s.db.WithContext(ctx).Create(&lot).Error; err != nil {
			return fmt.Errorf("failed to create utxo lot: %w", err)
		}
		return nil
	}

	err = s.db.WithContext(ctx).
		Model(&schema.UTXO{}).
		Where("id = ?", lot.ID).
		Update("amount", gorm.Expr("amount + ?", input.Amount)).Error
	if err != nil {
		return fmt.Errorf("failed to increment utxo lot: %w", err)
	}
	return nil
}

// DebitUTXO consumes lots oldest-first until amount is exhausted. Fully
// consumed lots are zeroed and retained; a partially consumed lot keeps its
// residual. When the held total is short the loop simply runs out of lots:
// no error, no negative amounts.
func (s *pgStore) DebitUTXO(ctx context.Context, tokenAddress, accountAddress string, amount uint64) error {
	var lots []schema.UTXO
	err := s.db.WithContext(ctx).
		Where("account_address = ? AND token_address = ? AND amount > ?", accountAddress, tokenAddress, 0).
		Order("block_timestamp ASC, id ASC").
		Find(&lots).Error
	if err != nil {
		return fmt.Errorf("failed to load utxo lots: %w", err)
	}

	remaining := amount
	for _, lot := range lots {
		if remaining == 0 {
			break
		}

		spend := lot.Amount
		if spend > remaining {
			spend = remaining
		}

		err := s.db.WithContext(ctx).
			Model(&schema.UTXO{}).
			Where("id = ?", lot.ID).
			Update("amount", lot.Amount-spend).Error
		if err != nil {
			return fmt.Errorf("failed to spend utxo lot: %w", err)
		}

		remaining -= spend
	}

	return nil
}

// ListActiveUTXOsByToken returns all unspent lots for a token, ordered for
// per-account acquisition-date grouping
func (s *pgStore) ListActiveUTXOsByToken(ctx context.Context, tokenAddress string) ([]schema.UTXO, error) {
	var lots []schema.UTXO
	err := s.db.WithContext(ctx).
		Where("token_address = ? AND amount > ?", tokenAddress, 0).
		Order("account_address ASC, block_timestamp ASC").
		Find(&lots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active utxos: %w", err)
	}
	return lots, nil
}

// ListUTXOsByAccount returns all lots of one holder, spent lots included
func (s *pgStore) ListUTXOsByAccount(ctx context.Context, tokenAddress, accountAddress string) ([]schema.UTXO, error) {
	var lots []schema.UTXO
	err := s.db.WithContext(ctx).
		Where("token_address = ? AND account_address = ?", tokenAddress, accountAddress).
		Order("block_timestamp ASC, id ASC").
		Find(&lots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list account utxos: %w", err)
	}
	return lots, nil
}

// GetWatermark returns the watermark, creating the singleton row lazily at zero
func (s *pgStore) GetWatermark(ctx context.Context) (uint64, error) {
	var record schema.UTXOBlockNumber
	err := s.db.WithContext(ctx).Where("id = ?", 1).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get watermark: %w", err)
	}
	return record.LatestBlockNumber, nil
}

// SetWatermark advances the watermark
func (s *pgStore) SetWatermark(ctx context.Context, blockNumber uint64) error {
	record := schema.UTXOBlockNumber{
		ID:                1,
		LatestBlockNumber: blockNumber,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"latest_block_number", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to set watermark: %w", err)
	}
	return nil
}
