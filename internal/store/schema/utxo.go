package schema

import (
	"time"
)

// UTXO represents the utxos table - one unspent lot per credit event.
// A lot is created by an Issue, Transfer-in or Unlock event and consumed
// oldest-first by later debit events. Fully spent lots stay at amount 0;
// rows are never deleted.
type UTXO struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TxHash is the transaction that created this lot; together with
	// AccountAddress it forms the natural dedup key for re-delivered events
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_utxos_tx_account,priority:1"`
	// AccountAddress is the holder credited by this lot
	AccountAddress string `gorm:"column:account_address;not null;type:text;uniqueIndex:idx_utxos_tx_account,priority:2;index:idx_utxos_account_token_ts,priority:1"`
	// TokenAddress is the token contract this lot belongs to
	TokenAddress string `gorm:"column:token_address;not null;type:text;index:idx_utxos_account_token_ts,priority:2"`
	// Amount is the remaining unspent quantity; never negative
	Amount uint64 `gorm:"column:amount;not null;default:0"`
	// BlockNumber is the block that produced the credit event
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// BlockTimestamp orders lots for FIFO consumption and doubles as the
	// lot's acquisition date in ledger documents
	BlockTimestamp time.Time `gorm:"column:block_timestamp;not null;type:timestamptz;index:idx_utxos_account_token_ts,priority:3"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UTXO model
func (UTXO) TableName() string {
	return "utxos"
}

// UTXOBlockNumber represents the utxo_block_number table - the single-row
// watermark of the last fully processed block. Deployment constraint: exactly
// one sync daemon instance per database.
type UTXOBlockNumber struct {
	// ID is always 1
	ID int64 `gorm:"column:id;primaryKey"`
	// LatestBlockNumber is the last block fully and successfully processed
	LatestBlockNumber uint64 `gorm:"column:latest_block_number;not null;default:0"`
	// UpdatedAt is the timestamp when the watermark last advanced
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UTXOBlockNumber model
func (UTXOBlockNumber) TableName() string {
	return "utxo_block_number"
}
