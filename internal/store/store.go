package store

import (
	"context"
	"time"

	"github.com/sectoken-labs/ledgerd/internal/store/schema"
)

// CreditUTXOInput carries one credit-causing event into the UTXO store
type CreditUTXOInput struct {
	TxHash         string
	TokenAddress   string
	AccountAddress string
	Amount         uint64
	BlockNumber    uint64
	BlockTimestamp time.Time
}

// UTXOStore maintains FIFO-ordered unspent lots per (account, token)
type UTXOStore interface {
	// CreditUTXO records a credit event. A lot already existing for the same
	// (tx hash, account) has its amount incremented instead of inserting a
	// duplicate row, making re-delivery within one pass idempotent.
	CreditUTXO(ctx context.Context, input CreditUTXOInput) error

	// DebitUTXO consumes lots oldest-first until amount is exhausted. Lots are
	// zeroed, never deleted; a partially consumed lot keeps its residual. If
	// the held total is short, the remainder is dropped without error.
	DebitUTXO(ctx context.Context, tokenAddress, accountAddress string, amount uint64) error

	// ListActiveUTXOsByToken returns all lots with amount > 0 for a token,
	// ordered by (account_address, block_timestamp)
	ListActiveUTXOsByToken(ctx context.Context, tokenAddress string) ([]schema.UTXO, error)

	// ListUTXOsByAccount returns all lots for one holder of a token,
	// spent lots included, ordered by block_timestamp
	ListUTXOsByAccount(ctx context.Context, tokenAddress, accountAddress string) ([]schema.UTXO, error)
}

// WatermarkStore persists the last fully processed block number
type WatermarkStore interface {
	// GetWatermark returns the watermark, creating it lazily at zero
	GetWatermark(ctx context.Context) (uint64, error)
	// SetWatermark advances the watermark
	SetWatermark(ctx context.Context, blockNumber uint64) error
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	UTXOStore
	WatermarkStore

	// Transaction runs fn against a transactional view of the store; any error
	// rolls the whole unit back
	Transaction(ctx context.Context, fn func(tx Store) error) error

	// ListActiveTokens returns all registry tokens with active status
	ListActiveTokens(ctx context.Context) ([]schema.Token, error)
	// GetToken retrieves one registry token, nil when absent
	GetToken(ctx context.Context, tokenAddress string) (*schema.Token, error)

	// GetLedgerTemplate retrieves the ledger template for a token, nil when absent
	GetLedgerTemplate(ctx context.Context, tokenAddress string) (*schema.LedgerTemplate, error)
	// ListLedgerDetailsTemplates returns a token's detail sections in creation order
	ListLedgerDetailsTemplates(ctx context.Context, tokenAddress string) ([]schema.LedgerDetailsTemplate, error)
	// ListLedgerDetailsData returns the rows of one uploaded dataset
	ListLedgerDetailsData(ctx context.Context, tokenAddress, dataID string) ([]schema.LedgerDetailsData, error)
	// CreateLedger appends a new immutable ledger snapshot row
	CreateLedger(ctx context.Context, ledger *schema.Ledger) error

	// GetPersonalInfo retrieves the off-chain personal info index row, nil when absent
	GetPersonalInfo(ctx context.Context, accountAddress, issuerAddress string) (*schema.IDXPersonalInfo, error)
	// UpsertPersonalInfo creates or replaces an off-chain personal info index row
	UpsertPersonalInfo(ctx context.Context, info *schema.IDXPersonalInfo) error

	// GetDueScheduledEvent returns the oldest pending scheduled event due at or
	// before now whose issuer is not excluded, nil when none qualifies
	GetDueScheduledEvent(ctx context.Context, now time.Time, excludedIssuers []string) (*schema.ScheduledEvent, error)
	// UpdateScheduledEventStatus sets a scheduled event's persisted status
	UpdateScheduledEventStatus(ctx context.Context, id uint64, status schema.WorkStatus) error

	// GetPendingRegisterUpload returns the oldest pending personal info upload
	// whose issuer is not excluded, nil when none qualifies
	GetPendingRegisterUpload(ctx context.Context, excludedIssuers []string) (*schema.BatchRegisterUpload, error)
	// ListPendingRegisterItems returns up to limit pending items of one upload
	ListPendingRegisterItems(ctx context.Context, uploadID string, limit int) ([]schema.BatchRegisterPersonalInfo, error)
	// UpdateRegisterItemStatus sets one registration item's persisted status
	UpdateRegisterItemStatus(ctx context.Context, id uint64, status schema.WorkStatus) error
	// UpdateRegisterUploadStatus sets the roll-up status of an upload
	UpdateRegisterUploadStatus(ctx context.Context, uploadID string, status schema.WorkStatus) error
	// CountRegisterItems counts an upload's items with the given status
	CountRegisterItems(ctx context.Context, uploadID string, status schema.WorkStatus) (int64, error)

	// CreateNotification persists an issuer-facing notification
	CreateNotification(ctx context.Context, notification *schema.Notification) error
}
