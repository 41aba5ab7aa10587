package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// TokenType identifies the security token contract family
type TokenType string

const (
	// TokenTypeBond represents corporate bond tokens
	TokenTypeBond TokenType = "IbetStraightBond"
	// TokenTypeShare represents share tokens
	TokenTypeShare TokenType = "IbetShare"
)

// IsValidTokenType checks if a token type is covered by the ledger pipeline
func IsValidTokenType(t TokenType) bool {
	return t == TokenTypeBond || t == TokenTypeShare
}

// TokenStatus represents the lifecycle status of an issued token
type TokenStatus int

const (
	// TokenStatusPending indicates the deployment transaction has not been confirmed yet
	TokenStatusPending TokenStatus = 0
	// TokenStatusActive indicates a fully deployed, syncable token
	TokenStatusActive TokenStatus = 1
	// TokenStatusFailed indicates the deployment transaction failed
	TokenStatusFailed TokenStatus = 2
)

// MaxSafeAmount is the upper bound accepted for any event amount.
// Events carrying amounts above this are treated as malformed and dropped.
const MaxSafeAmount = uint64(1)<<53 - 1

// ZeroAddress is the Ethereum zero address
var ZeroAddress = common.Address{}

// EventLog is a decoded contract event.
// LogIndex disambiguates events within the same block.
type EventLog struct {
	Event       string
	Args        map[string]interface{}
	TxHash      string
	BlockNumber uint64
	LogIndex    uint
}

// PersonalInfo is the resolved holder identity attached to ledger rows
type PersonalInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// UTXODelta is one balance-affecting operation produced by event
// reconciliation, applied in (BlockNumber, LogIndex) order within a sync range.
// An empty FromAddress means a pure credit (Issue), an empty ToAddress a pure
// debit (Redeem).
type UTXODelta struct {
	TxHash         string
	TokenAddress   string
	FromAddress    string
	ToAddress      string
	Amount         uint64
	BlockNumber    uint64
	LogIndex       uint
	BlockTimestamp time.Time
}
