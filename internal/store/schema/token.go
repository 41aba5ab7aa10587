package schema

import (
	"time"

	"github.com/sectoken-labs/ledgerd/internal/domain"
)

// Token represents the tokens table - the registry of issuer-deployed security
// token contracts. The sync pipeline only reads this projection; issuance
// itself happens in the API service.
type Token struct {
	// TokenAddress is the deployed contract address (primary key)
	TokenAddress string `gorm:"column:token_address;primaryKey;type:text"`
	// TokenType identifies the contract family (IbetStraightBond, IbetShare)
	TokenType domain.TokenType `gorm:"column:token_type;not null;type:text"`
	// IssuerAddress is the EOA that issued the token
	IssuerAddress string `gorm:"column:issuer_address;not null;type:text;index:idx_tokens_issuer"`
	// TxHash is the deployment transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// Abi is the contract ABI captured at deployment
	Abi string `gorm:"column:abi;type:text"`
	// TokenStatus is the deployment lifecycle status; only active (1) tokens are synced
	TokenStatus domain.TokenStatus `gorm:"column:token_status;not null;default:1"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
