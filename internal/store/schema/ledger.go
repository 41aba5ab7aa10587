package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sectoken-labs/ledgerd/internal/domain"
)

// LedgerDataType identifies where a ledger details section sources its rows
type LedgerDataType string

const (
	// LedgerDataTypeOnChain computes rows from current UTXO lots plus an
	// on-chain price read
	LedgerDataTypeOnChain LedgerDataType = "ibet_fin"
	// LedgerDataTypeDB takes rows verbatim from a separately uploaded dataset
	LedgerDataTypeDB LedgerDataType = "db"
)

// LedgerTemplate represents the ledger_templates table - issuer-configured
// document shape for one token's ledger snapshots
type LedgerTemplate struct {
	// TokenAddress is the token this template belongs to (primary key)
	TokenAddress string `gorm:"column:token_address;primaryKey;type:text"`
	// TokenName is the display name rendered into the document
	TokenName string `gorm:"column:token_name;not null;type:text"`
	// Headers are free-form document header blocks
	Headers datatypes.JSON `gorm:"column:headers;type:jsonb"`
	// Footers are free-form document footer blocks
	Footers datatypes.JSON `gorm:"column:footers;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerTemplate model
func (LedgerTemplate) TableName() string {
	return "ledger_templates"
}

// LedgerDetailsTemplate represents the ledger_details_templates table - one
// row per detail section of a token's ledger document
type LedgerDetailsTemplate struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenAddress is the token this section belongs to
	TokenAddress string `gorm:"column:token_address;not null;type:text;index:idx_ledger_details_templates_token"`
	// TokenDetailType is the section label rendered into the document
	TokenDetailType string `gorm:"column:token_detail_type;not null;type:text"`
	// DataType selects the section's data source (ibet_fin or db)
	DataType LedgerDataType `gorm:"column:data_type;not null;type:text"`
	// DataSource references the uploaded dataset when DataType is db
	DataSource string `gorm:"column:data_source;type:text"`
	// Headers are free-form section header blocks
	Headers datatypes.JSON `gorm:"column:headers;type:jsonb"`
	// Footers are free-form section footer blocks
	Footers datatypes.JSON `gorm:"column:footers;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerDetailsTemplate model
func (LedgerDetailsTemplate) TableName() string {
	return "ledger_details_templates"
}

// LedgerDetailsData represents the ledger_details_data table - uploaded rows
// for db-sourced detail sections, grouped by DataID
type LedgerDetailsData struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenAddress is the token this dataset belongs to
	TokenAddress string `gorm:"column:token_address;not null;type:text;index:idx_ledger_details_data_token_data,priority:1"`
	// DataID groups rows of one uploaded dataset
	DataID string `gorm:"column:data_id;not null;type:text;index:idx_ledger_details_data_token_data,priority:2"`
	// Name is the holder name as uploaded
	Name string `gorm:"column:name;type:text"`
	// Address is the holder postal address as uploaded
	Address string `gorm:"column:address;type:text"`
	// Amount is the held quantity as uploaded
	Amount uint64 `gorm:"column:amount;not null;default:0"`
	// Price is the unit price as uploaded
	Price uint64 `gorm:"column:price;not null;default:0"`
	// Balance is the uploaded price times amount
	Balance uint64 `gorm:"column:balance;not null;default:0"`
	// AcquisitionDate is the uploaded acquisition date (YYYY/MM/DD)
	AcquisitionDate string `gorm:"column:acquisition_date;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerDetailsData model
func (LedgerDetailsData) TableName() string {
	return "ledger_details_data"
}

// Ledger represents the ledgers table - immutable point-in-time ledger
// snapshot documents. A new row is appended per build; rows are never updated.
type Ledger struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenAddress is the token this snapshot belongs to
	TokenAddress string `gorm:"column:token_address;not null;type:text;index:idx_ledgers_token"`
	// TokenType identifies the contract family at snapshot time
	TokenType domain.TokenType `gorm:"column:token_type;not null;type:text"`
	// Ledger is the rendered snapshot document
	Ledger datatypes.JSON `gorm:"column:ledger;not null;type:jsonb"`
	// ContentHash is the SHA-256 of the RFC 8785 canonical form of Ledger
	ContentHash string `gorm:"column:content_hash;not null;type:text"`
	// CreatedAt is the snapshot creation time
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Ledger model
func (Ledger) TableName() string {
	return "ledgers"
}
