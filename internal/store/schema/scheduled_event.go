package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sectoken-labs/ledgerd/internal/domain"
)

// WorkStatus is the persisted lifecycle of a claimed work item. The in-memory
// claim registry is advisory only; this column is authoritative.
type WorkStatus int

const (
	// WorkStatusPending indicates the item has not been processed yet
	WorkStatusPending WorkStatus = 0
	// WorkStatusSucceeded indicates the item was processed successfully
	WorkStatusSucceeded WorkStatus = 1
	// WorkStatusFailed indicates the item terminally failed
	WorkStatusFailed WorkStatus = 2
)

// ScheduledEvent represents the scheduled_events table - issuer-scheduled
// token attribute updates applied on-chain once their scheduled time passes
type ScheduledEvent struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is the externally visible identifier
	EventID string `gorm:"column:event_id;not null;uniqueIndex;type:text"`
	// IssuerAddress is the issuer whose queue this item belongs to
	IssuerAddress string `gorm:"column:issuer_address;not null;type:text;index:idx_scheduled_events_issuer"`
	// TokenAddress is the token contract to update
	TokenAddress string `gorm:"column:token_address;not null;type:text"`
	// TokenType identifies the contract family
	TokenType domain.TokenType `gorm:"column:token_type;not null;type:text"`
	// EventType names the update operation (e.g. Update)
	EventType string `gorm:"column:event_type;not null;type:text"`
	// ScheduledDatetime is when the update becomes due
	ScheduledDatetime time.Time `gorm:"column:scheduled_datetime;not null;type:timestamptz;index:idx_scheduled_events_due"`
	// Status is the persisted work item status
	Status WorkStatus `gorm:"column:status;not null;default:0"`
	// Data carries the attribute values to apply
	Data datatypes.JSON `gorm:"column:data;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ScheduledEvent model
func (ScheduledEvent) TableName() string {
	return "scheduled_events"
}
