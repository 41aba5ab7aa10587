package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sectoken-labs/ledgerd/internal/domain"
)

// Notification represents the notifications table - persisted issuer-facing
// records of business-relevant batch outcomes. Operational failures are only
// logged, never persisted here.
type Notification struct {
	// NoticeID is a time-sortable ULID (primary key)
	NoticeID string `gorm:"column:notice_id;primaryKey;type:text"`
	// IssuerAddress is the issuer this notification is addressed to
	IssuerAddress string `gorm:"column:issuer_address;not null;type:text;index:idx_notifications_issuer"`
	// Priority orders notifications in issuer-facing listings
	Priority int `gorm:"column:priority;not null;default:0"`
	// Type is the notification category
	Type domain.NotificationType `gorm:"column:type;not null;type:text"`
	// Code distinguishes causes within a type
	Code domain.NotificationCode `gorm:"column:code;not null;default:0"`
	// Metainfo carries type-specific detail (work item ids, error lists)
	Metainfo datatypes.JSON `gorm:"column:metainfo;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
