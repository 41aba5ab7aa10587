package messaging

import (
	"context"
	"time"

	"github.com/sectoken-labs/ledgerd/internal/domain"
)

// NotificationEvent is the broker-facing projection of a persisted
// notification, consumed by issuer-facing frontends
type NotificationEvent struct {
	NoticeID      string                  `json:"notice_id"`
	IssuerAddress string                  `json:"issuer_address"`
	Type          domain.NotificationType `json:"type"`
	Code          domain.NotificationCode `json:"code"`
	Metainfo      interface{}             `json:"metainfo"`
	CreatedAt     time.Time               `json:"created_at"`
}

// Publisher defines the interface for publishing notification events to the
// message broker. Publish failures must never fail the batch work item; the
// persisted notification row is the source of truth.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishNotification publishes one notification event
	PublishNotification(ctx context.Context, event *NotificationEvent) error
	// Close closes the connection
	Close()
}
