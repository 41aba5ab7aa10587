package batch

import (
	"context"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/sectoken-labs/ledgerd/internal/adapter"
	"github.com/sectoken-labs/ledgerd/internal/domain"
	"github.com/sectoken-labs/ledgerd/internal/logger"
	"github.com/sectoken-labs/ledgerd/internal/messaging"
	"github.com/sectoken-labs/ledgerd/internal/store"
	"github.com/sectoken-labs/ledgerd/internal/store/schema"
)

// notifier persists issuer-facing notifications and mirrors them to the
// message broker. The database row is authoritative; a publish failure is
// logged and swallowed so it can never fail the work item.
type notifier struct {
	store     store.Store
	publisher messaging.Publisher
	json      adapter.JSON
	clock     adapter.Clock
}

func newNotifier(st store.Store, publisher messaging.Publisher, jsonAdapter adapter.JSON, clock adapter.Clock) *notifier {
	return &notifier{store: st, publisher: publisher, json: jsonAdapter, clock: clock}
}

// Notify writes one notification row and publishes its broker projection
func (n *notifier) Notify(ctx context.Context, issuerAddress string, notificationType domain.NotificationType, code domain.NotificationCode, metainfo interface{}) error {
	raw, err := n.json.Marshal(metainfo)
	if err != nil {
		return err
	}

	now := n.clock.Now()
	notification := &schema.Notification{
		NoticeID:      ulid.MustNewDefault(now).String(),
		IssuerAddress: issuerAddress,
		Type:          notificationType,
		Code:          code,
		Metainfo:      datatypes.JSON(raw),
	}
	if err := n.store.CreateNotification(ctx, notification); err != nil {
		return err
	}

	err = n.publisher.PublishNotification(ctx, &messaging.NotificationEvent{
		NoticeID:      notification.NoticeID,
		IssuerAddress: issuerAddress,
		Type:          notificationType,
		Code:          code,
		Metainfo:      metainfo,
		CreatedAt:     now,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Notification publish failed, row persisted",
			zap.String("notice_id", notification.NoticeID),
			zap.Error(err))
	}

	return nil
}
