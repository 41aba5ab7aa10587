package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sectoken-labs/ledgerd/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Transaction runs fn against a transactional view of the store
func (s *pgStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// ListActiveTokens returns all registry tokens with active status
func (s *pgStore) ListActiveTokens(ctx context.Context) ([]schema.Token, error) {
	var tokens []schema.Token
	err := s.db.WithContext(ctx).
		Where("token_status = ?", 1).
		Order("created_at ASC").
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active tokens: %w", err)
	}
	return tokens, nil
}

// GetToken retrieves one registry token
func (s *pgStore) GetToken(ctx context.Context, tokenAddress string) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).Where("token_address = ?", tokenAddress).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &token, nil
}

// GetLedgerTemplate retrieves the ledger template for a token
func (s *pgStore) GetLedgerTemplate(ctx context.Context, tokenAddress string) (*schema.LedgerTemplate, error) {
	var template schema.LedgerTemplate
	err := s.db.WithContext(ctx).Where("token_address = ?", tokenAddress).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ledger template: %w", err)
	}
	return &template, nil
}

// ListLedgerDetailsTemplates returns a token's detail sections in creation order
func (s *pgStore) ListLedgerDetailsTemplates(ctx context.Context, tokenAddress string) ([]schema.LedgerDetailsTemplate, error) {
	var templates []schema.LedgerDetailsTemplate
	err := s.db.WithContext(ctx).
		Where("token_address = ?", tokenAddress).
		Order("id ASC").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger details templates: %w", err)
	}
	return templates, nil
}

// ListLedgerDetailsData returns the rows of one uploaded dataset
func (s *pgStore) ListLedgerDetailsData(ctx context.Context, tokenAddress, dataID string) ([]schema.LedgerDetailsData, error) {
	var rows []schema.LedgerDetailsData
	err := s.db.WithContext(ctx).
		Where("token_address = ? AND data_id = ?", tokenAddress, dataID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger details data: %w", err)
	}
	return rows, nil
}

// CreateLedger appends a new immutable ledger snapshot row
func (s *pgStore) CreateLedger(ctx context.Context, ledger *schema.Ledger) error {
	if err := s.db.WithContext(ctx).Create(ledger).Error; err != nil {
		return fmt.Errorf("failed to create ledger: %w", err)
	}
	return nil
}

// GetPersonalInfo retrieves the off-chain personal info index row
func (s *pgStore) GetPersonalInfo(ctx context.Context, accountAddress, issuerAddress string) (*schema.IDXPersonalInfo, error) {
	var info schema.IDXPersonalInfo
	err := s.db.WithContext(ctx).
		Where("account_address = ? AND issuer_address = ?", accountAddress, issuerAddress).
		First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get personal info: %w", err)
	}
	return &info, nil
}

// UpsertPersonalInfo creates or replaces an off-chain personal info index row
func (s *pgStore) UpsertPersonalInfo(ctx context.Context, info *schema.IDXPersonalInfo) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_address"}, {Name: "issuer_address"}},
		DoUpdates: clause.AssignmentColumns([]string{"personal_info", "updated_at"}),
	}).Create(info).Error
	if err != nil {
		return fmt.Errorf("failed to upsert personal info: %w", err)
	}
	return nil
}

// GetDueScheduledEvent returns the oldest due pending scheduled event whose
// issuer is not excluded
func (s *pgStore) GetDueScheduledEvent(ctx context.Context, now time.Time, excludedIssuers []string) (*schema.ScheduledEvent, error) {
	query := s.db.WithContext(ctx).
		Where("status = ? AND scheduled_datetime <= ?", schema.WorkStatusPending, now)
	if len(excludedIssuers) > 0 {
		query = query.Where("issuer_address NOT IN ?", excludedIssuers)
	}

	var event schema.ScheduledEvent
	err := query.Order("scheduled_datetime ASC, id ASC").First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get due scheduled event: %w", err)
	}
	return &event, nil
}

// UpdateScheduledEventStatus sets a scheduled event's persisted status
func (s *pgStore) UpdateScheduledEventStatus(ctx context.Context, id uint64, status schema.WorkStatus) error {
	err := s.db.WithContext(ctx).
		Model(&schema.ScheduledEvent{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to update scheduled event status: %w", err)
	}
	return nil
}

// GetPendingRegisterUpload returns the oldest pending personal info upload
// whose issuer is not excluded
func (s *pgStore) GetPendingRegisterUpload(ctx context.Context, excludedIssuers []string) (*schema.BatchRegisterUpload, error) {
	query := s.db.WithContext(ctx).Where("status = ?", schema.WorkStatusPending)
	if len(excludedIssuers) > 0 {
		query = query.Where("issuer_address NOT IN ?", excludedIssuers)
	}

	var upload schema.BatchRegisterUpload
	err := query.Order("created_at ASC").First(&upload).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending register upload: %w", err)
	}
	return &upload, nil
}

// ListPendingRegisterItems returns up to limit pending items of one upload
func (s *pgStore) ListPendingRegisterItems(ctx context.Context, uploadID string, limit int) ([]schema.BatchRegisterPersonalInfo, error) {
	var items []schema.BatchRegisterPersonalInfo
	err := s.db.WithContext(ctx).
		Where("upload_id = ? AND status = ?", uploadID, schema.WorkStatusPending).
		Order("id ASC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending register items: %w", err)
	}
	return items, nil
}

// UpdateRegisterItemStatus sets one registration item's persisted status
func (s *pgStore) UpdateRegisterItemStatus(ctx context.Context, id uint64, status schema.WorkStatus) error {
	err := s.db.WithContext(ctx).
		Model(&schema.BatchRegisterPersonalInfo{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to update register item status: %w", err)
	}
	return nil
}

// UpdateRegisterUploadStatus sets the roll-up status of an upload
func (s *pgStore) UpdateRegisterUploadStatus(ctx context.Context, uploadID string, status schema.WorkStatus) error {
	err := s.db.WithContext(ctx).
		Model(&schema.BatchRegisterUpload{}).
		Where("upload_id = ?", uploadID).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to update register upload status: %w", err)
	}
	return nil
}

// CountRegisterItems counts an upload's items with the given status
func (s *pgStore) CountRegisterItems(ctx context.Context, uploadID string, status schema.WorkStatus) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.BatchRegisterPersonalInfo{}).
		Where("upload_id = ? AND status = ?", uploadID, status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count register items: %w", err)
	}
	return count, nil
}

// CreateNotification persists an issuer-facing notification
func (s *pgStore) CreateNotification(ctx context.Context, notification *schema.Notification) error {
	if err := s.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}
