package schema

import (
	"time"

	"gorm.io/datatypes"
)

// IDXPersonalInfo represents the idx_personal_info table - the off-chain
// index of holder personal information, consulted before falling back to the
// on-chain personal info contract
type IDXPersonalInfo struct {
	// AccountAddress is the holder address
	AccountAddress string `gorm:"column:account_address;primaryKey;type:text"`
	// IssuerAddress is the issuer this registration is linked to
	IssuerAddress string `gorm:"column:issuer_address;primaryKey;type:text"`
	// PersonalInfo is the decrypted personal info payload
	PersonalInfo datatypes.JSON `gorm:"column:personal_info;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the IDXPersonalInfo model
func (IDXPersonalInfo) TableName() string {
	return "idx_personal_info"
}

// BatchRegisterUpload represents the batch_register_uploads table - one
// issuer-submitted personal info registration batch
type BatchRegisterUpload struct {
	// UploadID is the externally visible identifier (primary key)
	UploadID string `gorm:"column:upload_id;primaryKey;type:text"`
	// IssuerAddress is the issuer whose queue this upload belongs to
	IssuerAddress string `gorm:"column:issuer_address;not null;type:text;index:idx_batch_register_uploads_issuer"`
	// Status is the roll-up status over the upload's items
	Status WorkStatus `gorm:"column:status;not null;default:0"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the BatchRegisterUpload model
func (BatchRegisterUpload) TableName() string {
	return "batch_register_uploads"
}

// BatchRegisterPersonalInfo represents the batch_register_personal_info table -
// one holder registration inside an upload
type BatchRegisterPersonalInfo struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UploadID references the parent upload
	UploadID string `gorm:"column:upload_id;not null;type:text;index:idx_batch_register_personal_info_upload"`
	// TokenAddress is the token whose personal info contract receives the registration
	TokenAddress string `gorm:"column:token_address;not null;type:text"`
	// AccountAddress is the holder being registered
	AccountAddress string `gorm:"column:account_address;not null;type:text"`
	// PersonalInfo is the payload to register
	PersonalInfo datatypes.JSON `gorm:"column:personal_info;type:jsonb"`
	// Status is the persisted work item status
	Status WorkStatus `gorm:"column:status;not null;default:0"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the BatchRegisterPersonalInfo model
func (BatchRegisterPersonalInfo) TableName() string {
	return "batch_register_personal_info"
}
