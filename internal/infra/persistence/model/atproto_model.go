package model

import (
	"time"

	"github.com/google/uuid"
)

// AtprotoOAuthStateModel mirrors the 'atproto_oauth_states' table. One row per
// in-flight authorization attempt; rows are destroyed on redemption or expiry.
type AtprotoOAuthStateModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null"`
	StateToken   string    `gorm:"type:varchar(255);unique;not null"`
	Handle       string    `gorm:"type:varchar(253);not null"`
	CodeVerifier string    `gorm:"type:text;not null"`
	ExpiresAt    time.Time `gorm:"not null;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AtprotoOAuthStateModel) TableName() string {
	return "atproto_oauth_states"
}

// AtprotoSessionModel mirrors the 'atproto_sessions' table. The unique user_id
// index enforces at most one connection per account. Token columns hold
// ciphertext only.
type AtprotoSessionModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Did                string    `gorm:"type:varchar(255);not null"`
	Handle             string    `gorm:"type:varchar(253);not null"`
	PdsURL             string    `gorm:"column:pds_url;type:varchar(512);not null"`
	AccessTokenCipher  string    `gorm:"type:text;not null"`
	RefreshTokenCipher string    `gorm:"type:text"`
	ConnectedAt        time.Time `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (AtprotoSessionModel) TableName() string {
	return "atproto_sessions"
}
