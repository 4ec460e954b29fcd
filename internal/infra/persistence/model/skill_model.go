package model

import (
	"time"

	"github.com/google/uuid"
)

// SkillModel mirrors the 'skills' table owned by the main application.
// This service only ever reads it.
type SkillModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Category  string    `gorm:"type:varchar(60)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SkillModel) TableName() string {
	return "skills"
}
