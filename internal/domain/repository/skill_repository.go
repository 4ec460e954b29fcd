// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dreamtree/internal/domain/entity"

	"github.com/google/uuid"
)

// SkillRepository defines read access to locally authored skills.
// This service never writes skills; authoring belongs to the main application.
type SkillRepository interface {
	// FindSkillsByUserID retrieves all of a user's skills ordered by the time
	// they were authored, oldest first.
	FindSkillsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Skill, error)
}
