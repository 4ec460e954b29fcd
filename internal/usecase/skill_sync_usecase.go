package usecase

import (
	"context"

	"dreamtree/internal/domain/entity"

	"github.com/google/uuid"
)

// SkillSyncUsecase defines the interface for pushing a user's skills to
// their personal data server as custom records.
type SkillSyncUsecase interface {
	// SyncSkills writes every skill of the user to their repository, oldest
	// first. Individual record failures are collected in the result instead
	// of aborting the run.
	SyncSkills(ctx context.Context, userID uuid.UUID) (*entity.SyncResult, error)
}
