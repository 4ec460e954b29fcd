// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"dreamtree/internal/domain/entity"
	"dreamtree/internal/domain/repository"
	"dreamtree/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// skillRepository implements the repository.SkillRepository interface.
// The skills table belongs to the main application; access here is read-only.
type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository is the constructor for skillRepository.
func NewSkillRepository(db *gorm.DB) repository.SkillRepository {
	return &skillRepository{
		db: db,
	}
}

// FindSkillsByUserID retrieves all of a user's skills in authoring order.
func (repo *skillRepository) FindSkillsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Skill, error) {
	var skillModels []*model.SkillModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&skillModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find skills by user")
	}

	skills := make([]*entity.Skill, 0, len(skillModels))
	for _, skillM := range skillModels {
		skills = append(skills, toSkillDomain(skillM))
	}

	return skills, nil
}

// --- Mapper Functions ---

// toSkillDomain converts a GORM SkillModel to a domain Skill entity.
func toSkillDomain(data *model.SkillModel) *entity.Skill {
	if data == nil {
		return nil
	}

	return &entity.Skill{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Category:  data.Category,
		CreatedAt: data.CreatedAt,
	}
}
