// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"dreamtree/internal/domain/entity"
	domainerrors "dreamtree/internal/domain/errors"
	"dreamtree/internal/domain/repository"
	"dreamtree/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// oauthStateRepository implements the repository.OAuthStateRepository interface.
type oauthStateRepository struct {
	db *gorm.DB
}

// NewOAuthStateRepository is the constructor for oauthStateRepository.
func NewOAuthStateRepository(db *gorm.DB) repository.OAuthStateRepository {
	return &oauthStateRepository{
		db: db,
	}
}

// CreateAttempt persists a new authorization attempt.
func (repo *oauthStateRepository) CreateAttempt(ctx context.Context, attempt *entity.OAuthAttempt) error {
	stateM := fromOAuthAttemptDomain(attempt)

	if err := repo.db.WithContext(ctx).Create(stateM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOAuthState
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required attempt information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create oauth attempt")
	}

	// Update the entity with generated values
	attempt.ID = stateM.ID
	attempt.CreatedAt = stateM.CreatedAt

	return nil
}

// ConsumeAttempt removes the attempt matching stateToken and returns it in one
// atomic DELETE .. RETURNING round-trip. With concurrent callers presenting
// the same token, exactly one sees the row; the rest get ErrOAuthStateNotFound.
func (repo *oauthStateRepository) ConsumeAttempt(ctx context.Context, stateToken string) (*entity.OAuthAttempt, error) {
	var stateM model.AtprotoOAuthStateModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("state_token = ?", stateToken).
		Delete(&stateM)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to consume oauth attempt")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrOAuthStateNotFound
	}

	// The row is gone either way; an expired attempt must not be redeemable.
	if time.Now().After(stateM.ExpiresAt) {
		return nil, repository.ErrOAuthStateExpired
	}

	return toOAuthAttemptDomain(&stateM), nil
}

// DeleteExpiredAttempts removes attempts whose lifetime has elapsed.
func (repo *oauthStateRepository) DeleteExpiredAttempts(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.AtprotoOAuthStateModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired oauth attempts")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toOAuthAttemptDomain converts a GORM AtprotoOAuthStateModel to a domain OAuthAttempt entity.
func toOAuthAttemptDomain(data *model.AtprotoOAuthStateModel) *entity.OAuthAttempt {
	if data == nil {
		return nil
	}

	return &entity.OAuthAttempt{
		ID:           data.ID,
		UserID:       data.UserID,
		StateToken:   data.StateToken,
		Handle:       data.Handle,
		CodeVerifier: data.CodeVerifier,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
	}
}

// fromOAuthAttemptDomain converts a domain OAuthAttempt entity to a GORM AtprotoOAuthStateModel.
func fromOAuthAttemptDomain(data *entity.OAuthAttempt) *model.AtprotoOAuthStateModel {
	if data == nil {
		return nil
	}

	return &model.AtprotoOAuthStateModel{
		ID:           data.ID,
		UserID:       data.UserID,
		StateToken:   data.StateToken,
		Handle:       data.Handle,
		CodeVerifier: data.CodeVerifier,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
	}
}
