// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"dreamtree/internal/domain/entity"
	domainerrors "dreamtree/internal/domain/errors"
	"dreamtree/internal/domain/repository"
	"dreamtree/internal/domain/service"
	"dreamtree/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// atprotoSessionRepository implements the repository.AtprotoSessionRepository
// interface. Token columns are sealed with the encryptor before they touch the
// database and opened again on the way out.
type atprotoSessionRepository struct {
	db        *gorm.DB
	encryptor service.Encryptor
}

// NewAtprotoSessionRepository is the constructor for atprotoSessionRepository.
func NewAtprotoSessionRepository(db *gorm.DB, encryptor service.Encryptor) repository.AtprotoSessionRepository {
	return &atprotoSessionRepository{
		db:        db,
		encryptor: encryptor,
	}
}

// UpsertSession stores the session for its user, replacing any previous connection.
func (repo *atprotoSessionRepository) UpsertSession(ctx context.Context, session *entity.AtprotoSession) error {
	sessionM, err := repo.fromSessionDomain(ctx, session)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"did", "handle", "pds_url", "access_token_cipher", "refresh_token_cipher", "connected_at", "updated_at",
			}),
		}).
		Create(sessionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required session information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert atproto session")
	}

	// Update the entity with generated values
	session.ID = sessionM.ID

	return nil
}

// FindSessionByUserID retrieves the user's connection with tokens decrypted.
// Reads are pinned to the primary so a connection saved moments ago by the
// callback is visible immediately.
func (repo *atprotoSessionRepository) FindSessionByUserID(ctx context.Context, userID uuid.UUID) (*entity.AtprotoSession, error) {
	var sessionM model.AtprotoSessionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAtprotoSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find atproto session by user")
	}

	return repo.toSessionDomain(ctx, &sessionM)
}

// DeleteSessionByUserID removes the user's stored connection.
func (repo *atprotoSessionRepository) DeleteSessionByUserID(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.AtprotoSessionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete atproto session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAtprotoSessionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM AtprotoSessionModel to a domain entity,
// opening the token ciphertexts for the owning user.
func (repo *atprotoSessionRepository) toSessionDomain(ctx context.Context, data *model.AtprotoSessionModel) (*entity.AtprotoSession, error) {
	if data == nil {
		return nil, nil
	}

	accessToken, err := repo.encryptor.Decrypt(ctx, data.UserID, data.AccessTokenCipher)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt access token")
	}

	refreshToken := ""
	if data.RefreshTokenCipher != "" {
		refreshToken, err = repo.encryptor.Decrypt(ctx, data.UserID, data.RefreshTokenCipher)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decrypt refresh token")
		}
	}

	return &entity.AtprotoSession{
		ID:           data.ID,
		UserID:       data.UserID,
		DID:          data.Did,
		Handle:       data.Handle,
		PDSURL:       data.PdsURL,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ConnectedAt:  data.ConnectedAt,
	}, nil
}

// fromSessionDomain converts a domain entity to a GORM AtprotoSessionModel,
// sealing the token fields for the owning user.
func (repo *atprotoSessionRepository) fromSessionDomain(ctx context.Context, data *entity.AtprotoSession) (*model.AtprotoSessionModel, error) {
	if data == nil {
		return nil, nil
	}

	accessCipher, err := repo.encryptor.Encrypt(ctx, data.UserID, data.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt access token")
	}

	refreshCipher := ""
	if data.RefreshToken != "" {
		refreshCipher, err = repo.encryptor.Encrypt(ctx, data.UserID, data.RefreshToken)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encrypt refresh token")
		}
	}

	return &model.AtprotoSessionModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Did:                data.DID,
		Handle:             data.Handle,
		PdsURL:             data.PDSURL,
		AccessTokenCipher:  accessCipher,
		RefreshTokenCipher: refreshCipher,
		ConnectedAt:        data.ConnectedAt,
	}, nil
}
