package impl

import (
	"context"
	"log/slog"
	"time"

	"dreamtree/config"
	deliverycontext "dreamtree/internal/delivery/context"
	"dreamtree/internal/domain/entity"
	domainerrors "dreamtree/internal/domain/errors"
	"dreamtree/internal/domain/repository"
	"dreamtree/internal/domain/service"
	"dreamtree/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultSkillCollection names the record collection skills are written into
// when no collection is configured.
const defaultSkillCollection = "app.dreamtree.skill"

// skillSyncService implements the SkillSyncUsecase interface.
type skillSyncService struct {
	txManager  repository.TransactionManager
	client     service.AtprotoClient
	collection string
	logger     *slog.Logger
}

// NewSkillSyncService is the constructor for skillSyncService.
func NewSkillSyncService(
	txManager repository.TransactionManager,
	client service.AtprotoClient,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SkillSyncUsecase {
	collection := defaultSkillCollection
	if cfg != nil && cfg.Atproto != nil && cfg.Atproto.SkillCollection != "" {
		collection = cfg.Atproto.SkillCollection
	}

	return &skillSyncService{
		txManager:  txManager,
		client:     client,
		collection: collection,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *skillSyncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncSkills pushes every skill of the user to their personal data server.
func (srv *skillSyncService) SyncSkills(ctx context.Context, userID uuid.UUID) (*entity.SyncResult, error) {
	srv.log(ctx).Debug("Starting skill sync", slog.Any("user_id", userID))

	var (
		session *entity.AtprotoSession
		skills  []*entity.Skill
	)

	// 1. Load the session and the skill list in one transaction so the pass
	// works from a consistent snapshot.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		session, err = repoFactory.AtprotoSessionRepo().FindSessionByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrAtprotoSessionNotFound) {
				return errors.Wrap(domainerrors.ErrNotConnected, "no linked account to sync to")
			}

			return errors.Wrap(err, "failed to load session")
		}

		skills, err = repoFactory.SkillRepo().FindSkillsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load skills")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 2. Push oldest first. A failed record is recorded and the pass moves
	// on; one bad record must not block the rest.
	result := &entity.SyncResult{Attempted: len(skills)}

	for _, skill := range skills {
		record := &service.SkillRecord{
			Type:      srv.collection,
			Name:      skill.Name,
			Category:  skill.Category,
			CreatedAt: skill.CreatedAt.UTC().Format(time.RFC3339),
		}

		// The skill ID doubles as the record key, so re-syncing overwrites
		// instead of duplicating.
		err := srv.client.PutRecord(ctx, session.PDSURL, session.AccessToken, session.DID, srv.collection, skill.ID.String(), record)
		if err != nil {
			srv.log(ctx).Warn("Failed to push skill record",
				slog.Any("skill_id", skill.ID),
				slog.Any("error", err))

			result.Failed++
			result.Failures = append(result.Failures, entity.SyncFailure{
				SkillID: skill.ID,
				Reason:  err.Error(),
			})

			continue
		}

		result.Succeeded++
	}

	srv.log(ctx).Info("Skill sync finished",
		slog.Any("user_id", userID),
		slog.Int("attempted", result.Attempted),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed))

	return result, nil
}
