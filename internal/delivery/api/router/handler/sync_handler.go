package handler

import (
	"log/slog"
	"net/http"

	"dreamtree/internal/delivery/api/middleware"
	"dreamtree/internal/delivery/api/response"
	"dreamtree/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC usecase.SkillSyncUsecase
	Logger *slog.Logger
}

// SyncHandler holds dependencies for skill sync handlers
type SyncHandler struct {
	syncUC usecase.SkillSyncUsecase
	logger *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC: params.SyncUC,
		logger: params.Logger,
	}
}

// SyncFailureItem reports one record that could not be pushed
type SyncFailureItem struct {
	SkillID string `json:"skill_id"`
	Reason  string `json:"reason"`
}

// SyncSkillsResponse summarizes one sync pass for the client
type SyncSkillsResponse struct {
	Attempted int               `json:"attempted"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Failures  []SyncFailureItem `json:"failures,omitempty"`
}

// SyncSkills pushes all of the caller's skills to their connected account
func (h *SyncHandler) SyncSkills(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.syncUC.SyncSkills(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := SyncSkillsResponse{
		Attempted: result.Attempted,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
	}
	for _, failure := range result.Failures {
		resp.Failures = append(resp.Failures, SyncFailureItem{
			SkillID: failure.SkillID.String(),
			Reason:  failure.Reason,
		})
	}

	return response.Success(c, http.StatusOK, resp)
}
