package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dreamtree/internal/domain/entity"
	domainerrors "dreamtree/internal/domain/errors"
	mockUC "dreamtree/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSyncHandler(t *testing.T) (*SyncHandler, *mockUC.MockSkillSyncUsecase) {
	syncUC := mockUC.NewMockSkillSyncUsecase(t)
	handler := &SyncHandler{
		syncUC: syncUC,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return handler, syncUC
}

func TestSyncHandler_SyncSkills_Integration(t *testing.T) {
	handler, syncUC := createTestSyncHandler(t)
	userID := uuid.New()
	failedSkillID := uuid.New()

	syncUC.EXPECT().
		SyncSkills(mock.Anything, userID).
		Return(&entity.SyncResult{
			Attempted: 3,
			Succeeded: 2,
			Failed:    1,
			Failures: []entity.SyncFailure{
				{SkillID: failedSkillID, Reason: "record write failed with status 502"},
			},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/skills", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	err := handler.SyncSkills(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"attempted":3`)
	assert.Contains(t, responseBody, `"succeeded":2`)
	assert.Contains(t, responseBody, `"failed":1`)
	assert.Contains(t, responseBody, failedSkillID.String())
	assert.Contains(t, responseBody, "record write failed with status 502")
}

func TestSyncHandler_SyncSkills_CleanRun(t *testing.T) {
	handler, syncUC := createTestSyncHandler(t)
	userID := uuid.New()

	syncUC.EXPECT().
		SyncSkills(mock.Anything, userID).
		Return(&entity.SyncResult{Attempted: 2, Succeeded: 2}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/skills", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	err := handler.SyncSkills(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"attempted":2`)
	assert.Contains(t, responseBody, `"failed":0`)
	assert.NotContains(t, responseBody, `"failures"`)
}

func TestSyncHandler_SyncSkills_RequiresAuth(t *testing.T) {
	handler, _ := createTestSyncHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/skills", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SyncSkills(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestSyncHandler_SyncSkills_NotConnected(t *testing.T) {
	handler, syncUC := createTestSyncHandler(t)
	userID := uuid.New()

	syncUC.EXPECT().
		SyncSkills(mock.Anything, userID).
		Return(nil, domainerrors.ErrNotConnected.WrapMessage("failed to look up session"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/skills", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	err := handler.SyncSkills(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_CONNECTED")
}
