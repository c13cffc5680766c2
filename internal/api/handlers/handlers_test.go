package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeai/backend/internal/api/handlers"
	"github.com/resumeai/backend/internal/api/routes"
	"github.com/resumeai/backend/internal/logger"
	"github.com/resumeai/backend/internal/models"
	"github.com/resumeai/backend/internal/services"
)

func init() { gin.SetMode(gin.TestMode) }

type countingExtraction struct{ calls int }

func (c *countingExtraction) Extract(_ context.Context, _ string) (*models.ResumeExtract, error) {
	c.calls++
	return &models.ResumeExtract{}, nil
}

type countingProfiles struct{ calls int }

func (c *countingProfiles) Upsert(_ context.Context, userID string, _ *models.ResumeExtract) (*models.Profile, error) {
	c.calls++
	return &models.Profile{UserID: userID}, nil
}

func (c *countingProfiles) Get(_ context.Context, userID string) (*models.Profile, error) {
	c.calls++
	return &models.Profile{UserID: userID, Name: "Ada"}, nil
}

func (c *countingProfiles) SaveManual(_ context.Context, userID string, _ services.ManualEntry) (*models.Profile, error) {
	c.calls++
	return &models.Profile{UserID: userID}, nil
}

type countingMatcher struct{ calls int }

func (c *countingMatcher) MatchAndPersist(_ context.Context, _, _ string) (*services.MatchSummary, error) {
	c.calls++
	return &services.MatchSummary{
		JobID:                7,
		MatchedSkillIDs:      []uint{1},
		MatchedProjectIDs:    []uint{},
		MatchedExperienceIDs: []uint{},
	}, nil
}

type stubJobs struct{}

func (stubJobs) List(_ context.Context, _ string) ([]models.JobDescription, error) {
	return []models.JobDescription{}, nil
}

func (stubJobs) Matches(_ context.Context, _ string, _ uint) (*services.JobMatchView, error) {
	return &services.JobMatchView{}, nil
}

func (stubJobs) Update(_ context.Context, _ string, _ uint, _, _, _ string) (*models.JobDescription, error) {
	return &models.JobDescription{}, nil
}

func (stubJobs) Delete(_ context.Context, _ string, _ uint) error { return nil }

type testEnv struct {
	router     *gin.Engine
	extraction *countingExtraction
	profiles   *countingProfiles
	matcher    *countingMatcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	env := &testEnv{
		extraction: &countingExtraction{},
		profiles:   &countingProfiles{},
		matcher:    &countingMatcher{},
	}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Resume:  handlers.NewResumeHandler(env.extraction, env.profiles, nil, logger.New()),
		Profile: handlers.NewProfileHandler(env.profiles),
		Job:     handlers.NewJobHandler(env.matcher, stubJobs{}),
	})
	env.router = r
	return env
}

func bearerToken(t *testing.T, subject string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return "Bearer " + signed
}

func TestAuthGateBlocksMissingToken(t *testing.T) {
	env := newTestEnv(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/upload"},
		{http.MethodPost, "/match-job"},
		{http.MethodGet, "/profile/me"},
		{http.MethodGet, "/jobs"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, nil)
		env.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}

	assert.Equal(t, 0, env.extraction.calls, "no collaborator call without a credential")
	assert.Equal(t, 0, env.profiles.calls)
	assert.Equal(t, 0, env.matcher.calls)
}

func TestAuthGateBlocksInvalidToken(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, env.profiles.calls)
}

func TestUploadRejectsNonPDF(t *testing.T) {
	env := newTestEnv(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("resume", "cv.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text resume"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, env.extraction.calls, "rejected before any outbound call")
}

func TestMatchJobRequiresDescription(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/match-job", strings.NewReader(`{"description":""}`))
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	req.Header.Set("Content-Type", "application/json")
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, env.matcher.calls)
}

func TestMatchJobJSONBody(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/match-job", strings.NewReader(`{"description":"Build Go services"}`))
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	req.Header.Set("Content-Type", "application/json")
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.matcher.calls)

	var resp services.MatchSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(7), resp.JobID)
	assert.Equal(t, []uint{1}, resp.MatchedSkillIDs)
}

func TestMatchJobFormField(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/match-job", strings.NewReader("job_text=Build+Go+services"))
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.matcher.calls)
}

func TestProfileMe(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile/me", nil)
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var p models.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "Ada", p.Name)
}
