package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeai/backend/internal/models"
	"github.com/resumeai/backend/internal/utils"
)

func TestProfileGetMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)

	_, err := repo.GetByUserID(context.Background(), "nobody")
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestProfileUpsertScalarInPlace(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertScalar(ctx, &models.Profile{
		UserID: "user-1", Name: "Ada", Email: "ada@old.example", UpdatedAt: time.Now().UTC(),
	}))
	require.NoError(t, repo.UpsertScalar(ctx, &models.Profile{
		UserID: "user-1", Name: "Ada Lovelace", Email: "ada@new.example", UpdatedAt: time.Now().UTC(),
	}))

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "re-ingestion must update, never duplicate, the profile")

	p, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.Name)
	assert.Equal(t, "ada@new.example", p.Email)
}

func TestProfileEnsureLeavesExistingUntouched(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertScalar(ctx, &models.Profile{
		UserID: "user-1", Name: "Ada", Email: "ada@example.com", UpdatedAt: time.Now().UTC(),
	}))
	require.NoError(t, repo.Ensure(ctx, &models.Profile{UserID: "user-1", UpdatedAt: time.Now().UTC()}))

	p, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name, "Ensure must not blank extracted fields")
}

func TestInsertChildSwallowsDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)
	ctx := context.Background()

	seedProfile(t, db, "user-1")

	require.NoError(t, repo.InsertChild(ctx, &models.Skill{ProfileID: "user-1", Name: "Go"}))
	require.NoError(t, repo.InsertChild(ctx, &models.Skill{ProfileID: "user-1", Name: "Go"}))
	require.NoError(t, repo.InsertChild(ctx, &models.Link{ProfileID: "user-1", URL: "https://example.com"}))
	require.NoError(t, repo.InsertChild(ctx, &models.Link{ProfileID: "user-1", URL: "https://example.com"}))

	var skills, links int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&skills).Error)
	require.NoError(t, db.Model(&models.Link{}).Count(&links).Error)
	assert.Equal(t, int64(1), skills)
	assert.Equal(t, int64(1), links)

	// same skill name under another profile is a different row
	seedProfile(t, db, "user-2")
	require.NoError(t, repo.InsertChild(ctx, &models.Skill{ProfileID: "user-2", Name: "Go"}))
	require.NoError(t, db.Model(&models.Skill{}).Count(&skills).Error)
	assert.Equal(t, int64(2), skills)
}

func TestProfileReadBackOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)
	ctx := context.Background()

	seedProfile(t, db, "user-1")
	require.NoError(t, repo.InsertChild(ctx, &models.Skill{ProfileID: "user-1", Name: "Go"}))
	require.NoError(t, repo.InsertChild(ctx, &models.Skill{ProfileID: "user-1", Name: "SQL"}))
	require.NoError(t, repo.InsertChild(ctx, &models.Project{ProfileID: "user-1", Name: "ray tracer", Description: "renders scenes"}))
	require.NoError(t, repo.InsertChild(ctx, &models.WorkExperience{ProfileID: "user-1", Position: "Engineer", Company: "Acme"}))

	p, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, p.Skills, 2)
	assert.Equal(t, "Go", p.Skills[0].Name)
	assert.Equal(t, "SQL", p.Skills[1].Name)
	assert.NotZero(t, p.Skills[0].ID)
	assert.NotZero(t, p.Skills[1].ID)

	require.Len(t, p.Projects, 1)
	assert.Equal(t, "ray tracer", p.Projects[0].Name)
	require.Len(t, p.Experiences, 1)
	assert.Equal(t, "Acme", p.Experiences[0].Company)

	// present profile with no education is still a present profile
	assert.Len(t, p.Education, 0)
}
