package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/resumeai/backend/internal/models"
	pgrepo "github.com/resumeai/backend/internal/repositories/postgres"
	"github.com/resumeai/backend/internal/utils"
)

type ManualEntry struct {
	Skills     []string               `json:"skills"`
	Projects   []models.ProjectEntry  `json:"projects"`
	Educations []models.EducationEntry `json:"educations"`
}

type ProfileService interface {
	Upsert(ctx context.Context, userID string, extract *models.ResumeExtract) (*models.Profile, error)
	Get(ctx context.Context, userID string) (*models.Profile, error)
	SaveManual(ctx context.Context, userID string, entry ManualEntry) (*models.Profile, error)
}

type profileService struct {
	profiles pgrepo.ProfileRepository
}

func NewProfileService(profiles pgrepo.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

// Upsert overwrites the scalar fields in place and inserts every child row,
// relying on the store's uniqueness checks to make re-ingestion of an
// unchanged résumé a no-op for children.
func (s *profileService) Upsert(ctx context.Context, userID string, extract *models.ResumeExtract) (*models.Profile, error) {
	const op = "ProfileService.Upsert"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if extract == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "extract is required", nil)
	}

	p := &models.Profile{
		UserID:    userID,
		Name:      extract.Name,
		Email:     extract.Email,
		Phone:     extract.Phone,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.profiles.UpsertScalar(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert profile", err)
	}

	for _, name := range extract.Skills {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if err := s.profiles.InsertChild(ctx, &models.Skill{ProfileID: userID, Name: name}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to insert skill", err)
		}
	}
	for _, e := range extract.WorkExperience {
		if err := s.profiles.InsertChild(ctx, &models.WorkExperience{
			ProfileID:   userID,
			Position:    e.Position,
			Company:     e.Company,
			Duration:    e.Duration,
			Description: e.Description,
		}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to insert experience", err)
		}
	}
	for _, e := range extract.Education {
		if err := s.profiles.InsertChild(ctx, &models.Education{
			ProfileID:   userID,
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        e.Year,
		}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to insert education", err)
		}
	}
	for _, pr := range extract.Projects {
		if strings.TrimSpace(pr.Name) == "" {
			continue
		}
		if err := s.profiles.InsertChild(ctx, &models.Project{
			ProfileID:   userID,
			Name:        pr.Name,
			Description: pr.Description,
			Link:        pr.Link,
		}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to insert project", err)
		}
	}
	for _, url := range extract.Links {
		if strings.TrimSpace(url) == "" {
			continue
		}
		if err := s.profiles.InsertChild(ctx, &models.Link{ProfileID: userID, URL: url}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to insert link", err)
		}
	}

	return s.Get(ctx, userID)
}

func (s *profileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "ProfileService.Get"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}

// SaveManual adds hand-entered skills, projects, and education. It creates
// the profile row when missing but never touches extracted scalar fields.
func (s *profileService) SaveManual(ctx context.Context, userID string, entry ManualEntry) (*models.Profile, error) {
	const op = "ProfileService.SaveManual"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	if err := s.profiles.Ensure(ctx, &models.Profile{UserID: userID, UpdatedAt: time.Now().UTC()}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to ensure profile", err)
	}

	for _, name := range entry.Skills {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if err := s.profiles.InsertChild(ctx, &models.Skill{ProfileID: userID, Name: name}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to insert skill", err)
		}
	}
	for _, pr := range entry.Projects {
		if strings.TrimSpace(pr.Name) == "" {
			continue
		}
		if err := s.profiles.InsertChild(ctx, &models.Project{
			ProfileID:   userID,
			Name:        pr.Name,
			Description: pr.Description,
			Link:        pr.Link,
		}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to insert project", err)
		}
	}
	for _, e := range entry.Educations {
		if err := s.profiles.InsertChild(ctx, &models.Education{
			ProfileID:   userID,
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        e.Year,
		}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to insert education", err)
		}
	}

	return s.Get(ctx, userID)
}
