package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/resumeai/backend/internal/models"
	"github.com/resumeai/backend/internal/providers/llm"
	pgrepo "github.com/resumeai/backend/internal/repositories/postgres"
	"github.com/resumeai/backend/internal/utils"
)

// MatchSummary reports the job row plus the id lists that were attempted,
// not filtered down to the associations that actually landed. Callers that
// need confirmation re-read the job's matches.
type MatchSummary struct {
	JobID                uint   `json:"job_id"`
	MatchedSkillIDs      []uint `json:"matched_skill_ids"`
	MatchedProjectIDs    []uint `json:"matched_project_ids"`
	MatchedExperienceIDs []uint `json:"matched_experience_ids"`
}

type MatchService interface {
	MatchAndPersist(ctx context.Context, userID, jobDescription string) (*MatchSummary, error)
}

type matchService struct {
	provider llm.Provider
	profiles pgrepo.ProfileRepository
	jobs     pgrepo.JobRepository
}

func NewMatchService(provider llm.Provider, profiles pgrepo.ProfileRepository, jobs pgrepo.JobRepository) MatchService {
	return &matchService{provider: provider, profiles: profiles, jobs: jobs}
}

// MatchAndPersist runs the stored profile and a job description through the
// model, then writes the job row and its match associations. Which ids get
// selected is entirely the model's call; this side only constrains the
// response shape and tolerates ids it cannot place.
func (s *matchService) MatchAndPersist(ctx context.Context, userID, jobDescription string) (*MatchSummary, error) {
	const op = "MatchService.MatchAndPersist"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job description is required", nil)
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}

	prompt, err := buildMatchPrompt(profile, jobDescription)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to build prompt", err)
	}

	out, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "model call failed", err)
	}

	var result models.MatchResult
	if err := decodeModelJSON(out, &result); err != nil {
		return nil, utils.E(utils.CodeBadModelOutput, op, "model returned malformed output",
			fmt.Errorf("%w; raw output: %s", err, out))
	}

	return s.persist(ctx, userID, jobDescription, &result)
}

// persist writes the job row first; matches never exist without their parent
// job. A duplicate association is already swallowed below the repository, so
// any insert error here aborts the remaining ids and surfaces.
func (s *matchService) persist(ctx context.Context, userID, jobDescription string, result *models.MatchResult) (*MatchSummary, error) {
	const op = "MatchService.persist"

	rawDescription := result.JobRawDescription
	if rawDescription == "" {
		rawDescription = jobDescription
	}

	now := time.Now().UTC()
	job := &models.JobDescription{
		ProfileID:      userID,
		Title:          result.JobTitle,
		Company:        result.JobCompany,
		RawDescription: rawDescription,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if payload, err := json.Marshal(result); err == nil {
		job.ModelResponse = datatypes.JSON(payload)
	}

	if err := s.jobs.InsertJob(ctx, job); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}

	summary := &MatchSummary{
		JobID:                job.ID,
		MatchedSkillIDs:      flexToUint(result.MatchedSkillIDs),
		MatchedProjectIDs:    flexToUint(result.MatchedProjectIDs),
		MatchedExperienceIDs: flexToUint(result.MatchedExperienceIDs),
	}

	for _, id := range summary.MatchedSkillIDs {
		if err := s.jobs.InsertSkillMatch(ctx, &models.SkillMatch{JobID: job.ID, SkillID: id}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, fmt.Sprintf("failed to insert skill match %d", id), err)
		}
	}
	for _, id := range summary.MatchedProjectIDs {
		if err := s.jobs.InsertProjectMatch(ctx, &models.ProjectMatch{
			JobID:               job.ID,
			ProjectID:           id,
			ImprovedDescription: result.ImprovedFor(id),
		}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, fmt.Sprintf("failed to insert project match %d", id), err)
		}
	}
	for _, id := range summary.MatchedExperienceIDs {
		if err := s.jobs.InsertExperienceMatch(ctx, &models.ExperienceMatch{
			JobID:               job.ID,
			ExperienceID:        id,
			ImprovedDescription: result.ImprovedFor(id),
		}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, fmt.Sprintf("failed to insert experience match %d", id), err)
		}
	}

	return summary, nil
}

func flexToUint(ids []models.FlexID) []uint {
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		out = append(out, uint(id))
	}
	return out
}
