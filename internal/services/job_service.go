package services

import (
	"context"
	"errors"
	"time"

	"github.com/resumeai/backend/internal/models"
	pgrepo "github.com/resumeai/backend/internal/repositories/postgres"
	"github.com/resumeai/backend/internal/utils"
)

// JobMatchView is the render-ready shape for a job's stored matches: each
// project and experience carries its improved description when one was
// persisted, falling back to the entity's own text.
type JobMatchView struct {
	Skills      []models.Skill        `json:"skills"`
	Projects    []MatchedProjectView  `json:"projects"`
	Experiences []MatchedExperienceView `json:"experiences"`
}

type MatchedProjectView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type MatchedExperienceView struct {
	ID          uint   `json:"id"`
	Position    string `json:"position"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type JobService interface {
	List(ctx context.Context, userID string) ([]models.JobDescription, error)
	Matches(ctx context.Context, userID string, jobID uint) (*JobMatchView, error)
	Update(ctx context.Context, userID string, jobID uint, title, company, rawDescription string) (*models.JobDescription, error)
	Delete(ctx context.Context, userID string, jobID uint) error
}

type jobService struct {
	jobs pgrepo.JobRepository
}

func NewJobService(jobs pgrepo.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

func (s *jobService) List(ctx context.Context, userID string) ([]models.JobDescription, error) {
	const op = "JobService.List"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	jobs, err := s.jobs.ListByProfile(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return jobs, nil
}

// owned loads the job and rejects callers that do not own it. Ownership
// failures read as not-found so job ids are not probeable.
func (s *jobService) owned(ctx context.Context, op, userID string, jobID uint) (*models.JobDescription, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	if job.ProfileID != userID {
		return nil, utils.E(utils.CodeNotFound, op, "job not found", nil)
	}
	return job, nil
}

func (s *jobService) Matches(ctx context.Context, userID string, jobID uint) (*JobMatchView, error) {
	const op = "JobService.Matches"

	if _, err := s.owned(ctx, op, userID, jobID); err != nil {
		return nil, err
	}

	skills, err := s.jobs.MatchedSkills(ctx, jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load skill matches", err)
	}
	projects, err := s.jobs.MatchedProjects(ctx, jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load project matches", err)
	}
	experiences, err := s.jobs.MatchedExperiences(ctx, jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load experience matches", err)
	}

	view := &JobMatchView{
		Skills:      skills,
		Projects:    make([]MatchedProjectView, 0, len(projects)),
		Experiences: make([]MatchedExperienceView, 0, len(experiences)),
	}
	if view.Skills == nil {
		view.Skills = []models.Skill{}
	}
	for _, p := range projects {
		desc := p.Description
		if p.ImprovedDescription != "" {
			desc = p.ImprovedDescription
		}
		view.Projects = append(view.Projects, MatchedProjectView{
			ID:          p.ID,
			Name:        p.Name,
			Description: desc,
			Link:        p.Link,
		})
	}
	for _, e := range experiences {
		desc := e.Description
		if e.ImprovedDescription != "" {
			desc = e.ImprovedDescription
		}
		view.Experiences = append(view.Experiences, MatchedExperienceView{
			ID:          e.ID,
			Position:    e.Position,
			Company:     e.Company,
			Duration:    e.Duration,
			Description: desc,
		})
	}
	return view, nil
}

func (s *jobService) Update(ctx context.Context, userID string, jobID uint, title, company, rawDescription string) (*models.JobDescription, error) {
	const op = "JobService.Update"

	if title == "" || company == "" || rawDescription == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title, company, and raw_description are required", nil)
	}

	job, err := s.owned(ctx, op, userID, jobID)
	if err != nil {
		return nil, err
	}

	job.Title = title
	job.Company = company
	job.RawDescription = rawDescription
	job.UpdatedAt = time.Now().UTC()

	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update job", err)
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, userID string, jobID uint) error {
	const op = "JobService.Delete"

	if _, err := s.owned(ctx, op, userID, jobID); err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete job", err)
	}
	return nil
}
