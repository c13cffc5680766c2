package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/resumeai/backend/internal/models"
	"github.com/resumeai/backend/internal/utils"
)

// MatchedProjectRow and MatchedExperienceRow carry the entity joined with the
// improved description its match row stored, if any.
type MatchedProjectRow struct {
	ID                  uint   `gorm:"column:id"`
	Name                string `gorm:"column:name"`
	Description         string `gorm:"column:description"`
	Link                string `gorm:"column:link"`
	ImprovedDescription string `gorm:"column:improved_description"`
}

type MatchedExperienceRow struct {
	ID                  uint   `gorm:"column:id"`
	Position            string `gorm:"column:position"`
	Company             string `gorm:"column:company"`
	Duration            string `gorm:"column:duration"`
	Description         string `gorm:"column:description"`
	ImprovedDescription string `gorm:"column:improved_description"`
}

type JobRepository interface {
	InsertJob(ctx context.Context, job *models.JobDescription) error
	InsertSkillMatch(ctx context.Context, m *models.SkillMatch) error
	InsertProjectMatch(ctx context.Context, m *models.ProjectMatch) error
	InsertExperienceMatch(ctx context.Context, m *models.ExperienceMatch) error

	GetByID(ctx context.Context, jobID uint) (*models.JobDescription, error)
	ListByProfile(ctx context.Context, profileID string) ([]models.JobDescription, error)
	Update(ctx context.Context, job *models.JobDescription) error
	Delete(ctx context.Context, jobID uint) error

	MatchedSkills(ctx context.Context, jobID uint) ([]models.Skill, error)
	MatchedProjects(ctx context.Context, jobID uint) ([]MatchedProjectRow, error)
	MatchedExperiences(ctx context.Context, jobID uint) ([]MatchedExperienceRow, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

// InsertJob is not duplicate-tolerant: a job row either lands or the whole
// match operation fails.
func (r *jobRepo) InsertJob(ctx context.Context, job *models.JobDescription) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepo) InsertSkillMatch(ctx context.Context, m *models.SkillMatch) error {
	return insertIgnoreDuplicate(r.db.WithContext(ctx), m)
}

func (r *jobRepo) InsertProjectMatch(ctx context.Context, m *models.ProjectMatch) error {
	return insertIgnoreDuplicate(r.db.WithContext(ctx), m)
}

func (r *jobRepo) InsertExperienceMatch(ctx context.Context, m *models.ExperienceMatch) error {
	return insertIgnoreDuplicate(r.db.WithContext(ctx), m)
}

func (r *jobRepo) GetByID(ctx context.Context, jobID uint) (*models.JobDescription, error) {
	var job models.JobDescription
	err := r.db.WithContext(ctx).
		Where("id = ?", jobID).
		Take(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &job, err
}

func (r *jobRepo) ListByProfile(ctx context.Context, profileID string) ([]models.JobDescription, error) {
	var jobs []models.JobDescription
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) Update(ctx context.Context, job *models.JobDescription) error {
	res := r.db.WithContext(ctx).
		Model(&models.JobDescription{}).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"title":           job.Title,
			"company":         job.Company,
			"raw_description": job.RawDescription,
			"updated_at":      job.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, jobID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ?", jobID).
		Delete(&models.JobDescription{}).Error
}

func (r *jobRepo) MatchedSkills(ctx context.Context, jobID uint) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).
		Table("skills").
		Select("skills.*").
		Joins("JOIN job_matches ON job_matches.skill_id = skills.id").
		Where("job_matches.job_id = ?", jobID).
		Order("skills.id").
		Find(&skills).Error
	return skills, err
}

func (r *jobRepo) MatchedProjects(ctx context.Context, jobID uint) ([]MatchedProjectRow, error) {
	var rows []MatchedProjectRow
	err := r.db.WithContext(ctx).
		Table("projects").
		Select("projects.id, projects.name, projects.description, projects.link, project_matches.improved_description").
		Joins("JOIN project_matches ON project_matches.project_id = projects.id").
		Where("project_matches.job_id = ?", jobID).
		Order("projects.id").
		Find(&rows).Error
	return rows, err
}

func (r *jobRepo) MatchedExperiences(ctx context.Context, jobID uint) ([]MatchedExperienceRow, error) {
	var rows []MatchedExperienceRow
	err := r.db.WithContext(ctx).
		Table("work_experiences").
		Select("work_experiences.id, work_experiences.position, work_experiences.company, work_experiences.duration, work_experiences.description, experience_matches.improved_description").
		Joins("JOIN experience_matches ON experience_matches.experience_id = work_experiences.id").
		Where("experience_matches.job_id = ?", jobID).
		Order("work_experiences.id").
		Find(&rows).Error
	return rows, err
}
