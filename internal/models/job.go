package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobDescription struct {
	ID             uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileID      string         `gorm:"column:profile_id;type:text;index" json:"profile_id"`
	Title          string         `gorm:"column:title;type:text" json:"title"`
	Company        string         `gorm:"column:company;type:text" json:"company"`
	RawDescription string         `gorm:"column:raw_description;type:text" json:"raw_description"`
	ModelResponse  datatypes.JSON `gorm:"column:model_response;type:jsonb" json:"model_response,omitempty"`
	CreatedAt      time.Time      `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (JobDescription) TableName() string { return "job_descriptions" }

// Match rows reference profile entities weakly. The entity rows can be
// updated or removed without invalidating historical matches; a dangling id
// is acceptable.

type SkillMatch struct {
	ID      uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	JobID   uint `gorm:"column:job_id;uniqueIndex:uq_job_matches_pair" json:"job_id"`
	SkillID uint `gorm:"column:skill_id;uniqueIndex:uq_job_matches_pair" json:"skill_id"`
}

func (SkillMatch) TableName() string { return "job_matches" }

type ProjectMatch struct {
	ID                  uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	JobID               uint   `gorm:"column:job_id;uniqueIndex:uq_project_matches_pair" json:"job_id"`
	ProjectID           uint   `gorm:"column:project_id;uniqueIndex:uq_project_matches_pair" json:"project_id"`
	ImprovedDescription string `gorm:"column:improved_description;type:text" json:"improved_description,omitempty"`
}

func (ProjectMatch) TableName() string { return "project_matches" }

type ExperienceMatch struct {
	ID                  uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	JobID               uint   `gorm:"column:job_id;uniqueIndex:uq_experience_matches_pair" json:"job_id"`
	ExperienceID        uint   `gorm:"column:experience_id;uniqueIndex:uq_experience_matches_pair" json:"experience_id"`
	ImprovedDescription string `gorm:"column:improved_description;type:text" json:"improved_description,omitempty"`
}

func (ExperienceMatch) TableName() string { return "experience_matches" }
