package models

import "time"

// Profile is keyed by the external subject id from the auth token, not by an
// internal numeric id. Re-ingestion updates the row in place.
type Profile struct {
	UserID    string    `gorm:"column:user_id;type:text;primaryKey" json:"user_id"`
	Name      string    `gorm:"column:name;type:text" json:"name"`
	Email     string    `gorm:"column:email;type:text" json:"email"`
	Phone     string    `gorm:"column:phone;type:text" json:"phone"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`

	Skills      []Skill          `gorm:"foreignKey:ProfileID;references:UserID;constraint:OnDelete:CASCADE" json:"skills"`
	Projects    []Project        `gorm:"foreignKey:ProfileID;references:UserID;constraint:OnDelete:CASCADE" json:"projects"`
	Experiences []WorkExperience `gorm:"foreignKey:ProfileID;references:UserID;constraint:OnDelete:CASCADE" json:"experiences"`
	Education   []Education      `gorm:"foreignKey:ProfileID;references:UserID;constraint:OnDelete:CASCADE" json:"education"`
	Links       []Link           `gorm:"foreignKey:ProfileID;references:UserID;constraint:OnDelete:CASCADE" json:"links"`
}

func (Profile) TableName() string { return "user_profiles" }

type Skill struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileID string `gorm:"column:profile_id;type:text;uniqueIndex:uq_skills_profile_name" json:"profile_id"`
	Name      string `gorm:"column:name;type:text;uniqueIndex:uq_skills_profile_name" json:"name"`
}

func (Skill) TableName() string { return "skills" }

type Project struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileID   string `gorm:"column:profile_id;type:text;uniqueIndex:uq_projects_profile_name" json:"profile_id"`
	Name        string `gorm:"column:name;type:text;uniqueIndex:uq_projects_profile_name" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Link        string `gorm:"column:link;type:text" json:"link,omitempty"`
}

func (Project) TableName() string { return "projects" }

type WorkExperience struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileID   string `gorm:"column:profile_id;type:text;uniqueIndex:uq_experiences_profile_role" json:"profile_id"`
	Position    string `gorm:"column:position;type:text;uniqueIndex:uq_experiences_profile_role" json:"position"`
	Company     string `gorm:"column:company;type:text;uniqueIndex:uq_experiences_profile_role" json:"company"`
	Duration    string `gorm:"column:duration;type:text" json:"duration"`
	Description string `gorm:"column:description;type:text" json:"description"`
}

func (WorkExperience) TableName() string { return "work_experiences" }

type Education struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileID   string `gorm:"column:profile_id;type:text;uniqueIndex:uq_education_profile_degree" json:"profile_id"`
	Degree      string `gorm:"column:degree;type:text;uniqueIndex:uq_education_profile_degree" json:"degree"`
	Institution string `gorm:"column:institution;type:text;uniqueIndex:uq_education_profile_degree" json:"institution"`
	Year        string `gorm:"column:year;type:text" json:"year"`
}

func (Education) TableName() string { return "education" }

type Link struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileID string `gorm:"column:profile_id;type:text;uniqueIndex:uq_links_profile_url" json:"profile_id"`
	URL       string `gorm:"column:url;type:text;uniqueIndex:uq_links_profile_url" json:"url"`
}

func (Link) TableName() string { return "links" }
