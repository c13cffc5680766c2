package models

// ResumeExtract is what the model is asked to return for a résumé. Decoded
// once at the boundary; absent lists stay empty slices, absent scalars stay
// "" (never substituted with placeholder text).
type ResumeExtract struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Skills         []string          `json:"skills"`
	WorkExperience []ExperienceEntry `json:"work_experience"`
	Education      []EducationEntry  `json:"education"`
	Projects       []ProjectEntry    `json:"projects"`
	Links          []string          `json:"links"`
}

type ExperienceEntry struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type ProjectEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}
