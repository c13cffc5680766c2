package services

import (
	"encoding/json"
	"strings"

	"github.com/resumeai/backend/internal/models"
)

const extractionPromptTemplate = `You are an expert resume parser. Extract structured information from the resume text below.

Return a JSON object with exactly these fields:
- name: the candidate's full name
- email: the candidate's email address
- phone: the candidate's phone number
- skills: a list of skill names
- work_experience: a list of {position, company, duration, description}
- education: a list of {degree, institution, year}
- projects: a list of {name, description, link}
- links: a list of URLs found in the resume

Use "" for any scalar field that is not present and [] for any list with no entries. Do not invent information that is not in the resume.

Resume text:
{resume_text}

Only return valid JSON. No explanations or markdown.`

const matchPromptTemplate = `You're an expert resume matcher. Here's a user's profile:

Skills:
{skills}

Projects:
{projects}

Work Experience:
{experiences}

Job Description:
{job_description}

Return a JSON object with:
- job_title: the job title (if available)
- job_company: the company name (if available)
- job_raw_description: the full job description text, with newlines separated by \n
- matched_skill_ids: list of skill ids that best match
- matched_project_ids: list of project ids that best match
- matched_experience_ids: list of experience ids that best match
- improved_descriptions: { id: updated_description } for projects and experiences; these should follow the XYZ format: what was done, what it achieved, how it was done. Be concise and concrete but natural and conversational, and newlines should be separated by \n.

Only use ids that appear in the profile above. Ensure this would be the best combination of skills, projects, and experiences for the user to match the job description and company.

Only return valid JSON. No explanations or markdown.`

func buildExtractionPrompt(resumeText string) string {
	return strings.Replace(extractionPromptTemplate, "{resume_text}", resumeText, 1)
}

// buildMatchPrompt embeds the profile entities as {id, ...fields} lists so
// the model can reference rows by id.
func buildMatchPrompt(p *models.Profile, jobDescription string) (string, error) {
	type skillRef struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	type projectRef struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Link        string `json:"link,omitempty"`
	}
	type experienceRef struct {
		ID          uint   `json:"id"`
		Position    string `json:"position"`
		Company     string `json:"company"`
		Duration    string `json:"duration"`
		Description string `json:"description"`
	}

	skills := make([]skillRef, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, skillRef{ID: s.ID, Name: s.Name})
	}
	projects := make([]projectRef, 0, len(p.Projects))
	for _, pr := range p.Projects {
		projects = append(projects, projectRef{ID: pr.ID, Name: pr.Name, Description: pr.Description, Link: pr.Link})
	}
	experiences := make([]experienceRef, 0, len(p.Experiences))
	for _, e := range p.Experiences {
		experiences = append(experiences, experienceRef{ID: e.ID, Position: e.Position, Company: e.Company, Duration: e.Duration, Description: e.Description})
	}

	skillsJSON, err := json.MarshalIndent(skills, "", "  ")
	if err != nil {
		return "", err
	}
	projectsJSON, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return "", err
	}
	experiencesJSON, err := json.MarshalIndent(experiences, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := strings.Replace(matchPromptTemplate, "{skills}", string(skillsJSON), 1)
	prompt = strings.Replace(prompt, "{projects}", string(projectsJSON), 1)
	prompt = strings.Replace(prompt, "{experiences}", string(experiencesJSON), 1)
	prompt = strings.Replace(prompt, "{job_description}", jobDescription, 1)
	return prompt, nil
}
