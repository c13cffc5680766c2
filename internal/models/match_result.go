package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MatchResult is what the model is asked to return for a job match. Selection
// is the model's; this side only constrains and decodes the shape.
type MatchResult struct {
	JobTitle             string            `json:"job_title"`
	JobCompany           string            `json:"job_company"`
	JobRawDescription    string            `json:"job_raw_description"`
	MatchedSkillIDs      []FlexID          `json:"matched_skill_ids"`
	MatchedProjectIDs    []FlexID          `json:"matched_project_ids"`
	MatchedExperienceIDs []FlexID          `json:"matched_experience_ids"`
	ImprovedDescriptions map[string]string `json:"improved_descriptions"`
}

// ImprovedFor returns the replacement description for an entity id, keyed by
// its decimal string form (JSON object keys are always strings, whatever type
// the model used for the id lists).
func (m *MatchResult) ImprovedFor(id uint) string {
	if m == nil || m.ImprovedDescriptions == nil {
		return ""
	}
	return m.ImprovedDescriptions[strconv.FormatUint(uint64(id), 10)]
}

// FlexID decodes an entity id the model may emit either as a JSON number or
// as a quoted string.
type FlexID uint

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entity id %q", s)
	}
	*f = FlexID(n)
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(f), 10)), nil
}
