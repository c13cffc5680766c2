package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/resumeai/backend/internal/models"
	"github.com/resumeai/backend/internal/providers/llm"
	"github.com/resumeai/backend/internal/utils"
)

type ExtractionService interface {
	Extract(ctx context.Context, rawText string) (*models.ResumeExtract, error)
}

type extractionService struct {
	provider llm.Provider
}

func NewExtractionService(provider llm.Provider) ExtractionService {
	return &extractionService{provider: provider}
}

// Extract turns résumé text into a structured record via one model call.
// Single attempt, no retries, and no store access.
func (s *extractionService) Extract(ctx context.Context, rawText string) (*models.ResumeExtract, error) {
	const op = "ExtractionService.Extract"

	if strings.TrimSpace(rawText) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "resume text is required", nil)
	}

	out, err := s.provider.Generate(ctx, buildExtractionPrompt(rawText))
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "model call failed", err)
	}

	var extract models.ResumeExtract
	if err := decodeModelJSON(out, &extract); err != nil {
		// raw output is kept in the wrapped error for diagnostics
		return nil, utils.E(utils.CodeBadModelOutput, op, "model returned malformed output",
			fmt.Errorf("%w; raw output: %s", err, out))
	}

	if extract.Skills == nil {
		extract.Skills = []string{}
	}
	if extract.WorkExperience == nil {
		extract.WorkExperience = []models.ExperienceEntry{}
	}
	if extract.Education == nil {
		extract.Education = []models.EducationEntry{}
	}
	if extract.Projects == nil {
		extract.Projects = []models.ProjectEntry{}
	}
	if extract.Links == nil {
		extract.Links = []string{}
	}

	return &extract, nil
}
