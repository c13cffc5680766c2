package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeai/backend/internal/utils"
)

type stubProvider struct {
	response string
	err      error

	calls      int
	lastPrompt string
}

func (s *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubProvider) Close() error { return nil }

func TestExtractionServiceExtract(t *testing.T) {
	stub := &stubProvider{response: "```json\n{\"name\":\"Ada Lovelace\",\"email\":\"ada@example.com\",\"skills\":[\"Go\",\"SQL\"]}\n```"}
	svc := NewExtractionService(stub)

	extract, err := svc.Extract(context.Background(), "Ada Lovelace. Engineer. Go, SQL.")
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", extract.Name)
	assert.Equal(t, "ada@example.com", extract.Email)
	assert.Equal(t, []string{"Go", "SQL"}, extract.Skills)

	// absent scalar stays "", absent lists become empty, never nil
	assert.Equal(t, "", extract.Phone)
	assert.NotNil(t, extract.WorkExperience)
	assert.Len(t, extract.WorkExperience, 0)
	assert.NotNil(t, extract.Projects)
	assert.NotNil(t, extract.Education)
	assert.NotNil(t, extract.Links)

	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, stub.lastPrompt, "Ada Lovelace. Engineer. Go, SQL.")
	assert.Contains(t, stub.lastPrompt, "work_experience")
}

func TestExtractionServiceEmptyInput(t *testing.T) {
	stub := &stubProvider{response: "{}"}
	svc := NewExtractionService(stub)

	_, err := svc.Extract(context.Background(), "   \n ")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Equal(t, 0, stub.calls, "empty input must not reach the model")
}

func TestExtractionServiceMalformedOutput(t *testing.T) {
	stub := &stubProvider{response: "Sure, here is the JSON you asked for: {\"name\":\"A\"}"}
	svc := NewExtractionService(stub)

	_, err := svc.Extract(context.Background(), "some resume text")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeBadModelOutput))
	// the raw model output travels with the error for diagnostics
	assert.Contains(t, err.Error(), "Sure, here is the JSON")
}

func TestExtractionServiceUpstreamFailure(t *testing.T) {
	stub := &stubProvider{err: errors.New("quota exceeded")}
	svc := NewExtractionService(stub)

	_, err := svc.Extract(context.Background(), "some resume text")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
	assert.Equal(t, 1, stub.calls, "single attempt, no retries")
}
