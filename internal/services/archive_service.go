package services

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/resumeai/backend/internal/models"
	pgrepo "github.com/resumeai/backend/internal/repositories/postgres"
	"github.com/resumeai/backend/internal/storage"
	"github.com/resumeai/backend/internal/utils"
)

// ArchiveService keeps the uploaded résumé bytes around after extraction so
// a re-parse or audit does not need a re-upload.
type ArchiveService interface {
	Archive(ctx context.Context, userID, fileName, mimeType string, data []byte) (*models.ResumeFile, error)
}

type archiveService struct {
	repo     pgrepo.ResumeFileRepository
	uploader storage.Uploader
}

func NewArchiveService(repo pgrepo.ResumeFileRepository, uploader storage.Uploader) ArchiveService {
	return &archiveService{repo: repo, uploader: uploader}
}

func (s *archiveService) Archive(ctx context.Context, userID, fileName, mimeType string, data []byte) (*models.ResumeFile, error) {
	const op = "ArchiveService.Archive"

	if userID == "" || len(data) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and file data are required", nil)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	objectName := "resumes/" + userID + "/" + uuid.NewString() + ".pdf"
	storedPath, err := s.uploader.Upload(ctx, objectName, mimeType, bytes.NewReader(data))
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
	}

	row := &models.ResumeFile{
		ID:       uuid.NewString(),
		UserID:   userID,
		FileName: fileName,
		FilePath: storedPath,
		FileSize: len(data),
		MimeType: mimeType,
		UploadAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist resume file metadata", err)
	}

	return row, nil
}
