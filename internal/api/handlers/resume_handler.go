package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/resumeai/backend/internal/pdfutil"
	"github.com/resumeai/backend/internal/services"
	"github.com/resumeai/backend/internal/utils"
)

const maxResumeSize = 10 << 20

type ResumeHandler struct {
	extraction services.ExtractionService
	profiles   services.ProfileService
	archive    services.ArchiveService // optional
	log        *logrus.Logger
}

func NewResumeHandler(extraction services.ExtractionService, profiles services.ProfileService, archive services.ArchiveService, log *logrus.Logger) *ResumeHandler {
	return &ResumeHandler{extraction: extraction, profiles: profiles, archive: archive, log: log}
}

// Upload ingests a PDF résumé: bytes to text, text to structured profile via
// the model, profile into the store. The parsed profile comes back to the
// caller for display.
func (h *ResumeHandler) Upload(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Upload", "missing multipart field 'resume'", err))
		return
	}
	if ext := strings.ToLower(filepath.Ext(fh.Filename)); ext != ".pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Upload", "only .pdf is allowed", nil))
		return
	}
	if fh.Size <= 0 || fh.Size > maxResumeSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Upload", "file too large (max 10MB)", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "ResumeHandler.Upload", "failed to open upload", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize+1))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "ResumeHandler.Upload", "failed to read upload", err))
		return
	}

	text, err := pdfutil.ExtractText(data)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Upload", "could not extract text from pdf", err))
		return
	}

	extract, err := h.extraction.Extract(c.Request.Context(), text)
	if err != nil {
		writeError(c, err)
		return
	}

	profile, err := h.profiles.Upsert(c.Request.Context(), userID, extract)
	if err != nil {
		writeError(c, err)
		return
	}

	// best-effort archival of the raw bytes; never fails the ingestion
	if h.archive != nil {
		if _, err := h.archive.Archive(c.Request.Context(), userID, fh.Filename, "application/pdf", data); err != nil {
			h.log.WithError(err).WithField("user_id", userID).Warn("resume archive failed")
		}
	}

	c.JSON(http.StatusOK, profile)
}
