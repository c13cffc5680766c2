package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumeai/backend/internal/services"
	"github.com/resumeai/backend/internal/utils"
)

type JobHandler struct {
	matcher services.MatchService
	jobs    services.JobService
}

func NewJobHandler(matcher services.MatchService, jobs services.JobService) *JobHandler {
	return &JobHandler{matcher: matcher, jobs: jobs}
}

// Match accepts the job description either as the JSON field "description"
// or as the form field "job_text".
func (h *JobHandler) Match(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	description := ""
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req struct {
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Match", "invalid request body", err))
			return
		}
		description = req.Description
	} else {
		description = c.PostForm("job_text")
	}

	if strings.TrimSpace(description) == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Match", "job description is required", nil))
		return
	}

	summary, err := h.matcher.MatchAndPersist(c.Request.Context(), userID, description)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *JobHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobs.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Matches(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	view, err := h.jobs.Matches(c.Request.Context(), userID, jobID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Title          string `json:"title"`
		Company        string `json:"company"`
		RawDescription string `json:"raw_description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Update", "invalid request body", err))
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), userID, jobID, req.Title, req.Company, req.RawDescription)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), userID, jobID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func jobIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler", "invalid job id", err))
		return 0, false
	}
	return uint(id), true
}
