package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumeai/backend/internal/services"
	"github.com/resumeai/backend/internal/utils"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) SaveManual(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var entry services.ManualEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.SaveManual", "invalid request body", err))
		return
	}

	p, err := h.svc.SaveManual(c.Request.Context(), userID, entry)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
