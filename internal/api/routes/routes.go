package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/resumeai/backend/internal/api/handlers"
	"github.com/resumeai/backend/internal/api/middleware"
)

type Deps struct {
	Resume  *handlers.ResumeHandler
	Profile *handlers.ProfileHandler
	Job     *handlers.JobHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.POST("/upload", d.Resume.Upload)

	auth.GET("/profile/me", d.Profile.Me)
	auth.PUT("/profile/manual", d.Profile.SaveManual)

	auth.POST("/match-job", d.Job.Match)
	auth.GET("/jobs", d.Job.List)
	auth.GET("/jobs/:id/matches", d.Job.Matches)
	auth.PUT("/jobs/:id", d.Job.Update)
	auth.DELETE("/jobs/:id", d.Job.Delete)
}
