package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/resumeai/backend/config"
	"github.com/resumeai/backend/internal/api/handlers"
	"github.com/resumeai/backend/internal/api/middleware"
	"github.com/resumeai/backend/internal/api/routes"
	"github.com/resumeai/backend/internal/logger"
	"github.com/resumeai/backend/internal/providers/llm"
	pgrepo "github.com/resumeai/backend/internal/repositories/postgres"
	"github.com/resumeai/backend/internal/services"
	"github.com/resumeai/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	log.Info("PostgreSQL connected")

	var opts []option.ClientOption
	if creds := os.Getenv("GOOGLE_CREDENTIALS_FILE"); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}
	provider, err := llm.NewVertexGemini(ctx,
		os.Getenv("VERTEX_PROJECT_ID"),
		os.Getenv("VERTEX_LOCATION"),
		os.Getenv("GEMINI_MODEL"),
		opts...,
	)
	if err != nil {
		log.Fatalf("Vertex Gemini init error: %v", err)
	}
	defer provider.Close()

	db := config.PostgresDB
	profileRepo := pgrepo.NewProfileRepo(db)
	jobRepo := pgrepo.NewJobRepo(db)
	fileRepo := pgrepo.NewResumeFileRepo(db)

	// résumé archival is optional; without a bucket the pipeline still works
	var archive services.ArchiveService
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		uploader, err := storage.NewGCSUploader(ctx, bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer uploader.Close()
		archive = services.NewArchiveService(fileRepo, uploader)
	}

	extraction := services.NewExtractionService(provider)
	profiles := services.NewProfileService(profileRepo)
	matcher := services.NewMatchService(provider, profileRepo, jobRepo)
	jobs := services.NewJobService(jobRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Resume:  handlers.NewResumeHandler(extraction, profiles, archive, log),
		Profile: handlers.NewProfileHandler(profiles),
		Job:     handlers.NewJobHandler(matcher, jobs),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
