package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/talentnavigator/talentnavigator/config"
	"github.com/talentnavigator/talentnavigator/internal/api/handlers"
	"github.com/talentnavigator/talentnavigator/internal/api/middleware"
	"github.com/talentnavigator/talentnavigator/internal/api/routes"
	"github.com/talentnavigator/talentnavigator/internal/cache"
	"github.com/talentnavigator/talentnavigator/internal/logger"
	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/providers/llm"
	pgrepo "github.com/talentnavigator/talentnavigator/internal/repositories/postgres"
	"github.com/talentnavigator/talentnavigator/internal/services"
	"github.com/talentnavigator/talentnavigator/internal/storage"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	if err := config.InitPostgres(); err != nil {
		log.WithError(err).Fatal("postgres init failed")
	}
	if err := config.MigratePostgres(config.PostgresDB); err != nil {
		log.WithError(err).Fatal("postgres migration failed")
	}
	log.Info("postgres connected")

	if err := config.InitRedis(); err != nil {
		log.WithError(err).Fatal("redis init failed")
	}
	log.Info("redis connected")

	ctx := context.Background()

	var uploader storage.Uploader
	if bucket := os.Getenv("AVATAR_BUCKET"); bucket != "" {
		gcs, err := storage.NewGCSUploader(ctx, bucket)
		if err != nil {
			log.WithError(err).Fatal("gcs init failed")
		}
		defer gcs.Close()
		uploader = gcs
		log.WithField("bucket", bucket).Info("avatar storage enabled")
	}

	var model llm.Provider
	if project := os.Getenv("GCP_PROJECT"); project != "" {
		location := os.Getenv("GCP_LOCATION")
		if location == "" {
			location = "us-central1"
		}
		modelName := os.Getenv("GEMINI_MODEL")
		if modelName == "" {
			modelName = "gemini-1.5-flash"
		}
		gemini, err := llm.NewVertexGemini(ctx, project, location, modelName)
		if err != nil {
			log.WithError(err).Fatal("vertex init failed")
		}
		defer gemini.Close()
		model = gemini
		log.WithField("model", modelName).Info("recommendation reasoning enabled")
	}

	tokens := services.NewTokenService(services.TokenConfig{
		Secret:     os.Getenv("JWT_SECRET"),
		Issuer:     envOr("JWT_ISSUER", "talentnavigator"),
		Audience:   os.Getenv("JWT_AUDIENCE"),
		AccessTTL:  envDuration("JWT_ACCESS_TTL", time.Hour),
		RefreshTTL: envDuration("JWT_REFRESH_TTL", 7*24*time.Hour),
	})
	denylist := services.NewRedisDenylist(config.RedisClient)
	cc := cache.NewRedisCache(config.RedisClient)

	userRepo := pgrepo.NewUserRepo(config.PostgresDB)
	employeeRepo := pgrepo.NewEmployeeRepo(config.PostgresDB)
	projectRepo := pgrepo.NewProjectRepo(config.PostgresDB)
	assignmentRepo := pgrepo.NewAssignmentRepo(config.PostgresDB)
	recRepo := pgrepo.NewRecommendationRepo(config.PostgresDB)
	ilbamRepo := pgrepo.NewIlbamRepo(config.PostgresDB)

	userSvc := services.NewUserService(userRepo)
	authSvc := services.NewAuthService(userRepo, tokens, denylist, log)
	profileSvc := services.NewProfileService(userSvc, uploader)
	employeeSvc := services.NewEmployeeService(employeeRepo)
	projectSvc := services.NewProjectService(projectRepo, assignmentRepo, employeeRepo)
	assignmentSvc := services.NewAssignmentService(assignmentRepo, projectRepo, employeeRepo)
	recSvc := services.NewRecommendationService(recRepo, projectRepo, employeeRepo, model, log)
	ilbamSvc := services.NewIlbamService(ilbamRepo, employeeRepo)

	seedAdmin(ctx, log, userSvc)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Tokens:         tokens,
		Denylist:       denylist,
		Auth:           handlers.NewAuthHandler(authSvc),
		Users:          handlers.NewUserHandler(userSvc),
		Profile:        handlers.NewProfileHandler(profileSvc),
		Employees:      handlers.NewEmployeeHandler(employeeSvc, cc),
		Projects:       handlers.NewProjectHandler(projectSvc, cc),
		Assignments:    handlers.NewAssignmentHandler(assignmentSvc),
		Recommendation: handlers.NewRecommendationHandler(recSvc, cc),
		Ilbam:          handlers.NewIlbamHandler(ilbamSvc, cc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("server listening")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// seedAdmin guarantees a sign-in is possible on a fresh database.
func seedAdmin(ctx context.Context, log *logrus.Logger, users services.UserService) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	_, err := users.Create(ctx, &models.User{
		Email:     email,
		FirstName: "Admin",
		Role:      models.RoleAdmin,
		Status:    models.UserActive,
	}, password)
	if err != nil {
		var appErr *utils.AppError
		if errors.As(err, &appErr) && appErr.Code == utils.CodeConflict {
			return
		}
		log.WithError(err).Warn("admin seed failed")
		return
	}
	log.WithField("email", email).Info("admin account seeded")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
