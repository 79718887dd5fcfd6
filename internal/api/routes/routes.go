package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/talentnavigator/talentnavigator/internal/api/handlers"
	"github.com/talentnavigator/talentnavigator/internal/api/middleware"
	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/services"
)

type Deps struct {
	Tokens   services.TokenService
	Denylist services.TokenDenylist

	Auth           *handlers.AuthHandler
	Users          *handlers.UserHandler
	Profile        *handlers.ProfileHandler
	Employees      *handlers.EmployeeHandler
	Projects       *handlers.ProjectHandler
	Assignments    *handlers.AssignmentHandler
	Recommendation *handlers.RecommendationHandler
	Ilbam          *handlers.IlbamHandler
}

// RegisterRoutes wires the API. Role gates mirror the SPA's route map:
// matrices are admin+manager, recommendations admin+mentor, user
// administration admin only; reads are open to every signed-in role.
func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// Public auth endpoints
	api.POST("/auth/login", d.Auth.Login)
	api.POST("/auth/refresh", d.Auth.Refresh)

	// Protected routes (JWT)
	auth := api.Group("/")
	auth.Use(middleware.JWTAuth(d.Tokens, d.Denylist))

	auth.GET("/auth/me", d.Auth.Me)
	auth.POST("/auth/logout", d.Auth.Logout)
	auth.POST("/profile/avatar", d.Profile.UploadAvatar)

	anyRole := auth.Group("/")
	anyRole.Use(middleware.RequireAnyRole())

	anyRole.GET("/employees", d.Employees.List)
	anyRole.GET("/employees/:id", d.Employees.Get)
	anyRole.GET("/employees/:id/assignments", d.Assignments.ListByEmployee)
	anyRole.GET("/mentees", d.Employees.ListMentees)

	anyRole.GET("/projects", d.Projects.List)
	anyRole.GET("/projects/:id", d.Projects.Get)
	anyRole.GET("/projects/:id/assignments", d.Assignments.ListByProject)

	anyRole.GET("/ilbam", d.Ilbam.List)
	anyRole.GET("/ilbam/employee/:employee_id", d.Ilbam.GetByEmployee)

	anyRole.GET("/recommendations", d.Recommendation.List)
	anyRole.GET("/recommendations/project/:project_id", d.Recommendation.ListByProject)

	// Manager surface (admin included)
	manager := auth.Group("/")
	manager.Use(middleware.RequireRole(models.RoleAdmin, models.RoleManager))

	manager.POST("/employees", d.Employees.Create)
	manager.PUT("/employees/:id", d.Employees.Update)
	manager.DELETE("/employees/:id", d.Employees.Delete)

	manager.POST("/projects", d.Projects.Create)
	manager.PUT("/projects/:id", d.Projects.Update)
	manager.DELETE("/projects/:id", d.Projects.Delete)

	manager.POST("/assignments", d.Assignments.Create)
	manager.PUT("/assignments/:id", d.Assignments.Update)
	manager.DELETE("/assignments/:id", d.Assignments.Delete)

	manager.POST("/ilbam", d.Ilbam.Upload)
	manager.DELETE("/ilbam/:id", d.Ilbam.Delete)

	// Mentor surface (admin included)
	mentor := auth.Group("/")
	mentor.Use(middleware.RequireRole(models.RoleAdmin, models.RoleMentor))

	mentor.POST("/recommendations", d.Recommendation.Create)
	mentor.POST("/recommendations/project/:project_id/generate", d.Recommendation.Generate)
	mentor.DELETE("/recommendations/:id", d.Recommendation.Delete)

	// Admin surface
	admin := auth.Group("/")
	admin.Use(middleware.RequireAdmin())

	admin.GET("/users", d.Users.List)
	admin.GET("/users/pending", d.Users.ListPending)
	admin.POST("/users", d.Users.Create)
	admin.PUT("/users/:id", d.Users.Update)
	admin.POST("/users/:id/approve", d.Users.Approve)
	admin.POST("/users/:id/mentor", d.Users.AssignMentorRole)
	admin.DELETE("/users/:id", d.Users.Delete)
}
