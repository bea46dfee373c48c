package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/takumi-ao/project-tracker-api/internal/config"
	"github.com/takumi-ao/project-tracker-api/internal/database"
	"github.com/takumi-ao/project-tracker-api/internal/handlers"
	"github.com/takumi-ao/project-tracker-api/internal/middleware"
	"github.com/takumi-ao/project-tracker-api/internal/repository"
	"github.com/takumi-ao/project-tracker-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenRepo)
	profileService := services.NewProfileService(userRepo, profileRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Tracker API is running",
		})
	})

	// Auth routes (public)
	r.POST("/signup", authHandler.Signup)
	r.POST("/signin", authHandler.SignIn)
	r.GET("/validate_token", middleware.RequireAuth(), authHandler.ValidateToken)

	// Profile routes (protected)
	r.GET("/profile", middleware.RequireAuth(), profileHandler.GetProfile)
	r.PUT("/profile", middleware.RequireAuth(), profileHandler.UpdateProfile)
	r.GET("/get_pac", middleware.RequireAuth(), profileHandler.GetPAC)

	// Project routes (protected)
	r.POST("/create_project", middleware.RequireAuth(), projectHandler.CreateProject)
	projects := r.Group("/projects")
	projects.Use(middleware.RequireAuth())
	{
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PATCH("/:id/update_title", projectHandler.UpdateTitle)
		projects.DELETE("/:id/delete", projectHandler.DeleteProject)
		projects.DELETE("/:id/restore", projectHandler.RestoreProject)
		projects.DELETE("/:id/actual_delete", projectHandler.ActualDeleteProject)
		projects.POST("/:id/add_task", taskHandler.AddTask)
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth())
	{
		tasks.PATCH("/:id/update_status", taskHandler.UpdateStatus)
		tasks.PATCH("/:id/update_description", taskHandler.UpdateDescription)
		tasks.DELETE("/:id/delete", taskHandler.DeleteTask)
		tasks.DELETE("/:id/restore", taskHandler.RestoreTask)
		tasks.DELETE("/:id/actual_delete", taskHandler.ActualDeleteTask)
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
