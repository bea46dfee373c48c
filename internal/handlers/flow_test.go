package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/takumi-ao/project-tracker-api/internal/database"
	"github.com/takumi-ao/project-tracker-api/internal/dto"
	"github.com/takumi-ao/project-tracker-api/internal/middleware"
	"github.com/takumi-ao/project-tracker-api/internal/models"
	"github.com/takumi-ao/project-tracker-api/internal/repository"
	"github.com/takumi-ao/project-tracker-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTrackerRouter wires the full API surface against an in-memory
// database, the same way cmd/server does.
func setupTrackerRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Profile{},
		&models.Project{},
		&models.Task{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authHandler := NewAuthHandler(services.NewAuthService(userRepo, tokenRepo))
	profileHandler := NewProfileHandler(services.NewProfileService(userRepo, profileRepo))
	projectHandler := NewProjectHandler(services.NewProjectService(projectRepo))
	taskHandler := NewTaskHandler(services.NewTaskService(taskRepo, projectRepo))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/signup", authHandler.Signup)
	r.POST("/signin", authHandler.SignIn)
	r.GET("/validate_token", middleware.RequireAuth(), authHandler.ValidateToken)

	r.GET("/profile", middleware.RequireAuth(), profileHandler.GetProfile)
	r.PUT("/profile", middleware.RequireAuth(), profileHandler.UpdateProfile)
	r.GET("/get_pac", middleware.RequireAuth(), profileHandler.GetPAC)

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

	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth())
	{
		tasks.PATCH("/:id/update_status", taskHandler.UpdateStatus)
		tasks.PATCH("/:id/update_description", taskHandler.UpdateDescription)
		tasks.DELETE("/:id/delete", taskHandler.DeleteTask)
		tasks.DELETE("/:id/restore", taskHandler.RestoreTask)
		tasks.DELETE("/:id/actual_delete", taskHandler.ActualDeleteTask)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProjectLifecycleFlow(t *testing.T) {
	r := setupTrackerRouter(t)

	// Signup
	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"first_name":       "John",
		"email":            "john@x.com",
		"password":         "pw123456",
		"confirm_password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var signup map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	require.Equal(t, "Account created successfully", signup["message"])

	// Sign in
	w = doJSON(t, r, http.MethodPost, "/signin", "", map[string]string{
		"email":    "john@x.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var signin map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signin))
	token := signin["token"]
	require.NotEmpty(t, token)

	// Create project
	w = doJSON(t, r, http.MethodPost, "/create_project", token, map[string]string{"title": "T1"})
	require.Equal(t, http.StatusCreated, w.Code)

	var project dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.Equal(t, "T1", project.Title)

	// Add a task
	w = doJSON(t, r, http.MethodPost, "/projects/1/add_task", token, map[string]string{"description": "D1"})
	require.Equal(t, http.StatusCreated, w.Code)

	var task dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	require.Equal(t, models.TaskStatusNotDone, task.Status)

	// Toggle its status
	w = doJSON(t, r, http.MethodPatch, "/tasks/1/update_status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	require.Equal(t, models.TaskStatusDone, task.Status)

	// Soft delete the project
	w = doJSON(t, r, http.MethodDelete, "/projects/1/delete", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Owner can still view the archived project
	w = doJSON(t, r, http.MethodGet, "/projects/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The listing shows the flag
	w = doJSON(t, r, http.MethodGet, "/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.True(t, list[0].IsDeleted)

	// Store a PAC and read it back
	w = doJSON(t, r, http.MethodPut, "/profile", token, map[string]string{"git_pac": "ghp_secret"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/get_pac", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var pac map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pac))
	require.Equal(t, "ghp_secret", pac["git_pac"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupTrackerRouter(t)

	w := doJSON(t, r, http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/create_project", "", map[string]string{"title": "T1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
