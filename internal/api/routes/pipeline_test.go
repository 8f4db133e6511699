package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"uddaan/internal/config"
	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// setupTestDB initializes a throwaway database and config
func setupTestDB(t *testing.T) (*gorm.DB, *config.Config) {
	tmpDir := t.TempDir()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Type: "sqlite",
			SQLite: config.SQLiteConfig{
				Path: filepath.Join(tmpDir, "uddaan_test.db"),
			},
		},
		JWT: config.JWTConfig{
			Secret:    "test-secret-key-for-testing-only",
			ExpiresIn: "24h",
			Issuer:    "uddaan-test",
		},
		Security: config.SecurityConfig{
			BcryptCost: 10,
		},
		Uploads: config.UploadsConfig{
			Path:        filepath.Join(tmpDir, "uploads"),
			MaxSizeMB:   10,
			MaxPerBatch: 10,
		},
	}

	db, err := models.Open(cfg)
	require.NoError(t, err)

	return db, cfg
}

// createTestRole creates a role with the given permissions
func createTestRole(t *testing.T, db *gorm.DB, name string, permissions []string) *models.Role {
	role := &models.Role{Name: name, Permissions: permissions}
	require.NoError(t, db.Create(role).Error)
	return role
}

// createTestUser creates an active user holding the given role
func createTestUser(t *testing.T, authService *services.AuthService, name, email, password string, roleID uint) *models.User {
	user, err := authService.CreateUser(name, email, password, roleID, "")
	require.NoError(t, err)
	return user
}

// createTestToken issues a bearer token for the user
func createTestToken(t *testing.T, authService *services.AuthService, user *models.User) string {
	token, _, err := authService.GenerateToken(user)
	require.NoError(t, err)
	return token
}

// setupTestRouter creates a test router with routes
func setupTestRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, db, cfg, zap.NewNop())
	return r
}

func createTestJob(t *testing.T, db *gorm.DB) *models.Job {
	job := &models.Job{
		Title:        "Site Engineer",
		Company:      "Gulf Construction LLC",
		Country:      "Qatar",
		JobType:      "Full-time",
		Description:  "Supervise on-site works",
		ContactEmail: "hr@example.com",
		IsActive:     true,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func auditLogCount(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	return count
}

func TestIdentityResolution(t *testing.T) {
	db, cfg := setupTestDB(t)
	authService := services.NewAuthService(db, cfg)

	adminRole := createTestRole(t, db, "Super Admin", []string{models.PermissionAll})
	adminUser := createTestUser(t, authService, "Admin", "admin@example.com", "admin123", adminRole.ID)

	t.Run("no token is denied with the canonical message", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		req, _ := http.NewRequest("GET", "/api/admin/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Access denied. No token provided.", response["message"])
	})

	t.Run("forged token is denied", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		claims := jwt.MapClaims{
			"user_id": adminUser.ID,
			"exp":     time.Now().Add(time.Hour).Unix(),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("some-other-secret"))
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Invalid token.", response["message"])
	})

	t.Run("expired token is denied", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		claims := jwt.MapClaims{
			"user_id": adminUser.ID,
			"exp":     time.Now().Add(-time.Hour).Unix(),
			"iat":     time.Now().Add(-2 * time.Hour).Unix(),
			"iss":     cfg.JWT.Issuer,
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(cfg.JWT.Secret))
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deactivated user gets the same message as a forged token", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		inactive := createTestUser(t, authService, "Gone", "gone@example.com", "gone1234", adminRole.ID)
		token := createTestToken(t, authService, inactive)
		require.NoError(t, db.Model(&models.User{}).Where("id = ?", inactive.ID).
			Update("is_active", false).Error)

		req, _ := http.NewRequest("GET", "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Invalid token.", response["message"])
	})

	t.Run("valid token resolves the user", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, adminUser)

		req, _ := http.NewRequest("GET", "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPermissionEvaluation(t *testing.T) {
	db, cfg := setupTestDB(t)
	authService := services.NewAuthService(db, cfg)

	adminRole := createTestRole(t, db, "Super Admin", []string{models.PermissionAll})
	viewerRole := createTestRole(t, db, "Viewer", []string{"jobs.read"})

	adminUser := createTestUser(t, authService, "Admin", "admin@example.com", "admin123", adminRole.ID)
	viewerUser := createTestUser(t, authService, "Viewer", "viewer@example.com", "viewer123", viewerRole.ID)

	t.Run("wildcard role passes every check", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, adminUser)

		req, _ := http.NewRequest("GET", "/api/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("exact token passes its own check", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, viewerUser)

		req, _ := http.NewRequest("GET", "/api/admin/jobs", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing capability is denied without naming it", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, viewerUser)
		job := createTestJob(t, db)

		req, _ := http.NewRequest("DELETE", "/api/admin/jobs/"+strconv.FormatUint(uint64(job.ID), 10), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Insufficient permissions", response["message"])
		assert.NotContains(t, w.Body.String(), "jobs.delete")

		// The handler never ran: the row survives
		var count int64
		db.Model(&models.Job{}).Where("id = ?", job.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

func TestAuditRecording(t *testing.T) {
	db, cfg := setupTestDB(t)
	authService := services.NewAuthService(db, cfg)

	adminRole := createTestRole(t, db, "Super Admin", []string{models.PermissionAll})
	adminUser := createTestUser(t, authService, "Admin", "admin@example.com", "admin123", adminRole.ID)

	waitForAuditLogs := func(t *testing.T, want int64) {
		require.Eventually(t, func() bool {
			return auditLogCount(t, db) == want
		}, 2*time.Second, 10*time.Millisecond)
	}

	t.Run("successful delete appends exactly one high-severity entry", func(t *testing.T) {
		require.NoError(t, db.Where("1 = 1").Delete(&models.AuditLog{}).Error)
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, adminUser)
		job := createTestJob(t, db)

		req, _ := http.NewRequest("DELETE", "/api/admin/jobs/"+strconv.FormatUint(uint64(job.ID), 10), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		waitForAuditLogs(t, 1)

		var entry models.AuditLog
		require.NoError(t, db.First(&entry).Error)
		assert.Equal(t, models.AuditActionDelete, entry.Action)
		assert.Equal(t, "Job", entry.Model)
		assert.Equal(t, strconv.FormatUint(uint64(job.ID), 10), entry.ModelID)
		assert.Equal(t, models.SeverityHigh, entry.Severity)
		require.NotNil(t, entry.UserID)
		assert.Equal(t, adminUser.ID, *entry.UserID)
	})

	t.Run("successful create records a low-severity entry with the payload", func(t *testing.T) {
		require.NoError(t, db.Where("1 = 1").Delete(&models.AuditLog{}).Error)
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, adminUser)

		body := map[string]interface{}{
			"title":         "Warehouse Supervisor",
			"company":       "Desert Logistics",
			"country":       "UAE",
			"job_type":      "Full-time",
			"description":   "Run the night shift",
			"contact_email": "jobs@example.com",
		}
		jsonData, _ := json.Marshal(body)

		req, _ := http.NewRequest("POST", "/api/admin/jobs", bytes.NewBuffer(jsonData))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		waitForAuditLogs(t, 1)

		var entry models.AuditLog
		require.NoError(t, db.First(&entry).Error)
		assert.Equal(t, models.AuditActionCreate, entry.Action)
		assert.Equal(t, models.SeverityLow, entry.Severity)
		assert.Equal(t, models.AuditModelBulk, entry.ModelID)
		assert.Contains(t, entry.Changes, "Warehouse Supervisor")
	})

	t.Run("failed handler produces no entry", func(t *testing.T) {
		require.NoError(t, db.Where("1 = 1").Delete(&models.AuditLog{}).Error)
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, adminUser)

		req, _ := http.NewRequest("DELETE", "/api/admin/jobs/99999", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)

		time.Sleep(200 * time.Millisecond)
		assert.Equal(t, int64(0), auditLogCount(t, db))
	})

	t.Run("read routes are not audited", func(t *testing.T) {
		require.NoError(t, db.Where("1 = 1").Delete(&models.AuditLog{}).Error)
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, adminUser)

		req, _ := http.NewRequest("GET", "/api/admin/jobs", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		time.Sleep(200 * time.Millisecond)
		assert.Equal(t, int64(0), auditLogCount(t, db))
	})

	t.Run("failing audit write does not change the response", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, adminUser)
		job := createTestJob(t, db)

		// Every audit insert from here on fails
		require.NoError(t, db.Migrator().DropTable(&models.AuditLog{}))

		req, _ := http.NewRequest("DELETE", "/api/admin/jobs/"+strconv.FormatUint(uint64(job.ID), 10), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, true, response["success"])

		// The delete itself went through
		var count int64
		db.Model(&models.Job{}).Where("id = ?", job.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}

func TestLoginFlow(t *testing.T) {
	db, cfg := setupTestDB(t)
	authService := services.NewAuthService(db, cfg)

	adminRole := createTestRole(t, db, "Super Admin", []string{models.PermissionAll})
	createTestUser(t, authService, "Admin", "admin@example.com", "admin123", adminRole.ID)

	t.Run("valid credentials yield a working token", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		body, _ := json.Marshal(map[string]string{
			"email":    "Admin@Example.com", // case-insensitive lookup
			"password": "admin123",
		})
		req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		token, _ := response["token"].(string)
		require.NotEmpty(t, token)

		req, _ = http.NewRequest("GET", "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password is rejected with a generic message", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		body, _ := json.Marshal(map[string]string{
			"email":    "admin@example.com",
			"password": "wrong-password",
		})
		req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("unknown email gets the same message as a wrong password", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		body, _ := json.Marshal(map[string]string{
			"email":    "nobody@example.com",
			"password": "whatever123",
		})
		req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})
}

func TestPublicRoutes(t *testing.T) {
	db, cfg := setupTestDB(t)

	t.Run("health check", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		req, _ := http.NewRequest("GET", "/api/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("public job listing hides inactive listings", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		active := createTestJob(t, db)
		inactive := createTestJob(t, db)
		require.NoError(t, db.Model(&models.Job{}).Where("id = ?", inactive.ID).
			Update("is_active", false).Error)

		req, _ := http.NewRequest("GET", "/api/jobs", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprintf(`"id":%d`, active.ID))
		assert.NotContains(t, w.Body.String(), fmt.Sprintf(`"id":%d`, inactive.ID))

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		pagination, ok := response["pagination"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(1), pagination["current"])
	})

	t.Run("public job view bumps the counter", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		job := createTestJob(t, db)

		req, _ := http.NewRequest("GET", "/api/jobs/"+strconv.FormatUint(uint64(job.ID), 10), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var fresh models.Job
		require.NoError(t, db.First(&fresh, job.ID).Error)
		assert.Equal(t, 1, fresh.Views)
	})

	t.Run("application submission returns a formatted reference", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		job := createTestJob(t, db)

		body, _ := json.Marshal(map[string]interface{}{
			"job_id":     job.ID,
			"first_name": "Ram",
			"last_name":  "Thapa",
			"email":      "Ram.Thapa@Example.com",
			"phone":      "+977-9800000000",
		})
		req, _ := http.NewRequest("POST", "/api/applications", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		ref, _ := response["application_id"].(string)
		assert.Regexp(t, `^APP-\d{4}-[0-9A-F]{8}$`, ref)

		// The job's counter moved and the email was normalized
		var fresh models.Job
		require.NoError(t, db.First(&fresh, job.ID).Error)
		assert.Equal(t, 1, fresh.Applications)

		var app models.Application
		require.NoError(t, db.Where("application_id = ?", ref).First(&app).Error)
		assert.Equal(t, "ram.thapa@example.com", app.Email)
		assert.Equal(t, models.ApplicationStatusNew, app.Status)
	})

	t.Run("consultation booking returns a booking reference", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		body, _ := json.Marshal(map[string]interface{}{
			"client_name":       "Sita Rai",
			"client_email":      "sita@example.com",
			"client_phone":      "+977-9811111111",
			"consultation_type": "visa_assistance",
			"preferred_date":    "2026-09-15",
			"preferred_time":    "10:00",
		})
		req, _ := http.NewRequest("POST", "/api/consultations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		ref, _ := response["booking_id"].(string)
		assert.Regexp(t, `^CON-[0-9A-F]{8}$`, ref)
	})

	t.Run("published page is served by slug, drafts are not", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		require.NoError(t, db.Create(&models.Page{
			Title: "About Us", Slug: "about-us", Content: "...", Status: models.PageStatusPublished,
		}).Error)
		require.NoError(t, db.Create(&models.Page{
			Title: "Drafty", Slug: "drafty", Content: "...", Status: models.PageStatusDraft,
		}).Error)

		req, _ := http.NewRequest("GET", "/api/pages/about-us", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		req, _ = http.NewRequest("GET", "/api/pages/drafty", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("metrics endpoint is exposed", func(t *testing.T) {
		router := setupTestRouter(db, cfg)

		req, _ := http.NewRequest("GET", "/metrics", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})
}

func TestRoleRoutes(t *testing.T) {
	db, cfg := setupTestDB(t)
	authService := services.NewAuthService(db, cfg)
	roleService := services.NewRoleService(db)

	require.NoError(t, roleService.SeedDefaults(authService, "Admin", "admin@example.com", "admin123"))

	var adminUser models.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&adminUser).Error)

	t.Run("system role cannot be deleted", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, &adminUser)

		var superAdmin models.Role
		require.NoError(t, db.Where("name = ?", "Super Admin").First(&superAdmin).Error)

		req, _ := http.NewRequest("DELETE", "/api/admin/roles/"+strconv.FormatUint(uint64(superAdmin.ID), 10), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown permission token is rejected", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, &adminUser)

		body, _ := json.Marshal(map[string]interface{}{
			"name":        "Weird",
			"permissions": []string{"jobs.read", "nonsense.token"},
		})
		req, _ := http.NewRequest("POST", "/api/admin/roles", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("role CRUD round trip", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, &adminUser)

		body, _ := json.Marshal(map[string]interface{}{
			"name":        "Recruiter",
			"description": "Handles applications",
			"permissions": []string{"applications.read", "applications.update"},
		})
		req, _ := http.NewRequest("POST", "/api/admin/roles", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var created models.Role
		require.NoError(t, db.Where("name = ?", "Recruiter").First(&created).Error)

		req, _ = http.NewRequest("DELETE", "/api/admin/roles/"+strconv.FormatUint(uint64(created.ID), 10), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestThemeRoutes(t *testing.T) {
	db, cfg := setupTestDB(t)
	authService := services.NewAuthService(db, cfg)

	designerRole := createTestRole(t, db, "Designer", []string{"theme.read", "theme.update"})
	designer := createTestUser(t, authService, "Designer", "designer@example.com", "design123", designerRole.ID)

	viewerRole := createTestRole(t, db, "Theme Viewer", []string{"theme.read"})
	viewer := createTestUser(t, authService, "Viewer", "viewer@example.com", "viewer123", viewerRole.ID)

	t.Run("create and list round trip", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, designer)

		body, _ := json.Marshal(map[string]interface{}{
			"name":      "Corporate Blue",
			"colors":    map[string]string{"primary": "#1D4ED8"},
			"is_active": true,
		})
		req, _ := http.NewRequest("POST", "/api/admin/themes", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		req, _ = http.NewRequest("GET", "/api/admin/themes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Corporate Blue")

		// Create is audited
		require.Eventually(t, func() bool {
			var count int64
			db.Model(&models.AuditLog{}).Where("model = ?", "Theme").Count(&count)
			return count == 1
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("read-only holder cannot create", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, viewer)

		req, _ := http.NewRequest("GET", "/api/admin/themes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		body, _ := json.Marshal(map[string]interface{}{"name": "Rogue"})
		req, _ = http.NewRequest("POST", "/api/admin/themes", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		router := setupTestRouter(db, cfg)
		token := createTestToken(t, authService, designer)

		body, _ := json.Marshal(map[string]interface{}{"name": "Corporate Blue"})
		req, _ := http.NewRequest("POST", "/api/admin/themes", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
