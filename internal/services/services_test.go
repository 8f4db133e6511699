package services

import (
	"path/filepath"
	"testing"

	"uddaan/internal/config"
	"uddaan/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway sqlite database with the migrated schema
func newTestDB(t *testing.T) (*gorm.DB, *config.Config) {
	tmpDir := t.TempDir()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Type: "sqlite",
			SQLite: config.SQLiteConfig{
				Path: filepath.Join(tmpDir, "services_test.db"),
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

func testUploaderRole(t *testing.T, db *gorm.DB) *models.Role {
	role := &models.Role{
		Name:        "Uploader",
		Permissions: []string{"media.upload", "media.read", "media.delete"},
	}
	require.NoError(t, db.Create(role).Error)
	return role
}
