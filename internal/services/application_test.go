package services

import (
	"testing"

	"uddaan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testJob(t *testing.T, db *gorm.DB) *models.Job {
	job := &models.Job{
		Title:        "Electrician",
		Company:      "PowerGrid Co",
		Country:      "Saudi Arabia",
		JobType:      "Contract",
		Description:  "Industrial wiring",
		ContactEmail: "hr@example.com",
		IsActive:     true,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func TestSubmitApplication(t *testing.T) {
	db, _ := newTestDB(t)
	apps := NewApplicationService(db)
	job := testJob(t, db)

	t.Run("reference format and counter", func(t *testing.T) {
		created, err := apps.SubmitApplication(&models.Application{
			JobID:     job.ID,
			FirstName: "Hari",
			LastName:  "KC",
			Email:     "Hari.KC@Example.com",
			Phone:     "+977-9800000001",
		})
		require.NoError(t, err)

		assert.Regexp(t, `^APP-\d{4}-[0-9A-F]{8}$`, created.ApplicationID)
		assert.Equal(t, "hari.kc@example.com", created.Email)
		assert.Equal(t, models.ApplicationStatusNew, created.Status)
		assert.Equal(t, "medium", created.Priority)
		assert.Equal(t, "website", created.Source)

		var fresh models.Job
		require.NoError(t, db.First(&fresh, job.ID).Error)
		assert.Equal(t, 1, fresh.Applications)
	})

	t.Run("missing job is refused", func(t *testing.T) {
		_, err := apps.SubmitApplication(&models.Application{
			JobID:     99999,
			FirstName: "No",
			LastName:  "Body",
			Email:     "nobody@example.com",
			Phone:     "x",
		})
		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}

func TestApplicationWorkflow(t *testing.T) {
	db, cfg := newTestDB(t)
	auth := NewAuthService(db, cfg)
	apps := NewApplicationService(db)
	job := testJob(t, db)

	role := &models.Role{Name: "Recruiter", Permissions: []string{"applications.update"}}
	require.NoError(t, db.Create(role).Error)
	recruiter, err := auth.CreateUser("Recruiter", "rec@example.com", "secret123", role.ID, "")
	require.NoError(t, err)

	created, err := apps.SubmitApplication(&models.Application{
		JobID:     job.ID,
		FirstName: "Gita",
		LastName:  "Sharma",
		Email:     "gita@example.com",
		Phone:     "+977-9800000002",
	})
	require.NoError(t, err)

	t.Run("status, priority and assignment", func(t *testing.T) {
		updated, err := apps.UpdateApplication(created.ID, ApplicationUpdate{
			Status:       models.ApplicationStatusShortlisted,
			Priority:     "high",
			AssignedToID: &recruiter.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusShortlisted, updated.Status)
		assert.Equal(t, "high", updated.Priority)
		require.NotNil(t, updated.AssignedToID)
		assert.Equal(t, recruiter.ID, *updated.AssignedToID)
		assert.NotNil(t, updated.AssignedAt)
	})

	t.Run("assignment to a missing user is refused", func(t *testing.T) {
		ghost := uint(99999)
		_, err := apps.UpdateApplication(created.ID, ApplicationUpdate{AssignedToID: &ghost})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("notes attach and load with the application", func(t *testing.T) {
		_, err := apps.AddNote(created.ID, "Strong candidate, call Monday", recruiter.ID)
		require.NoError(t, err)

		loaded, err := apps.GetApplication(created.ID)
		require.NoError(t, err)
		require.Len(t, loaded.Notes, 1)
		assert.Equal(t, "Strong candidate, call Monday", loaded.Notes[0].Content)
		require.NotNil(t, loaded.Notes[0].AddedBy)
		assert.Equal(t, recruiter.ID, loaded.Notes[0].AddedBy.ID)
	})

	t.Run("deletion removes the notes too", func(t *testing.T) {
		require.NoError(t, apps.DeleteApplication(created.ID))

		_, err := apps.GetApplication(created.ID)
		assert.ErrorIs(t, err, ErrApplicationNotFound)

		var noteCount int64
		db.Model(&models.ApplicationNote{}).Where("application_id = ?", created.ID).Count(&noteCount)
		assert.Equal(t, int64(0), noteCount)
	})
}
