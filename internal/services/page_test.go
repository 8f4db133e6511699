package services

import (
	"testing"

	"uddaan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"About Us":                  "about-us",
		"Visa & Work Permits":       "visa-work-permits",
		"  Study Abroad  2026!  ":   "study-abroad-2026",
		"already-a-slug":            "already-a-slug",
		"UPPER Case ... Everywhere": "upper-case-everywhere",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestPageLifecycle(t *testing.T) {
	db, cfg := newTestDB(t)
	auth := NewAuthService(db, cfg)
	pages := NewPageService(db)

	role := &models.Role{Name: "Admin", Permissions: []string{models.PermissionAll}}
	require.NoError(t, db.Create(role).Error)
	author, err := auth.CreateUser("Author", "author@example.com", "secret123", role.ID, "")
	require.NoError(t, err)

	t.Run("slug is derived from the title when absent", func(t *testing.T) {
		page, err := pages.CreatePage(&models.Page{Title: "Our Services", Content: "..."}, author.ID)
		require.NoError(t, err)
		assert.Equal(t, "our-services", page.Slug)
		assert.Equal(t, models.PageStatusDraft, page.Status)
	})

	t.Run("slug collision is refused", func(t *testing.T) {
		_, err := pages.CreatePage(&models.Page{Title: "Our Services", Content: "..."}, author.ID)
		assert.ErrorIs(t, err, ErrSlugTaken)
	})

	t.Run("drafts are invisible until published", func(t *testing.T) {
		_, err := pages.GetPublishedPage("our-services")
		assert.ErrorIs(t, err, ErrPageNotFound)

		var draft models.Page
		require.NoError(t, db.Where("slug = ?", "our-services").First(&draft).Error)
		_, err = pages.UpdatePage(draft.ID, &models.Page{Status: models.PageStatusPublished})
		require.NoError(t, err)

		published, err := pages.GetPublishedPage("our-services")
		require.NoError(t, err)
		assert.Equal(t, "Our Services", published.Title)
	})
}
