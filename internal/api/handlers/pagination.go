package handlers

import (
	"github.com/gin-gonic/gin"
)

// paginate builds the listing envelope shared by every paginated endpoint.
func paginate(page, limit int, total int64) gin.H {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return gin.H{
		"current":  page,
		"pages":    pages,
		"total":    total,
		"has_next": page < pages,
		"has_prev": page > 1,
	}
}
