package handlers

import (
	"net/http"

	"github.com/pattusdev/API-Development-and-Documentation-project/internal/models"

	"github.com/gin-gonic/gin"
)

// Fixed message per status code; every error response carries exactly this
// body shape regardless of what failed internally.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Page not found",
	http.StatusMethodNotAllowed:    "Invalid method!",
	http.StatusNotAcceptable:       "Not Acceptable",
	http.StatusUnprocessableEntity: "Unprocessable resources",
	http.StatusInternalServerError: "Internal server error",
}

func respondError(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"error":   code,
		"message": statusMessages[code],
	})
}

func categoryMap(categories []models.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, cat := range categories {
		m[cat.ID] = cat.Type
	}
	return m
}
