package handlers

import (
	"strconv"

	"github.com/pattusdev/API-Development-and-Documentation-project/internal/models"

	"github.com/gin-gonic/gin"
)

const questionsPerPage = 10

// pageParam reads the 1-based page query parameter. Missing, unparsable or
// non-positive values fall back to the first page.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// paginateQuestions slices one page out of an already-ordered result set.
// A page past the end yields an empty slice; listing handlers treat that
// as not found.
func paginateQuestions(page int, questions []models.Question) []models.Question {
	start := (page - 1) * questionsPerPage
	if start >= len(questions) {
		return nil
	}
	end := start + questionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
