package handlers

import (
	"net/http"
	"strconv"

	"github.com/pattusdev/API-Development-and-Documentation-project/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	trivia *services.TriviaService
}

func NewCategoryHandler(trivia *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{trivia: trivia}
}

// ListCategories returns every category as an id-to-name map.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.trivia.ListCategories()
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}
	if len(categories) == 0 {
		respondError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"categories":       categoryMap(categories),
		"total_categories": len(categories),
	})
}

// ListQuestionsByCategory returns one page of the questions filed under the
// category id in the path.
func (h *CategoryHandler) ListQuestionsByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound)
		return
	}

	questions, err := h.trivia.QuestionsByCategory(uint(id))
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}

	page := paginateQuestions(pageParam(c), questions)
	if len(page) == 0 {
		respondError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        page,
		"total_questions":  len(questions),
		"current_category": id,
	})
}
