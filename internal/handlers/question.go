package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pattusdev/API-Development-and-Documentation-project/internal/models"
	"github.com/pattusdev/API-Development-and-Documentation-project/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	trivia *services.TriviaService
}

func NewQuestionHandler(trivia *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{trivia: trivia}
}

// Pointer fields so an absent key is distinguishable from a zero value.
type createQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Difficulty *int    `json:"difficulty"`
	Category   *int    `json:"category"`
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// ListQuestions returns one page of all questions ordered by id, plus the
// category map for the client's filter sidebar.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.trivia.ListQuestions()
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}

	page := paginateQuestions(pageParam(c), questions)
	if len(page) == 0 {
		respondError(c, http.StatusNotFound)
		return
	}

	categories, err := h.trivia.ListCategories()
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        page,
		"total_questions":  len(questions),
		"categories":       categoryMap(categories),
		"current_category": gin.H{},
	})
}

// DeleteQuestion removes the question with the path id. Unknown ids are a
// 404; a delete that fails on an existing row is a 422.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound)
		return
	}

	if err := h.trivia.DeleteQuestion(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound)
		} else {
			respondError(c, http.StatusUnprocessableEntity)
		}
		return
	}

	total, err := h.trivia.CountQuestions()
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"deleted":   id,
		"total_qts": total,
	})
}

// CreateQuestion inserts a new question. All four fields must be present
// and non-empty; violations answer with the API's historical 405.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusMethodNotAllowed)
		return
	}
	if req.Question == nil || req.Answer == nil || req.Difficulty == nil || req.Category == nil {
		respondError(c, http.StatusMethodNotAllowed)
		return
	}
	if *req.Question == "" || *req.Answer == "" || *req.Difficulty == 0 || *req.Category == 0 {
		respondError(c, http.StatusMethodNotAllowed)
		return
	}

	question := models.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Difficulty: *req.Difficulty,
		Category:   strconv.Itoa(*req.Category),
	}
	if err := h.trivia.CreateQuestion(&question); err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}

	total, err := h.trivia.CountQuestions()
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"created":       question.ID,
		"new_question":  question.Question,
		"tot_questions": total,
	})
}

// SearchQuestions returns every question whose text contains the search
// term, case-insensitively. An empty or absent term is a 404 and never
// reaches storage.
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}
	if req.SearchTerm == "" {
		respondError(c, http.StatusNotFound)
		return
	}

	matches, err := h.trivia.SearchQuestions(req.SearchTerm)
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        matches,
		"total_questions":  len(matches),
		"current_category": nil,
	})
}
