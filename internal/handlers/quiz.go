package handlers

import (
	"math/rand"
	"net/http"

	"github.com/pattusdev/API-Development-and-Documentation-project/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	trivia *services.TriviaService
}

func NewQuizHandler(trivia *services.TriviaService) *QuizHandler {
	return &QuizHandler{trivia: trivia}
}

type quizCategory struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

type quizRequest struct {
	QuizCategory      *quizCategory `json:"quiz_category"`
	PreviousQuestions *[]uint       `json:"previous_questions"`
}

// NextQuestion picks one question uniformly at random from the questions
// not yet asked, scoped to the requested category. A category id of 0
// means all categories. An exhausted pool is a success with a null
// question, not an error; the client tracks previous_questions itself.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}
	if req.QuizCategory == nil || req.PreviousQuestions == nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	pool, err := h.trivia.QuizPool(req.QuizCategory.ID, *req.PreviousQuestions)
	if err != nil {
		respondError(c, http.StatusInternalServerError)
		return
	}
	if len(pool) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"question": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": pool[rand.Intn(len(pool))],
	})
}
