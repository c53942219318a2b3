package server

import (
	"github.com/pattusdev/API-Development-and-Documentation-project/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New assembles the router. Kept separate from main so tests can stand up
// an isolated instance against their own database.
func New(
	categoryHandler *handlers.CategoryHandler,
	questionHandler *handlers.QuestionHandler,
	quizHandler *handlers.QuizHandler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.ListQuestionsByCategory)

	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateQuestion)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	r.POST("/questions/search", questionHandler.SearchQuestions)

	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}
