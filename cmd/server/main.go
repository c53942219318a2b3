package main

import (
	"log"

	"github.com/pattusdev/API-Development-and-Documentation-project/internal/config"
	"github.com/pattusdev/API-Development-and-Documentation-project/internal/database"
	"github.com/pattusdev/API-Development-and-Documentation-project/internal/handlers"
	"github.com/pattusdev/API-Development-and-Documentation-project/internal/server"
	"github.com/pattusdev/API-Development-and-Documentation-project/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.SeedCategories(db)

	triviaService := services.NewTriviaService(db)

	categoryHandler := handlers.NewCategoryHandler(triviaService)
	questionHandler := handlers.NewQuestionHandler(triviaService)
	quizHandler := handlers.NewQuizHandler(triviaService)

	r := server.New(categoryHandler, questionHandler, quizHandler)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
