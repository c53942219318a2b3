package services

import (
	"errors"
	"strconv"

	"github.com/pattusdev/API-Development-and-Documentation-project/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("not found")

type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

func (s *TriviaService) ListCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *TriviaService) ListQuestions() ([]models.Question, error) {
	questions := make([]models.Question, 0)
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *TriviaService) CountQuestions() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *TriviaService) CreateQuestion(question *models.Question) error {
	return s.db.Create(question).Error
}

func (s *TriviaService) DeleteQuestion(id uint) error {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&question).Error
}

// SearchQuestions matches the question text case-insensitively. LOWER/LIKE
// instead of ILIKE so the query runs on both postgres and sqlite.
func (s *TriviaService) SearchQuestions(term string) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	err := s.db.Where("LOWER(question) LIKE LOWER(?)", "%"+term+"%").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *TriviaService) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	err := s.db.Where("category = ?", formatCategoryID(categoryID)).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// QuizPool returns the questions still eligible for a quiz round: all
// questions not yet asked, scoped to a category unless categoryID is the
// zero wildcard meaning all categories.
func (s *TriviaService) QuizPool(categoryID uint, previous []uint) ([]models.Question, error) {
	query := s.db.Order("id ASC")
	if categoryID != 0 {
		query = query.Where("category = ?", formatCategoryID(categoryID))
	}
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	pool := make([]models.Question, 0)
	if err := query.Find(&pool).Error; err != nil {
		return nil, err
	}
	return pool, nil
}

func formatCategoryID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
