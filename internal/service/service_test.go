package service

import (
	"context"
	"testing"

	"trivia_backend/internal/repository"
	"trivia_backend/internal/testutil"

	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	categories *CategoryService
	questions  *QuestionService
	quiz       *QuizService
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	questionRepo := repository.NewQuestionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	return &fixture{
		db:         db,
		categories: NewCategoryService(categoryRepo),
		questions:  NewQuestionService(questionRepo, categoryRepo),
		quiz:       NewQuizService(questionRepo),
	}
}

func seeded(t *testing.T) *fixture {
	return newFixture(t, testutil.NewDB(t))
}

var ctx = context.Background()
