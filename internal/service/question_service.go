package service

import (
	"context"
	"errors"

	"trivia_backend/internal/model"
	"trivia_backend/internal/repository"
	"trivia_backend/internal/util"
	"trivia_backend/pkg/logger"
	"trivia_backend/pkg/monitoring"
	"trivia_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuestionPage 一页题目及过滤后的总数
type QuestionPage struct {
	Questions []model.Question
	Total     int
}

// QuestionInput 新建题目的字段，不做必填校验
type QuestionInput struct {
	Question   string
	Answer     string
	Category   uint
	Difficulty int
}

type QuestionService struct {
	Repo         *repository.QuestionRepository
	CategoryRepo *repository.CategoryRepository
}

func NewQuestionService(repo *repository.QuestionRepository, categoryRepo *repository.CategoryRepository) *QuestionService {
	return &QuestionService{Repo: repo, CategoryRepo: categoryRepo}
}

func pageOf(questions []model.Question, page int) *QuestionPage {
	return &QuestionPage{
		Questions: util.Paginate(questions, page, util.QuestionsPerPage),
		Total:     len(questions),
	}
}

// ListQuestions 全部题目按 id 升序分页
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	ctx, span := tracing.StartSpan(ctx, "QuestionService.ListQuestions", attribute.Int("page", page))
	questions, err := s.Repo.FindAll(ctx)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	return pageOf(questions, page), nil
}

// SearchQuestions 题干模糊搜索（不区分大小写）
func (s *QuestionService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	ctx, span := tracing.StartSpan(ctx, "QuestionService.SearchQuestions", attribute.Int("page", page))
	questions, err := s.Repo.Search(ctx, term)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	return pageOf(questions, page), nil
}

// ListByCategory 分类下的题目分页，Total 为该分类的题目总数
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID uint, page int) (*QuestionPage, error) {
	ctx, span := tracing.StartSpan(ctx, "QuestionService.ListByCategory",
		attribute.Int("category", int(categoryID)),
		attribute.Int("page", page),
	)
	questions, err := s.Repo.FindByCategory(ctx, categoryID)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	return pageOf(questions, page), nil
}

// CategoryType 分类名称，分类不存在时返回 nil
func (s *QuestionService) CategoryType(ctx context.Context, categoryID uint) (*string, error) {
	category, err := s.CategoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category.Type, nil
}

// CreateQuestion 新建题目并返回刷新后的题目列表
func (s *QuestionService) CreateQuestion(ctx context.Context, input QuestionInput, page int) (*model.Question, *QuestionPage, error) {
	ctx, span := tracing.StartSpan(ctx, "QuestionService.CreateQuestion")
	question := &model.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	err := s.Repo.Create(ctx, question)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, nil, err
	}

	monitoring.QuestionMutations.WithLabelValues(monitoring.OpCreate).Inc()
	logger.Log.Info("question created", zap.Uint("id", question.ID), zap.Uint("category", question.Category))

	refreshed, err := s.ListQuestions(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	return question, refreshed, nil
}

// DeleteQuestion 删除题目，id 不存在时返回 util.ErrQuestionNotFound
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint, page int) (*QuestionPage, error) {
	ctx, span := tracing.StartSpan(ctx, "QuestionService.DeleteQuestion", attribute.Int("id", int(id)))
	err := s.Repo.Delete(ctx, id)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	monitoring.QuestionMutations.WithLabelValues(monitoring.OpDelete).Inc()
	logger.Log.Info("question deleted", zap.Uint("id", id))

	return s.ListQuestions(ctx, page)
}
