package service

import (
	"context"
	"math/rand/v2"

	"trivia_backend/internal/model"
	"trivia_backend/internal/repository"
	"trivia_backend/pkg/monitoring"
	"trivia_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type QuizService struct {
	Repo *repository.QuestionRepository
	// intn 返回 [0, n) 的均匀随机数
	intn func(n int) int
}

func NewQuizService(repo *repository.QuestionRepository) *QuizService {
	return &QuizService{Repo: repo, intn: rand.IntN}
}

// NextQuestion 从未出现过的题目中随机抽取一道。
// categoryID 为 nil 表示全部分类；没有可用题目时返回 (nil, nil)。
func (s *QuizService) NextQuestion(ctx context.Context, categoryID *uint, previous []uint) (*model.Question, error) {
	attrs := []attribute.KeyValue{attribute.Int("previous", len(previous))}
	if categoryID != nil {
		attrs = append(attrs, attribute.Int("category", int(*categoryID)))
	}
	ctx, span := tracing.StartSpan(ctx, "QuizService.NextQuestion", attrs...)

	candidates, err := s.Repo.FindCandidates(ctx, categoryID, previous)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		monitoring.QuizSelections.WithLabelValues(monitoring.QuizExhausted).Inc()
		return nil, nil
	}

	monitoring.QuizSelections.WithLabelValues(monitoring.QuizServed).Inc()
	picked := candidates[s.intn(len(candidates))]
	return &picked, nil
}
