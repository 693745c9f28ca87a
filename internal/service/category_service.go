package service

import (
	"context"

	"trivia_backend/internal/model"
	"trivia_backend/internal/repository"
	"trivia_backend/pkg/tracing"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

// ListCategories 返回 id -> type，没有分类时返回空映射而不是错误
func (s *CategoryService) ListCategories(ctx context.Context) (model.CategoryMap, error) {
	ctx, span := tracing.StartSpan(ctx, "CategoryService.ListCategories")
	categories, err := s.Repo.FindAll(ctx)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	return model.CategoryMap(categories), nil
}
