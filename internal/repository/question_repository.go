package repository

import (
	"context"
	"fmt"
	"strings"

	"trivia_backend/internal/model"
	"trivia_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// FindAll 按 id 升序返回全部题目
func (r *QuestionRepository) FindAll(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	if err := r.DB.WithContext(ctx).Order("id asc").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	return questions, nil
}

// likeEscaper 用 ! 作为 LIKE 转义符，mysql/postgres/sqlite 行为一致
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Search 题干包含 term 的题目（不区分大小写）。
// 两边都交给数据库的 LOWER 处理，保证与列上的大小写折叠规则一致。
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]model.Question, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"

	var questions []model.Question
	err := r.DB.WithContext(ctx).
		Where("LOWER(question) LIKE LOWER(?) ESCAPE '!'", pattern).
		Order("id asc").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

// FindByCategory 指定分类下的题目
func (r *QuestionRepository) FindByCategory(ctx context.Context, categoryID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id asc").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("find questions by category %d: %w", categoryID, err)
	}
	return questions, nil
}

// FindCandidates 抽题候选集：categoryID 为 nil 表示全部分类，排除 excludeIDs
func (r *QuestionRepository) FindCandidates(ctx context.Context, categoryID *uint, excludeIDs []uint) ([]model.Question, error) {
	query := r.DB.WithContext(ctx).Model(&model.Question{})
	if categoryID != nil {
		query = query.Where("category = ?", *categoryID)
	}
	// 空列表会生成 NOT IN (NULL)，必须跳过
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var questions []model.Question
	if err := query.Order("id asc").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("find quiz candidates: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *model.Question) error {
	if err := r.DB.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

// Delete 单条 DELETE，未删除任何行时返回 ErrQuestionNotFound
func (r *QuestionRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete question %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}
