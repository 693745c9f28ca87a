package controller

import (
	"trivia_backend/internal/model"
	"trivia_backend/internal/service"
	"trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(s *service.QuizService) *QuizController {
	return &QuizController{Service: s}
}

type QuizCategoryRequest struct {
	ID   util.FlexUint `json:"id" swaggertype:"integer" example:"1"`
	Type string        `json:"type" example:"Science"`
}

// QuizRequest quiz_category 缺省、id 为 0 或 type 为 "click" 时表示全部分类
type QuizRequest struct {
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
	PreviousQuestions *[]util.FlexUint     `json:"previous_questions" swaggertype:"array,integer"`
}

// Validate 两个字段都缺省时拒绝请求；previous_questions 为空数组是合法的
func (r *QuizRequest) Validate() error {
	if r.QuizCategory == nil && r.PreviousQuestions == nil {
		return util.ErrInvalidQuizRequest
	}
	return nil
}

// CategoryFilter nil 表示全部分类
func (r *QuizRequest) CategoryFilter() *uint {
	if r.QuizCategory == nil || r.QuizCategory.ID == 0 || r.QuizCategory.Type == util.QuizAllCategories {
		return nil
	}
	id := uint(r.QuizCategory.ID)
	return &id
}

func (r *QuizRequest) Previous() []uint {
	if r.PreviousQuestions == nil {
		return nil
	}
	return util.UintSlice(*r.PreviousQuestions)
}

// PlayQuiz godoc
// @Summary 抽取下一道测验题
// @Description 在指定分类（或全部分类）中随机返回一道不在 previous_questions 中的题目，题目用尽时 question 为 null
// @Tags 测验
// @Accept json
// @Produce json
// @Param body body QuizRequest true "分类和已答题目"
// @Success 200 {object} QuizResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /quizzes [post]
func (c *QuizController) PlayQuiz(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Unprocessable(ctx)
		return
	}
	if err := req.Validate(); err != nil {
		util.Unprocessable(ctx)
		return
	}

	question, err := c.Service.NextQuestion(ctx.Request.Context(), req.CategoryFilter(), req.Previous())
	if err != nil {
		util.LogUnprocessable(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"question": question,
	})
}

type QuizResponse struct {
	Success  bool            `json:"success" example:"true"`
	Question *model.Question `json:"question"`
}
