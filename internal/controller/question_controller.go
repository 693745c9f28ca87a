package controller

import (
	"errors"

	"trivia_backend/internal/model"
	"trivia_backend/internal/service"
	"trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service         *service.QuestionService
	CategoryService *service.CategoryService
}

func NewQuestionController(s *service.QuestionService, categories *service.CategoryService) *QuestionController {
	return &QuestionController{Service: s, CategoryService: categories}
}

// CreateQuestionRequest 同一个接口既可新建题目，也可按 searchTerm 搜索
type CreateQuestionRequest struct {
	Question   string        `json:"question"`
	Answer     string        `json:"answer"`
	Difficulty util.FlexInt  `json:"difficulty" swaggertype:"integer"`
	Category   util.FlexUint `json:"category" swaggertype:"integer"`
	SearchTerm string        `json:"searchTerm"`
}

// GetQuestions godoc
// @Summary 分页获取题目
// @Description 每页 10 道，按 id 升序；页码超出范围返回 404
// @Tags 题目
// @Produce json
// @Param page query int false "页码，默认 1"
// @Success 200 {object} QuestionListResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	page := util.PageFromQuery(ctx)

	result, err := c.Service.ListQuestions(ctx.Request.Context(), page)
	if err != nil {
		util.LogUnprocessable(ctx, err)
		return
	}
	if len(result.Questions) == 0 {
		util.NotFound(ctx)
		return
	}

	categories, err := c.CategoryService.ListCategories(ctx.Request.Context())
	if err != nil {
		util.LogUnprocessable(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"categories":       categories,
		"current_category": nil,
	})
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Tags 题目
// @Produce json
// @Param id path int true "题目ID"
// @Param page query int false "返回列表的页码，默认 1"
// @Success 200 {object} DeleteQuestionResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	result, err := c.Service.DeleteQuestion(ctx.Request.Context(), id, util.PageFromQuery(ctx))
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogUnprocessable(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"deleted":         id,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// CreateOrSearchQuestions godoc
// @Summary 新建题目或搜索题目
// @Description 请求体带非空 searchTerm 时按题干搜索（不区分大小写），否则新建题目
// @Tags 题目
// @Accept json
// @Produce json
// @Param page query int false "页码，默认 1"
// @Param body body CreateQuestionRequest true "题目内容或搜索词"
// @Success 200 {object} CreateQuestionResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) CreateOrSearchQuestions(ctx *gin.Context) {
	var req CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		if util.IsMalformedJSON(err) {
			util.BadRequest(ctx)
			return
		}
		util.Unprocessable(ctx)
		return
	}
	page := util.PageFromQuery(ctx)

	if req.SearchTerm != "" {
		result, err := c.Service.SearchQuestions(ctx.Request.Context(), req.SearchTerm, page)
		if err != nil {
			util.LogUnprocessable(ctx, err)
			return
		}
		util.Success(ctx, gin.H{
			"questions":        result.Questions,
			"total_questions":  result.Total,
			"current_category": nil,
		})
		return
	}

	created, result, err := c.Service.CreateQuestion(ctx.Request.Context(), service.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   uint(req.Category),
		Difficulty: int(req.Difficulty),
	}, page)
	if err != nil {
		util.LogUnprocessable(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"created":         created.ID,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// GetQuestionsByCategory godoc
// @Summary 获取分类下的题目
// @Description total_questions 为该分类的题目总数
// @Tags 题目
// @Produce json
// @Param id path int true "分类ID"
// @Param page query int false "页码，默认 1"
// @Success 200 {object} CategoryQuestionsResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /categories/{id}/questions [get]
func (c *QuestionController) GetQuestionsByCategory(ctx *gin.Context) {
	categoryID, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.Unprocessable(ctx)
		return
	}

	result, err := c.Service.ListByCategory(ctx.Request.Context(), categoryID, util.PageFromQuery(ctx))
	if err != nil {
		util.LogUnprocessable(ctx, err)
		return
	}

	current, err := c.Service.CategoryType(ctx.Request.Context(), categoryID)
	if err != nil {
		util.LogUnprocessable(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": current,
	})
}

// 以下类型仅用于 swagger 文档

type CategoriesResponse struct {
	Success    bool              `json:"success" example:"true"`
	Categories map[string]string `json:"categories"`
}

type QuestionListResponse struct {
	Success         bool              `json:"success" example:"true"`
	Questions       []model.Question  `json:"questions"`
	TotalQuestions  int               `json:"total_questions" example:"19"`
	Categories      map[string]string `json:"categories"`
	CurrentCategory *string           `json:"current_category"`
}

type DeleteQuestionResponse struct {
	Success        bool             `json:"success" example:"true"`
	Deleted        uint             `json:"deleted" example:"5"`
	Questions      []model.Question `json:"questions"`
	TotalQuestions int              `json:"total_questions" example:"18"`
}

type CreateQuestionResponse struct {
	Success        bool             `json:"success" example:"true"`
	Created        uint             `json:"created,omitempty" example:"24"`
	Questions      []model.Question `json:"questions"`
	TotalQuestions int              `json:"total_questions" example:"20"`
}

type CategoryQuestionsResponse struct {
	Success         bool             `json:"success" example:"true"`
	Questions       []model.Question `json:"questions"`
	TotalQuestions  int              `json:"total_questions" example:"3"`
	CurrentCategory *string          `json:"current_category" example:"Science"`
}
