package controller

import (
	"trivia_backend/internal/service"
	"trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Service *service.CategoryService
}

func NewCategoryController(s *service.CategoryService) *CategoryController {
	return &CategoryController{Service: s}
}

// GetCategories godoc
// @Summary 获取全部分类
// @Description 返回 id -> type 的映射，没有分类时返回 404
// @Tags 分类
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) GetCategories(ctx *gin.Context) {
	categories, err := c.Service.ListCategories(ctx.Request.Context())
	if err != nil {
		util.LogUnprocessable(ctx, err)
		return
	}
	if len(categories) == 0 {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"categories": categories,
	})
}
