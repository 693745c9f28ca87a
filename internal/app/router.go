package app

import (
	"trivia_backend/docs"
	"trivia_backend/internal/util"
	"trivia_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// 分类
	router.GET("/categories", c.category.GetCategories)
	router.GET("/categories/:id/questions", c.question.GetQuestionsByCategory)

	// 题目
	router.GET("/questions", c.question.GetQuestions)
	router.POST("/questions", c.question.CreateOrSearchQuestions)
	router.DELETE("/questions/:id", c.question.DeleteQuestion)

	// 测验
	router.POST("/quizzes", c.quiz.PlayQuiz)

	router.HandleMethodNotAllowed = true
	router.NoRoute(util.NotFound)
	router.NoMethod(util.MethodNotAllowed)
}
