package util

import (
	"net/http"

	"trivia_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 统一错误响应结构
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

// 与前端约定的错误描述
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgUnprocessable    = "unprocessable"
	MsgTooManyRequests  = "too many requests"
	MsgInternalError    = "internal server error"
)

// Success 在 payload 上补充 success: true
func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Success: false,
		Error:   code,
		Message: message,
	})
}

// Abort 用于中间件，写入错误并终止后续 handler
func Abort(c *gin.Context, code int, message string) {
	Error(c, code, message)
	c.Abort()
}

func BadRequest(c *gin.Context) {
	Error(c, http.StatusBadRequest, MsgBadRequest)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, MsgNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}

func Unprocessable(c *gin.Context) {
	Error(c, http.StatusUnprocessableEntity, MsgUnprocessable)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, MsgInternalError)
}

// LogUnprocessable 记录内部错误，对外只返回 422
func LogUnprocessable(c *gin.Context, err error) {
	logger.Log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(RequestIDKey)),
		zap.Error(err),
	)
	Unprocessable(c)
}
