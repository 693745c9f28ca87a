package util

// QuestionsPerPage 每页题目数
const QuestionsPerPage = 10

// gin.Context 中的 key
const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// QuizAllCategories 前端选择 "All" 时 quiz_category.type 的取值
const QuizAllCategories = "click"
