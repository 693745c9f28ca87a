package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"trivia_backend/internal/repository"
	"trivia_backend/internal/service"
	"trivia_backend/internal/testutil"
	"trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type questionJSON struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type listBody struct {
	Success         bool              `json:"success"`
	Questions       []questionJSON    `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[string]string `json:"categories"`
	CurrentCategory *string           `json:"current_category"`
	Deleted         uint              `json:"deleted"`
	Created         uint              `json:"created"`
}

type quizBody struct {
	Success  bool          `json:"success"`
	Question *questionJSON `json:"question"`
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	questionRepo := repository.NewQuestionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	categories := service.NewCategoryService(categoryRepo)
	questions := service.NewQuestionService(questionRepo, categoryRepo)
	quiz := service.NewQuizService(questionRepo)

	cc := NewCategoryController(categories)
	qc := NewQuestionController(questions, categories)
	zc := NewQuizController(quiz)
	hc := NewHealthController(db)

	r := gin.New()
	r.GET("/health", hc.HealthCheck)
	r.GET("/categories", cc.GetCategories)
	r.GET("/categories/:id/questions", qc.GetQuestionsByCategory)
	r.GET("/questions", qc.GetQuestions)
	r.POST("/questions", qc.CreateOrSearchQuestions)
	r.DELETE("/questions/:id", qc.DeleteQuestion)
	r.POST("/quizzes", zc.PlayQuiz)
	return r
}

func seededRouter(t *testing.T) *gin.Engine {
	return newRouter(testutil.NewDB(t))
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func requireError(t *testing.T, w *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	require.Equal(t, code, w.Code, w.Body.String())
	body := decode[util.ErrorResponse](t, w)
	require.False(t, body.Success)
	require.Equal(t, code, body.Error)
	require.Equal(t, message, body.Message)
}
