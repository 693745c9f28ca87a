package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// QuizSelections 抽题结果：served 返回了题目，exhausted 已无可用题目
	QuizSelections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_quiz_selections_total",
			Help: "Quiz question selections by result",
		},
		[]string{"result"},
	)

	QuestionMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_question_mutations_total",
			Help: "Questions created or deleted through the API",
		},
		[]string{"operation"},
	)
)

const (
	QuizServed    = "served"
	QuizExhausted = "exhausted"

	OpCreate = "create"
	OpDelete = "delete"
)

var registerOnce sync.Once

// Init 注册指标，重复调用是安全的
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(QuizSelections)
		prometheus.MustRegister(QuestionMutations)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
