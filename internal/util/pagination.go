package util

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParsePage 解析 1 起始的页码，空值、非整数和非正数都按第 1 页处理
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// PageFromQuery 读取 ?page=N
func PageFromQuery(c *gin.Context) int {
	return ParsePage(c.Query("page"))
}

// Paginate 返回 items[(page-1)*size : page*size]，超出范围时返回空切片
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return []T{}
	}

	start := (page - 1) * size
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
