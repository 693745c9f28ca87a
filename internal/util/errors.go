package util

import (
	"encoding/json"
	"errors"
	"io"
)

var (
	ErrQuestionNotFound   = errors.New("question not found")
	ErrInvalidQuizRequest = errors.New("quiz_category or previous_questions is required")
	ErrInvalidNumber      = errors.New("invalid number")
)

// IsMalformedJSON 请求体为空、被截断或不是合法 JSON
func IsMalformedJSON(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
