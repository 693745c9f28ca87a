package util

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ParseID 解析路径中的 id
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return uint(id), nil
}

// FlexUint 同时接受 JSON 数字和数字字符串（如 1 或 "1"），null 视为 0
type FlexUint uint

func (f *FlexUint) UnmarshalJSON(data []byte) error {
	s, err := flexString(data)
	if err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return ErrInvalidNumber
	}
	*f = FlexUint(v)
	return nil
}

// FlexInt 同 FlexUint，允许负数
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s, err := flexString(data)
	if err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return ErrInvalidNumber
	}
	*f = FlexInt(v)
	return nil
}

func flexString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}

// UintSlice 将 []FlexUint 转换为 []uint
func UintSlice(in []FlexUint) []uint {
	out := make([]uint, len(in))
	for i, v := range in {
		out[i] = uint(v)
	}
	return out
}
