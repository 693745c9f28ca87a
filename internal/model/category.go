package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Category 题目分类，由初始化数据写入，接口只读
type Category struct {
	BaseModel
	Type string `gorm:"size:255;not null" json:"type"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryMap 序列化为 {"<id>": "<type>"}，按 id 升序输出
type CategoryMap []Category

func (m CategoryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.FormatUint(uint64(c.ID), 10)))
		buf.WriteByte(':')
		label, err := json.Marshal(c.Type)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
