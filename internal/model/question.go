package model

// Question 题目；Category 只是分类 id，不做外键约束
type Question struct {
	BaseModel
	Question   string `gorm:"type:text" json:"question"`
	Answer     string `gorm:"type:text" json:"answer"`
	Category   uint   `gorm:"index" json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}
