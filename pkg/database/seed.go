package database

import (
	"fmt"

	"trivia_backend/internal/model"

	"gorm.io/gorm"
)

// DefaultCategories 按顺序写入，空库中 id 依次为 1..6
var DefaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// SampleQuestions 示例题库，Category 对应 DefaultCategories 的 id
var SampleQuestions = []model.Question{
	{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Difficulty: 2, Category: 4},
	{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Difficulty: 1, Category: 4},
	{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Difficulty: 4, Category: 5},
	{Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Difficulty: 4, Category: 5},
	{Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Difficulty: 3, Category: 5},
	{Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Difficulty: 3, Category: 6},
	{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Difficulty: 4, Category: 6},
	{Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Difficulty: 2, Category: 4},
	{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Difficulty: 2, Category: 3},
	{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Difficulty: 3, Category: 3},
	{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Difficulty: 2, Category: 3},
	{Question: "Which Dutch graphic artist–initials M C was a creator of optical illusions?", Answer: "Escher", Difficulty: 1, Category: 2},
	{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Difficulty: 3, Category: 2},
	{Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Difficulty: 4, Category: 2},
	{Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Difficulty: 2, Category: 2},
	{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Difficulty: 4, Category: 1},
	{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Difficulty: 3, Category: 1},
	{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Difficulty: 4, Category: 1},
	{Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Difficulty: 4, Category: 4},
}

// SeedCategories 分类表为空时写入默认分类
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, t := range DefaultCategories {
		if err := db.Create(&model.Category{Type: t}).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", t, err)
		}
	}
	return nil
}

// SeedQuestions 题目表为空时写入示例题目
func SeedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, q := range SampleQuestions {
		q := q
		if err := db.Create(&q).Error; err != nil {
			return fmt.Errorf("seed question: %w", err)
		}
	}
	return nil
}
