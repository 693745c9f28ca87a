package service

import (
	"testing"

	"trivia_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuestionsPages(t *testing.T) {
	f := seeded(t)

	first, err := f.questions.ListQuestions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 19, first.Total)
	assert.Len(t, first.Questions, 10)

	second, err := f.questions.ListQuestions(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 19, second.Total)
	require.Len(t, second.Questions, 9)
	assert.Greater(t, second.Questions[0].ID, first.Questions[9].ID)

	beyond, err := f.questions.ListQuestions(ctx, 2000)
	require.NoError(t, err)
	assert.Empty(t, beyond.Questions)
	assert.Equal(t, 19, beyond.Total)
}

func TestSearchQuestions(t *testing.T) {
	f := seeded(t)

	result, err := f.questions.SearchQuestions(ctx, "What", 1)
	require.NoError(t, err)
	assert.Equal(t, 8, result.Total)
	assert.Len(t, result.Questions, 8)
	for _, q := range result.Questions {
		assert.Contains(t, q.Question, "hat")
	}

	// "entitled" 也包含 title
	result, err = f.questions.SearchQuestions(ctx, "title", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Questions, 2)
	assert.Equal(t, uint(1), result.Questions[0].ID)
	assert.Equal(t, uint(5), result.Questions[1].ID)
}

func TestListByCategoryReportsFullCount(t *testing.T) {
	f := seeded(t)

	art, err := f.questions.ListByCategory(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, art.Total)
	assert.Len(t, art.Questions, 4)

	for i := 0; i < 12; i++ {
		_, _, err := f.questions.CreateQuestion(ctx, QuestionInput{Question: "Q", Answer: "A", Category: 2, Difficulty: 1}, 1)
		require.NoError(t, err)
	}

	page2, err := f.questions.ListByCategory(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 16, page2.Total)
	assert.Len(t, page2.Questions, 6)

	none, err := f.questions.ListByCategory(ctx, 100, 1)
	require.NoError(t, err)
	assert.Zero(t, none.Total)
	assert.Empty(t, none.Questions)
}

func TestCategoryType(t *testing.T) {
	f := seeded(t)

	label, err := f.questions.CategoryType(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, label)
	assert.Equal(t, "Science", *label)

	label, err = f.questions.CategoryType(ctx, 100)
	require.NoError(t, err)
	assert.Nil(t, label)
}

func TestCreateQuestion(t *testing.T) {
	f := seeded(t)

	before, err := f.questions.ListQuestions(ctx, 1)
	require.NoError(t, err)

	created, page, err := f.questions.CreateQuestion(ctx, QuestionInput{
		Question:   "Some question",
		Answer:     "Some answer",
		Category:   1,
		Difficulty: 4,
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, before.Total+1, page.Total)
	assert.Len(t, page.Questions, 10)
	last := page.Questions[len(page.Questions)-1]
	assert.Equal(t, created.ID, last.ID)
	assert.Equal(t, "Some question", last.Question)

	for _, q := range before.Questions {
		assert.Greater(t, created.ID, q.ID)
	}
}

func TestCreateQuestionWithoutFields(t *testing.T) {
	f := seeded(t)

	created, page, err := f.questions.CreateQuestion(ctx, QuestionInput{}, 1)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Empty(t, created.Question)
	assert.Equal(t, 20, page.Total)
}

func TestDeleteQuestionTwice(t *testing.T) {
	f := seeded(t)

	page, err := f.questions.DeleteQuestion(ctx, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 18, page.Total)
	for _, q := range page.Questions {
		assert.NotEqual(t, uint(5), q.ID)
	}

	_, err = f.questions.DeleteQuestion(ctx, 5, 1)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}
