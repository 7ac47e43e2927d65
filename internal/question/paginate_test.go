package question

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeQuestions(n int) []Question {
	out := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Question{
			ID:         i,
			Question:   fmt.Sprintf("Question %d", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			CategoryID: 1 + i%3,
			Difficulty: 1 + i%5,
		})
	}
	return out
}

func TestPaginateFirstPage(t *testing.T) {
	items := makeQuestions(25)

	page := Paginate(items, 1, 10)

	assert.Len(t, page.Questions, 10)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 1, page.Questions[0].ID)
	assert.Equal(t, 10, page.Questions[9].ID)
}

func TestPaginateLastPartialPage(t *testing.T) {
	items := makeQuestions(25)

	page := Paginate(items, 3, 10)

	assert.Len(t, page.Questions, 5)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 21, page.Questions[0].ID)
	assert.Equal(t, 25, page.Questions[4].ID)
}

func TestPaginatePastTheEnd(t *testing.T) {
	page := Paginate(makeQuestions(25), 4, 10)

	assert.NotNil(t, page.Questions)
	assert.Empty(t, page.Questions)
	assert.Equal(t, 25, page.Total)
}

func TestPaginateClampsPageBelowOne(t *testing.T) {
	items := makeQuestions(12)

	for _, page := range []int{0, -1, -100} {
		got := Paginate(items, page, 10)
		assert.Equal(t, 1, got.Questions[0].ID, "page %d should clamp to the first page", page)
		assert.Len(t, got.Questions, 10)
	}
}

func TestPaginateZeroPageSizeFallsBackToDefault(t *testing.T) {
	page := Paginate(makeQuestions(15), 1, 0)

	assert.Len(t, page.Questions, DefaultPageSize)
	assert.Equal(t, 15, page.Total)
}

func TestPaginateEmptyInput(t *testing.T) {
	page := Paginate(nil, 1, 10)

	assert.NotNil(t, page.Questions)
	assert.Empty(t, page.Questions)
	assert.Zero(t, page.Total)
}

func TestPaginateTotalIgnoresPageWindow(t *testing.T) {
	items := makeQuestions(42)

	for page := 1; page <= 5; page++ {
		got := Paginate(items, page, 10)
		assert.Equal(t, 42, got.Total)
	}
}
