package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/triviahub/trivia-api/internal/question"
)

type stubPoolProvider struct {
	pools map[int][]question.Question
	err   error
}

func (s *stubPoolProvider) Pool(ctx context.Context, categoryID int) ([]question.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pools[categoryID], nil
}

func newQuizHandler(pools *stubPoolProvider) *HTTPHandler {
	picker := NewPicker(rand.NewSource(1))
	return NewHTTPHandler(pools, picker, zerolog.New(io.Discard))
}

func playRound(t *testing.T, h *HTTPHandler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandlePlay(rec, req)

	payload := map[string]any{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestHandlePlayReturnsUnseenQuestion(t *testing.T) {
	pools := &stubPoolProvider{pools: map[int][]question.Question{
		1: quizPool(1, 2, 3),
	}}
	h := newQuizHandler(pools)

	rec, payload := playRound(t, h, `{"previous_questions":[1,3],"quiz_category":{"id":1,"type":"Science"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	q := payload["question"].(map[string]any)
	assert.EqualValues(t, 2, q["id"])
}

func TestHandlePlayAllCategories(t *testing.T) {
	pools := &stubPoolProvider{pools: map[int][]question.Question{
		0: quizPool(7),
	}}
	h := newQuizHandler(pools)

	rec, payload := playRound(t, h, `{"previous_questions":[],"quiz_category":{"id":0,"type":"click"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	q := payload["question"].(map[string]any)
	assert.EqualValues(t, 7, q["id"])
}

func TestHandlePlayExhaustedPoolIsNullQuestion(t *testing.T) {
	pools := &stubPoolProvider{pools: map[int][]question.Question{
		1: quizPool(1, 2),
	}}
	h := newQuizHandler(pools)

	rec, payload := playRound(t, h, `{"previous_questions":[1,2],"quiz_category":{"id":1,"type":"Science"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Nil(t, payload["question"])
}

func TestHandlePlayUnknownCategoryIsEmptyPool(t *testing.T) {
	pools := &stubPoolProvider{pools: map[int][]question.Question{}}
	h := newQuizHandler(pools)

	rec, payload := playRound(t, h, `{"previous_questions":[],"quiz_category":{"id":99,"type":"Nope"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, payload["question"])
}

func TestHandlePlayMalformedPayload(t *testing.T) {
	h := newQuizHandler(&stubPoolProvider{})

	rec, payload := playRound(t, h, `{"previous_questions": "oops"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Server error.", payload["message"])
}

func TestHandlePlayMissingCategory(t *testing.T) {
	h := newQuizHandler(&stubPoolProvider{})

	rec, _ := playRound(t, h, `{"previous_questions":[]}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandlePlayPoolError(t *testing.T) {
	h := newQuizHandler(&stubPoolProvider{err: errors.New("db down")})

	rec, _ := playRound(t, h, `{"previous_questions":[],"quiz_category":{"id":1,"type":"Science"}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandlePlayWrongMethod(t *testing.T) {
	h := newQuizHandler(&stubPoolProvider{})

	req := httptest.NewRequest(http.MethodGet, "/quizzes", nil)
	rec := httptest.NewRecorder()
	h.HandlePlay(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
