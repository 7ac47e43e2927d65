package quiz

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/question"
	httperr "github.com/triviahub/trivia-api/pkg/http/errors"
)

// PoolProvider supplies the candidate pool for a quiz round: all questions
// when categoryID is zero, otherwise one category's questions.
type PoolProvider interface {
	Pool(ctx context.Context, categoryID int) ([]question.Question, error)
}

// HTTPHandler exposes POST /quizzes.
type HTTPHandler struct {
	pools  PoolProvider
	picker *Picker
	logger zerolog.Logger
}

func NewHTTPHandler(pools PoolProvider, picker *Picker, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		pools:  pools,
		picker: picker,
		logger: logger.With().Str("component", "quiz_http").Logger(),
	}
}

type playRequest struct {
	PreviousQuestions []int `json:"previous_questions"`
	QuizCategory      *struct {
		ID   int    `json:"id"`
		Type string `json:"type"`
	} `json:"quiz_category"`
}

// HandlePlay picks the next unseen question for a quiz round. The client
// owns the session: it echoes previous_questions back, grown by each
// question it was served. Exhaustion is signalled with a null question,
// not an error status.
func (h *HTTPHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperr.RespondMethodNotAllowed(w)
		return
	}

	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuizCategory == nil {
		httperr.RespondServerError(w)
		return
	}

	pool, err := h.pools.Pool(r.Context(), req.QuizCategory.ID)
	if err != nil {
		h.logger.Error().Err(err).Int("category", req.QuizCategory.ID).Msg("quiz pool fetch failed")
		httperr.RespondServerError(w)
		return
	}

	next, state := h.picker.Next(pool, req.PreviousQuestions)
	if state == StateExhausted {
		h.logger.Debug().Int("category", req.QuizCategory.ID).Msg("quiz pool exhausted")
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"success":  true,
		"question": next,
	}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
