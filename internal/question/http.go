package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperr "github.com/triviahub/trivia-api/pkg/http/errors"
)

// HTTPHandler exposes the question and category REST endpoints.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

type createRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// HandleCategories serves GET /categories.
func (h *HTTPHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperr.RespondMethodNotAllowed(w)
		return
	}

	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("category list failed")
		httperr.RespondServerError(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":    true,
		"categories": cats,
	})
}

// HandleCategoryByID serves GET /categories/{id}.
func (h *HTTPHandler) HandleCategoryByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperr.RespondMethodNotAllowed(w)
		return
	}
	id, ok := pathID(r)
	if !ok {
		httperr.RespondNotFound(w)
		return
	}

	cat, err := h.svc.CategoryByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperr.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("id", id).Msg("category fetch failed")
		httperr.RespondServerError(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":  true,
		"category": cat,
	})
}

// HandleCategoryQuestions serves GET /categories/{id}/questions?page=N.
// An id missing from the category table is a 404, matching the sibling
// category lookup endpoint.
func (h *HTTPHandler) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperr.RespondMethodNotAllowed(w)
		return
	}
	id, ok := pathID(r)
	if !ok {
		httperr.RespondNotFound(w)
		return
	}

	page, err := h.svc.CategoryPage(r.Context(), id, pageParam(r))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperr.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("category", id).Msg("category questions failed")
		httperr.RespondServerError(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.Total,
		"current_category": id,
	})
}

// HandleQuestions serves GET (paginated list) and POST (create) on /questions.
func (h *HTTPHandler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.createQuestion(w, r)
	default:
		httperr.RespondMethodNotAllowed(w)
	}
}

func (h *HTTPHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.svc.Page(ctx, pageParam(r))
	if err != nil {
		h.logger.Error().Err(err).Msg("question list failed")
		httperr.RespondServerError(w)
		return
	}
	cats, err := h.svc.Categories(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("category list failed")
		httperr.RespondServerError(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.Total,
		"current_category": nil,
		"categories":       cats,
	})
}

func (h *HTTPHandler) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.RespondBadRequest(w)
		return
	}

	id, err := h.svc.Create(r.Context(), Question{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuestion):
			httperr.RespondBadRequest(w)
		case errors.Is(err, ErrDuplicate):
			httperr.RespondMessage(w, http.StatusUnprocessableEntity, "question already exists")
		default:
			h.logger.Error().Err(err).Msg("question create failed")
			httperr.RespondUnprocessable(w)
		}
		return
	}

	writeJSON(w, map[string]any{
		"success": true,
		"created": id,
	})
}

// HandleQuestionByID serves GET and DELETE on /questions/{id}.
func (h *HTTPHandler) HandleQuestionByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperr.RespondNotFound(w)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getQuestion(w, r, id)
	case http.MethodDelete:
		h.deleteQuestion(w, r, id)
	default:
		httperr.RespondMethodNotAllowed(w)
	}
}

func (h *HTTPHandler) getQuestion(w http.ResponseWriter, r *http.Request, id int) {
	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperr.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("id", id).Msg("question fetch failed")
		httperr.RespondServerError(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":  true,
		"question": q,
	})
}

func (h *HTTPHandler) deleteQuestion(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httperr.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("id", id).Msg("question delete failed")
		httperr.RespondUnprocessable(w)
		return
	}

	writeJSON(w, map[string]any{"success": true})
}

// HandleSearch serves POST /questions/search.
func (h *HTTPHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperr.RespondMethodNotAllowed(w)
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.RespondBadRequest(w)
		return
	}

	matched, err := h.svc.Search(r.Context(), req.SearchTerm)
	if err != nil {
		h.logger.Error().Err(err).Msg("question search failed")
		httperr.RespondUnprocessable(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":          true,
		"questions":        matched,
		"total_questions":  len(matched),
		"current_category": nil,
	})
}

func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
