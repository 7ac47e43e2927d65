package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/config"
	"github.com/triviahub/trivia-api/internal/question"
	"github.com/triviahub/trivia-api/internal/quiz"
	httperr "github.com/triviahub/trivia-api/pkg/http/errors"
)

// NewHTTPServer wires the trivia routes plus the base health and metrics
// endpoints. Method mismatches are handled inside the handlers so 405
// responses carry the JSON error envelope.
func NewHTTPServer(
	cfg *config.App,
	logger zerolog.Logger,
	pool *pgxpool.Pool,
	rdb *redis.Client,
	questions *question.HTTPHandler,
	quizzes *quiz.HTTPHandler,
) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, rdb); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			httperr.Respond(w, http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/categories", questions.HandleCategories)
	mux.HandleFunc("/categories/{id}", questions.HandleCategoryByID)
	mux.HandleFunc("/categories/{id}/questions", questions.HandleCategoryQuestions)
	mux.HandleFunc("/questions", questions.HandleQuestions)
	mux.HandleFunc("/questions/search", questions.HandleSearch)
	mux.HandleFunc("/questions/{id}", questions.HandleQuestionByID)
	mux.HandleFunc("/quizzes", quizzes.HandlePlay)

	// Unmatched paths get the JSON 404 envelope instead of the mux default.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperr.RespondNotFound(w)
	})

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: corsMiddleware.Handler(RequestLogger(logger)(mux)),
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, rdb *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return rdb.Ping(ctx).Err()
}
