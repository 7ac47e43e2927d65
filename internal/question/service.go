package question

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Store is the durable question store. Implementations must return slices
// ordered by id ascending and map "no such row" onto ErrNotFound.
type Store interface {
	List(ctx context.Context) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	Get(ctx context.Context, id int) (*Question, error)
	Insert(ctx context.Context, q Question) (int, error)
	Delete(ctx context.Context, id int) error
}

// CategoryStore reads the category table.
type CategoryStore interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int) (*Category, error)
}

// CategoryCache caches the category list (implemented by the Redis-backed
// Cache). Get returns nil, nil on a miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
}

// ServiceOptions tune pagination and search behavior.
type ServiceOptions struct {
	// PageSize is the fixed page size for list endpoints; zero means
	// DefaultPageSize.
	PageSize int

	// EmptyTermMatchesAll makes an empty search term return every question,
	// mirroring ILIKE '%%'. When false an empty term matches nothing.
	EmptyTermMatchesAll bool
}

// Service orchestrates question selection: pagination, category filtering,
// text search, CRUD, and the candidate pools consumed by quiz play.
type Service struct {
	store      Store
	categories CategoryStore
	cache      CategoryCache
	opts       ServiceOptions
	logger     zerolog.Logger
}

func NewService(store Store, categories CategoryStore, cache CategoryCache, opts ServiceOptions, logger zerolog.Logger) *Service {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	return &Service{
		store:      store,
		categories: categories,
		cache:      cache,
		opts:       opts,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// Categories returns all categories, read-through the cache when one is
// configured. Cache failures are soft: logged, then served from the store.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, cats); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return cats, nil
}

// CategoryByID returns one category or ErrNotFound.
func (s *Service) CategoryByID(ctx context.Context, id int) (*Category, error) {
	return s.categories.Get(ctx, id)
}

// Page returns the requested page over the full id-ordered question set.
func (s *Service) Page(ctx context.Context, page int) (Page, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list questions: %w", err)
	}
	return Paginate(all, page, s.opts.PageSize), nil
}

// CategoryPage returns the requested page of one category's questions.
// A category id absent from the category table yields ErrNotFound; the
// category existing but holding no questions yields an empty page.
func (s *Service) CategoryPage(ctx context.Context, categoryID, page int) (Page, error) {
	if _, err := s.categories.Get(ctx, categoryID); err != nil {
		return Page{}, err
	}
	matched, err := s.store.ListByCategory(ctx, categoryID)
	if err != nil {
		return Page{}, fmt.Errorf("list questions by category: %w", err)
	}
	return Paginate(matched, page, s.opts.PageSize), nil
}

// Search returns every question whose text contains term, case-insensitive,
// ordered by id. The empty-term policy comes from ServiceOptions.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return SearchByText(all, term, s.opts.EmptyTermMatchesAll), nil
}

// Get returns one question or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int) (*Question, error) {
	return s.store.Get(ctx, id)
}

// Create validates and inserts a question, returning the store-assigned id.
// Empty text fields, a non-positive category id, or an out-of-range
// difficulty yield ErrInvalidQuestion. A duplicate question text surfaces
// the store's ErrDuplicate.
func (s *Service) Create(ctx context.Context, q Question) (int, error) {
	if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.Answer) == "" {
		return 0, fmt.Errorf("%w: question and answer are required", ErrInvalidQuestion)
	}
	if q.CategoryID <= 0 {
		return 0, fmt.Errorf("%w: category is required", ErrInvalidQuestion)
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return 0, fmt.Errorf("%w: difficulty must be between 1 and 5", ErrInvalidQuestion)
	}

	id, err := s.store.Insert(ctx, q)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int("id", id).Int("category", q.CategoryID).Msg("question created")
	return id, nil
}

// Delete removes a question by id. Deleting an absent id is ErrNotFound,
// never a no-op.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("id", id).Msg("question deleted")
	return nil
}

// Pool returns the quiz candidate pool: every question when categoryID is
// zero, otherwise the category's questions. An unknown category id is a
// valid empty pool here, not an error; the quiz engine reports exhaustion.
func (s *Service) Pool(ctx context.Context, categoryID int) ([]Question, error) {
	if categoryID == 0 {
		return s.store.List(ctx)
	}
	return s.store.ListByCategory(ctx, categoryID)
}
