// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package library is the owning object for all catalog state.
//
// A Library is created once with New, handed to the presentation layer, and
// disposed with Close. It composes the catalog store, the favorites registry,
// the session manager, and the view state, and serializes every write intent
// behind one mutex so compound updates (logout clearing favorites, a review
// and its rating) are observed atomically.
//
//	lib, err := library.New(cfg, library.WithPublisher(bus))
//	defer lib.Close()
//
//	movie, err := lib.AddMovie(ctx, draft)
//	_, err = lib.AddReview(ctx, movie.ID, "", 8, "Muy buena")
//	v := lib.View()
package library

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/cineresenas/internal/access"
	"github.com/tomtom215/cineresenas/internal/catalog"
	"github.com/tomtom215/cineresenas/internal/events"
	"github.com/tomtom215/cineresenas/internal/favorites"
	"github.com/tomtom215/cineresenas/internal/logging"
	"github.com/tomtom215/cineresenas/internal/metrics"
	"github.com/tomtom215/cineresenas/internal/models"
	"github.com/tomtom215/cineresenas/internal/session"
	"github.com/tomtom215/cineresenas/internal/validation"
	"github.com/tomtom215/cineresenas/internal/view"
)

var (
	// ErrClosed is returned by write intents after Close.
	ErrClosed = errors.New("library is closed")

	// ErrUnauthenticated is returned when an intent needs a logged-in session.
	ErrUnauthenticated = errors.New("authentication required")
)

// Config holds the settings New needs.
type Config struct {
	Enumerations    catalog.Enumerations
	Locale          string
	AnonymousAuthor string
	Labels          view.Labels
	ViewCacheSize   int
}

// DefaultConfig returns the Spanish catalog defaults.
func DefaultConfig() Config {
	return Config{
		Enumerations:    catalog.DefaultEnumerations(),
		Locale:          catalog.DefaultLocale,
		AnonymousAuthor: catalog.DefaultAnonymousAuthor,
		Labels:          view.DefaultLabels(),
		ViewCacheSize:   64,
	}
}

// Option customizes a Library.
type Option func(*Library)

// WithPublisher publishes a domain event after every successful write.
func WithPublisher(p events.Publisher) Option {
	return func(l *Library) { l.events = p }
}

// WithPolicy replaces the built-in access policy.
func WithPolicy(e *access.Enforcer) Option {
	return func(l *Library) { l.policy = e }
}

// WithClock replaces time.Now for review dates.
func WithClock(now func() time.Time) Option {
	return func(l *Library) { l.clock = now }
}

// Library owns the catalog, favorites, session, and view state.
type Library struct {
	mu     sync.Mutex
	closed bool
	state  models.ViewState

	catalog   *catalog.Store
	favorites *favorites.Registry
	session   *session.Manager
	memo      *view.Memo
	labels    view.Labels

	policy *access.Enforcer
	events events.Publisher
	clock  func() time.Time
}

// New creates a Library with an empty catalog, anonymous session, and the
// "all" category selected.
func New(cfg Config, opts ...Option) (*Library, error) {
	l := &Library{
		state:  models.DefaultViewState(),
		labels: cfg.Labels,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.policy == nil {
		p, err := access.NewEnforcer("")
		if err != nil {
			return nil, fmt.Errorf("load access policy: %w", err)
		}
		l.policy = p
	}

	reviewOpts := []catalog.ReviewOption{
		catalog.WithClock(l.clock),
		catalog.WithAnonymousAuthor(cfg.AnonymousAuthor),
	}
	if cfg.Locale != "" {
		reviewOpts = append(reviewOpts, catalog.WithLocale(cfg.Locale))
	}

	l.catalog = catalog.NewStore(cfg.Enumerations, catalog.NewReviewRegistry(reviewOpts...))
	l.favorites = favorites.NewRegistry()
	l.session = session.NewManager(l.favorites)
	l.memo = view.NewMemo(cfg.ViewCacheSize)
	return l, nil
}

// Close releases the library. Later write intents fail with ErrClosed.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}

// begin locks the library for a write intent on behalf of the current session.
// On success the caller must unlock l.mu.
func (l *Library) begin(obj, act string) (models.Session, error) {
	return l.beginAs(obj, act, false)
}

func (l *Library) beginAs(obj, act string, member bool) (models.Session, error) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return models.Session{}, ErrClosed
	}

	s := l.session.Current()
	if member && s.Anonymous() {
		l.mu.Unlock()
		return models.Session{}, ErrUnauthenticated
	}
	if err := l.policy.Authorize(s, obj, act); err != nil {
		l.mu.Unlock()
		if errors.Is(err, access.ErrForbidden) {
			metrics.AccessDenied.WithLabelValues(access.RoleOf(s), obj, act).Inc()
		}
		return models.Session{}, err
	}
	return s, nil
}

func (l *Library) publish(ctx context.Context, evt events.Event) {
	if l.events == nil {
		return
	}
	if err := l.events.Publish(ctx, evt); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("type", string(evt.Type)).Msg("Failed to publish event")
	}
}

// Movies returns every movie in insertion order.
func (l *Library) Movies() []models.Movie {
	return l.catalog.GetAll()
}

// Movie looks up a movie by id. Returns catalog.ErrNotFound when absent.
func (l *Library) Movie(id string) (models.Movie, error) {
	return l.catalog.GetByID(id)
}

// Len returns the number of published movies.
func (l *Library) Len() int {
	return l.catalog.Len()
}

// Genres returns the accepted genre enumeration.
func (l *Library) Genres() []models.Genre {
	return l.catalog.Enumerations().Genres
}

// Platforms returns the accepted platform enumeration.
func (l *Library) Platforms() []models.Platform {
	return l.catalog.Enumerations().Platforms
}

// AddMovie publishes draft as a new movie.
func (l *Library) AddMovie(ctx context.Context, draft models.MovieDraft) (models.Movie, error) {
	if _, err := l.begin(access.ObjMovies, access.ActCreate); err != nil {
		metrics.RecordMutation("add_movie", resultOf(err))
		return models.Movie{}, err
	}
	movie, err := l.catalog.AddMovie(ctx, draft)
	size := l.catalog.Len()
	l.mu.Unlock()

	metrics.RecordMutation("add_movie", resultOf(err))
	if err != nil {
		return models.Movie{}, err
	}
	metrics.CatalogMovies.Set(float64(size))

	logging.Ctx(ctx).Info().Str("movie_id", movie.ID).Str("title", movie.Title).Msg("Movie published")
	l.publish(ctx, events.Event{Type: events.TypeMovieAdded, MovieID: movie.ID, Rating: movie.Rating})
	return movie, nil
}

// AddReview appends a review to a movie. A blank author is replaced by the
// session's display name when authenticated.
func (l *Library) AddReview(ctx context.Context, movieID, author string, rating float64, comment string) (models.Movie, error) {
	s, err := l.begin(access.ObjReviews, access.ActCreate)
	if err != nil {
		metrics.RecordMutation("add_review", resultOf(err))
		return models.Movie{}, err
	}
	if strings.TrimSpace(author) == "" && s.Authenticated {
		author = s.DisplayName
	}
	movie, err := l.catalog.AddReview(ctx, movieID, author, rating, comment)
	l.mu.Unlock()

	metrics.RecordMutation("add_review", resultOf(err))
	if err != nil {
		return models.Movie{}, err
	}
	metrics.RecordReview(rating)

	review := movie.Reviews[len(movie.Reviews)-1]
	logging.Ctx(ctx).Info().
		Str("movie_id", movie.ID).
		Str("review_id", review.ID).
		Float64("rating", movie.Rating).
		Msg("Review added")
	l.publish(ctx, events.Event{
		Type:     events.TypeReviewAdded,
		MovieID:  movie.ID,
		ReviewID: review.ID,
		Rating:   movie.Rating,
	})
	return movie, nil
}

// ToggleFavorite flips membership of movieID and returns the new membership.
// Anonymous sessions get ErrUnauthenticated.
func (l *Library) ToggleFavorite(ctx context.Context, movieID string) (bool, error) {
	if _, err := l.beginAs(access.ObjFavorites, access.ActToggle, true); err != nil {
		return false, err
	}
	added := l.favorites.Toggle(movieID)
	size := l.favorites.Len()
	l.mu.Unlock()

	metrics.RecordFavoriteToggle(added, size)
	logging.Ctx(ctx).Debug().Str("movie_id", movieID).Bool("favorite", added).Msg("Favorite toggled")
	l.publish(ctx, events.Event{Type: events.TypeFavoriteToggled, MovieID: movieID, Favorite: &added})
	return added, nil
}

// IsFavorite reports whether movieID is a favorite.
func (l *Library) IsFavorite(movieID string) bool {
	return l.favorites.IsFavorite(movieID)
}

// Favorites returns the favorite ids, sorted.
func (l *Library) Favorites() []string {
	return l.favorites.All()
}

// Session returns the current session.
func (l *Library) Session() models.Session {
	return l.session.Current()
}

// Login authenticates without verifying secret. Switching to another user
// clears favorites.
func (l *Library) Login(ctx context.Context, identifier, secret string) (models.Session, error) {
	if _, err := l.begin(access.ObjSession, access.ActWrite); err != nil {
		return models.Session{}, err
	}
	s, err := l.session.Login(identifier, secret)
	size := l.favorites.Len()
	l.mu.Unlock()
	if err != nil {
		return models.Session{}, err
	}

	metrics.SessionTransitions.WithLabelValues("login").Inc()
	metrics.FavoritesCount.Set(float64(size))
	logging.Ctx(ctx).Info().Str("display_name", s.DisplayName).Msg("Session started")
	l.publish(ctx, events.Event{Type: events.TypeSessionChanged, Session: &s})
	return s, nil
}

// Register authenticates with an explicit display name.
func (l *Library) Register(ctx context.Context, displayName, identifier, secret string) (models.Session, error) {
	if _, err := l.begin(access.ObjSession, access.ActWrite); err != nil {
		return models.Session{}, err
	}
	s, err := l.session.Register(displayName, identifier, secret)
	size := l.favorites.Len()
	l.mu.Unlock()
	if err != nil {
		return models.Session{}, err
	}

	metrics.SessionTransitions.WithLabelValues("register").Inc()
	metrics.FavoritesCount.Set(float64(size))
	logging.Ctx(ctx).Info().Str("display_name", s.DisplayName).Msg("Account registered")
	l.publish(ctx, events.Event{Type: events.TypeSessionChanged, Session: &s})
	return s, nil
}

// Logout returns to the anonymous session and clears favorites in the same step.
func (l *Library) Logout(ctx context.Context) (models.Session, error) {
	if _, err := l.begin(access.ObjSession, access.ActWrite); err != nil {
		return models.Session{}, err
	}
	s := l.session.Logout()
	l.mu.Unlock()

	metrics.SessionTransitions.WithLabelValues("logout").Inc()
	metrics.FavoritesCount.Set(0)
	logging.Ctx(ctx).Info().Msg("Session ended")
	l.publish(ctx, events.Event{Type: events.TypeSessionChanged, Session: &s})
	return s, nil
}

// ViewState returns the current selection.
func (l *Library) ViewState() models.ViewState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// SetCategory selects a genre or models.CategoryAll.
// The favorites flag is left as is.
func (l *Library) SetCategory(ctx context.Context, category string) (models.ViewState, error) {
	if _, err := l.begin(access.ObjView, access.ActWrite); err != nil {
		return models.ViewState{}, err
	}
	if category != models.CategoryAll && !l.catalog.Enumerations().HasGenre(models.Genre(category)) {
		l.mu.Unlock()
		return models.ViewState{}, validation.NewRequestValidationError(validation.NewFieldError(
			"category", "oneof", "", category,
			fmt.Sprintf("category %q is neither %q nor a known genre", category, models.CategoryAll),
		))
	}
	l.state.Category = category
	st := l.state
	l.mu.Unlock()

	l.publish(ctx, events.Event{Type: events.TypeViewChanged, View: &st})
	return st, nil
}

// SetShowingFavorites toggles the favorites-only projection.
func (l *Library) SetShowingFavorites(ctx context.Context, show bool) (models.ViewState, error) {
	if _, err := l.begin(access.ObjView, access.ActWrite); err != nil {
		return models.ViewState{}, err
	}
	l.state.ShowingFavorites = show
	st := l.state
	l.mu.Unlock()

	l.publish(ctx, events.Event{Type: events.TypeViewChanged, View: &st})
	return st, nil
}

// View returns the visible movies and heading for the current selection.
// The projection is recomputed only when the catalog, the favorites, or the
// selection changed since it was last computed.
func (l *Library) View() models.View {
	l.mu.Lock()
	defer l.mu.Unlock()

	movies, hit := l.memo.Select(view.Inputs{
		CatalogVersion:   l.catalog.Version(),
		FavoritesVersion: l.favorites.Version(),
		State:            l.state,
		Movies:           l.catalog.GetAll,
		IsFavorite:       l.favorites.IsFavorite,
	})
	metrics.RecordViewCache(hit)
	stats := l.memo.Stats()
	metrics.RecordViewCacheStats(stats.Size, stats.Evictions, stats.HitRate())

	return models.View{
		Title:  view.Title(l.state, l.labels),
		State:  l.state,
		Movies: movies,
	}
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, validation.ErrInvalid):
		return metrics.ResultInvalid
	case errors.Is(err, catalog.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, access.ErrForbidden), errors.Is(err, ErrUnauthenticated):
		return metrics.ResultDenied
	default:
		return metrics.ResultError
	}
}
