// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/tomtom215/cineresenas/internal/logging"
	"github.com/tomtom215/cineresenas/internal/models"
	"github.com/tomtom215/cineresenas/internal/validation"
)

// Enumerations are the closed genre and platform sets accepted by the store.
type Enumerations struct {
	Genres    []models.Genre
	Platforms []models.Platform
}

// DefaultEnumerations returns the genres and platforms offered by the catalog UI.
func DefaultEnumerations() Enumerations {
	return Enumerations{
		Genres: []models.Genre{
			"Acción", "Drama", "Ciencia Ficción", "Comedia", "Terror", "Romance",
		},
		Platforms: []models.Platform{
			"Netflix", "Prime Video", "HBO",
		},
	}
}

// HasGenre reports whether g belongs to the genre enumeration.
func (e Enumerations) HasGenre(g models.Genre) bool {
	for _, have := range e.Genres {
		if have == g {
			return true
		}
	}
	return false
}

// HasPlatform reports whether p belongs to the platform enumeration.
func (e Enumerations) HasPlatform(p models.Platform) bool {
	for _, have := range e.Platforms {
		if have == p {
			return true
		}
	}
	return false
}

// entry pairs a movie with the counter its review ids are drawn from.
type entry struct {
	movie      models.Movie
	lastReview uint64
}

// Store is the catalog: an insertion-ordered list of movies.
//
// Ids come from a store-owned counter and are never reused, independent of
// catalog size. Readers receive copies and never observe a half-applied
// mutation.
type Store struct {
	mu      sync.RWMutex
	entries []*entry
	index   map[string]*entry
	lastID  uint64
	version uint64

	enums   Enumerations
	reviews *ReviewRegistry
}

// NewStore creates an empty catalog accepting the given enumerations.
func NewStore(enums Enumerations, reviews *ReviewRegistry) *Store {
	if reviews == nil {
		reviews = NewReviewRegistry()
	}
	return &Store{
		index:   make(map[string]*entry),
		enums:   enums,
		reviews: reviews,
	}
}

// Enumerations returns the accepted genre and platform sets.
func (s *Store) Enumerations() Enumerations {
	return Enumerations{
		Genres:    append([]models.Genre(nil), s.enums.Genres...),
		Platforms: append([]models.Platform(nil), s.enums.Platforms...),
	}
}

// AddMovie validates draft and appends it as a new movie.
// On a validation error the catalog is unchanged.
func (s *Store) AddMovie(ctx context.Context, draft models.MovieDraft) (models.Movie, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Platforms = dedupePlatforms(draft.Platforms)

	if err := s.validateDraft(draft); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("title", draft.Title).Msg("Movie draft rejected")
		return models.Movie{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := &entry{movie: models.Movie{
		Title:       draft.Title,
		Year:        draft.Year,
		Genre:       draft.Genre,
		Description: strings.TrimSpace(draft.Description),
		Poster:      draft.Poster,
		Platforms:   draft.Platforms,
		Reviews:     make([]models.Review, 0, len(draft.Reviews)),
	}}

	for i := range draft.Reviews {
		review, err := s.reviews.Create(e.lastReview+1, draft.Reviews[i])
		if err != nil {
			return models.Movie{}, err
		}
		e.lastReview++
		e.movie.Reviews = append(e.movie.Reviews, review)
	}
	e.movie.Rating = Aggregate(e.movie.Reviews)

	s.lastID++
	e.movie.ID = strconv.FormatUint(s.lastID, 10)
	s.entries = append(s.entries, e)
	s.index[e.movie.ID] = e
	s.version++

	logging.Ctx(ctx).Debug().
		Str("movie_id", e.movie.ID).
		Str("title", e.movie.Title).
		Int("reviews", len(e.movie.Reviews)).
		Msg("Movie added")

	return e.movie.Clone(), nil
}

// AddReview appends a review to the movie and recomputes its rating in the
// same critical section. Returns ErrNotFound for an unknown id.
func (s *Store) AddReview(ctx context.Context, movieID, author string, rating float64, comment string) (models.Movie, error) {
	draft := models.ReviewDraft{Author: author, Rating: rating, Comment: comment}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.index[movieID]
	if !ok {
		return models.Movie{}, notFound(movieID)
	}

	review, err := s.reviews.Create(e.lastReview+1, draft)
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("movie_id", movieID).Msg("Review rejected")
		return models.Movie{}, err
	}

	// Build the new slice before publishing so a failed step leaves e intact.
	reviews := make([]models.Review, len(e.movie.Reviews), len(e.movie.Reviews)+1)
	copy(reviews, e.movie.Reviews)
	reviews = append(reviews, review)

	e.lastReview++
	e.movie.Reviews = reviews
	e.movie.Rating = Aggregate(reviews)
	s.version++

	logging.Ctx(ctx).Debug().
		Str("movie_id", movieID).
		Str("review_id", review.ID).
		Float64("rating", e.movie.Rating).
		Msg("Review added")

	return e.movie.Clone(), nil
}

// GetAll returns every movie in insertion order.
func (s *Store) GetAll() []models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Movie, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.movie.Clone()
	}
	return out
}

// GetByID returns the movie with the given id or ErrNotFound.
func (s *Store) GetByID(id string) (models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.index[id]
	if !ok {
		return models.Movie{}, notFound(id)
	}
	return e.movie.Clone(), nil
}

// Len returns the number of published movies.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Version changes on every successful mutation.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) validateDraft(draft models.MovieDraft) error {
	verr := validation.ValidateStruct(draft)

	if draft.Genre != "" && !s.enums.HasGenre(draft.Genre) {
		verr = verr.Merge(validation.NewRequestValidationError(validation.NewFieldError(
			"genre", "oneof", joinGenres(s.enums.Genres), draft.Genre,
			fmt.Sprintf("genre must be one of: %s", joinGenres(s.enums.Genres)),
		)))
	}
	for _, p := range draft.Platforms {
		if !s.enums.HasPlatform(p) {
			verr = verr.Merge(validation.NewRequestValidationError(validation.NewFieldError(
				"platforms", "oneof", joinPlatforms(s.enums.Platforms), p,
				fmt.Sprintf("platform %q must be one of: %s", p, joinPlatforms(s.enums.Platforms)),
			)))
		}
	}

	if verr == nil {
		return nil
	}
	return verr
}

// dedupePlatforms collapses duplicates, keeping first-seen order.
func dedupePlatforms(in []models.Platform) []models.Platform {
	seen := make(map[models.Platform]struct{}, len(in))
	out := make([]models.Platform, 0, len(in))
	for _, p := range in {
		p = models.Platform(strings.TrimSpace(string(p)))
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func joinGenres(gs []models.Genre) string {
	parts := make([]string, len(gs))
	for i, g := range gs {
		parts[i] = string(g)
	}
	return strings.Join(parts, ", ")
}

func joinPlatforms(ps []models.Platform) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}
