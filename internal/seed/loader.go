// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package seed populates a library from a YAML file at startup.
//
// The file holds a single "movies" list of drafts, each with optional
// reviews:
//
//	movies:
//	  - title: Interstellar
//	    year: 2014
//	    genre: Ciencia Ficción
//	    platforms: [Netflix, HBO]
//	    reviews:
//	      - author: ana
//	        rating: 9
//	        comment: Emocionante
//
// Drafts go through the normal publish path, so ids and ratings follow the
// same rules as movies added at runtime. Invalid entries are logged and
// skipped.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/cineresenas/internal/logging"
	"github.com/tomtom215/cineresenas/internal/models"
	"github.com/tomtom215/cineresenas/internal/validation"
)

// Publisher accepts movie drafts.
type Publisher interface {
	AddMovie(ctx context.Context, draft models.MovieDraft) (models.Movie, error)
}

// Result summarizes a seed run.
type Result struct {
	Loaded  int
	Skipped int
}

// document is the seed file layout.
type document struct {
	Movies []models.MovieDraft `koanf:"movies"`
}

// Read parses path into drafts without publishing them.
func Read(path string) ([]models.MovieDraft, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var doc document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	return doc.Movies, nil
}

// Load publishes every draft in path. Drafts rejected by validation are
// skipped. Any other publish error stops the run.
func Load(ctx context.Context, path string, pub Publisher) (Result, error) {
	drafts, err := Read(path)
	if err != nil {
		return Result{}, err
	}
	return Apply(ctx, drafts, pub)
}

// Apply publishes drafts in order.
func Apply(ctx context.Context, drafts []models.MovieDraft, pub Publisher) (Result, error) {
	logger := logging.WithComponent("seed")
	var res Result

	for i := range drafts {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		movie, err := pub.AddMovie(ctx, drafts[i])
		switch {
		case err == nil:
			res.Loaded++
			logger.Debug().Str("movie_id", movie.ID).Str("title", movie.Title).Msg("Seeded movie")
		case errors.Is(err, validation.ErrInvalid):
			res.Skipped++
			logger.Warn().Err(err).Int("index", i).Str("title", drafts[i].Title).Msg("Skipping invalid seed entry")
		default:
			return res, fmt.Errorf("seed entry %d (%s): %w", i, drafts[i].Title, err)
		}
	}

	logger.Info().Int("loaded", res.Loaded).Int("skipped", res.Skipped).Msg("Seed data loaded")
	return res, nil
}
