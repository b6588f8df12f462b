// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/cineresenas/internal/catalog"
	"github.com/tomtom215/cineresenas/internal/models"
)

const sampleSeed = `
movies:
  - title: Interstellar
    year: 2014
    genre: Ciencia Ficción
    platforms: [Netflix, HBO]
    reviews:
      - author: ana
        rating: 8
        comment: Emocionante
      - rating: 10
        comment: Obra maestra
  - title: ""
    year: 2000
    genre: Drama
    platforms: [Netflix]
  - title: Amélie
    year: 2001
    genre: Romance
    platforms: [Prime Video]
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead(t *testing.T) {
	drafts, err := Read(writeSeed(t, sampleSeed))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(drafts) != 3 {
		t.Fatalf("len(drafts) = %d, want 3", len(drafts))
	}
	first := drafts[0]
	if first.Title != "Interstellar" || first.Year != 2014 || first.Genre != "Ciencia Ficción" {
		t.Errorf("drafts[0] = %+v", first)
	}
	if len(first.Platforms) != 2 || first.Platforms[1] != "HBO" {
		t.Errorf("platforms = %v", first.Platforms)
	}
	if len(first.Reviews) != 2 || first.Reviews[1].Rating != 10 {
		t.Errorf("reviews = %+v", first.Reviews)
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_SkipsInvalidEntries(t *testing.T) {
	store := catalog.NewStore(catalog.DefaultEnumerations(), nil)

	res, err := Load(context.Background(), writeSeed(t, sampleSeed), store)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Loaded != 2 || res.Skipped != 1 {
		t.Errorf("Result = %+v, want 2 loaded 1 skipped", res)
	}

	movies := store.GetAll()
	if movies[0].Title != "Interstellar" || movies[0].Rating != 9.0 {
		t.Errorf("movies[0] = %+v", movies[0])
	}
	if movies[0].Reviews[1].Author != catalog.DefaultAnonymousAuthor {
		t.Errorf("anonymous author = %q", movies[0].Reviews[1].Author)
	}
	if movies[1].ID != "2" {
		t.Errorf("skipped entries must not consume ids: %q", movies[1].ID)
	}
}

type failingPublisher struct{ calls int }

func (p *failingPublisher) AddMovie(context.Context, models.MovieDraft) (models.Movie, error) {
	p.calls++
	return models.Movie{}, errors.New("library is closed")
}

func TestApply_StopsOnUnexpectedError(t *testing.T) {
	pub := &failingPublisher{}
	drafts := []models.MovieDraft{{Title: "a"}, {Title: "b"}}

	if _, err := Apply(context.Background(), drafts, pub); err == nil {
		t.Fatal("expected error")
	}
	if pub.calls != 1 {
		t.Errorf("calls = %d, want 1", pub.calls)
	}
}

func TestApply_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Apply(ctx, []models.MovieDraft{{Title: "a"}}, &failingPublisher{})
	if !errors.Is(err, context.Canceled) || res.Loaded != 0 {
		t.Errorf("Apply() = %+v, %v", res, err)
	}
}

func TestLoad_ShippedSeedFile(t *testing.T) {
	store := catalog.NewStore(catalog.DefaultEnumerations(), nil)
	res, err := Load(context.Background(), filepath.Join("..", "..", "configs", "seed.yaml"), store)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Skipped != 0 || res.Loaded != store.Len() || res.Loaded == 0 {
		t.Errorf("Result = %+v, Len = %d", res, store.Len())
	}
}
