// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cineresenas/internal/access"
	"github.com/tomtom215/cineresenas/internal/catalog"
	"github.com/tomtom215/cineresenas/internal/events"
	"github.com/tomtom215/cineresenas/internal/metrics"
	"github.com/tomtom215/cineresenas/internal/models"
	"github.com/tomtom215/cineresenas/internal/validation"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
}

func newTestLibrary(t *testing.T, opts ...Option) *Library {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	lib, err := New(DefaultConfig(), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func draft(title string, genre models.Genre) models.MovieDraft {
	return models.MovieDraft{
		Title:     title,
		Year:      2020,
		Genre:     genre,
		Platforms: []models.Platform{"Netflix"},
	}
}

func mustAdd(t *testing.T, lib *Library, d models.MovieDraft) models.Movie {
	t.Helper()
	m, err := lib.AddMovie(context.Background(), d)
	if err != nil {
		t.Fatalf("AddMovie(%q) error = %v", d.Title, err)
	}
	return m
}

func TestNew_InitialState(t *testing.T) {
	lib := newTestLibrary(t)

	if lib.Len() != 0 {
		t.Errorf("Len() = %d, want 0", lib.Len())
	}
	if !lib.Session().Anonymous() {
		t.Errorf("Session() = %+v, want anonymous", lib.Session())
	}
	if got := lib.ViewState(); got != models.DefaultViewState() {
		t.Errorf("ViewState() = %+v", got)
	}
	if len(lib.Favorites()) != 0 {
		t.Errorf("Favorites() = %v", lib.Favorites())
	}
	v := lib.View()
	if v.Title != "Todas las Películas" || len(v.Movies) != 0 {
		t.Errorf("View() = %+v", v)
	}
	if len(lib.Genres()) == 0 || len(lib.Platforms()) == 0 {
		t.Error("enumerations should not be empty")
	}
}

func TestLibrary_ScenarioA_SeedReviewsAggregate(t *testing.T) {
	lib := newTestLibrary(t)
	d := draft("Interstellar", "Ciencia Ficción")
	d.Reviews = []models.ReviewDraft{
		{Author: "ana", Rating: 8, Comment: "bien"},
		{Author: "luis", Rating: 10, Comment: "obra maestra"},
	}

	m := mustAdd(t, lib, d)
	if m.Rating != 9.0 {
		t.Errorf("Rating = %v, want 9.0", m.Rating)
	}
}

func TestLibrary_ScenarioB_ReviewRounding(t *testing.T) {
	lib := newTestLibrary(t)
	m := mustAdd(t, lib, draft("Dune", "Ciencia Ficción"))

	got, err := lib.AddReview(context.Background(), m.ID, "", 5.26, "ok")
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}
	if got.Rating != 5.3 {
		t.Errorf("Rating = %v, want 5.3", got.Rating)
	}
	if len(got.Reviews) != 1 {
		t.Fatalf("len(Reviews) = %d, want 1", len(got.Reviews))
	}
	if got.Reviews[0].Author != catalog.DefaultAnonymousAuthor {
		t.Errorf("Author = %q", got.Reviews[0].Author)
	}
}

func TestLibrary_ScenarioC_EmptyPlatforms(t *testing.T) {
	lib := newTestLibrary(t)
	mustAdd(t, lib, draft("Existing", "Drama"))

	d := draft("Nowhere", "Drama")
	d.Platforms = nil
	_, err := lib.AddMovie(context.Background(), d)
	if !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("AddMovie() error = %v, want validation error", err)
	}
	if lib.Len() != 1 {
		t.Errorf("Len() = %d, want 1", lib.Len())
	}
}

func TestLibrary_ScenarioD_FavoritesView(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()
	for i := 1; i <= 10; i++ {
		mustAdd(t, lib, draft("Movie "+strconv.Itoa(i), "Drama"))
	}
	if _, err := lib.Login(ctx, "ana@example.com", "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := lib.ToggleFavorite(ctx, "7"); err != nil {
		t.Fatal(err)
	}
	if _, err := lib.SetShowingFavorites(ctx, true); err != nil {
		t.Fatal(err)
	}

	v := lib.View()
	if len(v.Movies) != 1 || v.Movies[0].ID != "7" {
		t.Fatalf("View().Movies = %+v, want only id 7", v.Movies)
	}
	if v.Title != "Mis Favoritos" {
		t.Errorf("Title = %q", v.Title)
	}
}

func TestLibrary_ScenarioE_LoginLogout(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()
	m := mustAdd(t, lib, draft("Amélie", "Romance"))

	s, err := lib.Login(ctx, "ana@example.com", "anything")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !s.Authenticated || s.DisplayName != "ana" {
		t.Errorf("Login() = %+v", s)
	}
	if _, err := lib.ToggleFavorite(ctx, m.ID); err != nil {
		t.Fatal(err)
	}

	s, err = lib.Logout(ctx)
	if err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if !s.Anonymous() || !lib.Session().Anonymous() {
		t.Errorf("session after logout = %+v", lib.Session())
	}
	if len(lib.Favorites()) != 0 {
		t.Errorf("Favorites() = %v, want empty", lib.Favorites())
	}
}

func TestLibrary_LoginAsAnotherUserClearsFavorites(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()
	m := mustAdd(t, lib, draft("Amélie", "Romance"))

	if _, err := lib.Login(ctx, "ana@example.com", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := lib.ToggleFavorite(ctx, m.ID); err != nil {
		t.Fatal(err)
	}

	s, err := lib.Login(ctx, "bob@example.com", "")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if s.DisplayName != "bob" {
		t.Errorf("DisplayName = %q, want bob", s.DisplayName)
	}
	if got := lib.Favorites(); len(got) != 0 {
		t.Errorf("Favorites() after user switch = %v, want empty", got)
	}
	if lib.IsFavorite(m.ID) {
		t.Error("favorite of the previous user leaked to the new one")
	}
}

func TestLibrary_ToggleFavorite_RequiresLogin(t *testing.T) {
	lib := newTestLibrary(t)
	m := mustAdd(t, lib, draft("Heat", "Acción"))

	_, err := lib.ToggleFavorite(context.Background(), m.ID)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("ToggleFavorite() error = %v, want ErrUnauthenticated", err)
	}
	if lib.IsFavorite(m.ID) {
		t.Error("anonymous toggle must not change favorites")
	}
}

func TestLibrary_ToggleFavorite_IsInvolution(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()
	m := mustAdd(t, lib, draft("Heat", "Acción"))
	if _, err := lib.Register(ctx, "Ana María", "ana@example.com", "x"); err != nil {
		t.Fatal(err)
	}

	on, err := lib.ToggleFavorite(ctx, m.ID)
	if err != nil || !on {
		t.Fatalf("first toggle = %v, %v", on, err)
	}
	off, err := lib.ToggleFavorite(ctx, m.ID)
	if err != nil || off {
		t.Fatalf("second toggle = %v, %v", off, err)
	}
	if lib.IsFavorite(m.ID) {
		t.Error("double toggle should restore membership")
	}
}

func TestLibrary_AddReview_UsesDisplayName(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()
	m := mustAdd(t, lib, draft("Heat", "Acción"))
	if _, err := lib.Register(ctx, "Ana María", "ana@example.com", "x"); err != nil {
		t.Fatal(err)
	}

	got, err := lib.AddReview(ctx, m.ID, "  ", 7, "tensa")
	if err != nil {
		t.Fatal(err)
	}
	if got.Reviews[0].Author != "Ana María" {
		t.Errorf("Author = %q, want display name", got.Reviews[0].Author)
	}

	got, err = lib.AddReview(ctx, m.ID, "luis", 9, "genial")
	if err != nil {
		t.Fatal(err)
	}
	if got.Reviews[1].Author != "luis" {
		t.Errorf("explicit author replaced: %q", got.Reviews[1].Author)
	}
	if got.Rating != 8.0 {
		t.Errorf("Rating = %v, want 8.0", got.Rating)
	}
}

func TestLibrary_AddReview_Errors(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()
	m := mustAdd(t, lib, draft("Heat", "Acción"))

	if _, err := lib.AddReview(ctx, "404", "", 5, "x"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("unknown movie error = %v", err)
	}
	if _, err := lib.AddReview(ctx, m.ID, "", 11, "x"); !errors.Is(err, validation.ErrInvalid) {
		t.Errorf("out of range error = %v", err)
	}
	got, err := lib.Movie(m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Reviews) != 0 || got.Rating != catalog.Unrated {
		t.Errorf("failed reviews must leave the movie unchanged: %+v", got)
	}
}

func TestLibrary_SetCategory(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()
	mustAdd(t, lib, draft("Heat", "Acción"))
	mustAdd(t, lib, draft("Amélie", "Romance"))

	st, err := lib.SetCategory(ctx, "Romance")
	if err != nil {
		t.Fatalf("SetCategory() error = %v", err)
	}
	if st.Category != "Romance" {
		t.Errorf("state = %+v", st)
	}
	v := lib.View()
	if len(v.Movies) != 1 || v.Movies[0].Title != "Amélie" {
		t.Errorf("View().Movies = %+v", v.Movies)
	}

	if _, err := lib.SetCategory(ctx, "Jazz"); !errors.Is(err, validation.ErrInvalid) {
		t.Errorf("unknown genre error = %v", err)
	}
	if lib.ViewState().Category != "Romance" {
		t.Error("rejected category must not change the selection")
	}

	if _, err := lib.SetCategory(ctx, models.CategoryAll); err != nil {
		t.Fatal(err)
	}
	if n := len(lib.View().Movies); n != 2 {
		t.Errorf("len(View().Movies) = %d, want 2", n)
	}
}

func TestLibrary_ViewReflectsNewMovies(t *testing.T) {
	lib := newTestLibrary(t)
	mustAdd(t, lib, draft("Heat", "Acción"))
	if n := len(lib.View().Movies); n != 1 {
		t.Fatalf("len = %d", n)
	}
	mustAdd(t, lib, draft("Ronin", "Acción"))
	if n := len(lib.View().Movies); n != 2 {
		t.Errorf("stale view: len = %d, want 2", n)
	}
}

func TestLibrary_ViewPublishesCacheStats(t *testing.T) {
	lib := newTestLibrary(t)
	mustAdd(t, lib, draft("Heat", "Acción"))

	lib.View()
	lib.View()

	if got := testutil.ToFloat64(metrics.ViewCacheEntries); got != 1 {
		t.Errorf("view_cache_entries = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.ViewCacheHitRatio); got != 0.5 {
		t.Errorf("view_cache_hit_ratio = %v, want 0.5", got)
	}
}

func TestLibrary_PublishesEvents(t *testing.T) {
	pub := &recordingPublisher{}
	lib := newTestLibrary(t, WithPublisher(pub))
	ctx := context.Background()

	m := mustAdd(t, lib, draft("Heat", "Acción"))
	if _, err := lib.AddReview(ctx, m.ID, "", 8, "bien"); err != nil {
		t.Fatal(err)
	}
	if _, err := lib.Login(ctx, "ana", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := lib.ToggleFavorite(ctx, m.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := lib.SetShowingFavorites(ctx, true); err != nil {
		t.Fatal(err)
	}
	// rejected writes publish nothing
	_, _ = lib.AddMovie(ctx, models.MovieDraft{})

	want := []events.Type{
		events.TypeMovieAdded,
		events.TypeReviewAdded,
		events.TypeSessionChanged,
		events.TypeFavoriteToggled,
		events.TypeViewChanged,
	}
	got := pub.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLibrary_PublishFailureDoesNotFailWrite(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("bus closed")}
	lib := newTestLibrary(t, WithPublisher(pub))

	if _, err := lib.AddMovie(context.Background(), draft("Heat", "Acción")); err != nil {
		t.Fatalf("AddMovie() error = %v", err)
	}
	if lib.Len() != 1 {
		t.Errorf("Len() = %d", lib.Len())
	}
}

func TestLibrary_PolicyDenial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.csv")
	// members may toggle favorites; nobody may publish movies
	if err := writeFile(path, "p, member, favorites, toggle\n"); err != nil {
		t.Fatal(err)
	}
	policy, err := access.NewEnforcer(path)
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	lib := newTestLibrary(t, WithPolicy(policy))

	_, err = lib.AddMovie(context.Background(), draft("Heat", "Acción"))
	if !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("AddMovie() error = %v, want ErrForbidden", err)
	}
	if lib.Len() != 0 {
		t.Error("denied write changed the catalog")
	}
}

func TestLibrary_Close(t *testing.T) {
	lib := newTestLibrary(t)
	m := mustAdd(t, lib, draft("Heat", "Acción"))
	if err := lib.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := lib.AddMovie(context.Background(), draft("Ronin", "Acción")); !errors.Is(err, ErrClosed) {
		t.Errorf("AddMovie() after Close error = %v", err)
	}
	if _, err := lib.Movie(m.ID); err != nil {
		t.Errorf("reads should still work after Close: %v", err)
	}
}

func TestLibrary_ConcurrentWrites(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()
	m := mustAdd(t, lib, draft("Heat", "Acción"))
	if _, err := lib.Login(ctx, "ana", ""); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, _ = lib.AddReview(ctx, m.ID, "", 10, "x")
		}()
		go func() {
			defer wg.Done()
			_, _ = lib.AddMovie(ctx, draft("Clone", "Drama"))
		}()
		go func() {
			defer wg.Done()
			_ = lib.View()
		}()
	}
	wg.Wait()

	got, err := lib.Movie(m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Reviews) != 20 || got.Rating != 10 {
		t.Errorf("reviews = %d rating = %v", len(got.Reviews), got.Rating)
	}
	if lib.Len() != 21 {
		t.Errorf("Len() = %d, want 21", lib.Len())
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
