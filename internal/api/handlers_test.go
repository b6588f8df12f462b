// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cineresenas/internal/carousel"
	"github.com/tomtom215/cineresenas/internal/library"
	"github.com/tomtom215/cineresenas/internal/models"
)

type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

type testServer struct {
	lib     *library.Library
	rotator *carousel.Rotator
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	lib, err := library.New(library.DefaultConfig())
	if err != nil {
		t.Fatalf("library.New() error = %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })

	rot := carousel.NewRotator(lib, time.Hour)
	mw := NewChiMiddlewareFromSecurity([]string{"*"}, 100, time.Minute, true)
	router := NewRouter(NewHandler(lib, nil, rot, nil), mw)
	return &testServer{lib: lib, rotator: rot, handler: router.SetupChi()}
}

func (s *testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v (%s)", method, path, err, rec.Body.String())
		}
	}
	return rec, env
}

func (s *testServer) seed(t *testing.T, titles ...string) {
	t.Helper()
	for _, title := range titles {
		_, err := s.lib.AddMovie(context.Background(), models.MovieDraft{
			Title: title, Year: 2000, Genre: "Drama", Platforms: []models.Platform{"Netflix"},
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v (%s)", err, env.Data)
	}
}

func TestCreateMovie(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/api/v1/movies", `{
		"title": "Interstellar", "year": 2014, "genre": "Ciencia Ficción",
		"platforms": ["Netflix", "HBO"]
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var m models.Movie
	decodeData(t, env, &m)
	if m.ID != "1" || m.Rating != 0 || len(m.Platforms) != 2 {
		t.Errorf("movie = %+v", m)
	}
	if loc := rec.Header().Get("Location"); loc != "/api/v1/movies/1" {
		t.Errorf("Location = %q", loc)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}

func TestCreateMovie_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"empty platforms", `{"title":"X","year":2000,"genre":"Drama","platforms":[]}`, CodeValidation},
		{"unknown genre", `{"title":"X","year":2000,"genre":"Jazz","platforms":["HBO"]}`, CodeValidation},
		{"blank title", `{"title":"  ","year":2000,"genre":"Drama","platforms":["HBO"]}`, CodeValidation},
		{"malformed", `{"title":`, CodeInvalidBody},
		{"unknown field", `{"titulo":"X"}`, CodeInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec, env := s.do(t, http.MethodPost, "/api/v1/movies", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rec.Code)
			}
			if env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("error = %+v, want %s", env.Error, tt.code)
			}
			if s.lib.Len() != 0 {
				t.Error("rejected request changed the catalog")
			}
		})
	}
}

func TestGetMovie(t *testing.T) {
	s := newTestServer(t)
	s.seed(t, "Amélie")

	rec, env := s.do(t, http.MethodGet, "/api/v1/movies/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var m models.Movie
	decodeData(t, env, &m)
	if m.Title != "Amélie" {
		t.Errorf("title = %q", m.Title)
	}

	rec, env = s.do(t, http.MethodGet, "/api/v1/movies/99", "")
	if rec.Code != http.StatusNotFound || env.Error.Code != CodeNotFound {
		t.Fatalf("unknown id: status = %d error = %+v", rec.Code, env.Error)
	}
	if env.Error.RequestID == "" || env.Error.RequestID != rec.Header().Get("X-Request-ID") {
		t.Errorf("error request_id = %q, header = %q", env.Error.RequestID, rec.Header().Get("X-Request-ID"))
	}
}

func TestListMovies_Filters(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	for _, d := range []models.MovieDraft{
		{Title: "A", Year: 2000, Genre: "Drama", Platforms: []models.Platform{"Netflix"}},
		{Title: "B", Year: 2000, Genre: "Comedia", Platforms: []models.Platform{"HBO"}},
		{Title: "C", Year: 2000, Genre: "Drama", Platforms: []models.Platform{"HBO"}},
	} {
		if _, err := s.lib.AddMovie(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?genre=Drama", 2},
		{"?platform=HBO", 2},
		{"?genre=Drama&platform=HBO", 1},
	}
	for _, tt := range tests {
		_, env := s.do(t, http.MethodGet, "/api/v1/movies"+tt.query, "")
		var movies []models.Movie
		decodeData(t, env, &movies)
		if len(movies) != tt.want {
			t.Errorf("%q: len = %d, want %d", tt.query, len(movies), tt.want)
		}
	}
}

func TestCreateReview(t *testing.T) {
	s := newTestServer(t)
	s.seed(t, "Dune")

	rec, env := s.do(t, http.MethodPost, "/api/v1/movies/1/reviews", `{"rating":5.26,"comment":"ok"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var m models.Movie
	decodeData(t, env, &m)
	if m.Rating != 5.3 || len(m.Reviews) != 1 {
		t.Errorf("movie = %+v", m)
	}

	rec, _ = s.do(t, http.MethodPost, "/api/v1/movies/1/reviews", `{"rating":0,"comment":"ok"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("out of range rating status = %d", rec.Code)
	}
	rec, _ = s.do(t, http.MethodPost, "/api/v1/movies/42/reviews", `{"rating":7,"comment":"ok"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown movie status = %d", rec.Code)
	}
}

func TestSessionAndFavorites(t *testing.T) {
	s := newTestServer(t)
	s.seed(t, "A", "B")

	rec, env := s.do(t, http.MethodPost, "/api/v1/favorites/1/toggle", "")
	if rec.Code != http.StatusUnauthorized || env.Error.Code != CodeUnauthenticated {
		t.Fatalf("anonymous toggle: status = %d error = %+v", rec.Code, env.Error)
	}

	rec, _ = s.do(t, http.MethodPost, "/api/v1/session/login", `{"identifier":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank identifier status = %d", rec.Code)
	}

	rec, env = s.do(t, http.MethodPost, "/api/v1/session/login", `{"identifier":"ana@example.com","secret":"anything"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d", rec.Code)
	}
	var sess models.Session
	decodeData(t, env, &sess)
	if !sess.Authenticated || sess.DisplayName != "ana" {
		t.Errorf("session = %+v", sess)
	}

	_, env = s.do(t, http.MethodPost, "/api/v1/favorites/2/toggle", "")
	var fav FavoriteResponse
	decodeData(t, env, &fav)
	if !fav.Favorite || fav.MovieID != "2" {
		t.Errorf("toggle = %+v", fav)
	}

	_, env = s.do(t, http.MethodGet, "/api/v1/favorites", "")
	var ids []string
	decodeData(t, env, &ids)
	if len(ids) != 1 || ids[0] != "2" {
		t.Errorf("favorites = %v", ids)
	}

	rec, _ = s.do(t, http.MethodPost, "/api/v1/session/logout", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d", rec.Code)
	}
	if len(s.lib.Favorites()) != 0 {
		t.Error("logout must clear favorites")
	}
	rec, _ = s.do(t, http.MethodGet, "/api/v1/favorites", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous favorites status = %d", rec.Code)
	}
}

func TestRegister(t *testing.T) {
	s := newTestServer(t)
	rec, env := s.do(t, http.MethodPost, "/api/v1/session/register",
		`{"display_name":"Ana María","identifier":"ana@example.com","secret":"x"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	var sess models.Session
	decodeData(t, env, &sess)
	if sess.DisplayName != "Ana María" {
		t.Errorf("session = %+v", sess)
	}
}

func TestView(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	s.seed(t, "A", "B")
	if _, err := s.lib.AddMovie(ctx, models.MovieDraft{
		Title: "C", Year: 2000, Genre: "Terror", Platforms: []models.Platform{"HBO"},
	}); err != nil {
		t.Fatal(err)
	}

	rec, env := s.do(t, http.MethodPut, "/api/v1/view/category", `{"category":"Terror"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	_, env = s.do(t, http.MethodGet, "/api/v1/view", "")
	var v models.View
	decodeData(t, env, &v)
	if len(v.Movies) != 1 || v.Movies[0].Title != "C" || v.Title != "Terror" {
		t.Errorf("view = %+v", v)
	}

	rec, _ = s.do(t, http.MethodPut, "/api/v1/view/category", `{"category":"Jazz"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown category status = %d", rec.Code)
	}

	rec, _ = s.do(t, http.MethodPut, "/api/v1/view/favorites", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing show flag status = %d", rec.Code)
	}

	rec, _ = s.do(t, http.MethodPut, "/api/v1/view/favorites", `{"show":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	_, env = s.do(t, http.MethodGet, "/api/v1/view", "")
	decodeData(t, env, &v)
	if len(v.Movies) != 0 || v.Title != "Mis Favoritos" {
		t.Errorf("favorites view = %+v", v)
	}
}

func TestFeatured(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, http.MethodGet, "/api/v1/featured", "")
	var f FeaturedResponse
	decodeData(t, env, &f)
	if f.Movie != nil || f.Total != 0 {
		t.Errorf("empty catalog featured = %+v", f)
	}

	s.seed(t, "A", "B", "C")

	_, env = s.do(t, http.MethodPost, "/api/v1/featured/prev", "")
	decodeData(t, env, &f)
	if f.Index != 2 || f.Movie == nil || f.Movie.Title != "C" {
		t.Errorf("prev from 0 = %+v", f)
	}

	_, env = s.do(t, http.MethodPost, "/api/v1/featured/next", "")
	decodeData(t, env, &f)
	if f.Index != 0 || f.Movie.Title != "A" || f.Total != 3 {
		t.Errorf("next = %+v", f)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)
	s.seed(t, "A")

	rec, env := s.do(t, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var h HealthResponse
	decodeData(t, env, &h)
	if h.Status != "healthy" || h.Movies != 1 {
		t.Errorf("health = %+v", h)
	}

	rec, _ = s.do(t, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Errorf("metrics status = %d", rec.Code)
	}
}

func TestWebSocket_HubDisabled(t *testing.T) {
	s := newTestServer(t)
	rec, _ := s.do(t, http.MethodGet, "/api/v1/ws", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	rec, env := s.do(t, http.MethodGet, "/api/v1/nope", "")
	if rec.Code != http.StatusNotFound || env.Error == nil {
		t.Errorf("status = %d env = %+v", rec.Code, env)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	if got := sanitizeLogValue("a\nb\tc"); got != `a\x0ab\x09c` {
		t.Errorf("sanitizeLogValue() = %q", got)
	}
}
