// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"

	"github.com/tomtom215/cineresenas/internal/models"
	"github.com/tomtom215/cineresenas/internal/validation"
)

const (
	// DefaultLocale renders review dates as "19 de octubre de 2026".
	DefaultLocale = "es_ES"

	// DefaultAnonymousAuthor replaces a blank author name.
	DefaultAnonymousAuthor = "Anónimo"
)

// longDateLayouts maps a locale to its long date layout (day, full month, year).
var longDateLayouts = map[monday.Locale]string{
	monday.LocaleEsES: "2 de January de 2006",
	monday.LocalePtBR: "2 de January de 2006",
	monday.LocalePtPT: "2 de January de 2006",
	monday.LocaleEnUS: "January 2, 2006",
	monday.LocaleDeDE: "2. January 2006",
}

const fallbackLongLayout = "2 January 2006"

// ReviewRegistry turns caller input into immutable reviews.
// It never touches the catalog; Store appends what it returns.
type ReviewRegistry struct {
	locale    monday.Locale
	layout    string
	anonymous string
	now       func() time.Time
}

// ReviewOption customizes a ReviewRegistry.
type ReviewOption func(*ReviewRegistry)

// WithClock replaces time.Now for date stamping.
func WithClock(now func() time.Time) ReviewOption {
	return func(r *ReviewRegistry) { r.now = now }
}

// WithLocale sets the locale used for the long date format.
func WithLocale(locale string) ReviewOption {
	return func(r *ReviewRegistry) {
		r.locale = monday.Locale(locale)
		r.layout = LongDateLayout(locale)
	}
}

// WithAnonymousAuthor sets the name recorded when the author is blank.
func WithAnonymousAuthor(name string) ReviewOption {
	return func(r *ReviewRegistry) {
		if strings.TrimSpace(name) != "" {
			r.anonymous = strings.TrimSpace(name)
		}
	}
}

// NewReviewRegistry creates a registry stamping dates in DefaultLocale.
func NewReviewRegistry(opts ...ReviewOption) *ReviewRegistry {
	r := &ReviewRegistry{
		locale:    monday.Locale(DefaultLocale),
		layout:    LongDateLayout(DefaultLocale),
		anonymous: DefaultAnonymousAuthor,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LongDateLayout returns the Go time layout for the long date of locale.
func LongDateLayout(locale string) string {
	if layout, ok := longDateLayouts[monday.Locale(locale)]; ok {
		return layout
	}
	return fallbackLongLayout
}

// SupportedLocale reports whether monday can translate month names for locale.
func SupportedLocale(locale string) bool {
	for _, l := range monday.ListLocales() {
		if string(l) == locale {
			return true
		}
	}
	return false
}

// Create validates draft and returns the review numbered seq within its movie.
// seq is supplied by the owning movie's counter and is never reused.
func (r *ReviewRegistry) Create(seq uint64, draft models.ReviewDraft) (models.Review, error) {
	if verr := validation.ValidateStruct(draft); verr != nil {
		return models.Review{}, verr
	}

	author := strings.TrimSpace(draft.Author)
	if author == "" {
		author = r.anonymous
	}

	now := r.now()
	return models.Review{
		ID:        strconv.FormatUint(seq, 10),
		Author:    author,
		Rating:    draft.Rating,
		Comment:   strings.TrimSpace(draft.Comment),
		Date:      r.FormatDate(now),
		CreatedAt: now.UTC(),
	}, nil
}

// FormatDate renders t in the registry's long locale format.
func (r *ReviewRegistry) FormatDate(t time.Time) string {
	return monday.Format(t, r.layout, r.locale)
}
