// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

package catalog

import (
	"math"

	"github.com/tomtom215/cineresenas/internal/models"
)

// Unrated is the rating of a movie without reviews.
const Unrated = 0.0

// Aggregate returns the arithmetic mean of the review ratings rounded to one
// decimal place, halves away from zero. An empty slice yields Unrated.
//
// The mean is rescanned on every call; the result does not depend on order.
func Aggregate(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return Unrated
	}
	var sum float64
	for i := range reviews {
		sum += reviews[i].Rating
	}
	return roundTenths(sum / float64(len(reviews)))
}

// math.Round rounds half away from zero.
func roundTenths(v float64) float64 {
	return math.Round(v*10) / 10
}
