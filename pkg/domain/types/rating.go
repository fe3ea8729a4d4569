package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Rating represents an impact or likelihood level of a risk definition
type Rating string

const (
	RatingLow    Rating = "low"
	RatingMedium Rating = "medium"
	RatingHigh   Rating = "high"
)

// AllRatings returns all valid ratings
func AllRatings() []Rating {
	return []Rating{RatingLow, RatingMedium, RatingHigh}
}

// IsValid checks if the rating is valid
func (r Rating) IsValid() bool {
	switch r {
	case RatingLow, RatingMedium, RatingHigh:
		return true
	default:
		return false
	}
}

// Validate checks if the rating is valid
func (r Rating) Validate() error {
	if !r.IsValid() {
		return goerr.New("rating must be one of low, medium, high", goerr.V("rating", r))
	}
	return nil
}

// Weight returns the numeric weight used for severity calculation
func (r Rating) Weight() int {
	switch r {
	case RatingLow:
		return 1
	case RatingMedium:
		return 2
	case RatingHigh:
		return 3
	default:
		return 0
	}
}

// String returns the string representation of the rating
func (r Rating) String() string {
	return string(r)
}

// ParseRating converts a string to a Rating, case-insensitively
func ParseRating(s string) (Rating, error) {
	r := Rating(strings.ToLower(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}
