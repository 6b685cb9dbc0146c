package models

import (
	"net/url"
	"strconv"
)

// RecipeFilter holds the browse-screen filter state. Search is free text
// and is only promoted into a request after the debounce window settles;
// the structured fields apply immediately.
//
// The filter round-trips through a query string so the state survives a
// restart and can be shared.
type RecipeFilter struct {
	Search     string
	Category   string
	Difficulty string
	MaxTime    string
}

// IsZero reports whether no filter is active.
func (f RecipeFilter) IsZero() bool {
	return f.Search == "" && f.Category == "" && f.Difficulty == "" && f.MaxTime == ""
}

// Query encodes the filter as /recipes/ query parameters. Empty fields are
// omitted.
func (f RecipeFilter) Query() url.Values {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Difficulty != "" {
		params.Set("difficulty", f.Difficulty)
	}
	if f.MaxTime != "" {
		params.Set("max_time", f.MaxTime)
	}
	return params
}

// Encode returns the shareable query-string form of the filter.
func (f RecipeFilter) Encode() string {
	return f.Query().Encode()
}

// FilterFromQuery rebuilds a filter from its query-string form. Unknown
// parameters are ignored; malformed input yields the zero filter.
func FilterFromQuery(query string) RecipeFilter {
	params, err := url.ParseQuery(query)
	if err != nil {
		return RecipeFilter{}
	}
	return RecipeFilter{
		Search:     params.Get("search"),
		Category:   params.Get("category"),
		Difficulty: params.Get("difficulty"),
		MaxTime:    params.Get("max_time"),
	}
}

// ValidDifficulty reports whether s is empty or one of the backend's
// difficulty levels (1..3).
func ValidDifficulty(s string) bool {
	if s == "" {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1 && n <= 3
}
