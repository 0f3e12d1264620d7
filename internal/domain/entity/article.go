// Package entity defines the core domain entities of the research API.
// It contains the normalized news Article, the FetchRequest that selects news,
// web search results, the persisted HistoryEntry and StatusCheck records,
// and the error taxonomy shared by provider adapters.
package entity

import (
	"encoding/json"
	"strings"
)

// Article is a news or search item normalized from an external provider.
// No identity is enforced across providers; two providers may return the same story.
type Article struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
	// PublishedAt is the provider's value passed through verbatim (a date string
	// for some providers, an epoch integer for others). Nil when absent.
	PublishedAt json.RawMessage `json:"published_at"`
	Description string          `json:"description"`
	ImageURL    *string         `json:"image_url"`
}

// Category names understood by the news providers.
const (
	CategoryBusiness       = "business"
	CategoryTechnology     = "technology"
	CategoryScience        = "science"
	CategoryHealth         = "health"
	CategoryEntertainment  = "entertainment"
	CategorySports         = "sports"
	CategoryCryptocurrency = "cryptocurrency"
)

// Region names accepted by the news endpoint.
const (
	RegionUS     = "us"
	RegionIndia  = "in"
	RegionEurope = "eu"
	RegionAsia   = "asia"
	RegionGlobal = "global"
)

// FetchRequest selects news by category and optional region.
// Unrecognized categories and regions are carried as-is.
type FetchRequest struct {
	Category string
	Region   string
}

// IsCrypto reports whether the request asks for cryptocurrency news.
// Both "crypto" and "cryptocurrency" qualify, case-insensitively.
func (r FetchRequest) IsCrypto() bool {
	return IsCryptoCategory(r.Category)
}

// IsCryptoCategory reports whether category names cryptocurrency news.
func IsCryptoCategory(category string) bool {
	c := strings.ToLower(category)
	return c == "crypto" || c == CategoryCryptocurrency
}

// SearchResult is a single ranked web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// RawString encodes s as a JSON string value for Article.PublishedAt.
// An empty s yields nil so the field serializes as null.
func RawString(s string) json.RawMessage {
	if s == "" {
		return nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	return b
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
