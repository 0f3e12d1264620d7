// Package research provides the research use cases: LLM questions, web
// search, search-grounded summaries, the interaction history and the
// status-check log.
package research

import "errors"

// Sentinel errors for research use case operations.
var (
	// ErrCompletion indicates that the LLM completion call failed.
	ErrCompletion = errors.New("AI service error")

	// ErrSearch indicates that the web search call failed.
	ErrSearch = errors.New("search service error")

	// ErrHistory indicates that the interaction could not be recorded.
	// The request that produced the interaction fails with it.
	ErrHistory = errors.New("record history")
)
