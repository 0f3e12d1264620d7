package metrics

import (
	"errors"
	"time"

	"financespace/internal/domain/entity"
)

// Fallback stages reported by RecordFallbackStage.
const (
	StagePrimary      = "primary"
	StageCryptoChain  = "crypto_chain"
	StageGeneralChain = "general_chain"
	StageEmpty        = "empty"
)

// ProviderOutcome classifies a provider call result for the outcome label.
func ProviderOutcome(count int, err error) string {
	switch {
	case err == nil && count > 0:
		return "success"
	case err == nil:
		return "empty"
	case errors.Is(err, entity.ErrProviderStatus):
		return "status"
	case errors.Is(err, entity.ErrMalformedResponse):
		return "malformed"
	default:
		return "transport"
	}
}

// RecordProviderCall records one outbound provider call.
// count is the number of items the call produced.
func RecordProviderCall(provider string, count int, err error, duration time.Duration) {
	ProviderCallsTotal.WithLabelValues(provider, ProviderOutcome(count, err)).Inc()
	ProviderCallDuration.WithLabelValues(provider).Observe(duration.Seconds())
	if err == nil && count > 0 {
		ArticlesReturnedTotal.WithLabelValues(provider).Add(float64(count))
	}
}

// RecordFallbackStage records which stage produced a news response.
func RecordFallbackStage(stage string) {
	FallbackStageTotal.WithLabelValues(stage).Inc()
}

// RecordHistoryAppend counts a persisted interaction.
func RecordHistoryAppend(typ entity.InteractionType) {
	HistoryEntriesTotal.WithLabelValues(string(typ)).Inc()
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "append_history", "list_history").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
