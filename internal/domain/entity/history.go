package entity

import (
	"time"

	"github.com/google/uuid"
)

// InteractionType classifies a persisted interaction.
type InteractionType string

// The closed set of interaction types.
const (
	InteractionGeneral  InteractionType = "general"
	InteractionSearch   InteractionType = "search"
	InteractionCombined InteractionType = "combined"
)

// Valid reports whether t belongs to the closed set of interaction types.
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionGeneral, InteractionSearch, InteractionCombined:
		return true
	}
	return false
}

// DefaultUserID is recorded on every history entry; the API has no users.
const DefaultUserID = "default"

// HistoryEntry is the persisted record of one completed interaction.
// Entries are written once and never mutated or deleted.
type HistoryEntry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Query     string          `json:"query"`
	Response  string          `json:"response"`
	Type      InteractionType `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewHistoryEntry builds an entry with a fresh identifier and a UTC timestamp.
func NewHistoryEntry(query, response string, typ InteractionType) *HistoryEntry {
	return &HistoryEntry{
		ID:        uuid.NewString(),
		UserID:    DefaultUserID,
		Query:     query,
		Response:  response,
		Type:      typ,
		Timestamp: time.Now().UTC(),
	}
}

// StatusCheck is a liveness record posted by a client.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewStatusCheck builds a status check for clientName.
func NewStatusCheck(clientName string) *StatusCheck {
	return &StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}
