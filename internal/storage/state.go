package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/goalkeeper/internal/models"
)

// DecodeState parses a stored state blob, merging it over the default
// document. Fields present in the blob override defaults field-by-field;
// missing fields keep their default values. An unparseable blob yields the
// default document and an error describing why.
func DecodeState(data []byte) (models.AppState, error) {
	state := models.DefaultState()
	if len(data) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return models.DefaultState(), fmt.Errorf("failed to parse stored state: %w", err)
	}

	// Ensure slices are initialized so callers can append without nil checks
	if state.CurrentGoals == nil {
		state.CurrentGoals = []models.Goal{}
	}
	if state.History == nil {
		state.History = []models.DailyRecord{}
	}

	return state, nil
}

// EncodeState serializes the full state document for storage.
func EncodeState(state models.AppState) ([]byte, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize state: %w", err)
	}
	return data, nil
}
