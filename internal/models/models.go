package models

import (
	"time"

	"github.com/julianstephens/goalkeeper/internal/constants"
)

// Goal is a single goal for the current day. IDs are unique within the
// current goal set and stable across completion toggles.
type Goal struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}

// UserProfile holds the user's display data and credit balance. Credits only
// ever increase, by the score of each committed day.
type UserProfile struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"` // empty means "use default"
	Credits   int    `json:"credits"`
}

// DailyRecord is the immutable archive entry created when a day is committed.
// The goal snapshot is copied at end-day time and never edited afterwards.
type DailyRecord struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"` // RFC3339
	Goals          []Goal  `json:"goals"`
	Score          int     `json:"score"` // 0-100
	Summary        string  `json:"summary"`
	CompletionRate float64 `json:"completionRate"` // [0,1]
}

// AppState is the full persisted document: one user, today's goals in
// insertion order, and the chronological append-only history.
type AppState struct {
	User         UserProfile   `json:"user"`
	CurrentGoals []Goal        `json:"currentGoals"`
	History      []DailyRecord `json:"history"`
}

// DefaultState returns a fresh document for first runs and unreadable stores.
func DefaultState() AppState {
	return AppState{
		User: UserProfile{
			Name:    constants.DefaultUserName,
			Bio:     constants.DefaultUserBio,
			Credits: 0,
		},
		CurrentGoals: []Goal{},
		History:      []DailyRecord{},
	}
}

// CompletedCount returns the number of completed goals in the given list.
func CompletedCount(goals []Goal) int {
	count := 0
	for _, g := range goals {
		if g.Completed {
			count++
		}
	}
	return count
}

// CompletionRate returns completed/total for the given list, 0 when empty.
func CompletionRate(goals []Goal) float64 {
	if len(goals) == 0 {
		return 0
	}
	return float64(CompletedCount(goals)) / float64(len(goals))
}

// SnapshotGoals returns an independent copy of the given goal list so later
// edits to the live list never reach an archived record.
func SnapshotGoals(goals []Goal) []Goal {
	snapshot := make([]Goal, len(goals))
	copy(snapshot, goals)
	return snapshot
}

// NowMillis returns the current time as unix milliseconds, the unit used for
// Goal.CreatedAt.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
