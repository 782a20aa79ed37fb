package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/goalkeeper/internal/logger"
	"github.com/julianstephens/goalkeeper/internal/models"
	"github.com/julianstephens/goalkeeper/internal/scoring"
	"github.com/julianstephens/goalkeeper/internal/storage"
)

var (
	// ErrNoGoals is returned by EndDay when there are no goals to evaluate.
	ErrNoGoals = errors.New("no goals set for today; add some goals before ending the day")
	// ErrEndDayPending is returned when an end-day result is already awaiting acknowledgment.
	ErrEndDayPending = errors.New("an end-day result is already awaiting acknowledgment")
	// ErrNoPendingResult is returned by CommitDay when there is nothing to commit.
	ErrNoPendingResult = errors.New("no end-day result to commit")
)

// Evaluator scores a finished day. It never fails; remote problems resolve to
// a deterministic local fallback inside the implementation.
type Evaluator interface {
	Evaluate(ctx context.Context, goals []models.Goal, userDisplayName string) scoring.Feedback
}

// PendingResult is the candidate record produced by EndDay. It exists only
// between EndDay and CommitDay/CancelDay: until the user accepts it, neither
// history nor the current goals are touched.
type PendingResult struct {
	Record models.DailyRecord
	Tone   scoring.Tone
}

// Controller owns the in-memory state document. Every mutation persists the
// full document through the storage provider; persistence failures are logged
// and swallowed so the in-memory document stays authoritative for the session.
//
// The controller is meant for a single interactive user and is not safe for
// concurrent use.
type Controller struct {
	store   storage.Provider
	scorer  Evaluator
	state   models.AppState
	pending *PendingResult
}

// New loads the stored document (degrading to defaults when unreadable) and
// returns a controller over it.
func New(store storage.Provider, scorer Evaluator) *Controller {
	state, err := store.Load()
	if err != nil {
		logger.Warn("Failed to load stored state, starting from defaults", "error", err)
	}
	return &Controller{
		store:  store,
		scorer: scorer,
		state:  state,
	}
}

// State returns the current document for read-only presentation.
func (c *Controller) State() models.AppState {
	return c.state
}

// Pending returns the end-day result awaiting acknowledgment, if any.
func (c *Controller) Pending() (PendingResult, bool) {
	if c.pending == nil {
		return PendingResult{}, false
	}
	return *c.pending, true
}

// AddGoal appends a new goal with the given text. Empty or whitespace-only
// text is a silent no-op.
func (c *Controller) AddGoal(text string) (models.Goal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Goal{}, false
	}

	goal := models.Goal{
		ID:        uuid.New().String(),
		Text:      text,
		Completed: false,
		CreatedAt: models.NowMillis(),
	}
	c.state.CurrentGoals = append(c.state.CurrentGoals, goal)
	c.persist()
	return goal, true
}

// ToggleGoal flips the completed flag on the goal with the given id.
// Unknown ids are a no-op.
func (c *Controller) ToggleGoal(id string) bool {
	for i := range c.state.CurrentGoals {
		if c.state.CurrentGoals[i].ID == id {
			c.state.CurrentGoals[i].Completed = !c.state.CurrentGoals[i].Completed
			c.persist()
			return true
		}
	}
	return false
}

// DeleteGoal removes the goal with the given id. Unknown ids are a no-op.
func (c *Controller) DeleteGoal(id string) bool {
	for i := range c.state.CurrentGoals {
		if c.state.CurrentGoals[i].ID == id {
			c.state.CurrentGoals = append(c.state.CurrentGoals[:i], c.state.CurrentGoals[i+1:]...)
			c.persist()
			return true
		}
	}
	return false
}

// UpdateProfile replaces the user's name and bio verbatim.
func (c *Controller) UpdateProfile(name, bio string) {
	c.state.User.Name = name
	c.state.User.Bio = bio
	c.persist()
}

// SetAvatar replaces the user's avatar with the supplied encoded image data,
// typically a data URI.
func (c *Controller) SetAvatar(imageData string) {
	c.state.User.AvatarURL = imageData
	c.persist()
}

// EndDay evaluates the current goals and stages a candidate record for user
// acknowledgment. It mutates nothing: history, credits and the current goals
// are untouched until CommitDay. The only suspension point is the scoring
// call, which absorbs its own failures.
func (c *Controller) EndDay(ctx context.Context) (PendingResult, error) {
	if c.pending != nil {
		return PendingResult{}, ErrEndDayPending
	}
	if len(c.state.CurrentGoals) == 0 {
		return PendingResult{}, ErrNoGoals
	}

	snapshot := models.SnapshotGoals(c.state.CurrentGoals)
	completionRate := models.CompletionRate(snapshot)

	feedback := c.scorer.Evaluate(ctx, snapshot, c.state.User.Name)

	c.pending = &PendingResult{
		Record: models.DailyRecord{
			ID:             uuid.New().String(),
			Date:           time.Now().Format(time.RFC3339),
			Goals:          snapshot,
			Score:          feedback.Score,
			Summary:        feedback.Message,
			CompletionRate: completionRate,
		},
		Tone: feedback.Tone,
	}
	return *c.pending, nil
}

// CommitDay archives the pending record: the score is added to the user's
// credits, the record is appended to history, and today's goals are cleared.
func (c *Controller) CommitDay() (models.DailyRecord, error) {
	if c.pending == nil {
		return models.DailyRecord{}, ErrNoPendingResult
	}

	record := c.pending.Record
	c.state.User.Credits += record.Score
	c.state.History = append(c.state.History, record)
	c.state.CurrentGoals = []models.Goal{}
	c.pending = nil
	c.persist()
	return record, nil
}

// CancelDay discards the pending end-day result, keeping today's goals.
func (c *Controller) CancelDay() {
	c.pending = nil
}

// persist snapshots the full document. Best-effort: a failed write is logged
// and the in-memory document remains authoritative.
func (c *Controller) persist() {
	if err := c.store.Save(c.state); err != nil {
		logger.Warn("Failed to persist state", "error", err)
	}
}
