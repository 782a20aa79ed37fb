package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/julianstephens/goalkeeper/internal/models"
	"github.com/julianstephens/goalkeeper/internal/scoring"
)

// fakeStore keeps every saved snapshot so tests can assert on persistence
// without touching the filesystem.
type fakeStore struct {
	state   models.AppState
	loadErr error
	saveErr error
	saves   []models.AppState
}

func (f *fakeStore) Init() error               { return nil }
func (f *fakeStore) Close() error              { return nil }
func (f *fakeStore) GetConfigPath() string     { return "fake" }
func (f *fakeStore) Load() (models.AppState, error) {
	if f.loadErr != nil {
		return models.DefaultState(), f.loadErr
	}
	return f.state, nil
}
func (f *fakeStore) Save(state models.AppState) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves = append(f.saves, state)
	return nil
}

type fakeScorer struct {
	feedback scoring.Feedback
	calls    int
}

func (f *fakeScorer) Evaluate(ctx context.Context, goals []models.Goal, userDisplayName string) scoring.Feedback {
	f.calls++
	return f.feedback
}

func setupController(t *testing.T) (*Controller, *fakeStore, *fakeScorer) {
	t.Helper()
	store := &fakeStore{state: models.DefaultState()}
	scorer := &fakeScorer{feedback: scoring.Feedback{Score: 80, Message: "Great job today!", Tone: scoring.ToneSuccess}}
	return New(store, scorer), store, scorer
}

func TestAddGoalAppendsIncomplete(t *testing.T) {
	ctrl, store, _ := setupController(t)

	goal, ok := ctrl.AddGoal("  write tests  ")
	if !ok {
		t.Fatal("expected goal to be added")
	}
	if goal.Text != "write tests" {
		t.Errorf("expected trimmed text, got %q", goal.Text)
	}
	if goal.Completed {
		t.Error("new goals must start incomplete")
	}
	if goal.ID == "" || goal.CreatedAt == 0 {
		t.Errorf("expected id and timestamp to be assigned, got %+v", goal)
	}
	if len(ctrl.State().CurrentGoals) != 1 {
		t.Errorf("expected 1 goal, got %d", len(ctrl.State().CurrentGoals))
	}
	if len(store.saves) != 1 {
		t.Errorf("expected one persisted snapshot, got %d", len(store.saves))
	}
}

func TestAddGoalRejectsBlankText(t *testing.T) {
	ctrl, store, _ := setupController(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, ok := ctrl.AddGoal(text); ok {
			t.Errorf("expected %q to be rejected", text)
		}
	}
	if len(ctrl.State().CurrentGoals) != 0 {
		t.Error("blank adds must not create goals")
	}
	if len(store.saves) != 0 {
		t.Error("blank adds must not persist")
	}
}

func TestToggleGoalIsInvolution(t *testing.T) {
	ctrl, _, _ := setupController(t)
	goal, _ := ctrl.AddGoal("flip me")

	if !ctrl.ToggleGoal(goal.ID) {
		t.Fatal("first toggle failed")
	}
	if !ctrl.State().CurrentGoals[0].Completed {
		t.Error("expected goal completed after first toggle")
	}

	if !ctrl.ToggleGoal(goal.ID) {
		t.Fatal("second toggle failed")
	}
	if ctrl.State().CurrentGoals[0].Completed {
		t.Error("expected goal back to incomplete after second toggle")
	}
}

func TestToggleGoalUnknownIDIsNoOp(t *testing.T) {
	ctrl, store, _ := setupController(t)
	ctrl.AddGoal("keep me")
	savesBefore := len(store.saves)

	if ctrl.ToggleGoal("no-such-id") {
		t.Error("expected toggle of unknown id to report false")
	}
	if len(store.saves) != savesBefore {
		t.Error("no-op toggle must not persist")
	}
}

func TestDeleteGoalRemovesOnlyTarget(t *testing.T) {
	ctrl, _, _ := setupController(t)
	first, _ := ctrl.AddGoal("first")
	second, _ := ctrl.AddGoal("second")

	if !ctrl.DeleteGoal(first.ID) {
		t.Fatal("delete failed")
	}

	goals := ctrl.State().CurrentGoals
	if len(goals) != 1 || goals[0].ID != second.ID {
		t.Errorf("expected only %q to remain, got %+v", second.Text, goals)
	}
	if ctrl.DeleteGoal("no-such-id") {
		t.Error("expected delete of unknown id to report false")
	}
}

func TestEndDayWithNoGoals(t *testing.T) {
	ctrl, store, scorer := setupController(t)

	_, err := ctrl.EndDay(context.Background())
	if !errors.Is(err, ErrNoGoals) {
		t.Fatalf("expected ErrNoGoals, got %v", err)
	}
	if scorer.calls != 0 {
		t.Error("scorer must not run for an empty day")
	}
	if len(store.saves) != 0 {
		t.Error("failed end-day must not persist")
	}
	if _, pending := ctrl.Pending(); pending {
		t.Error("failed end-day must not stage a result")
	}
}

func TestEndDayStagesWithoutMutating(t *testing.T) {
	ctrl, _, _ := setupController(t)
	done, _ := ctrl.AddGoal("done")
	ctrl.AddGoal("missed")
	ctrl.ToggleGoal(done.ID)
	goalsBefore := models.SnapshotGoals(ctrl.State().CurrentGoals)

	result, err := ctrl.EndDay(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Record.Score != 80 || result.Record.Summary != "Great job today!" {
		t.Errorf("unexpected record: %+v", result.Record)
	}
	if result.Record.CompletionRate != 0.5 {
		t.Errorf("completion rate = %v, want 0.5", result.Record.CompletionRate)
	}
	if !reflect.DeepEqual(result.Record.Goals, goalsBefore) {
		t.Errorf("record snapshot should match goals at end-day time")
	}

	state := ctrl.State()
	if !reflect.DeepEqual(state.CurrentGoals, goalsBefore) {
		t.Error("current goals must be untouched before commit")
	}
	if len(state.History) != 0 {
		t.Error("history must be untouched before commit")
	}
	if state.User.Credits != 0 {
		t.Error("credits must be untouched before commit")
	}
}

func TestEndDayWhilePending(t *testing.T) {
	ctrl, _, scorer := setupController(t)
	ctrl.AddGoal("goal")

	if _, err := ctrl.EndDay(context.Background()); err != nil {
		t.Fatalf("first end-day failed: %v", err)
	}
	if _, err := ctrl.EndDay(context.Background()); !errors.Is(err, ErrEndDayPending) {
		t.Fatalf("expected ErrEndDayPending, got %v", err)
	}
	if scorer.calls != 1 {
		t.Errorf("scorer ran %d times, want 1", scorer.calls)
	}
}

func TestCommitDayArchivesRecord(t *testing.T) {
	ctrl, store, _ := setupController(t)
	done, _ := ctrl.AddGoal("done")
	ctrl.ToggleGoal(done.ID)

	staged, err := ctrl.EndDay(context.Background())
	if err != nil {
		t.Fatalf("end-day failed: %v", err)
	}

	record, err := ctrl.CommitDay()
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if record.ID != staged.Record.ID {
		t.Error("commit should return the staged record")
	}

	state := ctrl.State()
	if state.User.Credits != 80 {
		t.Errorf("credits = %d, want 80", state.User.Credits)
	}
	if len(state.History) != 1 || state.History[0].ID != record.ID {
		t.Errorf("expected exactly the committed record in history, got %+v", state.History)
	}
	if len(state.CurrentGoals) != 0 {
		t.Error("commit must clear the current goals")
	}
	if _, pending := ctrl.Pending(); pending {
		t.Error("commit must clear the pending result")
	}

	last := store.saves[len(store.saves)-1]
	if !reflect.DeepEqual(last, state) {
		t.Error("committed state was not persisted")
	}
}

func TestCommitDayWithoutPending(t *testing.T) {
	ctrl, _, _ := setupController(t)

	if _, err := ctrl.CommitDay(); !errors.Is(err, ErrNoPendingResult) {
		t.Fatalf("expected ErrNoPendingResult, got %v", err)
	}
}

func TestCancelDayKeepsGoals(t *testing.T) {
	ctrl, _, _ := setupController(t)
	ctrl.AddGoal("keep me")

	if _, err := ctrl.EndDay(context.Background()); err != nil {
		t.Fatalf("end-day failed: %v", err)
	}
	ctrl.CancelDay()

	state := ctrl.State()
	if len(state.CurrentGoals) != 1 {
		t.Error("cancel must keep today's goals")
	}
	if len(state.History) != 0 || state.User.Credits != 0 {
		t.Error("cancel must not archive anything")
	}
	if _, pending := ctrl.Pending(); pending {
		t.Error("cancel must clear the pending result")
	}

	// The day can be ended again after a cancel.
	if _, err := ctrl.EndDay(context.Background()); err != nil {
		t.Errorf("end-day after cancel failed: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctrl, _, _ := setupController(t)

	ctrl.UpdateProfile("Alex", "Shipping daily")

	state := ctrl.State()
	if state.User.Name != "Alex" || state.User.Bio != "Shipping daily" {
		t.Errorf("unexpected profile: %+v", state.User)
	}
}

func TestSetAvatar(t *testing.T) {
	ctrl, _, _ := setupController(t)

	ctrl.SetAvatar("data:image/png;base64,abc")

	if got := ctrl.State().User.AvatarURL; got != "data:image/png;base64,abc" {
		t.Errorf("avatar = %q", got)
	}
}

func TestPersistenceFailureKeepsSessionAlive(t *testing.T) {
	store := &fakeStore{state: models.DefaultState(), saveErr: errors.New("disk full")}
	ctrl := New(store, &fakeScorer{feedback: scoring.Feedback{Score: 50, Tone: scoring.ToneWarning}})

	goal, ok := ctrl.AddGoal("still works")
	if !ok {
		t.Fatal("add should succeed despite a failing store")
	}
	if !ctrl.ToggleGoal(goal.ID) {
		t.Error("toggle should succeed despite a failing store")
	}
	if len(ctrl.State().CurrentGoals) != 1 {
		t.Error("in-memory state must stay authoritative")
	}
}

func TestNewWithUnreadableStoreStartsFromDefaults(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("permission denied")}
	ctrl := New(store, &fakeScorer{})

	if !reflect.DeepEqual(ctrl.State(), models.DefaultState()) {
		t.Errorf("expected default state, got %+v", ctrl.State())
	}
}
