package cli

import (
	"strings"
	"testing"

	"github.com/julianstephens/goalkeeper/internal/models"
)

var testGoals = []models.Goal{
	{ID: "aaa111", Text: "first"},
	{ID: "aab222", Text: "second"},
	{ID: "bbb333", Text: "third"},
}

func TestResolveGoalByPosition(t *testing.T) {
	goal, err := ResolveGoal(testGoals, "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.ID != "aab222" {
		t.Errorf("resolved %q, want aab222", goal.ID)
	}
}

func TestResolveGoalPositionOutOfRange(t *testing.T) {
	for _, ref := range []string{"0", "4", "-1"} {
		if _, err := ResolveGoal(testGoals, ref); err == nil {
			t.Errorf("expected error for position %q", ref)
		}
	}
}

func TestResolveGoalByIDPrefix(t *testing.T) {
	goal, err := ResolveGoal(testGoals, "bbb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.Text != "third" {
		t.Errorf("resolved %q, want third", goal.Text)
	}
}

func TestResolveGoalAmbiguousPrefix(t *testing.T) {
	_, err := ResolveGoal(testGoals, "aa")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("expected ambiguity error, got %v", err)
	}
}

func TestResolveGoalNoMatch(t *testing.T) {
	if _, err := ResolveGoal(testGoals, "zzz"); err == nil {
		t.Error("expected error for unknown reference")
	}
}

func TestFormatGoalLine(t *testing.T) {
	done := models.Goal{ID: "abc", Text: "done goal", Completed: true}
	open := models.Goal{ID: "def", Text: "open goal"}

	if line := FormatGoalLine(1, done, false); !strings.Contains(line, "[x] done goal") {
		t.Errorf("unexpected line %q", line)
	}
	if line := FormatGoalLine(2, open, false); !strings.Contains(line, "[ ] open goal") {
		t.Errorf("unexpected line %q", line)
	}
	if line := FormatGoalLine(1, done, true); !strings.Contains(line, "(ID: abc)") {
		t.Errorf("expected id in line %q", line)
	}
}
