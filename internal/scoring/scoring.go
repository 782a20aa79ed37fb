package scoring

import (
	"context"
	"math"

	"github.com/julianstephens/goalkeeper/internal/constants"
	"github.com/julianstephens/goalkeeper/internal/logger"
	"github.com/julianstephens/goalkeeper/internal/models"
)

// Tone classifies a day's feedback for presentation.
type Tone string

const (
	ToneDanger  Tone = "danger"
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
)

// Valid reports whether t is one of the three known tones.
func (t Tone) Valid() bool {
	switch t {
	case ToneDanger, ToneWarning, ToneSuccess:
		return true
	}
	return false
}

// Feedback is the result of evaluating a day: a 0-100 score, a short
// narrative message, and a tone bucket.
type Feedback struct {
	Score   int    `json:"score"`
	Message string `json:"message"`
	Tone    Tone   `json:"tone"`
}

// Request summarizes a day for the remote generation capability.
type Request struct {
	UserDisplayName    string
	TotalGoals         int
	CompletedGoalTexts []string
	MissedGoalTexts    []string
}

// Generator is the remote generation capability. Implementations may fail;
// the Service absorbs every failure with the deterministic fallback.
type Generator interface {
	Generate(ctx context.Context, req Request) (Feedback, error)
}

// Service evaluates a finished day. It never surfaces an error: any remote
// failure, malformed response, or schema mismatch resolves to Fallback.
type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Evaluate scores the given goals for the named user. The remote result is
// trusted as-is once it matches the structural contract; scores outside 0-100
// are not re-validated.
func (s *Service) Evaluate(ctx context.Context, goals []models.Goal, userDisplayName string) Feedback {
	req := BuildRequest(goals, userDisplayName)

	if s.gen == nil {
		return Fallback(len(req.CompletedGoalTexts), req.TotalGoals)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ScoringTimeout)
	defer cancel()

	feedback, err := s.gen.Generate(ctx, req)
	if err != nil {
		logger.Warn("Remote scoring failed, using fallback", "error", err)
		return Fallback(len(req.CompletedGoalTexts), req.TotalGoals)
	}
	if !feedback.Tone.Valid() {
		logger.Warn("Remote scoring returned unknown tone, using fallback", "tone", feedback.Tone)
		return Fallback(len(req.CompletedGoalTexts), req.TotalGoals)
	}

	return feedback
}

// BuildRequest splits the day's goals into completed and missed texts.
func BuildRequest(goals []models.Goal, userDisplayName string) Request {
	req := Request{
		UserDisplayName: userDisplayName,
		TotalGoals:      len(goals),
	}
	for _, g := range goals {
		if g.Completed {
			req.CompletedGoalTexts = append(req.CompletedGoalTexts, g.Text)
		} else {
			req.MissedGoalTexts = append(req.MissedGoalTexts, g.Text)
		}
	}
	return req
}

// Fallback computes the deterministic local result: the rounded completion
// percentage, bucketed into a tone with a fixed message per bucket. A zero
// total yields score 0 (the controller rejects empty days before this point).
func Fallback(completedCount, totalCount int) Feedback {
	score := 0
	if totalCount > 0 {
		score = int(math.Round(100 * float64(completedCount) / float64(totalCount)))
	}

	tone := ToneWarning
	message := constants.FallbackWarningMessage
	switch {
	case score < constants.DangerBelow:
		tone = ToneDanger
		message = constants.FallbackDangerMessage
	case score >= constants.SuccessFrom:
		tone = ToneSuccess
		message = constants.FallbackSuccessMessage
	}

	return Feedback{
		Score:   score,
		Message: message,
		Tone:    tone,
	}
}
