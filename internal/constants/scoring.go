package constants

import "time"

// Scoring constants:
//   - DangerBelow and SuccessFrom are the tone bucket boundaries for a day's
//     score: below DangerBelow is "danger", SuccessFrom and above is "success",
//     everything between is "warning".
//   - The fallback messages are the fixed strings returned when the remote
//     scoring capability is unavailable.
const (
	DangerBelow = 50
	SuccessFrom = 80

	FallbackDangerMessage  = "You missed too many goals. You need to focus!"
	FallbackWarningMessage = "Daily summary saved."
	FallbackSuccessMessage = "Great job today!"

	// DefaultScoringModel is the Gemini model used for end-of-day reports.
	DefaultScoringModel = "gemini-2.5-flash"

	// ScoringTimeout bounds the outbound scoring call. A timeout is treated
	// identically to any other remote failure and routes to the fallback.
	ScoringTimeout = 30 * time.Second
)
