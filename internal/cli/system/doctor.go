package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/goalkeeper/internal/cli"
	"github.com/julianstephens/goalkeeper/internal/constants"
	"github.com/julianstephens/goalkeeper/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: Storage reachable and state parseable
	if _, err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: Scoring API key configured (warning only; the deterministic
	// fallback keeps end-day usable without one)
	if cmd.apiKeyConfigured(ctx) {
		fmt.Printf("✓ Scoring API key: OK\n")
	} else {
		fmt.Printf("⚠ Scoring API key: WARNING\n")
		fmt.Printf("   No API key found; end-day will use the local fallback score.\n")
		fmt.Printf("   Set one with 'goalkeeper config set-api-key' or GOALKEEPER_API_KEY.\n")
	}

	// Check 3: OS keyring availability (warning only)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable; secrets must come from the environment.\n")
	}

	// Check 4: No other goalkeeper process against the same document
	if err := checkDuplicateProcess(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	// Check 5: Clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func (cmd *DoctorCmd) apiKeyConfigured(ctx *cli.Context) bool {
	if ctx.Config.APIKey != "" {
		return true
	}
	if _, err := keyring.GetAPIKey(); err == nil {
		return true
	}
	return false
}

// checkDuplicateProcess warns when another goalkeeper process is running.
// The state document assumes a single interactive user; two processes
// overwriting the same blob will lose each other's changes.
func checkDuplicateProcess() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("could not enumerate processes: %v", err)
	}

	self := os.Getpid()
	for _, p := range processes {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(p.Executable()), ".exe")
		if name == constants.AppName {
			return fmt.Errorf("another goalkeeper process is running (pid %d); concurrent edits may lose data", p.Pid())
		}
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong (year %d); record dates would be unusable", now.Year())
	}
	return nil
}
