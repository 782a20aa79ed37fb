package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/goalkeeper/internal/app"
	"github.com/julianstephens/goalkeeper/internal/cli"
	"github.com/julianstephens/goalkeeper/internal/cli/goals"
	"github.com/julianstephens/goalkeeper/internal/cli/system"
	"github.com/julianstephens/goalkeeper/internal/config"
	"github.com/julianstephens/goalkeeper/internal/constants"
	"github.com/julianstephens/goalkeeper/internal/errors"
	"github.com/julianstephens/goalkeeper/internal/keyring"
	"github.com/julianstephens/goalkeeper/internal/logger"
	"github.com/julianstephens/goalkeeper/internal/scoring"
	"github.com/julianstephens/goalkeeper/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"State file path (.json or .db) or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables, .pgpass, or the OS keyring instead." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd   `cmd:"" help:"Initialize goalkeeper storage."`
	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Secrets system.ConfigCmd `cmd:"" name:"config" help:"Manage secrets in the OS keyring."`

	Goal struct {
		Add    goals.GoalAddCmd    `cmd:"" help:"Add a goal for today."`
		List   goals.GoalListCmd   `cmd:"" help:"List today's goals."`
		Done   goals.GoalDoneCmd   `cmd:"" help:"Toggle a goal's completion."`
		Delete goals.GoalDeleteCmd `cmd:"" help:"Delete a goal."`
	} `cmd:"" help:"Manage today's goals."`

	EndDay  cli.EndDayCmd  `cmd:"" name:"end-day" help:"Evaluate today's goals and archive the result."`
	History cli.HistoryCmd `cmd:"" help:"Show archived days and the score trend."`
	Profile cli.ProfileCmd `cmd:"" help:"Show or update the user profile."`
	Avatar  cli.AvatarCmd  `cmd:"" help:"Set the profile avatar from an image file."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal daily-goal tracker with end-of-day performance reports"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     "v0.1.0",
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := expandPath(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(configPath)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	cfg := config.Load()

	store, err := selectStore(configPath, cfg)
	if err != nil {
		errors.Fatal(err)
	}
	logger.Info("Storage selected", "config", configPath)

	scorer := scoring.NewService(scoring.NewGeminiGenerator(resolveAPIKey(cfg), cfg.ScoringModel))

	appCtx := &cli.Context{
		Store:      store,
		Controller: app.New(store, scorer),
		Config:     cfg,
		Debug:      CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// selectStore picks the storage provider from the config value: a PostgreSQL
// connection string, a .db path (SQLite), or a JSON file path (default).
func selectStore(configPath string, cfg config.Config) (storage.Provider, error) {
	if strings.HasPrefix(configPath, "postgres://") || strings.HasPrefix(configPath, "postgresql://") {
		if storage.HasEmbeddedCredentials(configPath) {
			return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed; use GOALKEEPER_DB_CONNECTION, .pgpass, or 'goalkeeper config set-db'")
		}
		return storage.NewPostgresStore(resolveConnString(configPath, cfg)), nil
	}
	if strings.HasSuffix(configPath, ".db") {
		return storage.NewSQLiteStore(configPath), nil
	}
	return storage.NewJSONStore(configPath), nil
}

// resolveConnString prefers the environment, then the OS keyring, then the
// credential-free value from the command line.
func resolveConnString(configValue string, cfg config.Config) string {
	if cfg.DBConnection != "" {
		return cfg.DBConnection
	}
	if connStr, err := keyring.GetConnectionString(); err == nil {
		return connStr
	}
	return configValue
}

// resolveAPIKey prefers the environment over the OS keyring. An empty result
// is fine: scoring then always takes the deterministic fallback path.
func resolveAPIKey(cfg config.Config) string {
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	if key, err := keyring.GetAPIKey(); err == nil {
		return key
	}
	return ""
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func logDir(configPath string) string {
	if strings.HasPrefix(configPath, "postgres://") || strings.HasPrefix(configPath, "postgresql://") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config", constants.AppName)
		}
		return "."
	}
	return filepath.Dir(configPath)
}
