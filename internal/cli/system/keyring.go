package system

import (
	"fmt"

	"github.com/julianstephens/goalkeeper/internal/cli"
	"github.com/julianstephens/goalkeeper/internal/keyring"
	"github.com/julianstephens/goalkeeper/internal/storage"
)

// ConfigCmd manages secrets in the OS keyring.
type ConfigCmd struct {
	SetAPIKey    SetAPIKeyCmd    `cmd:"" name:"set-api-key" help:"Store the scoring API key in the OS keyring."`
	DeleteAPIKey DeleteAPIKeyCmd `cmd:"" name:"delete-api-key" help:"Remove the scoring API key from the OS keyring."`
	SetDB        SetDBCmd        `cmd:"" name:"set-db" help:"Store the Postgres connection string in the OS keyring."`
	DeleteDB     DeleteDBCmd     `cmd:"" name:"delete-db" help:"Remove the Postgres connection string from the OS keyring."`
}

type SetAPIKeyCmd struct {
	Key string `arg:"" help:"Gemini API key."`
}

func (c *SetAPIKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("API key stored in OS keyring.")
	return nil
}

type DeleteAPIKeyCmd struct{}

func (c *DeleteAPIKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("API key removed from OS keyring.")
	return nil
}

type SetDBCmd struct {
	ConnStr string `arg:"" help:"Postgres connection string (may include credentials; it is stored only in the keyring)."`
}

func (c *SetDBCmd) Run(ctx *cli.Context) error {
	if !storage.HasEmbeddedCredentials(c.ConnStr) {
		fmt.Println("Note: connection string has no embedded password; relying on .pgpass or environment.")
	}
	if err := keyring.SetConnectionString(c.ConnStr); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type DeleteDBCmd struct{}

func (c *DeleteDBCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
