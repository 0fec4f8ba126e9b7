package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/mindaugasb/ltsieve/internal/config"
)

func CreateShowConfigCommand() *ShowConfigCommand {
	gc := &ShowConfigCommand{
		fs: flag.NewFlagSet("show-config", flag.ExitOnError),
	}
	return gc
}

// ShowConfigCommand prints the effective configuration, built-in defaults
// merged with the configuration file, as TOML.
type ShowConfigCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *ShowConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *ShowConfigCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ShowConfigCommand) Run() error {
	buf, err := g.cfg.SerializeConfig()
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %v", err)
	}

	if _, err := buf.WriteTo(os.Stdout); err != nil {
		return fmt.Errorf("failed to print configuration: %v", err)
	}

	return nil
}
