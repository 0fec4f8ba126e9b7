package commands

import (
	"flag"
	"fmt"

	"github.com/mindaugasb/ltsieve/internal/config"
)

func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}
	return gc
}

// CheckCommand classifies the domains given as arguments and prints one
// verdict per line. It never touches the configured input or output files.
type CheckCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.fs.NArg() < 1 {
		return fmt.Errorf("nothing to check, usage: check <domain> [<domain>...]")
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *CheckCommand) Run() error {
	classifier, err := buildClassifier(g.cfg)
	if err != nil {
		return err
	}

	for _, raw := range g.fs.Args() {
		result := classifier.Classify(raw)
		if result.Accepted {
			fmt.Printf("%s: accepted as %s\n", raw, result.Domain)
		} else {
			fmt.Printf("%s: rejected (%s)\n", raw, result.Reason)
		}
	}

	return nil
}
