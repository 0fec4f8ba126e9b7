package commands

import (
	"flag"
	"fmt"

	"github.com/mindaugasb/ltsieve/internal/config"
	"github.com/mindaugasb/ltsieve/internal/lists"
	"github.com/mindaugasb/ltsieve/internal/log"
)

func CreateCleanCommand() *CleanCommand {
	gc := &CleanCommand{
		fs: flag.NewFlagSet("clean", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Input, "input", "", "Override the input list path (\"-\" reads stdin)")
	gc.fs.StringVar(&gc.AcceptedOutput, "accepted", "", "Override the accepted output path (\"-\" writes stdout)")
	gc.fs.StringVar(&gc.RejectedOutput, "rejected", "", "Override the rejection log path (\"-\" writes stdout)")
	gc.fs.BoolVar(&gc.Force, "force", false, "Process the input even if it is unchanged since the previous run")

	return gc
}

type CleanCommand struct {
	fs *flag.FlagSet

	Input          string
	AcceptedOutput string
	RejectedOutput string
	Force          bool

	cfg *config.Config
}

func (g *CleanCommand) Name() string {
	return g.fs.Name()
}

func (g *CleanCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}

	if err := applyPathOverride(&cfg.General.Input, g.Input); err != nil {
		return err
	}
	if err := applyPathOverride(&cfg.General.AcceptedOutput, g.AcceptedOutput); err != nil {
		return err
	}
	if err := applyPathOverride(&cfg.General.RejectedOutput, g.RejectedOutput); err != nil {
		return err
	}

	if err := cfg.ValidateConfig(); err != nil {
		return fmt.Errorf("configuration validation failed: %v", err)
	}

	g.cfg = cfg

	// Keep stdout clean when it carries an output artifact.
	if cfg.GetAbsAcceptedPath() == config.StdStream || cfg.GetAbsRejectedPath() == config.StdStream {
		log.SetForceStdErr(true)
	}

	return nil
}

func (g *CleanCommand) Run() error {
	classifier, err := buildClassifier(g.cfg)
	if err != nil {
		return err
	}

	_, err = lists.RunPipeline(g.cfg, classifier, g.Force)
	return err
}
