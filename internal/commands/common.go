package commands

import (
	"fmt"
	"path/filepath"

	"github.com/mindaugasb/ltsieve/internal/classify"
	"github.com/mindaugasb/ltsieve/internal/config"
	"github.com/mindaugasb/ltsieve/internal/log"
	"github.com/mindaugasb/ltsieve/internal/suffix"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
}

// loadConfigOrFail loads configuration from file without validating it.
func loadConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	return cfg, nil
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := loadConfigOrFail(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// buildClassifier constructs the classifier described by the configuration:
// the retention policy plus either the compiled-in public suffix list or a
// pinned snapshot file.
func buildClassifier(cfg *config.Config) (*classify.Classifier, error) {
	policy := classify.NewPolicy(cfg.Policy.SecondLevelNames, cfg.Policy.CompoundSuffixes)

	var splitter suffix.Splitter = suffix.NewPSLSplitter()
	if path := cfg.GetAbsPublicSuffixPath(); path != "" {
		s, err := suffix.NewPSLSplitterFromFile(path)
		if err != nil {
			return nil, err
		}
		log.Debugf("Using public suffix snapshot from %s", path)
		splitter = s
	}

	return classify.New(policy, splitter), nil
}

// applyPathOverride replaces target with a command line path value. Paths
// are resolved against the working directory so overrides do not inherit
// config-file-relative resolution. The "-" sentinel is kept as-is.
func applyPathOverride(target *string, value string) error {
	if value == "" {
		return nil
	}
	if value == config.StdStream {
		*target = value
		return nil
	}

	abs, err := filepath.Abs(value)
	if err != nil {
		return fmt.Errorf("failed to resolve path '%s': %v", value, err)
	}
	*target = abs
	return nil
}
