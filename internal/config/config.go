package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/mindaugasb/ltsieve/internal/log"
)

var (
	domainLabelRegexp  = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	domainSuffixRegexp = regexp.MustCompile(`^[a-z0-9-]+(\.[a-z0-9-]+)+$`)
)

const (
	REJECT_TMPL_LINE   = "line"
	REJECT_TMPL_REASON = "reason"
	REJECT_TMPL_RAW    = "raw"
)

// DefaultRejectTemplate renders rejection entries in the canonical
// "Line <n>: <reason> | <original text>" form.
const DefaultRejectTemplate = "Line {{line}}: {{reason}} | {{raw}}"

// DefaultConfig returns the built-in configuration: conventional file names
// in the working directory and the standard Lithuanian government policy.
func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: 1,
		General: &GeneralConfig{
			Input:                   "domains.txt",
			AcceptedOutput:          "accepted.txt",
			RejectedOutput:          "rejected.log",
			SkipUnchanged:           true,
			ProgressIntervalSeconds: 5,
		},
		Policy: &PolicyConfig{
			SecondLevelNames: []string{"lrv", "edu", "mil"},
			CompoundSuffixes: []string{"lrv.lt", "edu.lt", "mil.lt", "gov.lt"},
		},
		Rejects: &RejectsConfig{
			LineTemplate: DefaultRejectTemplate,
		},
		Export: &ExportConfig{
			DnsmasqUpstream: "127.0.0.1#5353",
			RPZTTLSeconds:   300,
		},
	}
}

// LoadConfig reads the TOML configuration at configPath on top of the
// built-in defaults. A missing file is not an error: the defaults apply and
// relative paths resolve against the working directory.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	config := DefaultConfig()

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Debugf("Configuration file not found: %s, using built-in defaults", configFile)
		return config, nil
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := toml.Unmarshal(content, config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Input list path: %s", config.GetAbsInputPath())

	return config, nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
