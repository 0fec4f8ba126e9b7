package config

import (
	"path/filepath"

	"github.com/mindaugasb/ltsieve/internal/utils"
)

// StdStream is the path value that selects stdin/stdout instead of a file.
const StdStream = "-"

type Config struct {
	// ConfigVersion is the configuration file version.
	ConfigVersion uint8 `toml:"config_version"`
	// General holds input/output paths and run behavior.
	General *GeneralConfig `toml:"general"`
	// Policy holds the government-domain retention rules.
	Policy *PolicyConfig `toml:"policy"`
	// Rejects controls the rejection log rendering.
	Rejects *RejectsConfig `toml:"rejects"`
	// Export configures optional artifacts derived from the accepted set.
	Export *ExportConfig `toml:"export,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// Input is the raw domain list to read, one candidate per line ("-" reads stdin).
	Input string `toml:"input" validate:"required"`
	// AcceptedOutput is where the sorted accepted set is written ("-" writes stdout).
	AcceptedOutput string `toml:"accepted_output" validate:"required"`
	// RejectedOutput is where the rejection log is written ("-" writes stdout).
	RejectedOutput string `toml:"rejected_output" validate:"required"`
	// SkipUnchanged skips the run when the input checksum matches the previous run (default: true).
	SkipUnchanged bool `toml:"skip_unchanged"`
	// ProgressIntervalSeconds is the minimum interval between progress log lines (0 = disabled, default: 5).
	ProgressIntervalSeconds int `toml:"progress_interval_seconds" validate:"gte=0"`
}

type PolicyConfig struct {
	// SecondLevelNames are government-reserved registrable labels directly under .lt (default: lrv, edu, mil).
	SecondLevelNames []string `toml:"second_level_names" validate:"required,min=1,dive,domain_label"`
	// CompoundSuffixes are multi-label public suffixes treated as government space (default: lrv.lt, edu.lt, mil.lt, gov.lt).
	CompoundSuffixes []string `toml:"compound_suffixes" validate:"required,min=1,dive,domain_suffix"`
	// PublicSuffixFile is an optional local public suffix list snapshot; empty uses the compiled-in list.
	PublicSuffixFile string `toml:"public_suffix_file,omitempty"`
}

type RejectsConfig struct {
	// LineTemplate renders one rejection log entry. Available variables: {{line}}, {{reason}}, {{raw}}.
	LineTemplate string `toml:"line_template" validate:"required,reject_template"`
}

type ExportConfig struct {
	// DnsmasqOutput is the dnsmasq server-directive file to generate from the accepted set (empty disables).
	DnsmasqOutput string `toml:"dnsmasq_output,omitempty"`
	// DnsmasqUpstream is the DNS upstream for generated directives. Format: ip or ip#port (e.g. 127.0.0.1#5353).
	DnsmasqUpstream string `toml:"dnsmasq_upstream" validate:"required_with=DnsmasqOutput,omitempty,dns_upstream"`
	// RPZOutput is the response-policy-zone passthru fragment to generate (empty disables).
	RPZOutput string `toml:"rpz_output,omitempty"`
	// RPZTTLSeconds is the TTL for generated RPZ records (default: 300).
	RPZTTLSeconds uint32 `toml:"rpz_ttl_seconds" validate:"gte=0,lte=604800"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// resolvePath keeps the stdin/stdout sentinel and empty values as-is and
// resolves everything else against the config file directory.
func (c *Config) resolvePath(path string) string {
	if path == "" || path == StdStream {
		return path
	}
	return utils.GetAbsolutePath(path, c.GetConfigDir())
}

func (c *Config) GetAbsInputPath() string {
	return c.resolvePath(c.General.Input)
}

func (c *Config) GetAbsAcceptedPath() string {
	return c.resolvePath(c.General.AcceptedOutput)
}

func (c *Config) GetAbsRejectedPath() string {
	return c.resolvePath(c.General.RejectedOutput)
}

func (c *Config) GetAbsPublicSuffixPath() string {
	if c.Policy == nil {
		return ""
	}
	return c.resolvePath(c.Policy.PublicSuffixFile)
}

func (c *Config) GetAbsDnsmasqPath() string {
	if c.Export == nil {
		return ""
	}
	return c.resolvePath(c.Export.DnsmasqOutput)
}

func (c *Config) GetAbsRPZPath() string {
	if c.Export == nil {
		return ""
	}
	return c.resolvePath(c.Export.RPZOutput)
}
