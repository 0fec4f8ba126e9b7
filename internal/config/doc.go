// Package config handles configuration file parsing and validation for ltsieve.
//
// This package reads TOML configuration files and provides strongly-typed
// structures for accessing configuration data. A missing configuration file
// is not an error: built-in defaults cover every setting, so the tool works
// out of the box and the file only overrides what it names.
//
// # Configuration Structure
//
// The configuration file defines:
//   - General settings (input list, accepted/rejected output paths, run behavior)
//   - Policy settings (government-reserved names, compound suffixes, optional
//     public suffix list snapshot)
//   - Rejection log rendering (line template)
//   - Optional export artifacts (dnsmasq directives, RPZ zone fragment)
//
// # Supported Features
//
//   - TOML format with automatic type conversion
//   - Partial files merged over built-in defaults
//   - "-" as a path value to select stdin/stdout
//   - Paths resolved relative to the configuration file directory
//   - Template variable validation for the rejection log
//
// # Example Usage
//
// Loading and validating a configuration file:
//
//	cfg, err := config.LoadConfig("ltsieve.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatal(err)
//	}
//
// Accessing configuration:
//
//	fmt.Printf("Input: %s\n", cfg.GetAbsInputPath())
//	for _, suffix := range cfg.Policy.CompoundSuffixes {
//	    fmt.Printf("  Government suffix: %s\n", suffix)
//	}
//
// Validation failures are collected and reported together, each with the
// TOML field path that caused it.
package config
