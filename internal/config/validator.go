package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	// Validate general config
	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	// Use validator to validate General config
	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
	}

	validationErrors = append(validationErrors, c.validateOutputPaths()...)

	// Validate Policy
	if c.Policy == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "policy",
			Message:   "configuration must contain 'policy' section",
		})
	} else {
		validationErrors = append(validationErrors, c.validatePolicy()...)
	}

	// Validate Rejects
	if c.Rejects == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "rejects",
			Message:   "configuration must contain 'rejects' section",
		})
	} else if err := validate.Struct(c.Rejects); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "rejects", "")...)
	}

	// Validate Export (optional section)
	if c.Export != nil {
		if err := validate.Struct(c.Export); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "export", "")...)
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// validateOutputPaths rejects configurations where two streams would end up
// clobbering the same file.
func (c *Config) validateOutputPaths() ValidationErrors {
	var validationErrors ValidationErrors

	accepted := c.GetAbsAcceptedPath()
	rejected := c.GetAbsRejectedPath()
	input := c.GetAbsInputPath()

	if accepted != StdStream && accepted == rejected {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general.rejected_output",
			Message:   "accepted_output and rejected_output must be different files",
		})
	}
	if input != StdStream && input != "" {
		if input == accepted {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "general.accepted_output",
				Message:   "accepted_output must not overwrite the input file",
			})
		}
		if input == rejected {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "general.rejected_output",
				Message:   "rejected_output must not overwrite the input file",
			})
		}
	}

	return validationErrors
}

func (c *Config) validatePolicy() ValidationErrors {
	var validationErrors ValidationErrors

	// Validate struct fields
	if err := validate.Struct(c.Policy); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "policy", "")...)
	}

	// Check duplicate second-level names
	seenNames := make(map[string]bool)
	for _, name := range c.Policy.SecondLevelNames {
		key := strings.ToLower(name)
		if seenNames[key] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  name,
				FieldPath: "policy.second_level_names",
				Message:   fmt.Sprintf("duplicate second-level name: %s", name),
			})
		}
		seenNames[key] = true
	}

	// Check duplicate compound suffixes
	seenSuffixes := make(map[string]bool)
	for _, suffix := range c.Policy.CompoundSuffixes {
		key := strings.ToLower(suffix)
		if seenSuffixes[key] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  suffix,
				FieldPath: "policy.compound_suffixes",
				Message:   fmt.Sprintf("duplicate compound suffix: %s", suffix),
			})
		}
		seenSuffixes[key] = true
	}

	// Validate public suffix snapshot exists if specified
	if c.Policy.PublicSuffixFile != "" {
		path := c.GetAbsPublicSuffixPath()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "policy.public_suffix_file",
				Message:   fmt.Sprintf("file does not exist: %s", path),
			})
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			message := getValidationMessage(e)

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   message,
			})
		}
	}

	return validationErrors
}
