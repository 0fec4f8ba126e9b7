package config

import (
	"fmt"
	"io"
	"net"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"

	"github.com/mindaugasb/ltsieve/internal/utils"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "required_with":
		return fmt.Sprintf("field is required when %s is set", e.Param())
	case "min":
		return fmt.Sprintf("must contain >= %s entries", e.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "domain_label":
		return "must be a single domain label [a-z0-9-], no dots"
	case "domain_suffix":
		return "must be a dotted domain suffix (e.g. gov.lt)"
	case "reject_template":
		return "must be a valid template (placeholders: {{line}}, {{reason}}, {{raw}})"
	case "dns_upstream":
		return "must be a valid DNS upstream (ip or ip#port, IPv6 must be in square brackets)"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For list entries: the offending value (e.g., "Gov.LT")
	FieldPath string // Dot-notation field path (e.g., "general.input", "policy.compound_suffixes")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("domain_label", validateDomainLabel); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("domain_suffix", validateDomainSuffix); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("reject_template", validateRejectTemplate); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("dns_upstream", validateDNSUpstreamTag); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: single domain label (no dots)
func validateDomainLabel(fl validator.FieldLevel) bool {
	return domainLabelRegexp.MatchString(strings.ToLower(fl.Field().String()))
}

// Custom validator: dotted, multi-label domain suffix
func validateDomainSuffix(fl validator.FieldLevel) bool {
	return domainSuffixRegexp.MatchString(strings.ToLower(fl.Field().String()))
}

// Custom validator: rejection line template compiles and references only
// known placeholders
func validateRejectTemplate(fl validator.FieldLevel) bool {
	tmpl, err := fasttemplate.NewTemplate(fl.Field().String(), "{{", "}}")
	if err != nil {
		return false
	}

	valid := true
	_ = tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		switch tag {
		case REJECT_TMPL_LINE, REJECT_TMPL_REASON, REJECT_TMPL_RAW:
		default:
			valid = false
		}
		return 0, nil
	})
	return valid
}

// Custom validator: DNS upstream format (ip or ip#port, IPv6 must be in square brackets)
func validateDNSUpstreamTag(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	// Check if it contains a port
	if portIndex := strings.LastIndex(value, "#"); portIndex != -1 {
		ip := value[:portIndex]
		port := value[portIndex+1:]
		return validateIPAddress(ip) && utils.IsValidPort(port)
	}
	return validateIPAddress(value)
}

// validateIPAddress validates IP address with IPv6 in square brackets
func validateIPAddress(value string) bool {
	// Check if it's in square brackets (IPv6 format)
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		addr := strings.Trim(value, "[]")
		ip := net.ParseIP(addr)
		return ip != nil && ip.To4() == nil
	}

	// Without brackets, must be IPv4
	ip := net.ParseIP(value)
	return ip != nil && ip.To4() != nil
}
