package classify

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/mindaugasb/ltsieve/internal/suffix"
)

var (
	schemeRegexp     = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
	dottedQuadRegexp = regexp.MustCompile(`^\d+(\.\d+){3}$`)
)

// Result is the outcome of classifying one input line.
//
// When Accepted is true, Domain holds the canonical lowercase domain with
// no trailing dot. Otherwise Reason holds the rejection code.
type Result struct {
	Accepted bool
	Domain   string
	Reason   ReasonCode
}

// Policy holds the government-domain retention rules.
//
// SecondLevelNames are registrable labels directly under .lt that are
// government-reserved (subdomains of these are preserved). CompoundSuffixes
// are multi-label public suffixes treated as government space in their own
// right. All entries are lowercase.
type Policy struct {
	SecondLevelNames map[string]struct{}
	CompoundSuffixes map[string]struct{}
}

// NewPolicy builds a Policy from configuration values. Entries are
// lowercased so that policy matching stays case-insensitive regardless of
// how the configuration spells them.
func NewPolicy(secondLevelNames, compoundSuffixes []string) Policy {
	p := Policy{
		SecondLevelNames: make(map[string]struct{}, len(secondLevelNames)),
		CompoundSuffixes: make(map[string]struct{}, len(compoundSuffixes)),
	}
	for _, name := range secondLevelNames {
		p.SecondLevelNames[strings.ToLower(name)] = struct{}{}
	}
	for _, sfx := range compoundSuffixes {
		p.CompoundSuffixes[strings.ToLower(sfx)] = struct{}{}
	}
	return p
}

// DefaultPolicy returns the standard Lithuanian government policy:
// lrv/edu/mil as reserved second-level names and lrv.lt/edu.lt/mil.lt/gov.lt
// as reserved compound suffixes.
func DefaultPolicy() Policy {
	return NewPolicy(
		[]string{"lrv", "edu", "mil"},
		[]string{"lrv.lt", "edu.lt", "mil.lt", "gov.lt"},
	)
}

// Classifier normalizes raw domain-like strings into canonical .lt domains.
//
// It is a pure function over its input: no I/O, no shared mutable state.
// The same Classifier may be reused across any number of lines.
type Classifier struct {
	policy   Policy
	splitter suffix.Splitter
}

// New creates a Classifier with the given policy and suffix splitter.
func New(policy Policy, splitter suffix.Splitter) *Classifier {
	return &Classifier{
		policy:   policy,
		splitter: splitter,
	}
}

// Classify turns one raw input line into an accepted canonical domain or a
// rejection reason. Processing order matters and is fixed:
//
//  1. Trim whitespace, strip trailing dots; empty result rejects as EmptyLine.
//  2. Unwrap a URL down to its host. No host keeps the string unchanged.
//  3. Strip one leading "www." prefix, case-insensitive.
//  4. Dotted-quad IPv4 rejects as IPAddress.
//  5. Characters outside {letters, digits, '-', '.', '_'} reject as
//     InvalidCharacters. Punycode labels pass.
//  6. Lowercase.
//  7. Split around the public suffix; failure rejects as InvalidDomainSuffix.
//  8. Apply the government retention policy.
//
// Every input yields a defined Result; the function never fails.
func (c *Classifier) Classify(raw string) Result {
	host := strings.TrimSpace(raw)
	host = strings.TrimRight(host, ".")
	if host == "" {
		return rejected(EmptyLine)
	}

	host = extractURLHost(host)
	host = stripWWWPrefix(host)

	if dottedQuadRegexp.MatchString(host) {
		return rejected(IPAddress)
	}

	if !isHostnameAlphabet(host) {
		return rejected(InvalidCharacters)
	}

	host = strings.ToLower(host)

	parts, ok := c.splitter.Split(host)
	if !ok {
		return rejected(InvalidDomainSuffix)
	}

	if c.isGovernment(parts) {
		return accepted(joinParts(parts))
	}

	if parts.Suffix == "lt" {
		if parts.Subdomain != "" {
			// Commercial .lt domains are registrable-domain-only: subdomains
			// are rejected, not stripped.
			return rejected(NonGovtSubdomain)
		}
		return accepted(parts.Domain + "." + parts.Suffix)
	}

	return rejected(NonLtDomain)
}

// isGovernment reports whether parts fall under the government retention
// rules: a reserved compound suffix, or a reserved second-level name
// directly under .lt.
func (c *Classifier) isGovernment(parts suffix.Parts) bool {
	if _, ok := c.policy.CompoundSuffixes[parts.Suffix]; ok {
		return true
	}
	if parts.Suffix == "lt" {
		if _, ok := c.policy.SecondLevelNames[parts.Domain]; ok {
			return true
		}
	}
	return false
}

// extractURLHost unwraps a URL-shaped string down to its host component,
// dropping scheme, userinfo, port, path and query. Strings without a scheme
// prefix, and URLs that parse to an empty host, pass through unchanged.
func extractURLHost(s string) string {
	if !schemeRegexp.MatchString(s) {
		return s
	}

	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return s
	}
	return u.Hostname()
}

// stripWWWPrefix removes exactly one leading "www." label, case-insensitive.
func stripWWWPrefix(host string) string {
	if len(host) > 4 && strings.EqualFold(host[:4], "www.") {
		return host[4:]
	}
	return host
}

// isHostnameAlphabet reports whether every rune is a Unicode letter, a
// Unicode digit, or one of '-', '.', '_'. Invalid UTF-8 decodes to the
// replacement rune and fails the check.
func isHostnameAlphabet(s string) bool {
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
		case r == '-' || r == '.' || r == '_':
		default:
			return false
		}
	}
	return true
}

// joinParts rebuilds the canonical domain, preserving subdomain depth.
func joinParts(parts suffix.Parts) string {
	if parts.Subdomain != "" {
		return parts.Subdomain + "." + parts.Domain + "." + parts.Suffix
	}
	return parts.Domain + "." + parts.Suffix
}

func accepted(domain string) Result {
	return Result{Accepted: true, Domain: domain}
}

func rejected(reason ReasonCode) Result {
	return Result{Accepted: false, Reason: reason}
}
