package classify

// ReasonCode identifies why an input line was rejected.
//
// The set is closed: every non-accepted line maps to exactly one of these.
type ReasonCode uint8

const (
	// EmptyLine marks input that is empty after trimming whitespace and
	// trailing dots. The batch driver filters blank lines before
	// classification, so this mostly covers dots-only input like "...".
	EmptyLine ReasonCode = iota

	// IPAddress marks dotted-quad IPv4 input (e.g. "192.168.1.1").
	IPAddress

	// InvalidCharacters marks input containing characters outside the
	// hostname alphabet (letters, digits, hyphen, dot, underscore).
	InvalidCharacters

	// InvalidDomainSuffix marks input that cannot be decomposed around a
	// recognized public suffix (single labels, unknown TLDs, bare suffixes).
	InvalidDomainSuffix

	// NonGovtSubdomain marks a commercial .lt domain carrying a subdomain.
	NonGovtSubdomain

	// NonLtDomain marks a valid domain under a suffix other than .lt.
	NonLtDomain
)

var reasonLabels = map[ReasonCode]string{
	EmptyLine:           "empty line",
	IPAddress:           "IP address",
	InvalidCharacters:   "invalid characters",
	InvalidDomainSuffix: "invalid domain/suffix",
	NonGovtSubdomain:    "non-govt subdomain",
	NonLtDomain:         "non-.lt domain",
}

// String returns the short human-readable label used in the rejection log.
func (r ReasonCode) String() string {
	if label, ok := reasonLabels[r]; ok {
		return label
	}
	return "unknown"
}

// Reasons returns every rejection reason in definition order.
func Reasons() []ReasonCode {
	return []ReasonCode{
		EmptyLine,
		IPAddress,
		InvalidCharacters,
		InvalidDomainSuffix,
		NonGovtSubdomain,
		NonLtDomain,
	}
}
