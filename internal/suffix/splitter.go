package suffix

// Parts is the decomposition of a hostname around its public suffix.
//
// Subdomain holds everything left of the registrable label, joined by dots
// (empty if none). Domain is the registrable label itself. Suffix is the
// matched public suffix, which may span multiple labels (e.g. "gov.lt").
type Parts struct {
	Subdomain string
	Domain    string
	Suffix    string
}

// Splitter decomposes a hostname into (subdomain, domain, suffix).
//
// Split returns ok == false when the hostname cannot be decomposed: no
// public suffix rule matches it, it is itself a bare suffix, or no
// registrable label is present. Implementations must not perform any
// network access.
type Splitter interface {
	Split(hostname string) (Parts, bool)
}
