// Package suffix decomposes hostnames around their public suffix.
//
// The classifier needs to know, for a candidate hostname, which part is the
// public suffix (e.g. "lt", "gov.lt"), which label is the registrable
// domain, and what subdomain depth remains. This package provides that as
// the Splitter interface, with an implementation backed by the public
// suffix list (https://publicsuffix.org).
//
// # Lookup Semantics
//
// Private-section rules (e.g. "github.io") are ignored: a name under a
// private suffix decomposes against its ICANN suffix instead. There is no
// wildcard fallback rule, so names under TLDs absent from the list do not
// split at all; callers treat that as an invalid suffix.
//
// # Example Usage
//
//	s := suffix.NewPSLSplitter()
//	parts, ok := s.Split("lrs.lrv.lt")
//	// ok == true, parts == {Subdomain: "lrs", Domain: "lrv", Suffix: "lt"}
//
// A snapshot file can be used instead of the compiled-in list:
//
//	s, err := suffix.NewPSLSplitterFromFile("/etc/ltsieve/public_suffix_list.dat")
package suffix
