// Package classify turns raw domain-like strings into canonical .lt domains.
//
// This is the core of ltsieve. A single pure function, Classify, takes one
// line of input (a bare domain, a URL, an IP, or garbage) and produces
// either an accepted canonical domain or a rejection reason. All policy
// lives here: URL unwrapping, trailing-dot and www stripping, character
// validation, IP detection, public-suffix splitting, and the Lithuanian
// government subdomain-retention rules.
//
// # Classification Pipeline
//
// Input passes through a fixed sequence of normalization and filter steps;
// the order is part of the contract, since it decides outcomes on
// pathological input ("www.www.alfa.lt" keeps one www as a subdomain,
// "http://192.168.1.1/x" is an IP address, not an invalid character soup).
//
// # Retention Policy
//
// Domains under government suffixes (gov.lt and friends) and government
// second-level names (lrv.lt, edu.lt, mil.lt) keep their full subdomain
// chain. Commercial .lt domains are accepted only at the registrable level;
// a subdomain there is a rejection, not something to strip. Everything
// outside .lt is rejected.
//
// # Example Usage
//
//	cl := classify.New(classify.DefaultPolicy(), suffix.NewPSLSplitter())
//
//	cl.Classify("https://www.Example.LT/path") // Accepted "example.lt"
//	cl.Classify("lrs.lrv.lt")                  // Accepted "lrs.lrv.lt"
//	cl.Classify("blog.debesyla.lt")            // Rejected: non-govt subdomain
//	cl.Classify("example.com")                 // Rejected: non-.lt domain
//
// Classify never fails: every string input yields a defined Result.
package classify
