// Package lists handles domain list processing for ltsieve.
//
// This package drives a complete run over a raw domain list: it reads the
// input line by line, classifies every candidate, collects the accepted
// domains into a deduplicated store and streams rejected lines into the
// rejection log. It also produces the optional export artifacts derived
// from the accepted set.
//
// # Outputs
//
// A run produces:
//
//   - Accepted set: unique canonical domains, one per line, sorted
//   - Rejection log: one templated entry per rejected line, in input order
//   - dnsmasq config: server directives for the accepted domains (optional)
//   - RPZ fragment: passthru records for the accepted domains (optional)
//
// # Features
//
//   - MD5 hash-based change detection (skip runs on unchanged input)
//   - "-" as input or output path to use stdin/stdout
//   - Blank lines skipped without rejection log entries
//   - Throttled progress reporting for large inputs
//
// # Example Usage
//
// Running the whole pipeline from configuration:
//
//	result, err := lists.RunPipeline(cfg, classifier, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Skipped {
//	    return
//	}
//	fmt.Printf("accepted %d domains\n", result.Stats.Accepted)
//
// Folding lines from an arbitrary reader:
//
//	store := lists.CreateDomainStore()
//	processor := lists.NewProcessor(classifier, store, rejections, 0)
//	stats, err := processor.Run(strings.NewReader(input))
//
// Line numbers in the rejection log count physical input lines, blank lines
// included, so they can be located in the source file.
package lists
