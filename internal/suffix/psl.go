package suffix

import (
	"fmt"
	"os"

	"github.com/weppos/publicsuffix-go/publicsuffix"

	"github.com/mindaugasb/ltsieve/internal/errors"
	"github.com/mindaugasb/ltsieve/internal/utils"
)

// PSL is a Splitter backed by a public suffix list.
//
// Lookups ignore rules from the private section of the list and use no
// wildcard fallback rule, so a hostname under an unlisted TLD fails the
// split instead of having its last label treated as a suffix.
type PSL struct {
	list    *publicsuffix.List
	options *publicsuffix.FindOptions
}

// NewPSLSplitter returns a Splitter backed by the public suffix list
// compiled into the binary.
func NewPSLSplitter() *PSL {
	return &PSL{
		list: publicsuffix.DefaultList,
		options: &publicsuffix.FindOptions{
			IgnorePrivate: true,
			DefaultRule:   nil,
		},
	}
}

// NewPSLSplitterFromFile returns a Splitter backed by a public suffix list
// snapshot read from a local file (ICANN rules only). Pinning a snapshot
// makes classification reproducible across runs regardless of the list
// version compiled into the binary.
func NewPSLSplitterFromFile(path string) (*PSL, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewSuffixDataError(
			fmt.Sprintf("failed to open public suffix file %s", path), err)
	}
	defer utils.CloseOrWarn(f)

	list := publicsuffix.NewList()
	if _, err := list.Load(f, &publicsuffix.ParserOption{PrivateDomains: false}); err != nil {
		return nil, errors.NewSuffixDataError(
			fmt.Sprintf("failed to parse public suffix file %s", path), err)
	}

	return &PSL{
		list: list,
		options: &publicsuffix.FindOptions{
			IgnorePrivate: true,
			DefaultRule:   nil,
		},
	}, nil
}

// Split decomposes hostname into (subdomain, domain, suffix).
//
// ok is false when no suffix rule matches, the hostname equals a bare
// suffix, or the registrable label is empty (e.g. "alfa..lt").
func (s *PSL) Split(hostname string) (Parts, bool) {
	dn, err := publicsuffix.ParseFromListWithOptions(s.list, hostname, s.options)
	if err != nil || dn.SLD == "" || dn.TLD == "" {
		return Parts{}, false
	}

	return Parts{
		Subdomain: dn.TRD,
		Domain:    dn.SLD,
		Suffix:    dn.TLD,
	}, true
}
