package lists

import (
	"bufio"
	"fmt"
	"io"

	"github.com/miekg/dns"
)

// WriteDnsmasqConfig writes a dnsmasq configuration fragment that forwards
// queries for every accepted domain (and its subdomains) to upstream.
// Upstream is an address in dnsmasq notation, e.g. "127.0.0.1#5353".
func WriteDnsmasqConfig(w io.Writer, store *DomainStore, upstream string) error {
	buffer := bufio.NewWriter(w)

	for _, domain := range store.Sorted() {
		if _, err := fmt.Fprintf(buffer, "server=/%s/%s\n", domain, upstream); err != nil {
			return fmt.Errorf("failed to write dnsmasq directive: %v", err)
		}
	}

	return buffer.Flush()
}

// WriteRPZFragment writes response policy zone records that pass queries for
// every accepted domain through unfiltered. The output is a zone fragment
// meant to be $INCLUDEd into a policy zone, not a loadable zone by itself.
func WriteRPZFragment(w io.Writer, store *DomainStore, ttl uint32) error {
	buffer := bufio.NewWriter(w)

	for _, domain := range store.Sorted() {
		rr := &dns.CNAME{
			Hdr: dns.RR_Header{
				Name:   dns.Fqdn(domain),
				Rrtype: dns.TypeCNAME,
				Class:  dns.ClassINET,
				Ttl:    ttl,
			},
			Target: "rpz-passthru.",
		}

		if _, err := fmt.Fprintln(buffer, rr.String()); err != nil {
			return fmt.Errorf("failed to write RPZ record: %v", err)
		}
	}

	return buffer.Flush()
}
