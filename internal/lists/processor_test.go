package lists

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mindaugasb/ltsieve/internal/classify"
	"github.com/mindaugasb/ltsieve/internal/config"
	"github.com/mindaugasb/ltsieve/internal/suffix"
)

func testClassifier() *classify.Classifier {
	return classify.New(classify.DefaultPolicy(), suffix.NewPSLSplitter())
}

func runProcessor(t *testing.T, input string) (*Stats, *DomainStore, string) {
	t.Helper()

	var rejBuf bytes.Buffer
	rejections, err := NewRejectionWriter(&rejBuf, config.DefaultRejectTemplate)
	if err != nil {
		t.Fatalf("Failed to create rejection writer: %v", err)
	}

	store := CreateDomainStore()
	processor := NewProcessor(testClassifier(), store, rejections, 0)

	stats, err := processor.Run(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected processing error: %v", err)
	}
	if err := rejections.Flush(); err != nil {
		t.Fatalf("Failed to flush rejections: %v", err)
	}

	return stats, store, rejBuf.String()
}

func TestProcessor_Run(t *testing.T) {
	input := "vu.lt\n\nwww.delfi.lt\nvu.lt\n192.168.1.1\nshop.delfi.lt\n"

	stats, store, rejected := runProcessor(t, input)

	if stats.TotalLines != 6 {
		t.Errorf("Expected 6 total lines, got %d", stats.TotalLines)
	}
	if stats.BlankLines != 1 {
		t.Errorf("Expected 1 blank line, got %d", stats.BlankLines)
	}
	if stats.Accepted != 2 {
		t.Errorf("Expected 2 accepted domains, got %d", stats.Accepted)
	}
	if stats.Duplicates != 1 {
		t.Errorf("Expected 1 duplicate, got %d", stats.Duplicates)
	}
	if stats.Rejected != 2 {
		t.Errorf("Expected 2 rejected lines, got %d", stats.Rejected)
	}

	if !store.Contains("vu.lt") || !store.Contains("delfi.lt") {
		t.Errorf("Expected store to contain vu.lt and delfi.lt, got %v", store.Sorted())
	}

	expected := "Line 5: IP address | 192.168.1.1\n" +
		"Line 6: non-govt subdomain | shop.delfi.lt\n"
	if rejected != expected {
		t.Errorf("Expected rejection log:\n%s\ngot:\n%s", expected, rejected)
	}
}

func TestProcessor_LineNumbersCountBlankLines(t *testing.T) {
	input := "\n\n\ngoogle.com\n"

	_, _, rejected := runProcessor(t, input)

	if !strings.HasPrefix(rejected, "Line 4:") {
		t.Errorf("Expected rejection at physical line 4, got: %s", rejected)
	}
}

func TestProcessor_WhitespaceOnlyLinesSkipped(t *testing.T) {
	input := " \t \n\nvu.lt\n"

	stats, _, rejected := runProcessor(t, input)

	if stats.BlankLines != 2 {
		t.Errorf("Expected 2 blank lines, got %d", stats.BlankLines)
	}
	if rejected != "" {
		t.Errorf("Expected blank lines to be unlogged, got: %s", rejected)
	}
}

func TestProcessor_DotsOnlyLineIsLogged(t *testing.T) {
	input := "...\n"

	stats, _, rejected := runProcessor(t, input)

	if stats.BlankLines != 0 {
		t.Errorf("Expected dots-only line to reach the classifier, got %d blank lines", stats.BlankLines)
	}
	if rejected != "Line 1: empty line | ...\n" {
		t.Errorf("Expected dots-only line in rejection log, got: %s", rejected)
	}
}

func TestProcessor_GovernmentDomainsPreserveSubdomains(t *testing.T) {
	input := "osp.stat.gov.lt\nftp.lrv.lt\nwww.uzt.lrv.lt\n"

	stats, store, rejected := runProcessor(t, input)

	if rejected != "" {
		t.Errorf("Expected no rejections, got: %s", rejected)
	}
	if stats.Accepted != 3 {
		t.Errorf("Expected 3 accepted domains, got %d", stats.Accepted)
	}

	for _, domain := range []string{"osp.stat.gov.lt", "ftp.lrv.lt", "uzt.lrv.lt"} {
		if !store.Contains(domain) {
			t.Errorf("Expected store to contain %s, got %v", domain, store.Sorted())
		}
	}
}

func TestProcessor_ByReasonCounts(t *testing.T) {
	input := "google.com\nexample.org\n1.2.3.4\nbad_domain!\n"

	stats, _, _ := runProcessor(t, input)

	if stats.ByReason[classify.NonLtDomain] != 2 {
		t.Errorf("Expected 2 non-.lt rejections, got %d", stats.ByReason[classify.NonLtDomain])
	}
	if stats.ByReason[classify.IPAddress] != 1 {
		t.Errorf("Expected 1 IP rejection, got %d", stats.ByReason[classify.IPAddress])
	}
	if stats.ByReason[classify.InvalidCharacters] != 1 {
		t.Errorf("Expected 1 invalid characters rejection, got %d", stats.ByReason[classify.InvalidCharacters])
	}
}

func TestProcessor_RawLinePreservedInLog(t *testing.T) {
	input := "  HTTP://GOOGLE.COM/path  \n"

	_, _, rejected := runProcessor(t, input)

	if !strings.Contains(rejected, "|   HTTP://GOOGLE.COM/path  ") {
		t.Errorf("Expected original text preserved in rejection log, got: %s", rejected)
	}
}
