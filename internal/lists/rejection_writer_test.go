package lists

import (
	"bytes"
	"testing"

	"github.com/mindaugasb/ltsieve/internal/classify"
	"github.com/mindaugasb/ltsieve/internal/config"
)

func TestRejectionWriter_DefaultTemplate(t *testing.T) {
	var buf bytes.Buffer
	rw, err := NewRejectionWriter(&buf, config.DefaultRejectTemplate)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	err = rw.Write(Rejection{Line: 3, Reason: classify.IPAddress, Raw: "192.168.1.1"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := rw.Flush(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "Line 3: IP address | 192.168.1.1\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestRejectionWriter_CustomTemplate(t *testing.T) {
	var buf bytes.Buffer
	rw, err := NewRejectionWriter(&buf, "{{raw}}\t{{reason}}")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := rw.Write(Rejection{Line: 1, Reason: classify.NonLtDomain, Raw: "google.com"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := rw.Flush(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "google.com\tnon-.lt domain\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestRejectionWriter_UnknownPlaceholderRendersEmpty(t *testing.T) {
	var buf bytes.Buffer
	rw, err := NewRejectionWriter(&buf, "a{{bogus}}b")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := rw.Write(Rejection{Line: 1, Reason: classify.EmptyLine, Raw: "..."}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := rw.Flush(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if buf.String() != "ab\n" {
		t.Errorf("Expected unknown placeholder to render empty, got %q", buf.String())
	}
}

func TestRejectionWriter_InvalidTemplate(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewRejectionWriter(&buf, "Line {{line")
	if err == nil {
		t.Error("Expected error for unterminated template")
	}
}

func TestRejectionWriter_Count(t *testing.T) {
	var buf bytes.Buffer
	rw, err := NewRejectionWriter(&buf, config.DefaultRejectTemplate)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := rw.Write(Rejection{Line: i, Reason: classify.NonLtDomain, Raw: "example.com"}); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if rw.Count() != 3 {
		t.Errorf("Expected count 3, got %d", rw.Count())
	}
}
