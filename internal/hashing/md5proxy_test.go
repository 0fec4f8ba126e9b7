package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
)

type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}

func TestNewMD5ReaderProxy(t *testing.T) {
	reader := strings.NewReader("test data")
	proxy := NewMD5ReaderProxy(reader)

	if proxy == nil {
		t.Error("Expected proxy to be non-nil")
		return
	}

	if proxy.reader != reader {
		t.Error("Expected reader to be set correctly")
	}

	if proxy.checksum == nil {
		t.Error("Expected checksum to be initialized")
	}
}

func TestChecksumReaderProxy_ReadAll(t *testing.T) {
	testData := "alfa.lt\nbeta.lt\n"
	reader := strings.NewReader(testData)
	proxy := NewMD5ReaderProxy(reader)

	allData, err := io.ReadAll(proxy)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if string(allData) != testData {
		t.Errorf("Expected '%s', got '%s'", testData, string(allData))
	}
}

func TestChecksumReaderProxy_ReadError(t *testing.T) {
	expectedErr := errors.New("read error")
	reader := &errorReader{err: expectedErr}
	proxy := NewMD5ReaderProxy(reader)

	buf := make([]byte, 10)
	_, err := proxy.Read(buf)

	if err != expectedErr {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
}

func TestChecksumReaderProxy_GetChecksum(t *testing.T) {
	testData := "alfa.lt\nbeta.lt\n"
	reader := strings.NewReader(testData)
	proxy := NewMD5ReaderProxy(reader)

	if _, err := io.ReadAll(proxy); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := proxy.GetChecksum()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	sum := md5.Sum([]byte(testData))
	expected := hex.EncodeToString(sum[:])

	if got != expected {
		t.Errorf("Expected checksum %s, got %s", expected, got)
	}
}

func TestChecksumReaderProxy_ChecksumMatchesPartialReads(t *testing.T) {
	testData := "the checksum must not depend on read chunking"

	whole := NewMD5ReaderProxy(strings.NewReader(testData))
	if _, err := io.ReadAll(whole); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	chunked := NewMD5ReaderProxy(strings.NewReader(testData))
	buf := make([]byte, 7)
	for {
		_, err := chunked.Read(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	wholeSum, _ := whole.GetChecksum()
	chunkedSum, _ := chunked.GetChecksum()

	if wholeSum != chunkedSum {
		t.Errorf("Expected equal checksums, got %s and %s", wholeSum, chunkedSum)
	}
}
