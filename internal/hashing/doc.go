// Package hashing provides MD5 checksum calculation utilities.
//
// This package implements a transparent proxy for calculating MD5 checksums
// of data streams. It's used for detecting changes in the input list between
// runs, so that an unchanged input doesn't trigger rewriting the output
// artifacts.
//
// # Components
//
//   - ChecksumReaderProxy: Calculates MD5 while reading from an io.Reader
//   - ChecksumProvider: Interface for types that provide checksums
//
// # Example Usage
//
// Calculating a checksum while scanning an input file:
//
//	f, _ := os.Open(path)
//	defer f.Close()
//
//	proxy := hashing.NewMD5ReaderProxy(f)
//	scanner := bufio.NewScanner(proxy)
//	for scanner.Scan() {
//	    // process scanner.Text()
//	}
//
//	checksum, _ := proxy.GetChecksum()
//	fmt.Printf("Input MD5: %s\n", checksum)
//
// The proxy pattern allows checksum calculation without changing existing
// code that works with io.Reader interfaces. The checksum is computed
// incrementally as data is read, making it memory-efficient for large streams.
package hashing
