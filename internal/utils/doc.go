// Package utils provides general-purpose utility functions for ltsieve.
//
// This package contains small helpers used across the application:
// path handling and safe file operations.
//
// # Example Usage
//
// Path resolution:
//
//	absPath := utils.GetAbsolutePath("lists/domains.txt", "/etc/ltsieve")
//	// Returns: /etc/ltsieve/lists/domains.txt
//
// Safe file closing in deferred calls:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer utils.CloseOrPanic(f)
package utils
