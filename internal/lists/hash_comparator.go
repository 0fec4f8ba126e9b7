package lists

import (
	"errors"
	"io"
	"os"

	"github.com/mindaugasb/ltsieve/internal/hashing"
	"github.com/mindaugasb/ltsieve/internal/log"
	"github.com/mindaugasb/ltsieve/internal/utils"
)

// ChecksumFileSuffix is appended to the accepted output path to form the
// checksum sidecar that records which input produced that output.
const ChecksumFileSuffix = ".md5"

// IsOutputStale reports whether outputPath needs to be regenerated for the
// input summarized by checksumProxy. A missing output or an unreadable
// sidecar always counts as stale.
func IsOutputStale(checksumProxy hashing.ChecksumProvider, outputPath string) (bool, error) {
	if _, err := os.Stat(outputPath); errors.Is(err, os.ErrNotExist) {
		return true, nil
	}

	md5, err := checksumProxy.GetChecksum()
	if err != nil {
		return false, err
	}

	checksumFilePath := outputPath + ChecksumFileSuffix
	checksum, err := readChecksum(checksumFilePath)
	if err != nil {
		log.Debugf("Failed to read checksum file '%s', assuming input has changed: %v", checksumFilePath, err)
		return true, nil
	}

	return string(checksum) != md5, nil
}

func readChecksum(checksumFilePath string) ([]byte, error) {
	checksumFile, err := os.Open(checksumFilePath)
	if err != nil {
		return nil, err
	}
	defer utils.CloseOrWarn(checksumFile)

	return io.ReadAll(checksumFile)
}

// WriteChecksum records the input checksum in the sidecar next to outputPath.
func WriteChecksum(checksumProxy hashing.ChecksumProvider, outputPath string) error {
	checksum, err := checksumProxy.GetChecksum()
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath+ChecksumFileSuffix, []byte(checksum), 0644)
}
