package lists

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mindaugasb/ltsieve/internal/classify"
	"github.com/mindaugasb/ltsieve/internal/config"
	"github.com/mindaugasb/ltsieve/internal/errors"
	"github.com/mindaugasb/ltsieve/internal/hashing"
	"github.com/mindaugasb/ltsieve/internal/log"
	"github.com/mindaugasb/ltsieve/internal/utils"
)

// Result reports what a pipeline run did.
type Result struct {
	Stats   *Stats
	Skipped bool
}

// RunPipeline classifies every line of the configured input list and writes
// the accepted set, the rejection log and any configured export artifacts.
// When skip_unchanged is enabled, the input checksum matches the previous
// run and both primary artifacts still exist, the whole run is skipped
// unless force is set.
func RunPipeline(cfg *config.Config, classifier *classify.Classifier, force bool) (*Result, error) {
	startTime := time.Now().UnixMilli()

	inputPath := cfg.GetAbsInputPath()
	acceptedPath := cfg.GetAbsAcceptedPath()
	rejectedPath := cfg.GetAbsRejectedPath()

	gateEnabled := cfg.General.SkipUnchanged &&
		inputPath != config.StdStream &&
		acceptedPath != config.StdStream

	var inputChecksum hashing.ChecksumProvider
	if gateEnabled {
		proxy, err := hashInputFile(inputPath)
		if err != nil {
			return nil, err
		}
		inputChecksum = proxy

		if force {
			log.Debugf("Forced run, ignoring input change detection")
		} else if stale, err := IsOutputStale(proxy, acceptedPath); err != nil {
			return nil, err
		} else if !stale && outputPresent(rejectedPath) {
			log.Infof("Input list '%s' is unchanged since the previous run, skipping", inputPath)
			return &Result{Skipped: true}, nil
		}
	}

	input := os.Stdin
	if inputPath != config.StdStream {
		file, err := os.Open(inputPath)
		if err != nil {
			return nil, errors.NewInputError(fmt.Sprintf("failed to open input list '%s'", inputPath), err)
		}
		defer utils.CloseOrPanic(file)
		input = file
	}

	rejectedOut := os.Stdout
	if rejectedPath != config.StdStream {
		file, err := os.Create(rejectedPath)
		if err != nil {
			return nil, errors.NewOutputError(fmt.Sprintf("failed to create rejection log '%s'", rejectedPath), err)
		}
		defer utils.CloseOrWarn(file)
		rejectedOut = file
	}

	rejections, err := NewRejectionWriter(rejectedOut, cfg.Rejects.LineTemplate)
	if err != nil {
		return nil, errors.NewConfigError("invalid rejection line template", err)
	}

	store := CreateDomainStore()
	progressInterval := time.Duration(cfg.General.ProgressIntervalSeconds) * time.Second
	processor := NewProcessor(classifier, store, rejections, progressInterval)

	stats, err := processor.Run(input)
	if err != nil {
		return nil, err
	}

	if err := rejections.Flush(); err != nil {
		return nil, errors.NewOutputError("failed to flush rejection log", err)
	}

	if err := writeAcceptedDomains(acceptedPath, store); err != nil {
		return nil, err
	}

	if err := writeExports(cfg, store); err != nil {
		return nil, err
	}

	if inputChecksum != nil {
		if err := WriteChecksum(inputChecksum, acceptedPath); err != nil {
			return nil, errors.NewOutputError("failed to write input checksum", err)
		}
	}

	logSummary(stats, time.Now().UnixMilli()-startTime)

	return &Result{Stats: stats}, nil
}

// outputPresent reports whether an output artifact already exists. The
// stdout sentinel always counts as present.
func outputPresent(path string) bool {
	if path == config.StdStream {
		return true
	}
	_, err := os.Stat(path)
	return err == nil
}

// hashInputFile reads the whole input once to compute its checksum.
func hashInputFile(path string) (hashing.ChecksumProvider, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to open input list '%s'", path), err)
	}
	defer utils.CloseOrWarn(file)

	proxy := hashing.NewMD5ReaderProxy(file)
	if _, err := io.Copy(io.Discard, proxy); err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to hash input list '%s'", path), err)
	}

	return proxy, nil
}

// writeToPath runs write against the file at path, creating it first.
// The "-" path selects stdout and creates nothing.
func writeToPath(path string, write func(io.Writer) error) error {
	if path == config.StdStream {
		return write(os.Stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to create output file '%s'", path), err)
	}
	defer utils.CloseOrWarn(file)

	return write(file)
}

func writeAcceptedDomains(path string, store *DomainStore) error {
	return writeToPath(path, func(w io.Writer) error {
		buffer := bufio.NewWriter(w)
		for _, domain := range store.Sorted() {
			if _, err := buffer.WriteString(domain); err != nil {
				return errors.NewOutputError("failed to write accepted domain", err)
			}
			if err := buffer.WriteByte('\n'); err != nil {
				return errors.NewOutputError("failed to write accepted domain", err)
			}
		}
		if err := buffer.Flush(); err != nil {
			return errors.NewOutputError("failed to flush accepted output", err)
		}
		return nil
	})
}

func writeExports(cfg *config.Config, store *DomainStore) error {
	if cfg.Export == nil {
		return nil
	}

	if path := cfg.GetAbsDnsmasqPath(); path != "" {
		err := writeToPath(path, func(w io.Writer) error {
			if err := WriteDnsmasqConfig(w, store, cfg.Export.DnsmasqUpstream); err != nil {
				return errors.NewOutputError("failed to generate dnsmasq config", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Infof("Wrote dnsmasq config with %d domains to %s", store.Count(), path)
	}

	if path := cfg.GetAbsRPZPath(); path != "" {
		err := writeToPath(path, func(w io.Writer) error {
			if err := WriteRPZFragment(w, store, cfg.Export.RPZTTLSeconds); err != nil {
				return errors.NewOutputError("failed to generate RPZ fragment", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Infof("Wrote RPZ fragment with %d records to %s", store.Count(), path)
	}

	return nil
}

func logSummary(stats *Stats, elapsedMs int64) {
	log.Infof("Processed %d lines in %dms", stats.TotalLines, elapsedMs)
	log.Infof("  accepted: %d unique domains (%d duplicates dropped)", stats.Accepted, stats.Duplicates)
	log.Infof("  rejected: %d", stats.Rejected)
	for _, reason := range classify.Reasons() {
		if count := stats.ByReason[reason]; count > 0 {
			log.Infof("    %s: %d", reason, count)
		}
	}
	if stats.BlankLines > 0 {
		log.Infof("  blank lines skipped: %d", stats.BlankLines)
	}
}
