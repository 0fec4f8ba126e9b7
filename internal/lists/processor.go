package lists

import (
	"bufio"
	"io"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mindaugasb/ltsieve/internal/classify"
	"github.com/mindaugasb/ltsieve/internal/errors"
	"github.com/mindaugasb/ltsieve/internal/log"
)

// Stats aggregates the outcome counts of a single processing run.
type Stats struct {
	TotalLines int
	BlankLines int
	Accepted   int
	Duplicates int
	Rejected   int
	ByReason   map[classify.ReasonCode]int
}

// Processor folds raw input lines into the accepted domain store and the
// rejection log. Line numbers count every physical input line, blank lines
// included, so rejection log positions match the source file.
type Processor struct {
	classifier *classify.Classifier
	store      *DomainStore
	rejections *RejectionWriter
	progress   *rate.Sometimes
	stats      Stats
}

func NewProcessor(classifier *classify.Classifier, store *DomainStore, rejections *RejectionWriter, progressInterval time.Duration) *Processor {
	p := &Processor{
		classifier: classifier,
		store:      store,
		rejections: rejections,
		stats: Stats{
			ByReason: make(map[classify.ReasonCode]int),
		},
	}

	if progressInterval > 0 {
		p.progress = &rate.Sometimes{Interval: progressInterval}
		// Sometimes always fires on its first Do call
		p.progress.Do(func() {})
	}

	return p
}

// Run consumes input line by line until EOF and returns the run statistics.
func (p *Processor) Run(input io.Reader) (*Stats, error) {
	startTime := time.Now().UnixMilli()

	lineNo := 0
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lineNo++
		if err := p.processLine(lineNo, scanner.Text()); err != nil {
			return nil, err
		}

		if p.progress != nil {
			p.progress.Do(func() {
				log.Infof("Processed %d lines (%d accepted, %d rejected)...", lineNo, p.stats.Accepted, p.stats.Rejected)
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewInputError("failed to read input list", err)
	}

	p.stats.TotalLines = lineNo
	log.Debugf("Classified %d lines in %dms", lineNo, time.Now().UnixMilli()-startTime)

	return &p.stats, nil
}

func (p *Processor) processLine(lineNo int, raw string) error {
	// Blank lines are skipped without a rejection log entry, but they still
	// advance the line counter.
	if strings.TrimSpace(raw) == "" {
		p.stats.BlankLines++
		return nil
	}

	result := p.classifier.Classify(raw)

	if result.Accepted {
		if p.store.Add(result.Domain) {
			p.stats.Accepted++
		} else {
			p.stats.Duplicates++
		}
		return nil
	}

	p.stats.Rejected++
	p.stats.ByReason[result.Reason]++

	return p.rejections.Write(Rejection{
		Line:   lineNo,
		Reason: result.Reason,
		Raw:    raw,
	})
}
