package lists

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/valyala/fasttemplate"

	"github.com/mindaugasb/ltsieve/internal/classify"
	"github.com/mindaugasb/ltsieve/internal/config"
)

// Rejection is a single refused input line together with its position and
// the reason it was refused.
type Rejection struct {
	Line   int
	Reason classify.ReasonCode
	Raw    string
}

// RejectionWriter streams rejection log entries in input order, rendering
// each one through the configured line template.
type RejectionWriter struct {
	template *fasttemplate.Template
	buffer   *bufio.Writer
	count    int
}

func NewRejectionWriter(w io.Writer, lineTemplate string) (*RejectionWriter, error) {
	template, err := fasttemplate.NewTemplate(lineTemplate, "{{", "}}")
	if err != nil {
		return nil, fmt.Errorf("failed to parse rejection line template: %v", err)
	}

	return &RejectionWriter{
		template: template,
		buffer:   bufio.NewWriter(w),
	}, nil
}

func (rw *RejectionWriter) Write(rejection Rejection) error {
	if _, err := rw.template.ExecuteFunc(rw.buffer, func(w io.Writer, tag string) (int, error) {
		switch tag {
		case config.REJECT_TMPL_LINE:
			return io.WriteString(w, strconv.Itoa(rejection.Line))
		case config.REJECT_TMPL_REASON:
			return io.WriteString(w, rejection.Reason.String())
		case config.REJECT_TMPL_RAW:
			return io.WriteString(w, rejection.Raw)
		default:
			return 0, nil
		}
	}); err != nil {
		return fmt.Errorf("failed to write rejection log entry: %v", err)
	}

	if err := rw.buffer.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write rejection log entry: %v", err)
	}

	rw.count++
	return nil
}

func (rw *RejectionWriter) Count() int {
	return rw.count
}

func (rw *RejectionWriter) Flush() error {
	return rw.buffer.Flush()
}
