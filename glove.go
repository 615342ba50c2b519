package projector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ParseLine parses a GloVe line: a word followed by whitespace-separated
// float components.
func ParseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Record{}, fmt.Errorf("%w: expected a word and at least one component, got %d fields",
			ErrMalformedLine, len(fields))
	}

	vec := make([]float64, len(fields)-1)
	for idx, field := range fields[1:] {
		val, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: component %d: %q is not a number", ErrMalformedLine, idx+1, field)
		}
		vec[idx] = val
	}

	return Record{Word: fields[0], Vector: vec}, nil
}

// ReadGloVe reads a GloVe text dump. Malformed lines are logged and
// skipped. The result is reconciled to a single dimension, then truncated
// and normalized according to opts.
func ReadGloVe(r io.Reader, opts Options, logger logrus.FieldLogger) (*Corpus, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	lines, err := readLines(bufio.NewReader(r), opts.Limit)
	if err != nil {
		return nil, err
	}

	parsed := parseLines(lines, opts.Workers)

	c := &Corpus{
		Records: make([]Record, 0, len(lines)),
		BitSize: 64,
	}
	for idx, p := range parsed {
		if p.err != nil {
			logger.WithField("action", "glove_parse_line").
				WithField("line", idx+1).
				WithError(p.err).
				Warnf("skipping invalid line %d: %s", idx+1, strings.TrimSpace(lines[idx]))
			continue
		}
		c.Records = append(c.Records, p.record)
	}

	if err := c.Reconcile(logger); err != nil {
		return nil, err
	}

	c.Transform(opts)

	logger.WithField("action", "glove_read").
		WithField("lines", len(lines)).
		WithField("records", c.Len()).
		WithField("dim", c.Dim).
		Infof("converted %d words", c.Len())

	return c, nil
}

// readLines reads at most limit lines, or all lines when limit is zero.
// Line terminators are stripped.
func readLines(r *bufio.Reader, limit int) ([]string, error) {
	var lines []string

	for limit == 0 || len(lines) < limit {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return lines, nil
}

type parsedLine struct {
	record Record
	err    error
}

// parseLines parses lines in shards. Results keep the line order.
func parseLines(lines []string, workers int) []parsedLine {
	out := make([]parsedLine, len(lines))

	parseRange := func(start, end int) {
		for idx := start; idx < end; idx++ {
			out[idx].record, out[idx].err = ParseLine(lines[idx])
		}
	}

	if workers < 2 || len(lines) < workers {
		parseRange(0, len(lines))
		return out
	}

	var g errgroup.Group
	shard := (len(lines) + workers - 1) / workers
	for start := 0; start < len(lines); start += shard {
		start := start
		end := min(start+shard, len(lines))
		g.Go(func() error {
			parseRange(start, end)
			return nil
		})
	}
	_ = g.Wait()

	return out
}
