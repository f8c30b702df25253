package fixedwidth

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Stats tallies one ingestion run by terminal outcome.
type Stats struct {
	Lines                int // data lines dispatched (header excluded)
	Stored               int
	MergedAuxiliary      int
	Unclassified         int
	DroppedContinuations int
}

// Ingest reads the source line by line, skips the reserved header lines, and
// dispatches every remaining line at the root of the tree. Ingestion is
// strictly sequential: a line is fully dispatched before the next is read,
// which is what makes first-write-wins deduplication deterministic.
//
// A fatal decode failure aborts immediately, wrapped with the source line
// number. Unknown discriminator values and dropped continuations are counted
// on their classes and never interrupt the run.
func (t *Tree) Ingest(r io.Reader, headerLines int) (Stats, error) {
	var stats Stats

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo <= headerLines {
			continue
		}
		line := strings.TrimRight(sc.Text(), "\r")

		outcome, _, err := t.Dispatch(line)
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", lineNo, err)
		}
		stats.Lines++
		switch outcome {
		case OutcomeStored:
			stats.Stored++
		case OutcomeMergedAuxiliary:
			stats.MergedAuxiliary++
		case OutcomeUnclassified:
			stats.Unclassified++
		case OutcomeDroppedContinuation:
			stats.DroppedContinuations++
		}
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("reading source: %w", err)
	}
	return stats, nil
}
