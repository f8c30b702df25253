package fixedwidth

import "strconv"

// DiagKind distinguishes the two non-fatal conditions accumulated during
// dispatch.
type DiagKind int

const (
	// DiagUnknownValue counts discriminator values that matched no child.
	DiagUnknownValue DiagKind = iota
	// DiagUnusedContinuation counts dropped continuation records by number.
	DiagUnusedContinuation
)

// Diagnostic is one accumulated counter: a class saw Value (an unmatched
// discriminator value or a continuation number) Count times.
type Diagnostic struct {
	Class string
	Kind  DiagKind
	Value string
	Count int
}

// Diagnostics walks the whole tree depth-first and returns every non-zero
// counter. Within a class, entries appear in first-seen order, so the report
// is deterministic for a given source file.
func (t *Tree) Diagnostics() []Diagnostic {
	var out []Diagnostic
	t.Walk(func(c *Class) {
		for _, v := range c.unknownOrder {
			out = append(out, Diagnostic{
				Class: c.label,
				Kind:  DiagUnknownValue,
				Value: v,
				Count: c.unknown[v],
			})
		}
		for _, n := range c.contOrder {
			out = append(out, Diagnostic{
				Class: c.label,
				Kind:  DiagUnusedContinuation,
				Value: strconv.FormatInt(n, 10),
				Count: c.unusedConts[n],
			})
		}
	})
	return out
}
