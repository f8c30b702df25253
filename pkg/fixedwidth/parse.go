package fixedwidth

import "strings"

// Outcome tags the terminal state of dispatching one line.
type Outcome int

const (
	// OutcomeStored means the record was retained in a keyed class's
	// instance store (or deduplicated against an already-stored record).
	OutcomeStored Outcome = iota
	// OutcomeMergedAuxiliary means the record belongs to an auxiliary class
	// and was folded into its parent instance.
	OutcomeMergedAuxiliary
	// OutcomeUnclassified means a discriminator value matched no child; the
	// record was counted and discarded.
	OutcomeUnclassified
	// OutcomeDroppedContinuation means the line is a continuation record
	// beyond the primary; it was counted and dropped.
	OutcomeDroppedContinuation
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStored:
		return "stored"
	case OutcomeMergedAuxiliary:
		return "merged-auxiliary"
	case OutcomeUnclassified:
		return "unclassified"
	case OutcomeDroppedContinuation:
		return "dropped-continuation"
	default:
		return "unknown"
	}
}

// Dispatch classifies one line against the tree, storing or merging the
// resulting record. The returned record is the terminal instance: for
// OutcomeStored the deduplicated stored instance, for OutcomeUnclassified the
// discarded candidate, nil for a dropped continuation. Errors are fatal field
// decode failures.
func (t *Tree) Dispatch(line string) (Outcome, *Record, error) {
	return t.root.parse(nil, line)
}

// parse descends the class hierarchy to the most specific class for line.
//
// At each level a fresh candidate record is built. Continuation records
// beyond the primary stop here and are counted. Keyed classes store the
// candidate under its identity key, first write wins; the stored instance,
// not necessarily the candidate, carries on down the tree as the parent for
// auxiliary merging. Discriminator values are always decoded from the fresh
// candidate, because a deduplicated instance holds an older line.
func (c *Class) parse(parent *Record, line string) (Outcome, *Record, error) {
	r := &Record{text: line, class: c}

	if c.contField != nil {
		raw := c.contField.slice(line)
		// An all-blank continuation column reads as a primary record.
		if strings.TrimSpace(raw) != "" {
			v, err := decodeNumber(line, *c.contField, raw)
			if err != nil {
				return 0, nil, err
			}
			if n := v.(int64); n > 1 {
				c.noteUnusedContinuation(n)
				return OutcomeDroppedContinuation, nil, nil
			}
		}
	}

	working := r
	if !c.Keyed() {
		if parent != nil {
			parent.attachAuxiliary(r)
		}
	} else {
		key, err := c.identityKey(line)
		if err != nil {
			return 0, nil, err
		}
		if existing, ok := c.instances[key]; ok {
			working = existing
		} else {
			c.instances[key] = r
			c.keyOrder = append(c.keyOrder, key)
		}
	}

	var child *Class
	if c.disc == nil {
		if len(c.childOrder) == 0 {
			if c.Keyed() {
				return OutcomeStored, working, nil
			}
			return OutcomeMergedAuxiliary, working, nil
		}
		child = c.uncond
	} else {
		v, err := Decode(line, *c.disc)
		if err != nil {
			return 0, nil, err
		}
		value := keyString(v)
		child = c.children[value]
		if child == nil {
			c.noteUnknown(value)
			return OutcomeUnclassified, r, nil
		}
	}

	return child.parse(working, line)
}
