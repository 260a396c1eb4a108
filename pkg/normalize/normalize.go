// Package normalize converts backend-specific raw parse output into a
// flat, ordered sequence of records. Backends nest their output to
// different depths: TextFSM emits a flat row list, TTP emits per-group
// record lists. Each backend binds its own normalization function; the
// generic Flatten here covers both shipped shapes.
package normalize

import (
	"sort"

	"github.com/dkoosis/tpt/pkg/record"
)

// Flatten unwraps raw until it reaches a sequence whose first element is
// a record-like mapping, then converts that sequence in order. Nested
// single-element wrappers are descended; sibling sub-sequences (matched
// block groups) are concatenated in order. If unwrapping exhausts
// without finding a mapping the result is empty; absence of matches is
// a valid outcome, not an error.
func Flatten(raw any) []*record.Record {
	seq := asSequence(raw)
	for seq != nil {
		if len(seq) == 0 {
			return nil
		}
		if isMapping(seq[0]) {
			return convert(seq)
		}
		if len(seq) == 1 {
			seq = asSequence(seq[0])
			continue
		}
		// Multiple sub-sequences: splice the groups together, keeping
		// source occurrence order across group boundaries.
		var merged []any
		for _, elem := range seq {
			inner := asSequence(elem)
			if inner == nil {
				return nil
			}
			merged = append(merged, inner...)
		}
		seq = merged
	}
	return nil
}

func asSequence(v any) []any {
	switch s := v.(type) {
	case nil:
		return nil
	case []any:
		return s
	case []*record.Record:
		out := make([]any, len(s))
		for i, r := range s {
			out[i] = r
		}
		return out
	case []map[string]any:
		out := make([]any, len(s))
		for i, m := range s {
			out[i] = m
		}
		return out
	case [][]*record.Record:
		out := make([]any, len(s))
		for i, g := range s {
			out[i] = g
		}
		return out
	default:
		return nil
	}
}

func isMapping(v any) bool {
	switch v.(type) {
	case *record.Record, map[string]any:
		return true
	default:
		return false
	}
}

// convert turns a sequence of mappings into records, skipping elements
// that are not mappings. Plain Go maps have no stable key order, so map
// elements fall back to sorted keys; backends that care about field
// order hand over *record.Record values directly.
func convert(seq []any) []*record.Record {
	records := make([]*record.Record, 0, len(seq))
	for _, elem := range seq {
		switch m := elem.(type) {
		case *record.Record:
			records = append(records, m)
		case map[string]any:
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			r := record.New()
			for _, k := range keys {
				r.Set(k, m[k])
			}
			records = append(records, r)
		}
	}
	return records
}
