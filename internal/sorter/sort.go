package sorter

import (
	"sort"
	"strings"
)

// Less reports whether t sorts strictly before other under the canonical
// class order: important-last, category bucket, variant count, variant
// sequence, positive-before-negative, concrete-before-arbitrary, base
// lexicographic.
func Less(t, other Token) bool {
	if t.Important != other.Important {
		return !t.Important
	}

	catT, catO := categoryBucket(t.Base), categoryBucket(other.Base)
	if catT != catO {
		return catT < catO
	}

	if len(t.Variants) != len(other.Variants) {
		return len(t.Variants) < len(other.Variants)
	}

	if less, ok := compareVariants(t.Variants, other.Variants); ok {
		return less
	}

	if t.Negative != other.Negative {
		return !t.Negative
	}

	if t.Arbitrary != other.Arbitrary {
		return !t.Arbitrary
	}

	return t.Base < other.Base
}

// compareVariants compares two equal-length variant sequences pairwise by
// priority, then lexicographically on ties. ok is false when the sequences
// compare equal in full, meaning the caller should fall through to the next
// sort key.
func compareVariants(a, b []string) (less bool, ok bool) {
	for i := range a {
		pa, pb := variantPriority(a[i]), variantPriority(b[i])
		if pa != pb {
			return pa < pb, true
		}
		if a[i] != b[i] {
			return a[i] < b[i], true
		}
	}
	return false, false
}

// SortClasses parses a whitespace-separated run of class tokens and returns
// them re-joined in canonical order. It trims outer whitespace, returns
// empty for an empty or whitespace-only input, and is stable: tokens that
// compare equal keep their original left-to-right order. Duplicates are
// preserved.
func SortClasses(classes string) string {
	trimmed := strings.TrimSpace(classes)
	if trimmed == "" {
		return ""
	}

	pieces := strings.Fields(trimmed)
	tokens := make([]Token, len(pieces))
	for i, piece := range pieces {
		tokens[i] = Parse(piece)
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		return Less(tokens[i], tokens[j])
	})

	originals := make([]string, len(tokens))
	for i, t := range tokens {
		originals[i] = t.Original
	}
	return strings.Join(originals, " ")
}
