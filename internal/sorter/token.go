// Package sorter implements the token model and deterministic ordering for
// runs of TailwindCSS-style utility classes.
package sorter

import "strings"

// Token is a single parsed utility class, preserving enough of its shape to
// place it in the canonical order while keeping the exact source text for
// output.
type Token struct {
	// Original is the exact input substring that produced this token.
	Original string
	// Important is true iff Original began with '!'.
	Important bool
	// Variants are the colon-separated modifier segments, in source order.
	Variants []string
	// Negative is true iff Base, before the '-' was stripped, began with it.
	Negative bool
	// Base is the utility identifier with '!' and variants peeled off and
	// any leading '-' removed.
	Base string
	// Arbitrary is true iff Base contains '['.
	Arbitrary bool
}

// Parse splits a single non-empty, already-trimmed class string into a
// Token. The important modifier is peeled first, then variants are split on
// top-level ':' (bracket/paren/quote-aware so arbitrary variants like
// "[&:nth-child(3)]" and "data-[state=open]" survive intact), then a
// leading '-' marks the base as negative.
func Parse(class string) Token {
	remaining := class

	important := strings.HasPrefix(remaining, "!")
	if important {
		remaining = remaining[1:]
	}

	parts := splitTopLevelColon(remaining)
	var variants []string
	if len(parts) > 1 {
		variants = parts[:len(parts)-1]
	}
	base := parts[len(parts)-1]

	negative := strings.HasPrefix(base, "-")
	if negative {
		base = base[1:]
	}

	return Token{
		Original:  class,
		Important: important,
		Variants:  variants,
		Negative:  negative,
		Base:      base,
		Arbitrary: strings.Contains(base, "["),
	}
}

// splitTopLevelColon splits on ':' except where the split point falls
// inside balanced '[...]', '(...)', or a quoted substring. The final
// element is always present, even for input with no colon at all.
func splitTopLevelColon(s string) []string {
	var parts []string
	var depth int
	var quote byte
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '[' || c == '(':
			depth++
		case c == ']' || c == ')':
			if depth > 0 {
				depth--
			}
		case c == ':' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// categoryPrefix returns the first dash-delimited segment of base, or base
// itself if it contains no dash. Category lookup only ever inspects this
// prefix.
func categoryPrefix(base string) string {
	if i := strings.IndexByte(base, '-'); i >= 0 {
		return base[:i]
	}
	return base
}
