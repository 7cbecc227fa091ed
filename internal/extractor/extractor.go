// Package extractor locates runs of class-string text inside attribute
// values and utility-function call arguments.
package extractor

import (
	"regexp"
	"sort"
	"strings"
)

// Match is a located class-string span. Start and End are byte offsets into
// the buffer the extractor was run against, and Content equals
// buffer[Start:End] at extraction time.
type Match struct {
	Start   int
	End     int
	Content string
}

// stringLiteral matches a quoted string literal using any of ", ', or ` as
// delimiter, capturing the interior. Compiled once: per §9 of the design
// notes the inner matchers are invariant across invocations.
var stringLiteral = regexp.MustCompile("[\"'`]([^\"'`]*)[\"'`]")

// Extractor finds class-bearing spans for a fixed set of attribute and
// function names.
type Extractor struct {
	attributeNames []string
	functionNames  []string

	attrValueRes []*regexp.Regexp
	attrExprRes  []*regexp.Regexp
	funcCallRes  []*regexp.Regexp
}

// New builds an Extractor for the given function and attribute names,
// compiling every name-specific regex once up front.
func New(functionNames, attributeNames []string) *Extractor {
	e := &Extractor{
		attributeNames: attributeNames,
		functionNames:  functionNames,
	}
	for _, name := range attributeNames {
		quoted := regexp.QuoteMeta(name)
		e.attrValueRes = append(e.attrValueRes, regexp.MustCompile(quoted+`=["']([^"']*)["']`))
		e.attrExprRes = append(e.attrExprRes, regexp.MustCompile(quoted+`\s*=\s*\{([^}]+)\}`))
	}
	for _, name := range functionNames {
		quoted := regexp.QuoteMeta(name)
		e.funcCallRes = append(e.funcCallRes, regexp.MustCompile(quoted+`\s*\(([^)]+)\)`))
	}
	return e
}

// ExtractFromAttributes returns a span for every ATTR="..." / ATTR='...' /
// ATTR={...} occurrence, in configured-attribute order. For the brace form
// the body is re-scanned for string literals. Empty or whitespace-only
// contents are discarded.
func (e *Extractor) ExtractFromAttributes(text string) []Match {
	var matches []Match

	for i := range e.attributeNames {
		for _, loc := range e.attrValueRes[i].FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[2], loc[3]
			content := text[start:end]
			if strings.TrimSpace(content) == "" {
				continue
			}
			matches = append(matches, Match{Start: start, End: end, Content: content})
		}

		for _, loc := range e.attrExprRes[i].FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[2], loc[3]
			for _, m := range extractStringLiterals(text[start:end], start) {
				if strings.TrimSpace(m.Content) == "" {
					continue
				}
				matches = append(matches, m)
			}
		}
	}

	return matches
}

// ExtractFromFunctions returns a span for every quoted string literal
// argument of each configured function name. Literals containing '$' are
// skipped to avoid rewriting template interpolation; empty literals are
// skipped.
func (e *Extractor) ExtractFromFunctions(text string) []Match {
	var matches []Match

	for i := range e.functionNames {
		for _, loc := range e.funcCallRes[i].FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[2], loc[3]
			matches = append(matches, extractStringLiterals(text[start:end], start)...)
		}
	}

	return matches
}

// ExtractAll returns the union of ExtractFromAttributes and
// ExtractFromFunctions, sorted by Start and deduplicated on identical
// (Start, End) pairs.
func (e *Extractor) ExtractAll(text string) []Match {
	matches := append(e.ExtractFromAttributes(text), e.ExtractFromFunctions(text)...)

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Start < matches[j].Start
	})

	deduped := matches[:0]
	for i, m := range matches {
		if i > 0 && m.Start == deduped[len(deduped)-1].Start && m.End == deduped[len(deduped)-1].End {
			continue
		}
		deduped = append(deduped, m)
	}
	return deduped
}

// extractStringLiterals re-scans args for quoted string literals, offsetting
// each match's position by baseOffset so it lands in the caller's
// coordinate space.
func extractStringLiterals(args string, baseOffset int) []Match {
	var matches []Match
	for _, loc := range stringLiteral.FindAllStringSubmatchIndex(args, -1) {
		start, end := loc[2], loc[3]
		content := args[start:end]
		if content == "" || strings.Contains(content, "$") {
			continue
		}
		matches = append(matches, Match{Start: baseOffset + start, End: baseOffset + end, Content: content})
	}
	return matches
}
