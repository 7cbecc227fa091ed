// Package format wraps the extractor with per-source-format region
// restriction, so class strings are only located where they are meaningful.
package format

import (
	"path/filepath"
	"strings"

	"github.com/awsqed/config-formatter/internal/extractor"
)

// FileFormat identifies a known source format.
type FileFormat int

const (
	Unknown FileFormat = iota
	Html
	Jsx
	Tsx
	Vue
	Svelte
	Astro
)

// FromPath maps a file path's lowercased extension to a FileFormat. Unknown
// extensions return Unknown, false.
func FromPath(path string) (FileFormat, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "html", "htm":
		return Html, true
	case "jsx":
		return Jsx, true
	case "tsx":
		return Tsx, true
	case "vue":
		return Vue, true
	case "svelte":
		return Svelte, true
	case "astro":
		return Astro, true
	default:
		return Unknown, false
	}
}

// Parser wraps an extractor.Extractor with format-aware region restriction.
type Parser struct {
	extractor *extractor.Extractor
}

// New builds a Parser around the given extractor.
func New(e *extractor.Extractor) *Parser {
	return &Parser{extractor: e}
}

// Parse locates class-string spans in content under the given format,
// restricting the scan to the regions where class strings are meaningful
// and offsetting every returned position back into content's coordinates.
func (p *Parser) Parse(content string, format FileFormat) []extractor.Match {
	switch format {
	case Html, Jsx, Tsx:
		return p.parseWholeBuffer(content)
	case Vue:
		return p.parseVue(content)
	case Svelte:
		return p.parseSvelte(content)
	case Astro:
		return p.parseAstro(content)
	default:
		return p.parseWholeBuffer(content)
	}
}

func (p *Parser) parseWholeBuffer(content string) []extractor.Match {
	matches := p.extractor.ExtractFromAttributes(content)
	matches = append(matches, p.extractor.ExtractFromFunctions(content)...)
	return matches
}

// parseVue restricts extraction to the interior of the first
// <template>...</template> pair, falling back to the whole buffer when no
// template section is found.
func (p *Parser) parseVue(content string) []extractor.Match {
	section, ok := vueTemplateSection(content)
	if !ok {
		return p.parseWholeBuffer(content)
	}

	matches := p.extractor.ExtractFromAttributes(section.content)
	matches = append(matches, p.extractor.ExtractFromFunctions(section.content)...)
	return offsetMatches(matches, section.start)
}

// parseSvelte restricts extraction to the markup sections outside of
// <script>...</script> and <style>...</style>, offsetting positions back.
// Function extraction is deliberately not run here; utility calls inside
// Svelte markup expressions are out of scope for this format.
func (p *Parser) parseSvelte(content string) []extractor.Match {
	var all []extractor.Match
	for _, section := range svelteMarkupSections(content) {
		matches := p.extractor.ExtractFromAttributes(section.content)
		all = append(all, offsetMatches(matches, section.start)...)
	}
	return all
}

// parseAstro restricts extraction to the markup region following an
// optional frontmatter fence.
func (p *Parser) parseAstro(content string) []extractor.Match {
	markupStart := astroFrontmatterEnd(content)
	markup := content[markupStart:]

	matches := p.extractor.ExtractFromAttributes(markup)
	matches = append(matches, p.extractor.ExtractFromFunctions(markup)...)
	return offsetMatches(matches, markupStart)
}

func offsetMatches(matches []extractor.Match, offset int) []extractor.Match {
	for i := range matches {
		matches[i].Start += offset
		matches[i].End += offset
	}
	return matches
}

// section is a substring of the original buffer along with the byte offset
// at which it begins.
type section struct {
	start   int
	content string
}

// vueTemplateSection finds the first <template ...> opening tag and its
// matching </template> closing tag, returning the interior.
func vueTemplateSection(content string) (section, bool) {
	tagStart := strings.Index(content, "<template")
	if tagStart < 0 {
		return section{}, false
	}

	tagClose := strings.IndexByte(content[tagStart:], '>')
	if tagClose < 0 {
		return section{}, false
	}
	contentStart := tagStart + tagClose + 1

	end := strings.Index(content, "</template>")
	if end < 0 || end < contentStart {
		return section{}, false
	}

	return section{start: contentStart, content: content[contentStart:end]}, true
}

// svelteMarkupSections splits content into the disjoint regions lying
// outside every <script>...</script> and <style>...</style> pair. If no
// such pair is found, the whole buffer is returned as a single section.
func svelteMarkupSections(content string) []section {
	excluded := excludedRanges(content, "<script", "</script>")
	excluded = append(excluded, excludedRanges(content, "<style", "</style>")...)

	sortRanges(excluded)

	var sections []section
	pos := 0
	for _, r := range excluded {
		if pos < r[0] {
			sections = append(sections, section{start: pos, content: content[pos:r[0]]})
		}
		pos = r[1]
	}
	if pos < len(content) {
		sections = append(sections, section{start: pos, content: content[pos:]})
	}

	if len(sections) == 0 {
		sections = append(sections, section{start: 0, content: content})
	}
	return sections
}

// excludedRanges finds every disjoint [start, end) pair bounded by openTag
// and closeTag, scanning left to right and resuming after each closing tag.
func excludedRanges(content, openTag, closeTag string) [][2]int {
	var ranges [][2]int
	searchPos := 0
	for {
		rel := strings.Index(content[searchPos:], openTag)
		if rel < 0 {
			break
		}
		absStart := searchPos + rel

		relEnd := strings.Index(content[absStart:], closeTag)
		if relEnd < 0 {
			break
		}
		absEnd := absStart + relEnd + len(closeTag)

		ranges = append(ranges, [2]int{absStart, absEnd})
		searchPos = absEnd
	}
	return ranges
}

func sortRanges(ranges [][2]int) {
	for i := 1; i < len(ranges); i++ {
		for j := i; j > 0 && ranges[j][0] < ranges[j-1][0]; j-- {
			ranges[j], ranges[j-1] = ranges[j-1], ranges[j]
		}
	}
}

// astroFrontmatterEnd returns the byte offset where the markup region
// begins: immediately after the newline following a closing "---" fence, or
// 0 if the buffer doesn't open with one.
func astroFrontmatterEnd(content string) int {
	if !strings.HasPrefix(strings.TrimLeft(content, " \t\r\n"), "---") {
		return 0
	}

	firstFence := strings.Index(content, "---")
	if firstFence < 0 {
		return 0
	}
	afterFirst := firstFence + 3

	relSecond := strings.Index(content[afterFirst:], "---")
	if relSecond < 0 {
		return 0
	}
	end := afterFirst + relSecond + 3

	if nl := strings.IndexByte(content[end:], '\n'); nl >= 0 {
		return end + nl + 1
	}
	return end
}
