// Package rewrite implements the driver that turns a file's bytes into
// either "no change" or a rewritten buffer, by locating class-bearing spans
// and replacing each with its canonically sorted form.
package rewrite

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/awsqed/config-formatter/internal/config"
	"github.com/awsqed/config-formatter/internal/extractor"
	"github.com/awsqed/config-formatter/internal/format"
	"github.com/awsqed/config-formatter/internal/sorter"
)

// deferredExtensions is the set of extensions this plugin defers on,
// because another plugin in a formatting pipeline owns that format. This
// folds PluginCompatibility::should_defer from the original source directly
// into the driver's gate, per spec.md §4.4 step 2.
var deferredExtensions = map[string]bool{
	"json":  true,
	"jsonc": true,
	"toml":  true,
	"yaml":  true,
	"yml":   true,
}

// SupportsRangeFormatting is always false: class sorting can shift
// positions throughout a file, so only whole-file formatting is offered.
// Carried from the original source's RangeFormatter placeholder.
const SupportsRangeFormatting = false

// Result is the outcome of running the driver over a file.
type Result struct {
	// Changed is false when the driver determined no rewrite was needed.
	Changed bool
	// Bytes holds the new buffer when Changed is true; otherwise it is nil.
	Bytes []byte
}

// Driver runs the rewrite algorithm using a fixed extractor/format parser
// pair, constructed once from a resolved Configuration.
type Driver struct {
	extractor *extractor.Extractor
	parser    *format.Parser
	cfg       config.Configuration
}

// New builds a Driver for the given configuration.
func New(cfg config.Configuration) *Driver {
	e := extractor.New(cfg.TailwindFunctions, cfg.TailwindAttributes)
	return &Driver{extractor: e, parser: format.New(e), cfg: cfg}
}

// Run executes the 8-step rewrite algorithm against path and its bytes.
func (d *Driver) Run(path string, contents []byte) (Result, error) {
	if !d.cfg.Enabled {
		return Result{}, nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if deferredExtensions[ext] {
		return Result{}, nil
	}

	if !utf8.Valid(contents) {
		return Result{}, fmt.Errorf("rewrite: %s is not valid UTF-8", path)
	}
	text := string(contents)

	var spans []extractor.Match
	if fileFormat, ok := format.FromPath(path); ok {
		spans = d.parser.Parse(text, fileFormat)
	} else {
		spans = d.extractor.ExtractAll(text)
	}

	if len(spans) == 0 {
		return Result{}, nil
	}

	sortSpansByStart(spans)

	var out strings.Builder
	out.Grow(len(text))
	cursor := 0
	changed := false

	for _, span := range spans {
		// Spans are assumed pairwise non-overlapping (§4.2 dedup, §4.3 region
		// restriction), but known-format extraction concatenates attribute and
		// function matches without re-running that dedup, so a pathological
		// overlap is possible in practice. Skip any span that has already been
		// consumed by a prior replacement rather than slicing backwards.
		if span.Start < cursor {
			continue
		}
		sorted := sorter.SortClasses(span.Content)
		out.WriteString(text[cursor:span.Start])
		out.WriteString(sorted)
		cursor = span.End
		if sorted != span.Content {
			changed = true
		}
	}
	out.WriteString(text[cursor:])

	if !changed {
		return Result{}, nil
	}
	return Result{Changed: true, Bytes: []byte(out.String())}, nil
}

func sortSpansByStart(spans []extractor.Match) {
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].Start < spans[j-1].Start; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}
}
