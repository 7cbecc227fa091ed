package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestExtractor() *Extractor {
	return New(
		[]string{"clsx", "classnames", "cn"},
		[]string{"class", "className"},
	)
}

func TestExtractFromAttributesDoubleQuotes(t *testing.T) {
	e := newTestExtractor()
	html := `<div class="text-red-500 bg-blue-500">Test</div>`
	matches := e.ExtractFromAttributes(html)

	assert.Len(t, matches, 1)
	assert.Equal(t, "text-red-500 bg-blue-500", matches[0].Content)
}

func TestExtractFromAttributesSingleQuotes(t *testing.T) {
	e := newTestExtractor()
	html := `<div class='text-red-500 bg-blue-500'>Test</div>`
	matches := e.ExtractFromAttributes(html)

	assert.Len(t, matches, 1)
	assert.Equal(t, "text-red-500 bg-blue-500", matches[0].Content)
}

func TestExtractFromAttributesClassName(t *testing.T) {
	e := newTestExtractor()
	jsx := `<div className="text-red-500 bg-blue-500">Test</div>`
	matches := e.ExtractFromAttributes(jsx)

	assert.Len(t, matches, 1)
	assert.Equal(t, "text-red-500 bg-blue-500", matches[0].Content)
}

func TestExtractFromFunctionsClsx(t *testing.T) {
	e := newTestExtractor()
	code := `const classes = clsx("text-red-500", "bg-blue-500");`
	matches := e.ExtractFromFunctions(code)

	assert.Len(t, matches, 2)
	assert.Equal(t, "text-red-500", matches[0].Content)
	assert.Equal(t, "bg-blue-500", matches[1].Content)
}

func TestExtractFromFunctionsClassnames(t *testing.T) {
	e := newTestExtractor()
	code := `const classes = classnames("text-red-500", "bg-blue-500");`
	matches := e.ExtractFromFunctions(code)

	assert.Len(t, matches, 2)
}

func TestExtractFromAttributesMultipleElements(t *testing.T) {
	e := newTestExtractor()
	html := `
            <div class="text-red-500">First</div>
            <div class="bg-blue-500">Second</div>
        `
	matches := e.ExtractFromAttributes(html)

	assert.Len(t, matches, 2)
	assert.Equal(t, "text-red-500", matches[0].Content)
	assert.Equal(t, "bg-blue-500", matches[1].Content)
}

func TestExtractAllMixedContent(t *testing.T) {
	e := newTestExtractor()
	code := `
            <div class="text-red-500">
                <span className="bg-blue-500">Test</span>
            </div>
            const classes = clsx("p-4", "m-2");
        `
	matches := e.ExtractAll(code)

	assert.Len(t, matches, 4)
}

func TestExtractFromAttributesJSXExpression(t *testing.T) {
	e := newTestExtractor()
	jsx := `<div className={"text-red-500 bg-blue-500"}>Test</div>`
	matches := e.ExtractFromAttributes(jsx)

	assert.Len(t, matches, 1)
	assert.Equal(t, "text-red-500 bg-blue-500", matches[0].Content)
}

func TestExtractFromAttributesEmptyClass(t *testing.T) {
	e := newTestExtractor()
	html := `<div class="">Test</div>`
	matches := e.ExtractFromAttributes(html)

	assert.Empty(t, matches)
}

func TestExtractPositionTracking(t *testing.T) {
	e := newTestExtractor()
	html := `<div class="text-red-500">Test</div>`
	matches := e.ExtractFromAttributes(html)

	assert.Len(t, matches, 1)
	assert.Less(t, matches[0].Start, matches[0].End)
	assert.Equal(t, "text-red-500", html[matches[0].Start:matches[0].End])
}

func TestExtractRealWorldReact(t *testing.T) {
	e := newTestExtractor()
	jsx := `
            export default function Button({ variant }) {
                return (
                    <button className="px-4 py-2 rounded-lg bg-blue-500 text-white hover:bg-blue-600">
                        Click me
                    </button>
                );
            }
        `
	matches := e.ExtractAll(jsx)

	assert.Len(t, matches, 1)
	assert.Contains(t, matches[0].Content, "px-4")
	assert.Contains(t, matches[0].Content, "hover:bg-blue-600")
}

func TestExtractRealWorldVue(t *testing.T) {
	e := newTestExtractor()
	vue := `
            <template>
                <div class="flex items-center justify-center min-h-screen bg-gray-100">
                    <div class="p-6 bg-white rounded-lg shadow-lg">
                        <h1 class="text-2xl font-bold text-gray-900">Hello Vue</h1>
                    </div>
                </div>
            </template>
        `
	matches := e.ExtractAll(vue)

	assert.Len(t, matches, 3)
}

func TestExtractNoFalsePositives(t *testing.T) {
	e := newTestExtractor()
	code := `
            // This should not match
            const notAClass = "text-red-500";
            const someUrl = "https://example.com/class?param=value";
        `
	matches := e.ExtractAll(code)

	assert.Empty(t, matches)
}

func TestExtractCustomFunctionNames(t *testing.T) {
	e := New([]string{"cn", "makeClass"}, []string{"class"})

	code := `const classes = cn("text-red-500"); const other = makeClass("bg-blue-500");`
	matches := e.ExtractFromFunctions(code)

	assert.Len(t, matches, 2)
	assert.Equal(t, "text-red-500", matches[0].Content)
	assert.Equal(t, "bg-blue-500", matches[1].Content)
}

func TestExtractAllDeduplicatesOverlaps(t *testing.T) {
	e := New([]string{"clsx"}, []string{"class"})
	// The literal is found twice: by the class={...} rescan and by the
	// clsx() call scan, both at the same (Start, End).
	code := `<div class={clsx("p-4 m-2")}></div>`

	matches := e.ExtractAll(code)
	assert.Len(t, matches, 1)
}

func TestExtractFromFunctionsSkipsInterpolation(t *testing.T) {
	e := newTestExtractor()
	code := "const classes = clsx(`p-${size}`, \"m-2\");"
	matches := e.ExtractFromFunctions(code)

	assert.Len(t, matches, 1)
	assert.Equal(t, "m-2", matches[0].Content)
}
