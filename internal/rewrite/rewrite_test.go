package rewrite

import (
	"testing"

	"github.com/awsqed/config-formatter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSortsHtmlClassAttribute(t *testing.T) {
	d := New(config.Default())
	input := `<div class="z-10 p-4 mt-2 bg-white">x</div>`

	result, err := d.Run("t.html", []byte(input))

	require.NoError(t, err)
	require.True(t, result.Changed)
	assert.Equal(t, `<div class="mt-2 p-4 z-10 bg-white">x</div>`, string(result.Bytes))
}

func TestRunNoChangeWhenAlreadySorted(t *testing.T) {
	d := New(config.Default())
	input := `<div class="mt-2 p-4 z-10 bg-white">x</div>`

	result, err := d.Run("t.html", []byte(input))

	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Nil(t, result.Bytes)
}

func TestRunVueOnlyTouchesTemplate(t *testing.T) {
	d := New(config.Default())
	input := `<template><div class="z-10 p-4 mt-2">x</div></template><script>const x="z-10 p-4 mt-2";</script>`

	result, err := d.Run("App.vue", []byte(input))

	require.NoError(t, err)
	require.True(t, result.Changed)
	want := `<template><div class="mt-2 p-4 z-10">x</div></template><script>const x="z-10 p-4 mt-2";</script>`
	assert.Equal(t, want, string(result.Bytes))
}

func TestRunAstroOnlyTouchesMarkup(t *testing.T) {
	d := New(config.Default())
	input := "---\nconst c=\"z-10 p-4 mt-2\";\n---\n<div class=\"z-10 p-4 mt-2\">x</div>"

	result, err := d.Run("page.astro", []byte(input))

	require.NoError(t, err)
	require.True(t, result.Changed)
	want := "---\nconst c=\"z-10 p-4 mt-2\";\n---\n<div class=\"mt-2 p-4 z-10\">x</div>"
	assert.Equal(t, want, string(result.Bytes))
}

func TestRunDisabledConfigurationReturnsNoChange(t *testing.T) {
	cfg := config.Default()
	cfg.Enabled = false
	d := New(cfg)

	result, err := d.Run("t.html", []byte(`<div class="z-10 p-4">x</div>`))

	require.NoError(t, err)
	assert.False(t, result.Changed)
}

func TestRunDeferredExtensionsReturnNoChange(t *testing.T) {
	d := New(config.Default())

	for _, path := range []string{"a.json", "b.jsonc", "c.toml", "d.yaml", "e.yml"} {
		result, err := d.Run(path, []byte(`class: "z-10 p-4"`))
		require.NoError(t, err)
		assert.False(t, result.Changed, path)
	}
}

func TestRunRejectsInvalidUTF8(t *testing.T) {
	d := New(config.Default())

	_, err := d.Run("t.html", []byte{0xff, 0xfe, 0xfd})
	assert.Error(t, err)
}

func TestRunNoSpansReturnsNoChange(t *testing.T) {
	d := New(config.Default())

	result, err := d.Run("t.html", []byte(`<div id="no-classes-here">x</div>`))

	require.NoError(t, err)
	assert.False(t, result.Changed)
}

func TestRunPreservesBytesOutsideSpans(t *testing.T) {
	d := New(config.Default())
	input := `<!-- keep me --><div class="z-10 p-4 mt-2"><span class="mt-2 p-4 z-10">x</span></div>`

	result, err := d.Run("t.html", []byte(input))

	require.NoError(t, err)
	require.True(t, result.Changed)
	assert.Contains(t, string(result.Bytes), "<!-- keep me -->")
}

func TestRunUnknownExtensionUsesPlainExtractor(t *testing.T) {
	d := New(config.Default())
	input := `const classes = clsx("z-10 p-4 mt-2");`

	result, err := d.Run("component.unknown", []byte(input))

	require.NoError(t, err)
	require.True(t, result.Changed)
	assert.Equal(t, `const classes = clsx("mt-2 p-4 z-10");`, string(result.Bytes))
}

func TestRunSkipsOverlappingSpanInsteadOfPanicking(t *testing.T) {
	d := New(config.Default())
	// A clsx() call inside a className={...} expression is matched twice on
	// the whole-buffer JSX path: once by the className brace rescan, once by
	// the clsx() function-call scan. Both land on the identical (start, end)
	// pair, which ExtractAll would dedup but the plain whole-buffer parse
	// does not. The driver must skip the repeat span instead of slicing
	// backwards.
	input := `<div className={clsx("z-10 p-4")}>x</div>`

	assert.NotPanics(t, func() {
		_, err := d.Run("t.jsx", []byte(input))
		require.NoError(t, err)
	})
}

func TestRunDeterministic(t *testing.T) {
	d := New(config.Default())
	input := []byte(`<div class="z-10 p-4 mt-2 bg-white">x</div>`)

	first, err := d.Run("t.html", input)
	require.NoError(t, err)
	second, err := d.Run("t.html", input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
