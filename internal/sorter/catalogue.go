package sorter

// unknownBucket is the sentinel category for any base prefix not present in
// categoryOrder. It sorts after every known group.
const unknownBucket = 9999

// unknownVariantPriority is the sentinel priority for any variant name not
// present in variantOrder.
const unknownVariantPriority = 9999

// categoryOrder maps a utility's base prefix (the first dash-delimited
// segment of Base, or Base itself when there's no dash) to its sort bucket.
//
// Ordering philosophy: this follows the layout-first convention most
// Tailwind class-sorting tools converge on — structure and box model
// before visual treatment, visual treatment before motion and state.
// Buckets are spaced by 10-100 so a prefix can be slotted into an existing
// group without renumbering everything after it.
var categoryOrder = map[string]int{
	// Display/layout
	"container": 100, "box": 100, "block": 100, "inline": 100, "hidden": 100,
	// Float/overflow
	"float": 110, "clear": 110, "object": 110, "overflow": 110, "overscroll": 110,
	// Flex
	"flex": 200, "grow": 200, "shrink": 200, "basis": 200, "order": 200,
	// Grid
	"grid": 210, "col": 210, "row": 210, "gap": 210, "auto": 210,
	"justify": 210, "items": 210, "content": 210, "place": 210,
	// Margin
	"m": 300, "mx": 300, "my": 300, "mt": 300, "mr": 300, "mb": 300, "ml": 300, "margin": 300,
	// Padding
	"p": 310, "px": 310, "py": 310, "pt": 310, "pr": 310, "pb": 310, "pl": 310, "padding": 310,
	// Space-between
	"space": 320,
	// Width/height
	"w": 400, "width": 400, "h": 400, "height": 400,
	// Min/max sizing
	"min": 410, "max": 410,
	// Position
	"position": 500, "static": 500, "fixed": 500, "absolute": 500, "relative": 500, "sticky": 500,
	// Inset
	"top": 510, "right": 510, "bottom": 510, "left": 510, "inset": 510,
	// Z-index
	"z": 520,
	// Typography
	"font": 600, "text": 600, "tracking": 600, "leading": 600, "list": 600, "align": 600,
	// Text flow
	"whitespace": 610, "break": 610, "truncate": 610,
	// Background
	"bg": 700, "from": 700, "via": 700, "to": 700,
	// Borders/rings
	"border": 800, "divide": 800, "outline": 800, "ring": 800,
	// Rounded
	"rounded": 810,
	// Effects
	"shadow": 900, "opacity": 900, "mix": 900, "blur": 900,
	// Filters
	"filter": 1000, "backdrop": 1000, "brightness": 1000, "contrast": 1000, "grayscale": 1000,
	// Tables
	"caption": 1100, "table": 1100,
	// Motion
	"transition": 1200, "duration": 1200, "ease": 1200, "delay": 1200, "animate": 1200,
	// Transform
	"transform": 1300, "origin": 1300, "scale": 1300, "rotate": 1300, "translate": 1300, "skew": 1300,
	// Interactivity
	"cursor": 1400, "select": 1400, "resize": 1400, "pointer": 1400, "appearance": 1400,
	// SVG paint
	"fill": 1500, "stroke": 1500,
	// A11y
	"sr": 1600, "screen": 1600,
}

// variantOrder maps a variant segment to its priority within the
// variant-sequence comparison. Responsive breakpoints come first so a
// mobile-first reading order falls out of the sort for free; state
// variants come late since they layer on top of a resolved layout.
var variantOrder = map[string]int{
	"sm": 100, "md": 110, "lg": 120, "xl": 130, "2xl": 140,
	"dark": 200,
	"hover": 300, "focus": 310, "active": 320, "visited": 330, "disabled": 340, "enabled": 350,
	"group": 400, "peer": 410,
	"first": 500, "last": 510, "odd": 520, "even": 530,
}

func categoryBucket(base string) int {
	if bucket, ok := categoryOrder[categoryPrefix(base)]; ok {
		return bucket
	}
	return unknownBucket
}

func variantPriority(variant string) int {
	if priority, ok := variantOrder[variant]; ok {
		return priority
	}
	return unknownVariantPriority
}
