// Package config resolves a generic key/value bag into a Configuration,
// collecting diagnostics for unknown keys and type mismatches instead of
// failing the request.
package config

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Configuration is the resolved, immutable set of options the core acts on.
type Configuration struct {
	Enabled            bool
	TailwindConfig     string
	TailwindConfigSet  bool
	TailwindFunctions  []string
	TailwindAttributes []string
}

// Default returns the built-in default configuration.
func Default() Configuration {
	return Configuration{
		Enabled:            true,
		TailwindFunctions:  []string{"classnames", "clsx", "ctl", "cva", "tw"},
		TailwindAttributes: []string{"class", "className"},
	}
}

// Diagnostic describes a single problem found while resolving a bag: an
// unknown key or a key whose value had the wrong shape. Diagnostics never
// fail the request; the resolved Configuration always falls back to a
// default for the offending key.
type Diagnostic struct {
	PropertyName string
	Message      string
}

// knownKeys lists every recognized Configuration key, used both to detect
// unknown properties and to compute "did you mean" suggestions for them.
var knownKeys = []string{"enabled", "tailwindConfig", "tailwindFunctions", "tailwindAttributes"}

// Resolve maps a generic key/value bag (as decoded from JSON/YAML/TOML by
// the host) onto a Configuration. Unknown keys and keys with the wrong type
// produce one Diagnostic each and fall back to the default for that key;
// nothing about a bad value fails the overall resolution.
func Resolve(bag map[string]any) (Configuration, []Diagnostic) {
	resolved := Default()
	var diagnostics []Diagnostic

	seen := make(map[string]bool, len(bag))

	if raw, ok := bag["enabled"]; ok {
		seen["enabled"] = true
		if b, ok := raw.(bool); ok {
			resolved.Enabled = b
		} else {
			diagnostics = append(diagnostics, Diagnostic{
				PropertyName: "enabled",
				Message:      "expected a boolean for 'enabled'",
			})
		}
	}

	if raw, ok := bag["tailwindConfig"]; ok {
		seen["tailwindConfig"] = true
		if s, ok := raw.(string); ok {
			resolved.TailwindConfig = s
			resolved.TailwindConfigSet = true
		} else {
			diagnostics = append(diagnostics, Diagnostic{
				PropertyName: "tailwindConfig",
				Message:      "expected a string for 'tailwindConfig'",
			})
		}
	}

	if raw, ok := bag["tailwindFunctions"]; ok {
		seen["tailwindFunctions"] = true
		if strs, ok := stringSlice(raw); ok {
			resolved.TailwindFunctions = strs
		} else {
			diagnostics = append(diagnostics, Diagnostic{
				PropertyName: "tailwindFunctions",
				Message:      "expected an array of strings for 'tailwindFunctions'",
			})
		}
	}

	if raw, ok := bag["tailwindAttributes"]; ok {
		seen["tailwindAttributes"] = true
		if strs, ok := stringSlice(raw); ok {
			resolved.TailwindAttributes = strs
		} else {
			diagnostics = append(diagnostics, Diagnostic{
				PropertyName: "tailwindAttributes",
				Message:      "expected an array of strings for 'tailwindAttributes'",
			})
		}
	}

	for key := range bag {
		if seen[key] {
			continue
		}
		diagnostics = append(diagnostics, unknownPropertyDiagnostic(key))
	}

	sort.Slice(diagnostics, func(i, j int) bool {
		return diagnostics[i].PropertyName < diagnostics[j].PropertyName
	})

	return resolved, diagnostics
}

// unknownPropertyDiagnostic builds the diagnostic for a key not in
// knownKeys, appending a "did you mean" suggestion when a known key is
// within fuzzy-matching distance.
func unknownPropertyDiagnostic(key string) Diagnostic {
	msg := fmt.Sprintf("unknown property '%s'", key)
	if suggestion, ok := closestKnownKey(key); ok {
		msg = fmt.Sprintf("%s, did you mean '%s'?", msg, suggestion)
	}
	return Diagnostic{PropertyName: key, Message: msg}
}

// closestKnownKey returns the known key fuzzy-matching key most closely, if
// any known key matches at all.
func closestKnownKey(key string) (string, bool) {
	ranks := fuzzy.RankFindFold(key, knownKeys)
	if len(ranks) == 0 {
		return "", false
	}
	return ranks[0].Target, true
}

// stringSlice reports whether raw is a []any of only strings (the shape a
// generic JSON/YAML decode produces for an array), returning the
// concretely-typed slice.
func stringSlice(raw any) ([]string, bool) {
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	result := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		result[i] = s
	}
	return result, true
}
