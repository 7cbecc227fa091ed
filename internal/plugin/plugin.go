// Package plugin exposes the boundary contract a host uses to discover and
// invoke the formatter: identity metadata, license text, and the single
// Format entry point wrapping the rewrite driver.
package plugin

import (
	"github.com/awsqed/config-formatter/internal/config"
	"github.com/awsqed/config-formatter/internal/rewrite"
)

// Version is the plugin's advertised version. cmd's root command sets this
// from its own ldflags-injected build version at startup, so "tailwindsort
// version" and "tailwindsort info" always agree; callers that only import
// this package directly see the "0.1.0" fallback below.
var Version = "0.1.0"

// Info identifies this plugin to a host.
type Info struct {
	Name      string
	Version   string
	ConfigKey string
	HelpURL   string
	UpdateURL string
}

// Describe returns the plugin's identity metadata.
func Describe() Info {
	return Info{
		Name:      "tailwindsort",
		Version:   Version,
		ConfigKey: "tailwindcss",
		HelpURL:   "https://github.com/awsqed/config-formatter",
		UpdateURL: "https://plugins.dprint.dev/awsqed/tailwindsort/latest.json",
	}
}

// Extensions lists the file extensions this plugin advertises to a host for
// file matching, per spec.md §6's file-extension surface.
var Extensions = []string{"html", "htm", "jsx", "tsx", "vue", "svelte", "astro"}

// licenseText is returned by LicenseText. The teacher module ships no
// LICENSE file of its own, so this plugin carries its own short MIT grant
// rather than inventing one for the module root.
const licenseText = `MIT License

Copyright (c) the config-formatter contributors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to
deal in the Software without restriction, including without limitation the
rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
sell copies of the Software, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
`

// LicenseText returns the plugin's license text, reachable from the
// "tailwindsort info" command.
func LicenseText() string {
	return licenseText
}

// Format runs the rewrite driver for a resolved Configuration against a
// single file. It returns (nil, nil) for "no change", (bytes, nil) for a
// rewrite, and a non-nil error only for undecodable input.
func Format(path string, contents []byte, cfg config.Configuration) ([]byte, error) {
	result, err := rewrite.New(cfg).Run(path, contents)
	if err != nil {
		return nil, err
	}
	if !result.Changed {
		return nil, nil
	}
	return result.Bytes, nil
}
