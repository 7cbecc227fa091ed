package cmd

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/awsqed/config-formatter/internal/config"
)

// loadConfiguration reads and decodes the --config file, if any, into a
// generic key/value bag and hands it to config.Resolve. Diagnostics are
// logged as warnings rather than failing the command, matching spec.md §7's
// "diagnostics never fail the request" policy.
func loadConfiguration() config.Configuration {
	if configPath == "" {
		return config.Default()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.WithError(err).WithField("path", configPath).Warn("could not read config file, using defaults")
		return config.Default()
	}

	var bag map[string]any
	if err := yaml.Unmarshal(data, &bag); err != nil {
		log.WithError(err).WithField("path", configPath).Warn("could not parse config file, using defaults")
		return config.Default()
	}

	resolved, diagnostics := config.Resolve(bag)
	for _, d := range diagnostics {
		log.WithField("property", d.PropertyName).Warn(d.Message)
	}
	return resolved
}
