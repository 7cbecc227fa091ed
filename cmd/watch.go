package cmd

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/awsqed/config-formatter/internal/config"
	"github.com/awsqed/config-formatter/internal/plugin"
)

var watchCmd = &cobra.Command{
	Use:   "watch <paths...>",
	Short: "Re-run format whenever a watched file changes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	cfg := loadConfiguration()
	log.WithField("count", len(paths)).Info("watching files for changes")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			if err := rewriteOnDisk(event.Name, cfg); err != nil {
				log.WithError(err).WithField("path", event.Name).Error("format on change failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
		case <-cmd.Context().Done():
			return nil
		}
	}
}

func rewriteOnDisk(path string, cfg config.Configuration) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	out, err := plugin.Format(path, data, cfg)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	log.WithField("path", path).Info("reformatted on change")
	return os.WriteFile(path, out, 0o644)
}
