// Package output writes rendered reports to disk.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/config"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/render"
)

// Write stores each enabled report under dir. It returns the paths it wrote
// and the report paths that must no longer exist, whether or not a file was
// there to delete. The alert file only exists while there is something to
// alert on. A template failure skips the INI file but not the other reports.
func Write(dir string, names config.Outputs, reports *render.Reports) (written, removed []string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating output dir: %w", err)
	}

	write := func(name, content string) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	if names.Table != "" {
		if err := write(names.Table, reports.Table); err != nil {
			return written, removed, err
		}
	}

	if names.Alert != "" {
		if reports.Alert != "" {
			if err := write(names.Alert, reports.Alert+"\n"); err != nil {
				return written, removed, err
			}
		} else {
			path := filepath.Join(dir, names.Alert)
			if err := removeStale(path); err != nil {
				return written, removed, err
			}
			removed = append(removed, path)
		}
	}

	if names.INI != "" {
		if reports.INIErr != nil {
			return written, removed, fmt.Errorf("rendering %s: %w", names.INI, reports.INIErr)
		}
		if err := write(names.INI, reports.INI); err != nil {
			return written, removed, err
		}
	}

	return written, removed, nil
}

func removeStale(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing stale %s: %w", path, err)
	}
	return nil
}
