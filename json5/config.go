// Package json5 reads gradeforge configuration files written in JSON5.
package json5

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/fwojciec/gradeforge"
	"github.com/titanous/json5"
)

// LocalPath returns the override file read after name:
// "gradeforge.json5" becomes "gradeforge.local.json5".
func LocalPath(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".local" + ext
}

// ReadConfig reads name and its local override and merges them, in that
// order, over gradeforge.DefaultConfig. Fields absent from a file keep the
// value they had. Returns ENOTFOUND if neither file exists.
func ReadConfig(name string, logger *slog.Logger) (gradeforge.Config, error) {
	cfg := gradeforge.DefaultConfig()
	found := false

	for _, path := range []string{name, LocalPath(name)} {
		override, err := readFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return cfg, err
		}
		if err := mergo.Merge(&cfg, override, mergo.WithOverride); err != nil {
			return cfg, fmt.Errorf("merge %s: %w", path, err)
		}
		if path != name && logger != nil {
			logger.Info("merging config with local overrides", "local", path)
		}
		found = true
	}

	if !found {
		return cfg, gradeforge.Errorf(gradeforge.ENOTFOUND, "config file %q not found", name)
	}
	return cfg, cfg.Validate()
}

func readFile(path string) (gradeforge.Config, error) {
	var cfg gradeforge.Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json5.Unmarshal(b, &cfg); err != nil {
		return cfg, gradeforge.Errorf(gradeforge.EINVALID, "%s: %v", path, err)
	}
	return cfg, nil
}
