package configutil

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// ReadConfig starts from defaults and merges in, lowest priority first:
//  1. <name>.<ext>
//  2. <name>.local.<ext>
//
// Missing files are skipped, so with neither present defaults is returned
// unchanged. Zero values in a file never override what came before it.
func ReadConfig[T any](name string, defaults T) (T, error) {
	out := defaults

	dirname := filepath.Dir(name)
	prefixname, ext := splitExt(filepath.Base(name))
	localname := filepath.Join(dirname, fmt.Sprintf("%s.local.%s", prefixname, ext))

	for _, path := range []string{name, localname} {
		contents, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return defaults, err
		}
		if len(contents) == 0 {
			continue
		}

		var override T
		err = json5.Unmarshal(contents, &override)
		if err != nil {
			return defaults, fmt.Errorf("parse %s: %w", path, err)
		}
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return defaults, fmt.Errorf("merge %s: %w", path, err)
		}
		slog.Info("merged config file", "path", path)
	}

	return out, nil
}

// Duration is a time.Duration written as a string like "15s" in config files.
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var text string
	if err := json5.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(text)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}
