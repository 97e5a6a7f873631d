package configview

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/telnet2/go-practice/go-cmdkit/internal/logging"
)

// File is a reloadable view backed by a configuration file. JSON and
// JSONC documents are accepted for .json/.jsonc files, YAML for
// .yaml/.yml. Nested documents are flattened with ':' separators, so a
// YAML document
//
//	commands:
//	  deploy:
//	    env: staging
//
// is addressable as "commands:deploy:env". Lookup is case-sensitive at
// this layer; callers that need case-folding do it with the keys they
// ask for.
type File struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// NewFile loads path and returns a view over its flattened contents.
func NewFile(path string) (*File, error) {
	f := &File{path: path}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// Get implements View.
func (f *File) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.values[key]
	return value, ok
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Len reports the number of flattened keys currently loaded.
func (f *File) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.values)
}

// Reload re-reads the backing file and swaps the value set atomically.
// On error the previously loaded values stay in place.
func (f *File) Reload() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	doc := make(map[string]any)
	switch ext := strings.ToLower(filepath.Ext(f.path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", f.path, err)
		}
	default:
		// JSONC comments and trailing commas are tolerated.
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return fmt.Errorf("parse %s: %w", f.path, err)
		}
	}

	values := make(map[string]string)
	flatten("", doc, values)

	f.mu.Lock()
	f.values = values
	f.mu.Unlock()

	logging.Debug().
		Str("path", f.path).
		Int("keys", len(values)).
		Msg("configuration file loaded")

	return nil
}

// flatten walks a decoded document and records scalar leaves under
// ':'-joined key paths. Sequences have no key form and are skipped.
func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			path := key
			if prefix != "" {
				path = prefix + ":" + key
			}
			flatten(path, child, out)
		}
	case nil:
		// Explicit null means unset; leave the key absent.
	case []any:
		logging.Debug().Str("key", prefix).Msg("skipping sequence value in configuration file")
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprintf("%v", v)
		}
	}
}
