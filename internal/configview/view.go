package configview

import (
	"os"
	"strings"
)

// View is a read-only key to optional-value lookup. The second return
// value reports whether the key is present; an empty string with ok=true
// is a valid, set value.
type View interface {
	Get(key string) (string, bool)
}

// GetFunc adapts a plain function to a View.
type GetFunc func(key string) (string, bool)

// Get implements View.
func (f GetFunc) Get(key string) (string, bool) {
	return f(key)
}

type layered struct {
	views []View
}

// Layered composes views in precedence order: earlier views shadow later
// ones, and the first view that reports the key wins.
func Layered(views ...View) View {
	vs := make([]View, len(views))
	copy(vs, views)
	return &layered{views: vs}
}

func (l *layered) Get(key string) (string, bool) {
	for _, v := range l.views {
		if value, ok := v.Get(key); ok {
			return value, true
		}
	}
	return "", false
}

type prefixed struct {
	view   View
	prefix string
}

// Prefixed returns a view scoped under prefix: Get(key) delegates to the
// underlying view with prefix+key. Scoping an already scoped view nests
// the prefixes.
func Prefixed(v View, prefix string) View {
	return &prefixed{view: v, prefix: prefix}
}

func (p *prefixed) Get(key string) (string, bool) {
	return p.view.Get(p.prefix + key)
}

type mapView struct {
	values map[string]string
}

// Map returns a view over a literal key/value set. The map is copied so
// later mutation by the caller does not leak into the view.
func Map(values map[string]string) View {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &mapView{values: m}
}

func (m *mapView) Get(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

type envView struct {
	prefix string
}

// Env returns a view backed by process environment variables. A lookup
// for "Commands:deploy:env" with prefix "CMDKIT_" consults
// CMDKIT_COMMANDS_DEPLOY_ENV: keys are uppercased and ':' and '.' become
// '_' so configuration paths stay addressable from the environment.
func Env(prefix string) View {
	return &envView{prefix: prefix}
}

func (e *envView) Get(key string) (string, bool) {
	return os.LookupEnv(e.prefix + EnvKey(key))
}

// EnvKey converts a configuration key into its environment variable form.
func EnvKey(key string) string {
	k := strings.ToUpper(key)
	k = strings.ReplaceAll(k, ":", "_")
	k = strings.ReplaceAll(k, ".", "_")
	return k
}
