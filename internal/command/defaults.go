package command

import (
	"github.com/telnet2/go-practice/go-cmdkit/internal/configview"
)

// DefaultsView exposes a definition's parameter defaults as a
// configuration view keyed by parameter name. If a name is declared more
// than once the first declaration wins. Unknown names miss. It is used as
// the lowest-precedence layer of the effective view, so any configured
// value shadows the static default.
func DefaultsView(def Definition) configview.View {
	values := make(map[string]string, len(def.Parameters))
	for _, p := range def.Parameters {
		if _, seen := values[p.Name]; seen {
			continue
		}
		values[p.Name] = p.Default
	}
	return configview.Map(values)
}
