package command

import (
	"fmt"
	"strings"
	"sync"
)

// Repository supplies the full set of registered commands. Consumers that
// need the live set (the help command) hold the Repository itself rather
// than a snapshot, so registrations after construction are visible.
type Repository interface {
	// Commands returns all registered commands in registration order.
	Commands() []Command
}

// Registry is the standard Repository implementation.
type Registry struct {
	mu       sync.RWMutex
	commands []Command
	names    map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register adds a command. Names are unique case-insensitively; a
// duplicate or empty name is rejected.
func (r *Registry) Register(cmd Command) error {
	name := cmd.Definition().Name
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := r.names[key]; exists {
		return fmt.Errorf("command already registered: %s", name)
	}
	r.names[key] = struct{}{}
	r.commands = append(r.commands, cmd)
	return nil
}

// Commands implements Repository. The returned slice is a copy.
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}
