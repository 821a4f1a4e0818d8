package jig

import (
	"maps"
	"slices"

	"go.trai.ch/jig/pkg/jig/names"
)

// Group is a named set of commands contributed by one part of a project.
type Group interface {
	Name() string
	Commands() map[string]Command
}

// GroupBuilder assembles a Group one command at a time.
type GroupBuilder struct {
	name       string
	commands   map[string]Command
	duplicates []string
}

// NewGroup starts a group called name.
func NewGroup(name string) *GroupBuilder {
	return &GroupBuilder{name: name, commands: make(map[string]Command)}
}

// Add registers cmd under name. Registering a name twice makes the catalog
// built from this group fail.
func (b *GroupBuilder) Add(name string, cmd Command) *GroupBuilder {
	if _, exists := b.commands[name]; exists {
		b.duplicates = append(b.duplicates, name)
	}
	b.commands[name] = cmd
	return b
}

// Name returns the group name.
func (b *GroupBuilder) Name() string {
	return b.name
}

// Commands returns a copy of the registered commands.
func (b *GroupBuilder) Commands() map[string]Command {
	return maps.Clone(b.commands)
}

func (b *GroupBuilder) duplicateNames() []string {
	return b.duplicates
}

// ConvertCommands renames every command with strategy. Two names that
// convert to the same name fail with *DuplicateCommandError.
func ConvertCommands(commands map[string]Command, strategy names.CaseStrategy) (map[string]Command, error) {
	converted := make(map[string]Command, len(commands))
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		newName := names.Convert(name, strategy)
		if _, exists := converted[newName]; exists {
			return nil, &DuplicateCommandError{Name: newName}
		}
		converted[newName] = commands[name]
	}
	return converted, nil
}
