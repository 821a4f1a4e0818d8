package jig

import (
	"maps"
	"slices"

	"go.trai.ch/jig/pkg/jig/names"
)

// Catalog is the merged, collision-free set of commands of a project.
type Catalog struct {
	appName string
	groups  []catalogGroup
	merged  map[string]Command
	aliases map[string]string
}

type catalogGroup struct {
	name     string
	commands map[string]Command
}

// NewCatalog case-converts the root commands and every group independently
// and merges them. The root commands are listed under appName. A name that
// appears more than once after conversion fails with *DuplicateCommandError
// naming the first collision in sorted order.
func NewCatalog(appName string, root map[string]Command, groups []Group, strategy names.CaseStrategy) (*Catalog, error) {
	c := &Catalog{
		appName: appName,
		merged:  make(map[string]Command),
	}

	rootCommands, err := ConvertCommands(root, strategy)
	if err != nil {
		return nil, err
	}
	if err := c.add(appName, rootCommands); err != nil {
		return nil, err
	}

	for _, g := range groups {
		if d, ok := g.(interface{ duplicateNames() []string }); ok {
			if dups := d.duplicateNames(); len(dups) > 0 {
				return nil, &DuplicateCommandError{Name: names.Convert(dups[0], strategy)}
			}
		}

		commands, err := ConvertCommands(g.Commands(), strategy)
		if err != nil {
			return nil, err
		}
		if err := c.add(g.Name(), commands); err != nil {
			return nil, err
		}
	}

	c.aliases = make(map[string]string)
	for name, alias := range names.Aliases(c.Names()) {
		if _, taken := c.merged[alias]; !taken {
			c.aliases[alias] = name
		}
	}

	return c, nil
}

func (c *Catalog) add(group string, commands map[string]Command) error {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		if _, exists := c.merged[name]; exists {
			return &DuplicateCommandError{Name: name}
		}
	}
	for name, cmd := range commands {
		c.merged[name] = cmd
	}
	c.groups = append(c.groups, catalogGroup{name: group, commands: commands})
	return nil
}

// AppName returns the name of the root group.
func (c *Catalog) AppName() string {
	return c.appName
}

// Names returns every command name in sorted order.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.merged))
}

// Commands returns a copy of the merged command mapping.
func (c *Catalog) Commands() map[string]Command {
	return maps.Clone(c.merged)
}

// Aliases returns the alias of every command that has a usable one.
func (c *Catalog) Aliases() map[string]string {
	byName := make(map[string]string, len(c.aliases))
	for alias, name := range c.aliases {
		byName[name] = alias
	}
	return byName
}

// Resolve returns the canonical name for name, which may be an alias.
func (c *Catalog) Resolve(name string) (string, error) {
	if _, ok := c.merged[name]; ok {
		return name, nil
	}
	if canonical, ok := c.aliases[name]; ok {
		return canonical, nil
	}
	return "", &CommandNotFoundError{
		Name:        name,
		Suggestions: names.ClosestMatches(name, c.Names(), names.DefaultMaxDistance),
	}
}

// Lookup returns the command registered as name or, failing that, the
// command whose alias is name.
func (c *Catalog) Lookup(name string) (Command, error) {
	canonical, err := c.Resolve(name)
	if err != nil {
		return Command{}, err
	}
	return c.merged[canonical], nil
}
