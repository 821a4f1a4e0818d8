package jig

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// Listing is the printable view of a Catalog.
type Listing struct {
	Groups []ListedGroup
}

// ListedGroup is one non-empty group of a Listing.
type ListedGroup struct {
	Name     string
	Commands []ListedCommand
}

// ListedCommand is a command entry of a Listing.
type ListedCommand struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Listing returns the root group first, then the other groups sorted by
// name. Commands are sorted by name and empty groups are omitted.
func (c *Catalog) Listing() Listing {
	byGroup := make(map[string][]ListedCommand)
	for _, g := range c.groups {
		for _, name := range slices.Sorted(maps.Keys(g.commands)) {
			entry := ListedCommand{Name: name}
			if desc := g.commands[name].Description; desc != "" {
				entry.Description = &desc
			}
			byGroup[g.name] = append(byGroup[g.name], entry)
		}
	}

	var listing Listing
	if cmds := byGroup[c.appName]; len(cmds) > 0 {
		listing.Groups = append(listing.Groups, ListedGroup{Name: c.appName, Commands: sortedCommands(cmds)})
	}
	delete(byGroup, c.appName)

	for _, name := range slices.Sorted(maps.Keys(byGroup)) {
		if cmds := byGroup[name]; len(cmds) > 0 {
			listing.Groups = append(listing.Groups, ListedGroup{Name: name, Commands: sortedCommands(cmds)})
		}
	}

	return listing
}

func sortedCommands(cmds []ListedCommand) []ListedCommand {
	slices.SortFunc(cmds, func(a, b ListedCommand) int {
		return strings.Compare(a.Name, b.Name)
	})
	return cmds
}

// JSON renders the listing as indented JSON.
func (l Listing) JSON() ([]byte, error) {
	doc := struct {
		Groups map[string][]ListedCommand `json:"groups"`
	}{Groups: make(map[string][]ListedCommand, len(l.Groups))}

	for _, g := range l.Groups {
		doc.Groups[g.Name] = g.Commands
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// Text renders the listing for humans.
func (l Listing) Text() string {
	var b strings.Builder
	for i, g := range l.Groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(g.Name)
		b.WriteString(":\n")
		for _, cmd := range g.Commands {
			b.WriteString(" * ")
			b.WriteString(cmd.Name)
			if cmd.Description != nil {
				b.WriteString(" - ")
				b.WriteString(*cmd.Description)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
