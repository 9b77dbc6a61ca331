package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/elliotchance/orderedmap/v3"
	"github.com/sajari/fuzzy"
)

// Registry maps command names to their descriptors, keeping registration
// order for help output.
type Registry struct {
	commands *orderedmap.OrderedMap[string, *Descriptor]
	spelling *fuzzy.Model
}

// NewRegistry validates the descriptors and indexes them by name.
//
// A descriptor registered under a name that's already taken replaces the
// earlier one but keeps its position.
func NewRegistry(descriptors []*Descriptor, logger *log.Logger) (*Registry, error) {
	r := &Registry{
		commands: orderedmap.NewOrderedMap[string, *Descriptor](),
	}

	for _, d := range descriptors {
		if d == nil {
			continue
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if !r.commands.Set(d.Name, d) && logger != nil {
			logger.Warn("command registered twice, keeping the last one", "command", d.Name)
		}
	}

	r.spelling = fuzzy.NewModel()
	// Every name is a valid word even if it was only seen once.
	r.spelling.SetThreshold(1)
	r.spelling.Train(r.Names())

	return r, nil
}

// Lookup finds a command by name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	return r.commands.Get(name)
}

// Has returns true if a command with the name is registered.
func (r *Registry) Has(name string) bool {
	return r.commands.Has(name)
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return r.commands.Len()
}

// Names returns the command names in registration order.
func (r *Registry) Names() []string {
	return slices.Collect(r.commands.Keys())
}

// Descriptors returns the commands in registration order.
func (r *Registry) Descriptors() []*Descriptor {
	return slices.Collect(r.commands.Values())
}

// Search returns the commands whose name contains substr.
func (r *Registry) Search(substr string) []*Descriptor {
	var out []*Descriptor
	for name, d := range r.commands.AllFromFront() {
		if strings.Contains(name, substr) {
			out = append(out, d)
		}
	}
	return out
}

// Suggest returns a registered name close to the given one, or "" if there's
// none.
func (r *Registry) Suggest(name string) string {
	if r.spelling == nil || name == "" {
		return ""
	}
	suggestion := r.spelling.SpellCheck(name)
	if suggestion == name || !r.Has(suggestion) {
		return ""
	}
	return suggestion
}
