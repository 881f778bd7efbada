package autonum

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	anerror "github.com/msto63/autonum/foundation/core/error"
	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/options"
)

// Group coordinates instances that show one logical value. Operations run
// on the members one after another in the order they joined.
type Group struct {
	mu      sync.RWMutex
	members []*Instance
	index   map[uuid.UUID]*Instance
}

// NewGroup creates a group with the given members. An empty group is
// valid but logs a warning, as it is usually a wiring mistake.
func NewGroup(members ...*Instance) *Group {
	g := &Group{index: make(map[uuid.UUID]*Instance)}
	if len(members) == 0 {
		defaultLogger().WithName(LoggerName).Warn("the group was created without any member")
	}
	for _, m := range members {
		g.Add(m)
	}
	return g
}

// Add registers n. An instance belongs to at most one group, so n leaves
// its previous group first. Adding a member twice is a no-op.
func (g *Group) Add(n *Instance) {
	if n == nil {
		return
	}
	if prev := n.Group(); prev != nil && prev != g {
		prev.Remove(n)
	}

	g.mu.Lock()
	if _, ok := g.index[n.ID()]; !ok {
		g.members = append(g.members, n)
		g.index[n.ID()] = n
	}
	g.mu.Unlock()
	n.setGroup(g)
}

// Remove unregisters n. The order of the other members is kept.
func (g *Group) Remove(n *Instance) {
	if n == nil {
		return
	}
	g.mu.Lock()
	if _, ok := g.index[n.ID()]; ok {
		delete(g.index, n.ID())
		for i, m := range g.members {
			if m == n {
				g.members = append(g.members[:i], g.members[i+1:]...)
				break
			}
		}
	}
	g.mu.Unlock()

	if n.Group() == g {
		n.setGroup(nil)
	}
}

// Has reports whether n is a member
func (g *Group) Has(n *Instance) bool {
	if n == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[n.ID()]
	return ok
}

// Size returns the number of members
func (g *Group) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.members)
}

// Members returns the members in registration order
func (g *Group) Members() []*Instance {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Instance, len(g.members))
	copy(out, g.members)
	return out
}

// each runs fn on every member and stops at the first error. The member
// list is copied first so fn may change the membership.
func (g *Group) each(operation string, fn func(*Instance) error) error {
	for i, m := range g.Members() {
		if err := fn(m); err != nil {
			return anerror.Wrap(err, fmt.Sprintf("group %s failed on member %d (%s)", operation, i, m.ID())).
				WithDetail("member", i).
				WithDetail("id", m.ID().String())
		}
	}
	return nil
}

// Set stores value in every member
func (g *Group) Set(value any) error {
	return g.each("Set", func(n *Instance) error { return n.Set(value) })
}

// SetUnformatted stores value in every member without formatting it
func (g *Group) SetUnformatted(value any) error {
	return g.each("SetUnformatted", func(n *Instance) error { return n.SetUnformatted(value) })
}

// Reformat formats every member again
func (g *Group) Reformat() error {
	return g.each("Reformat", (*Instance).Reformat)
}

// Unformat shows the raw value in every member
func (g *Group) Unformat() error {
	return g.each("Unformat", (*Instance).Unformat)
}

// UnformatLocalized shows the localized value in every member
func (g *Group) UnformatLocalized(override ...normalize.OutputFormat) error {
	return g.each("UnformatLocalized", func(n *Instance) error { return n.UnformatLocalized(override...) })
}

// Update merges opts into the settings of every member
func (g *Group) Update(opts ...options.Options) error {
	return g.each("Update", func(n *Instance) error { return n.Update(opts...) })
}

// Clear empties every member
func (g *Group) Clear() {
	_ = g.each("Clear", func(n *Instance) error {
		n.Clear()
		return nil
	})
}

// IsPristine reports whether every member still holds its initial value
func (g *Group) IsPristine() bool {
	for _, m := range g.Members() {
		if !m.IsPristine() {
			return false
		}
	}
	return true
}

// GetNumericStrings returns the raw value of every member in registration
// order
func (g *Group) GetNumericStrings() []string {
	members := g.Members()
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.GetNumericString()
	}
	return out
}

// GetFormatted returns the display text of every member in registration
// order
func (g *Group) GetFormatted() []string {
	members := g.Members()
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.GetFormatted()
	}
	return out
}
