package autonum

import (
	"fmt"

	"github.com/msto63/autonum/foundation/core/errors"
	anlog "github.com/msto63/autonum/foundation/core/log"
	"github.com/msto63/autonum/pkg/autonum/options"
)

// Option configures an Instance during creation
type Option func(*instanceConfig)

type instanceConfig struct {
	opts    options.Options
	group   *Group
	logger  *anlog.Logger
	presets []string
}

// WithOptions overlays o on the options given so far
func WithOptions(o options.Options) Option {
	return func(c *instanceConfig) {
		c.opts = c.opts.Merge(o)
	}
}

// WithPreset overlays a predefined option set. Options given by a later
// WithOptions win over the preset.
func WithPreset(name string) Option {
	return func(c *instanceConfig) {
		c.presets = append(c.presets, name)
		if preset, ok := options.Preset(name); ok {
			c.opts = c.opts.Merge(preset)
		}
	}
}

// WithGroup registers the new instance with g
func WithGroup(g *Group) Option {
	return func(c *instanceConfig) {
		c.group = g
	}
}

// WithLogger sets the logger validation warnings go to
func WithLogger(l *anlog.Logger) Option {
	return func(c *instanceConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// unknownPresets reports preset names that do not exist
func (c *instanceConfig) unknownPresets() error {
	for _, name := range c.presets {
		if _, ok := options.Preset(name); !ok {
			return errors.Validation(errors.ModuleAutonum, "preset", name,
				fmt.Sprintf("unknown predefined option set %q", name))
		}
	}
	return nil
}
