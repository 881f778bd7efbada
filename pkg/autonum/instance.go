package autonum

import (
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/msto63/autonum/foundation/core/errors"
	anlog "github.com/msto63/autonum/foundation/core/log"
	"github.com/msto63/autonum/pkg/autonum/format"
	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/options"
	"github.com/msto63/autonum/pkg/autonum/rounding"
)

// Instance holds one numeric value and the settings it is shown with. The
// raw numeric string is the only value state; the display text is derived
// from it on every change.
type Instance struct {
	mu sync.RWMutex

	id       uuid.UUID
	settings *options.Settings
	logger   *anlog.Logger
	group    *Group

	raw     string // canonical value, "" when empty
	initial string // baseline for IsPristine
	display string
}

// New creates an instance showing initial. A nil or empty initial value
// starts empty, or at defaultValueOverride when that is set.
func New(initial any, opts ...Option) (*Instance, error) {
	cfg := &instanceConfig{logger: defaultLogger()}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.unknownPresets(); err != nil {
		return nil, err
	}

	s := options.Defaults()
	if len(cfg.opts) > 0 {
		var err error
		if s, err = options.Validate(cfg.opts, cfg.logger); err != nil {
			return nil, err
		}
	}

	n := &Instance{
		id:       uuid.New(),
		settings: s,
		logger:   cfg.logger,
	}

	raw, err := n.storable(initial, s, "New")
	if err != nil {
		return nil, err
	}
	n.initial = raw
	if s.DefaultValueOverride != "" {
		if n.initial, err = n.storable(s.DefaultValueOverride, s, "New"); err != nil {
			return nil, err
		}
		if raw == "" {
			raw = n.initial
		}
	}
	n.raw = raw

	if s.FormatOnPageLoad {
		if n.display, err = format.Format(raw, s); err != nil {
			return nil, err
		}
	} else {
		n.display = raw
	}

	if cfg.group != nil {
		cfg.group.Add(n)
	}
	return n, nil
}

// ID identifies the instance within groups
func (n *Instance) ID() uuid.UUID {
	return n.id
}

// storable reads value and rounds it to the precision it is stored with.
// The value must lie within the limits after rounding.
func (n *Instance) storable(value any, s *options.Settings, operation string) (string, error) {
	raw, err := readValue(value, s, operation)
	if err != nil || raw == "" {
		return raw, err
	}
	if s.HasScale() {
		// scaling only affects the display, so keep the full precision
		if _, err := s.Engine().Apply(raw); err != nil {
			return "", err
		}
		checked, err := s.Engine().CheckRange(raw)
		if err != nil {
			return "", err
		}
		return normalize.Trim(checked), nil
	}
	rounded, err := s.Engine().Apply(raw)
	if err != nil {
		return "", err
	}
	return normalize.Trim(rounded), nil
}

// Set stores value and shows it formatted. When opts are given they are
// merged into the settings first. On failure neither the value nor the
// settings change.
func (n *Instance) Set(value any, opts ...options.Options) error {
	merged := mergeAll(opts)

	n.mu.Lock()
	defer n.mu.Unlock()

	next := n.settings
	if len(merged) > 0 {
		var err error
		if next, err = n.settings.Merge(merged, n.logger); err != nil {
			return err
		}
	}
	raw, err := n.storable(value, next, "Set")
	if err != nil {
		return err
	}
	display, err := format.Format(raw, next)
	if err != nil {
		return err
	}
	n.settings, n.raw, n.display = next, raw, display
	return nil
}

// SetUnformatted stores value and shows the raw numeric string
func (n *Instance) SetUnformatted(value any) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	raw, err := n.storable(value, n.settings, "SetUnformatted")
	if err != nil {
		return err
	}
	n.raw, n.display = raw, raw
	return nil
}

// Get is GetNumericString
func (n *Instance) Get() string {
	return n.GetNumericString()
}

// GetNumericString returns the raw numeric string. An empty value reads as
// "0" when emptyInputBehavior is zero.
func (n *Instance) GetNumericString() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.numericString()
}

func (n *Instance) numericString() string {
	if n.raw == "" && n.settings.EmptyInputBehavior == options.EmptyZero {
		return "0"
	}
	return n.raw
}

// GetNumber returns the value as a float64. ok is false for an empty value.
// Values beyond 2^53 lose precision.
func (n *Instance) GetNumber() (float64, bool) {
	raw := n.GetNumericString()
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	return f, err == nil
}

// GetFormatted returns the text currently shown
func (n *Instance) GetFormatted() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.display
}

// GetLocalized renders the value in the configured output format, or in
// override when one is given
func (n *Instance) GetLocalized(override ...normalize.OutputFormat) (any, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return normalize.ToLocalized(n.numericString(), n.outputFormat(override))
}

func (n *Instance) outputFormat(override []normalize.OutputFormat) normalize.OutputFormat {
	if len(override) > 0 {
		return override[0]
	}
	return n.settings.OutputFormat
}

// Reformat shows the stored value formatted again
func (n *Instance) Reformat() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	display, err := format.Format(n.raw, n.settings)
	if err != nil {
		return err
	}
	n.display = display
	return nil
}

// Unformat shows the raw numeric string
func (n *Instance) Unformat() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.display = n.raw
	return nil
}

// UnformatLocalized shows the value in its localized output format
func (n *Instance) UnformatLocalized(override ...normalize.OutputFormat) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	v, err := normalize.ToLocalized(n.raw, n.outputFormat(override))
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		n.display = strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		n.display = x
	}
	return nil
}

// Update merges the partial option sets into the settings and reformats the
// stored value. Nothing changes when the new settings are invalid. A stored
// value outside the new limits is kept and shown without the range check
// until the next Set.
func (n *Instance) Update(partial ...options.Options) error {
	merged := mergeAll(partial)
	if len(merged) == 0 {
		return nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	next, err := n.settings.Merge(merged, n.logger)
	if err != nil {
		return err
	}
	display, err := format.Format(n.raw, next)
	if errors.IsRange(err) {
		n.logger.WithName(LoggerName).Warn("the current value is outside the updated limits",
			anlog.Fields{"value": n.raw, "min": next.MinimumValue, "max": next.MaximumValue})
		unchecked := *next
		unchecked.OverrideMinMaxLimits = rounding.LimitIgnore
		display, err = format.Format(n.raw, &unchecked)
	}
	if err != nil {
		return err
	}
	n.settings, n.display = next, display
	return nil
}

func mergeAll(partial []options.Options) options.Options {
	merged := options.Options{}
	for _, p := range partial {
		merged = merged.Merge(p)
	}
	return merged
}

// UsePreset updates the settings with a predefined option set
func (n *Instance) UsePreset(name string) error {
	cfg := &instanceConfig{presets: []string{name}}
	if err := cfg.unknownPresets(); err != nil {
		return err
	}
	preset, _ := options.Preset(name)
	return n.Update(preset)
}

// GetSettings returns a copy of the current settings
func (n *Instance) GetSettings() *options.Settings {
	n.mu.RLock()
	defer n.mu.RUnlock()
	s := *n.settings
	return &s
}

// FormatOther formats value with this instance's settings without storing it
func (n *Instance) FormatOther(value any) (string, error) {
	n.mu.RLock()
	s := n.settings
	n.mu.RUnlock()

	raw, err := readValue(value, s, "FormatOther")
	if err != nil {
		return "", err
	}
	return format.Format(raw, s)
}

// UnformatOther reads display with this instance's settings without
// storing it
func (n *Instance) UnformatOther(display string) (string, error) {
	n.mu.RLock()
	s := n.settings
	n.mu.RUnlock()
	return format.Unformat(display, s)
}

// Clear empties the value. The display follows emptyInputBehavior.
func (n *Instance) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	display, err := format.Format("", n.settings)
	if err != nil {
		display = ""
	}
	n.raw, n.display = "", display
}

// IsPristine reports whether the value equals the initial value, or
// defaultValueOverride when that is set
func (n *Instance) IsPristine() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.raw == n.initial
}

// Remove detaches the instance from its group. The value is kept.
func (n *Instance) Remove() {
	n.mu.Lock()
	g := n.group
	n.group = nil
	n.mu.Unlock()

	if g != nil {
		g.Remove(n)
	}
}

// Wipe clears the value and detaches the instance from its group
func (n *Instance) Wipe() {
	n.Clear()
	n.Remove()
}

// Group returns the group the instance belongs to, or nil
func (n *Instance) Group() *Group {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.group
}

func (n *Instance) setGroup(g *Group) {
	n.mu.Lock()
	n.group = g
	n.mu.Unlock()
}
