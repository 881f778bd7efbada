package autonum

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/msto63/autonum/foundation/core/errors"
	"github.com/msto63/autonum/pkg/autonum/format"
	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/options"
	"github.com/msto63/autonum/pkg/core/cache"
)

// settingsCache holds validated settings for option sets that produced no
// warnings, so repeated static calls skip validation. Sets with warnings are
// validated on every call and log every time.
var (
	cacheMu       sync.RWMutex
	settingsCache = cache.New(cache.Config{MaxItems: 128})
)

// ConfigureCache replaces the settings cache of the static API. A ttl of
// zero keeps entries until they are evicted by size.
func ConfigureCache(maxItems int, ttl time.Duration) {
	c := cache.New(cache.Config{MaxItems: maxItems, TTL: ttl})
	cacheMu.Lock()
	settingsCache = c
	cacheMu.Unlock()
}

// CacheStats reports the number of cached settings and the hit counters of
// the static API's settings cache
func CacheStats() (entries int, hits, misses int64) {
	c := currentCache()
	hits, misses, _ = c.Stats()
	return c.Size(), hits, misses
}

func currentCache() *cache.Cache {
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	return settingsCache
}

// Validate checks opts against the option schema. Legacy option names are
// rewritten in opts itself and each rewrite logs one warning.
func Validate(opts options.Options) (*options.Settings, error) {
	return options.Validate(opts, defaultLogger())
}

// GetDefaultConfig returns the settings produced by the default options
func GetDefaultConfig() *options.Settings {
	return options.Defaults()
}

// GetPredefinedOptions returns every predefined option set, keyed by name.
// The maps are fresh copies.
func GetPredefinedOptions() map[string]options.Options {
	return options.Predefined()
}

// Format renders value with the merged opts. A nil value returns nil. Raw
// numeric strings are used as they are; any other string is first read with
// the same options, so "1234,56" with the defaults is 123456.
func Format(value any, opts ...options.Options) (*string, error) {
	if value == nil {
		return nil, nil
	}
	s, err := settingsFor(opts)
	if err != nil {
		return nil, err
	}
	raw, err := readValue(value, s, "Format")
	if err != nil {
		return nil, err
	}
	out, err := format.Format(raw, s)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Unformat reads value with the merged opts and returns the raw numeric
// string, or the localized form when outputFormat is set. Numbers are
// returned unchanged and nil stays nil. The result is neither padded nor
// trimmed: "$0.00" gives "0.00".
func Unformat(value any, opts ...options.Options) (any, error) {
	if value == nil {
		return nil, nil
	}
	if normalize.IsNumber(value) {
		return value, nil
	}
	str, ok := value.(string)
	if !ok {
		return nil, invalidInput("Unformat", value)
	}
	s, err := settingsFor(opts)
	if err != nil {
		return nil, err
	}

	raw := strings.TrimSpace(str)
	if !normalize.IsRaw(raw) {
		if raw, err = format.UnformatLenient(str, s); err != nil {
			return nil, err
		}
	}
	return normalize.ToLocalized(raw, s.OutputFormat)
}

// readValue turns a static or instance input into a raw numeric string.
// Strings already in raw form are taken as they are.
func readValue(value any, s *options.Settings, operation string) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || normalize.IsRaw(trimmed) {
			return trimmed, nil
		}
		return format.Unformat(v, s)
	}
	if raw, ok := normalize.FromNumber(value); ok {
		return raw, nil
	}
	return "", invalidInput(operation, value)
}

func invalidInput(operation string, value any) error {
	return errors.InvalidInput(errors.ModuleAutonum, operation, value, "a numeric string or a number")
}

// settingsFor merges opts left to right and validates the result. No
// options, or only empty ones, means the defaults.
func settingsFor(opts []options.Options) (*options.Settings, error) {
	merged := mergeAll(opts)
	if len(merged) == 0 {
		return options.Defaults(), nil
	}

	key := fingerprint(merged)
	c := currentCache()
	if cached, ok := c.Get(key); ok {
		return cached.(*options.Settings), nil
	}

	s, warnings, err := options.Inspect(merged)
	if err != nil {
		return nil, err
	}
	if len(warnings) > 0 {
		// validate again on a copy so the warnings reach the logger
		s, _, err = options.ValidateCopy(merged, defaultLogger())
		return s, err
	}
	c.Set(key, s)
	return s, nil
}

// fingerprint is a stable key for an option set
func fingerprint(o options.Options) string {
	var b strings.Builder
	for _, k := range o.Keys() {
		fmt.Fprintf(&b, "%s=%#v;", k, o[k])
	}
	return b.String()
}
