package cmd

import (
	"golang.org/x/text/language"

	"github.com/msto63/autonum/foundation/core/config"
	anerror "github.com/msto63/autonum/foundation/core/error"
	"github.com/msto63/autonum/foundation/core/errors"
	anlog "github.com/msto63/autonum/foundation/core/log"
	"github.com/msto63/autonum/foundation/utils/mapx"
	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/options"
)

// Top-level tables of a structured options document
const (
	tableOptions = "options"
	tablePresets = "presets"
)

// optionDocument is an options file. A document with an [options] or a
// [presets.NAME] table is structured; otherwise its root table is the
// option set.
type optionDocument struct {
	Path    string
	Options options.Options
	Presets map[string]options.Options
}

// loadOptionDocument reads path, or discovers autonum.{toml,yaml,yml} in the
// working directory when path is empty
func loadOptionDocument(path string) (*optionDocument, error) {
	var (
		doc *config.Config
		err error
	)
	if path == "" {
		doc, err = config.Discover(config.DefaultDiscoveryOptions())
	} else {
		doc, err = config.Load(path)
	}
	if err != nil {
		return nil, err
	}
	return documentFrom(doc)
}

func documentFrom(doc *config.Config) (*optionDocument, error) {
	out := &optionDocument{Path: doc.FilePath(), Presets: map[string]options.Options{}}

	if !doc.Has(tableOptions) && !doc.Has(tablePresets) {
		out.Options = options.Options(doc.Sub(""))
		return out, nil
	}

	if doc.Has(tableOptions) {
		table := doc.Sub(tableOptions)
		if table == nil {
			return nil, documentError(out.Path, tableOptions)
		}
		out.Options = options.Options(table)
	}
	if doc.Has(tablePresets) {
		for _, name := range doc.Keys(tablePresets) {
			table := doc.Sub(tablePresets + "." + name)
			if table == nil {
				return nil, documentError(out.Path, tablePresets+"."+name)
			}
			out.Presets[name] = options.Options(table)
		}
	}
	return out, nil
}

func documentError(path, key string) error {
	return errors.NewErrorBuilder(errors.ModuleConfig).
		Operation("cmd.documentFrom").
		Message("expected a table of options").
		Code(anerror.CodeInvalidConfig).
		Detail("path", path).
		Detail("key", key).
		Build()
}

// PresetNames returns the document's preset names in order
func (d *optionDocument) PresetNames() []string {
	return mapx.SortedKeys(d.Presets)
}

// optionSets resolves the option flags into the sets to merge, in order:
// preset, options document, currency, output format, single options
func (a *app) optionSets(flags *OptionFlags) ([]options.Options, error) {
	doc, err := loadOptionDocument(a.v.GetString(flagOptionsFile))
	if err != nil {
		return nil, err
	}

	var sets []options.Options
	if name := a.v.GetString(flagPreset); name != "" {
		preset, ok := doc.Presets[name]
		if !ok {
			if preset, ok = options.Preset(name); !ok {
				return nil, errors.Validation(errors.ModuleConfig, "preset", name, "unknown preset")
			}
		}
		sets = append(sets, preset)
	}
	if len(doc.Options) > 0 {
		sets = append(sets, doc.Options)
	}

	if iso := a.v.GetString(flagCurrency); iso != "" {
		locale := a.v.GetString(flagLocale)
		if locale == "" {
			locale = "en"
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, anerror.Wrap(err, "invalid locale").
				WithCode(anerror.CodeInvalidInput).
				WithOperation("cmd.optionSets").
				WithDetail("locale", locale)
		}
		preset, err := options.CurrencyPreset(iso, tag)
		if err != nil {
			return nil, err
		}
		sets = append(sets, preset)
	}

	if of := a.v.GetString(flagOutputFormat); of != "" {
		if !normalize.OutputFormat(of).IsValid() {
			return nil, errors.Validation(errors.ModuleConfig, options.KeyOutputFormat, of, "unknown output format")
		}
		sets = append(sets, options.Options{options.KeyOutputFormat: of})
	}

	if len(flags.Set) > 0 {
		sets = append(sets, flags.Set.Options())
	}

	a.logger.Debug("option sources resolved", anlog.Fields{
		"document": doc.Path,
		"sets":     len(sets),
	})
	return sets, nil
}
