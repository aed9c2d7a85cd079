package kommando

import (
	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/i18n"
	"github.com/napalu/kommando/tree"
)

// ConfigureDispatcherFunc configures a Dispatcher created by NewDispatcher
type ConfigureDispatcherFunc func(d *Dispatcher, err *error)

// WithCommand registers root under name and aliases
func WithCommand(name string, root *tree.Node, aliases ...string) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		*err = d.Register(name, root, aliases...)
	}
}

// WithCommandDefinition registers a fully described command
func WithCommandDefinition(c *Command) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		*err = d.AddCommand(c)
	}
}

// WithBundle replaces the translation bundle. The message provider is reset to the default
// language of bundle.
func WithBundle(bundle *i18n.Bundle) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.bundle = bundle
		d.provider = i18n.NewBundleMessageProvider(bundle)
	}
}

// WithLanguage selects the language errors and help are rendered in. The tag must match one
// of the languages of the bundle.
func WithLanguage(tag string) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		lang, ok := d.bundle.Match(tag)
		if !ok {
			*err = errs.ErrUnsupportedLanguage.WithArgs(tag)
			return
		}
		d.provider = i18n.NewLanguageMessageProvider(d.bundle, lang)
	}
}

// WithMessageProvider renders messages with provider instead of the bundle
func WithMessageProvider(provider i18n.MessageProvider) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.provider = provider
	}
}

// WithCommandPrefix makes the dispatcher accept lines starting with prefix, such as '/'. The
// prefix stays optional.
func WithCommandPrefix(prefix rune) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.prefix = prefix
	}
}

// WithCaseInsensitiveCommands matches command names and aliases regardless of case
func WithCaseInsensitiveCommands(value bool) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.caseFold = value
		*err = d.rekey()
	}
}

// WithCommandNameConverter normalizes command names with converter before lookup
func WithCommandNameConverter(converter NameConversionFunc) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.nameConverter = converter
		*err = d.rekey()
	}
}

// WithRenderer replaces the renderer used by Usage and Help
func WithRenderer(renderer Renderer) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.renderer = renderer
	}
}

// rekey rebuilds the lookup table after the name normalization changed
func (d *Dispatcher) rekey() error {
	commands := d.Commands()
	d.lookup = map[string]string{}
	d.commands = orderedmap.New()
	for _, c := range commands {
		if err := d.AddCommand(c); err != nil {
			return err
		}
	}

	return nil
}
