package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
	Format(provider MessageProvider) string
	SetProvider(provider MessageProvider)
}

// Formatter is implemented by errors able to render themselves with a given provider
type Formatter interface {
	Format(provider MessageProvider) string
}

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider implements MessageProvider using a bundle and a fixed language.
// Keys missing from that language fall back to the bundle's default language.
type BundleMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewBundleMessageProvider creates a provider serving the bundle's default language
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	p := &BundleMessageProvider{bundle: bundle}
	if bundle != nil {
		p.lang = bundle.DefaultLanguage()
	}

	return p
}

// NewLanguageMessageProvider creates a provider serving lang
func NewLanguageMessageProvider(bundle *Bundle, lang language.Tag) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle, lang: lang}
}

// Language returns the language served by the provider
func (p *BundleMessageProvider) Language() language.Tag {
	return p.lang
}

// GetMessage returns the message for the given key, or the key itself when no translation exists
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	if msg, ok := p.bundle.lookup(p.lang, key); ok {
		return msg
	}

	if msg, ok := p.bundle.lookup(p.bundle.DefaultLanguage(), key); ok {
		return msg
	}

	return key
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support.
//
// Example usage:
//
//	err := NewError("kommando.error.unknown_command")
//	err = err.WithArgs("tp")
//	err = err.Wrap(originalError)
type TrError struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
	// messageProvider is shared by all copies made through WithArgs and Wrap
	messageProvider *providerRef
}

type providerRef struct {
	mu       sync.RWMutex
	provider MessageProvider
}

func (r *providerRef) get() MessageProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.provider == nil {
		return getDefaultProvider()
	}

	return r.provider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel:        errors.New(key),
		key:             key,
		messageProvider: &providerRef{},
	}
}

// NewErrorWithProvider creates a new translatable error bound to a specific provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	e := NewError(key)
	e.messageProvider.provider = provider
	return e
}

// Error returns the message of the error in the language of its provider
func (e *TrError) Error() string {
	return e.Format(e.messageProvider.get())
}

// Format renders the error and every translatable error it wraps using provider
func (e *TrError) Format(provider MessageProvider) string {
	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped == nil {
		return msg
	}

	if f, ok := e.wrapped.(Formatter); ok {
		return msg + ": " + f.Format(provider)
	}

	return fmt.Sprintf("%s: %v", msg, e.wrapped)
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// SetProvider changes the provider of the error and of every copy derived from it
func (e *TrError) SetProvider(provider MessageProvider) {
	e.messageProvider.mu.Lock()
	e.messageProvider.provider = provider
	e.messageProvider.mu.Unlock()
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by errors without a provider of their own
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}
	return defaultProvider
}
