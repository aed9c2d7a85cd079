package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/napalu/kommando/i18n"
)

func TestUpdateMessageProvider(t *testing.T) {
	originalMsg := ErrTooManyArguments.Error()
	assert.Equal(t, "too many arguments", originalMsg)

	UpdateMessageProvider(i18n.NewLanguageMessageProvider(i18n.Default(), language.German))
	defer UpdateMessageProvider(i18n.NewBundleMessageProvider(i18n.Default()))

	assert.Equal(t, "zu viele Argumente", ErrTooManyArguments.Error())

	withArgs := ErrUnknownCommand.WithArgs("tp")
	assert.Equal(t, "unbekannter Befehl 'tp'", withArgs.Error())
}

func TestBuiltInErrorsAreTranslated(t *testing.T) {
	b := i18n.Default()
	for _, e := range sysErrors.All {
		assert.True(t, b.HasKey(language.English, e.Key()), "missing english message for %s", e.Key())
		assert.True(t, b.HasKey(language.German, e.Key()), "missing german message for %s", e.Key())
	}
}

func TestSentinelMatching(t *testing.T) {
	err := ErrCommandFailed.WithArgs("tp").Wrap(ErrInvalidNumber.WithArgs("int", "1x"))

	assert.True(t, errors.Is(err, ErrCommandFailed))
	assert.True(t, errors.Is(err, ErrInvalidNumber))
	assert.False(t, errors.Is(err, ErrInvalidBoolean))
	assert.Equal(t, "command 'tp' failed: invalid int '1x'", err.Error())
}
