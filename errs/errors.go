package errs

import (
	"sync"

	"github.com/napalu/kommando/i18n"
)

// Reader and argument errors
var (
	ErrEndOfInput        = i18n.NewError(ErrEndOfInputKey)
	ErrUnterminatedQuote = i18n.NewError(ErrUnterminatedQuoteKey)
	ErrMissingQuote      = i18n.NewError(ErrMissingQuoteKey)
	ErrExpectedNumber    = i18n.NewError(ErrExpectedNumberKey)
	ErrInvalidNumber     = i18n.NewError(ErrInvalidNumberKey)
	ErrExpectedBoolean   = i18n.NewError(ErrExpectedBooleanKey)
	ErrInvalidBoolean    = i18n.NewError(ErrInvalidBooleanKey)
	ErrExpectedString    = i18n.NewError(ErrExpectedStringKey)
	ErrRangeViolation    = i18n.NewError(ErrRangeViolationKey)
	ErrInvalidRange      = i18n.NewError(ErrInvalidRangeKey)
	ErrInvalidChoice     = i18n.NewError(ErrInvalidChoiceKey)
	ErrInvalidTime       = i18n.NewError(ErrInvalidTimeKey)
	ErrInvalidUUID       = i18n.NewError(ErrInvalidUUIDKey)
	ErrInvalidWords      = i18n.NewError(ErrInvalidWordsKey)
	ErrValidationFailed  = i18n.NewError(ErrValidationFailedKey)
	ErrExpectedSeparator = i18n.NewError(ErrExpectedSeparatorKey)
)

// Tree resolution errors
var (
	ErrIncorrectLiteral  = i18n.NewError(ErrIncorrectLiteralKey)
	ErrNoMatchingPath    = i18n.NewError(ErrNoMatchingPathKey)
	ErrTooManyArguments  = i18n.NewError(ErrTooManyArgumentsKey)
	ErrUnknownFlag       = i18n.NewError(ErrUnknownFlagKey)
	ErrDuplicateFlag     = i18n.NewError(ErrDuplicateFlagKey)
	ErrRequirementFailed = i18n.NewError(ErrRequirementFailedKey)
	ErrInvalidSource     = i18n.NewError(ErrInvalidSourceKey)
)

// Dispatcher errors
var (
	ErrEmptyCommand         = i18n.NewError(ErrEmptyCommandKey)
	ErrUnknownCommand       = i18n.NewError(ErrUnknownCommandKey)
	ErrCommandAlreadyExists = i18n.NewError(ErrCommandAlreadyExistsKey)
	ErrCommandFailed        = i18n.NewError(ErrCommandFailedKey)
	ErrInvalidCommandName   = i18n.NewError(ErrInvalidCommandNameKey)
	ErrUnsupportedLanguage  = i18n.NewError(ErrUnsupportedLanguageKey)
	ErrUnsupportedShell     = i18n.NewError(ErrUnsupportedShellKey)
	ErrNoCompletionScript   = i18n.NewError(ErrNoCompletionScriptKey)
	ErrCompletionInstall    = i18n.NewError(ErrCompletionInstallKey)
)

// Tree document errors
var (
	ErrUnknownArgumentType = i18n.NewError(ErrUnknownArgumentTypeKey)
	ErrUnknownExecutor     = i18n.NewError(ErrUnknownExecutorKey)
	ErrUnknownRequirement  = i18n.NewError(ErrUnknownRequirementKey)
	ErrInvalidDefault      = i18n.NewError(ErrInvalidDefaultKey)
	ErrInvalidDocument     = i18n.NewError(ErrInvalidDocumentKey)
	ErrUnsupportedFormat   = i18n.NewError(ErrUnsupportedFormatKey)
	ErrMissingName         = i18n.NewError(ErrMissingNameKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []i18n.TranslatableError
}

var sysErrors = &builtInErrors{
	All: []i18n.TranslatableError{
		ErrEndOfInput,
		ErrUnterminatedQuote,
		ErrMissingQuote,
		ErrExpectedNumber,
		ErrInvalidNumber,
		ErrExpectedBoolean,
		ErrInvalidBoolean,
		ErrExpectedString,
		ErrRangeViolation,
		ErrInvalidRange,
		ErrInvalidChoice,
		ErrInvalidTime,
		ErrInvalidUUID,
		ErrInvalidWords,
		ErrValidationFailed,
		ErrExpectedSeparator,
		ErrIncorrectLiteral,
		ErrNoMatchingPath,
		ErrTooManyArguments,
		ErrUnknownFlag,
		ErrDuplicateFlag,
		ErrRequirementFailed,
		ErrInvalidSource,
		ErrEmptyCommand,
		ErrUnknownCommand,
		ErrCommandAlreadyExists,
		ErrCommandFailed,
		ErrInvalidCommandName,
		ErrUnsupportedLanguage,
		ErrUnsupportedShell,
		ErrNoCompletionScript,
		ErrCompletionInstall,
		ErrUnknownArgumentType,
		ErrUnknownExecutor,
		ErrUnknownRequirement,
		ErrInvalidDefault,
		ErrInvalidDocument,
		ErrUnsupportedFormat,
		ErrMissingName,
	},
}

// UpdateMessageProvider makes every built-in error render its message through provider
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}
