// Package errs holds the translatable errors of the kommando library.
// This file contains constants for all translation keys used throughout the library.
package errs

// Prefix for all kommando translation keys
const (
	prefixKey = "kommando"
)

// Key prefixes
const (
	ErrorPrefixKey   = prefixKey + ".error"
	ParseErrorKey    = ErrorPrefixKey + ".parse"
	TreeErrorKey     = ErrorPrefixKey + ".tree"
	DispatchErrorKey = ErrorPrefixKey + ".dispatch"
	SpecErrorKey     = ErrorPrefixKey + ".spec"
	MessagePrefixKey = prefixKey + ".msg"
)

// Reader and argument errors
const (
	ErrEndOfInputKey        = ParseErrorKey + ".end_of_input"
	ErrUnterminatedQuoteKey = ParseErrorKey + ".unterminated_quote"
	ErrMissingQuoteKey      = ParseErrorKey + ".missing_quote"
	ErrExpectedNumberKey    = ParseErrorKey + ".expected_number"
	ErrInvalidNumberKey     = ParseErrorKey + ".invalid_number"
	ErrExpectedBooleanKey   = ParseErrorKey + ".expected_boolean"
	ErrInvalidBooleanKey    = ParseErrorKey + ".invalid_boolean"
	ErrExpectedStringKey    = ParseErrorKey + ".expected_string"
	ErrRangeViolationKey    = ParseErrorKey + ".range_violation"
	ErrInvalidRangeKey      = ParseErrorKey + ".invalid_range"
	ErrInvalidChoiceKey     = ParseErrorKey + ".invalid_choice"
	ErrInvalidTimeKey       = ParseErrorKey + ".invalid_time"
	ErrInvalidUUIDKey       = ParseErrorKey + ".invalid_uuid"
	ErrInvalidWordsKey      = ParseErrorKey + ".invalid_words"
	ErrValidationFailedKey  = ParseErrorKey + ".validation_failed"
	ErrExpectedSeparatorKey = ParseErrorKey + ".expected_separator"
)

// Tree resolution errors
const (
	ErrIncorrectLiteralKey  = TreeErrorKey + ".incorrect_literal"
	ErrNoMatchingPathKey    = TreeErrorKey + ".no_matching_path"
	ErrTooManyArgumentsKey  = TreeErrorKey + ".too_many_arguments"
	ErrUnknownFlagKey       = TreeErrorKey + ".unknown_flag"
	ErrDuplicateFlagKey     = TreeErrorKey + ".duplicate_flag"
	ErrRequirementFailedKey = TreeErrorKey + ".requirement_failed"
	ErrInvalidSourceKey     = TreeErrorKey + ".invalid_source"
)

// Dispatcher errors
const (
	ErrEmptyCommandKey         = DispatchErrorKey + ".empty_command"
	ErrUnknownCommandKey       = DispatchErrorKey + ".unknown_command"
	ErrCommandAlreadyExistsKey = DispatchErrorKey + ".command_already_exists"
	ErrCommandFailedKey        = DispatchErrorKey + ".command_failed"
	ErrInvalidCommandNameKey   = DispatchErrorKey + ".invalid_command_name"
	ErrUnsupportedLanguageKey  = DispatchErrorKey + ".unsupported_language"
	ErrUnsupportedShellKey     = DispatchErrorKey + ".unsupported_shell"
	ErrNoCompletionScriptKey   = DispatchErrorKey + ".no_completion_script"
	ErrCompletionInstallKey    = DispatchErrorKey + ".completion_install"
)

// Tree document errors
const (
	ErrUnknownArgumentTypeKey = SpecErrorKey + ".unknown_argument_type"
	ErrUnknownExecutorKey     = SpecErrorKey + ".unknown_executor"
	ErrUnknownRequirementKey  = SpecErrorKey + ".unknown_requirement"
	ErrInvalidDefaultKey      = SpecErrorKey + ".invalid_default"
	ErrInvalidDocumentKey     = SpecErrorKey + ".invalid_document"
	ErrUnsupportedFormatKey   = SpecErrorKey + ".unsupported_format"
	ErrMissingNameKey         = SpecErrorKey + ".missing_name"
)

// Messages used by the usage renderer and error display
const (
	MsgUsageKey       = MessagePrefixKey + ".usage"
	MsgCommandsKey    = MessagePrefixKey + ".commands"
	MsgPositionKey    = MessagePrefixKey + ".position"
	MsgHereKey        = MessagePrefixKey + ".here"
	MsgNoCommandsKey  = MessagePrefixKey + ".no_commands"
	MsgSuggestionsKey = MessagePrefixKey + ".suggestions"
	MsgReplWelcomeKey = MessagePrefixKey + ".repl_welcome"
)
