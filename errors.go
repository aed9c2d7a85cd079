package kommando

import (
	"errors"
	"fmt"

	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/i18n"
	"github.com/napalu/kommando/parse"
)

// caretContext is the number of runes shown in front of the caret
const caretContext = 10

// CommandError is a command line that could not be resolved. Err is usually a *parse.Error
// locating the problem in Input.
type CommandError struct {
	Input    string
	Err      error
	provider i18n.MessageProvider
}

func (e *CommandError) Error() string {
	return e.Format(e.provider)
}

// Format renders the message with provider followed by the position and the caret
func (e *CommandError) Format(provider i18n.MessageProvider) string {
	message := e.Message(provider)
	if provider == nil {
		return fmt.Sprintf("%s at position %d: %s", message, e.Position(), e.Caret())
	}

	return fmt.Sprintf("%s %s: %s%s", message,
		fmt.Sprintf(provider.GetMessage(errs.MsgPositionKey), e.Position()),
		e.context(), provider.GetMessage(errs.MsgHereKey))
}

// Message renders the underlying error without location
func (e *CommandError) Message(provider i18n.MessageProvider) string {
	var f i18n.Formatter
	if provider != nil && errors.As(e.Err, &f) {
		return f.Format(provider)
	}

	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Position returns the rune offset of the problem, or the end of the input when the error
// is not located
func (e *CommandError) Position() int {
	return parse.PositionOf(e.Err, len([]rune(e.Input)))
}

// Caret renders up to ten runes of input in front of the error position followed by a marker
func (e *CommandError) Caret() string {
	here := "<--[HERE]"
	if e.provider != nil {
		here = e.provider.GetMessage(errs.MsgHereKey)
	}

	return e.context() + here
}

func (e *CommandError) context() string {
	runes := []rune(e.Input)
	pos := min(max(e.Position(), 0), len(runes))
	if pos > caretContext {
		return "..." + string(runes[pos-caretContext:pos])
	}

	return string(runes[:pos])
}
