package gui

import (
	"imgvault/internal/i18n"
	"imgvault/pkg/types"
)

// ShowInfo shows an information popup and blocks until it is acknowledged.
func (s *Service) ShowInfo(message string) {
	s.prompter.Info(i18n.T("popup.info.title"), message)
}

// ShowWarning shows a warning popup and blocks until it is acknowledged.
func (s *Service) ShowWarning(message string) {
	s.prompter.Warning(i18n.T("popup.warning.title"), message)
}

// ShowError shows an error popup and blocks until it is acknowledged.
func (s *Service) ShowError(message string) {
	s.prompter.Error(i18n.T("popup.error.title"), message)
}

// ShowQuestion asks a yes/no question. With withCancel the user can also
// back out, which yields AnswerCancelled; without it, dismissing the dialog
// counts as no.
func (s *Service) ShowQuestion(message string, withCancel bool) types.Answer {
	answer := s.prompter.Question(i18n.T("popup.question.title"), message, withCancel)
	if !withCancel && answer == types.AnswerCancelled {
		// A prompter must not produce cancel when it was not offered.
		answer = types.AnswerNo
	}
	return answer
}

// ShowTextInput asks for a line of text, pre-filled with initial.
// The boolean is false when the popup was cancelled.
func (s *Service) ShowTextInput(title, message, initial string) (string, bool) {
	return s.prompter.TextInput(title, message, initial)
}

// ShowIntInput asks for an integer, optionally bounded inclusively.
// The returned value is always within the configured bounds; the boolean is
// false when the popup was cancelled.
func (s *Service) ShowIntInput(title, message string, opts IntOptions) (int, bool) {
	opts.Value = clampInt(opts.Value, opts.Min, opts.Max)
	value, ok := s.prompter.IntInput(title, message, opts)
	if !ok {
		return 0, false
	}
	return clampInt(value, opts.Min, opts.Max), true
}

// clampInt forces v into the inclusive [min, max] range; nil bounds do not
// constrain.
func clampInt(v int, min, max *int) int {
	if min != nil && v < *min {
		v = *min
	}
	if max != nil && v > *max {
		v = *max
	}
	return v
}
