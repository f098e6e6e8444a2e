package types

// Answer is the tri-state result of a question dialog. Cancelled is only
// reachable when the dialog offered a cancel button.
type Answer int

const (
	AnswerNo Answer = iota
	AnswerYes
	AnswerCancelled
)

// String returns the answer name, used in logs.
func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	case AnswerCancelled:
		return "cancelled"
	default:
		return "invalid"
	}
}
