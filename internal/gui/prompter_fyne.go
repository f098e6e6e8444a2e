package gui

import (
	"errors"
	"strconv"

	"imgvault/internal/i18n"
	"imgvault/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// fynePrompter renders popups as fyne modal dialogs over its window.
// Every method blocks until the dialog is dismissed, so callers must not
// run on the event goroutine.
type fynePrompter struct {
	win fyne.Window
}

func (p *fynePrompter) Info(title, message string) {
	p.acknowledge(dialog.NewInformation(title, message, p.win))
}

func (p *fynePrompter) Warning(title, message string) {
	p.acknowledge(dialog.NewInformation(title, message, p.win))
}

func (p *fynePrompter) Error(title, message string) {
	p.acknowledge(dialog.NewError(errors.New(message), p.win))
}

// acknowledge shows a single-button dialog and waits for dismissal.
func (p *fynePrompter) acknowledge(d dialog.Dialog) {
	done := make(chan struct{})
	d.SetDismissText(i18n.T("dialog.common.ok_button.label"))
	d.SetOnClosed(func() { close(done) })
	d.Show()
	<-done
}

func (p *fynePrompter) Question(title, message string, withCancel bool) types.Answer {
	result := make(chan types.Answer, 1)

	if !withCancel {
		d := dialog.NewConfirm(title, message, func(yes bool) {
			if yes {
				result <- types.AnswerYes
			} else {
				result <- types.AnswerNo
			}
		}, p.win)
		d.SetConfirmText(i18n.T("dialog.common.yes_button.label"))
		d.SetDismissText(i18n.T("dialog.common.no_button.label"))
		d.Show()
		return <-result
	}

	// Three outcomes need a custom button row; the stock confirm dialog
	// only has two.
	answered := false
	var d *dialog.CustomDialog
	answer := func(a types.Answer) func() {
		return func() {
			if !answered {
				answered = true
				result <- a
			}
			d.Hide()
		}
	}

	yes := widget.NewButton(i18n.T("dialog.common.yes_button.label"), answer(types.AnswerYes))
	yes.Importance = widget.HighImportance
	no := widget.NewButton(i18n.T("dialog.common.no_button.label"), answer(types.AnswerNo))
	cancel := widget.NewButton(i18n.T("dialog.common.cancel_button.label"), answer(types.AnswerCancelled))

	content := container.NewVBox(
		widget.NewLabel(message),
		container.NewHBox(layout.NewSpacer(), cancel, no, yes),
	)
	d = dialog.NewCustomWithoutButtons(title, content, p.win)
	d.SetOnClosed(func() {
		// Closing the dialog without choosing counts as cancel.
		if !answered {
			answered = true
			result <- types.AnswerCancelled
		}
	})
	d.Show()
	return <-result
}

func (p *fynePrompter) TextInput(title, message, initial string) (string, bool) {
	entry := widget.NewEntry()
	entry.SetText(initial)
	content := container.NewVBox(widget.NewLabel(message), entry)

	type textResult struct {
		value string
		ok    bool
	}
	result := make(chan textResult, 1)
	d := dialog.NewCustomConfirm(
		title,
		i18n.T("dialog.common.ok_button.label"),
		i18n.T("dialog.common.cancel_button.label"),
		content,
		func(ok bool) { result <- textResult{value: entry.Text, ok: ok} },
		p.win,
	)
	d.Show()

	r := <-result
	return r.value, r.ok
}

func (p *fynePrompter) IntInput(title, message string, opts IntOptions) (int, bool) {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(opts.Value))
	content := container.NewVBox(widget.NewLabel(message), entry)

	type intResult struct {
		value int
		ok    bool
	}
	result := make(chan intResult, 1)
	d := dialog.NewCustomConfirm(
		title,
		i18n.T("dialog.common.ok_button.label"),
		i18n.T("dialog.common.cancel_button.label"),
		content,
		func(ok bool) {
			if !ok {
				result <- intResult{}
				return
			}
			value, err := strconv.Atoi(entry.Text)
			if err != nil {
				// Unparseable input keeps the pre-filled value.
				value = opts.Value
			}
			result <- intResult{value: value, ok: true}
		},
		p.win,
	)
	d.Show()

	r := <-result
	return r.value, r.ok
}
