// Package sessiontest provides an in-memory session.UI for tests.
package sessiontest

// UI records every dialog the session shows and answers prompts with canned
// values, synchronously.
type UI struct {
	Buffer string

	Infos    []string
	Errors   []error
	Confirms []string

	// ConfirmAnswer is returned to Confirm callbacks.
	ConfirmAnswer bool
	// HoldConfirm keeps Confirm callbacks pending in Pending instead of
	// answering immediately.
	HoldConfirm bool
	Pending     []func(bool)

	// SavePath and OpenPath answer the pick prompts; "" means cancel.
	SavePath    string
	OpenPath    string
	SavePrompts int
	OpenPrompts int
}

func (u *UI) Text() string        { return u.Buffer }
func (u *UI) SetText(text string) { u.Buffer = text }

func (u *UI) ShowInfo(title, message string) {
	u.Infos = append(u.Infos, title+": "+message)
}

func (u *UI) ShowError(title string, err error) {
	u.Errors = append(u.Errors, err)
}

func (u *UI) Confirm(title, message string, onAnswer func(bool)) {
	u.Confirms = append(u.Confirms, title)
	if u.HoldConfirm {
		u.Pending = append(u.Pending, onAnswer)
		return
	}
	onAnswer(u.ConfirmAnswer)
}

// Answer resolves the oldest held confirmation.
func (u *UI) Answer(yes bool) {
	if len(u.Pending) == 0 {
		return
	}
	fn := u.Pending[0]
	u.Pending = u.Pending[1:]
	fn(yes)
}

func (u *UI) PickOpenPath(onPicked func(path string)) {
	u.OpenPrompts++
	onPicked(u.OpenPath)
}

func (u *UI) PickSavePath(onPicked func(path string)) {
	u.SavePrompts++
	onPicked(u.SavePath)
}
