package session

// Buffer is the editable text owned by the view.
type Buffer interface {
	Text() string
	SetText(text string)
}

// Dialogs are the user prompts the session needs. Pick callbacks receive ""
// when the user cancels.
type Dialogs interface {
	ShowInfo(title, message string)
	ShowError(title string, err error)
	Confirm(title, message string, onAnswer func(bool))
	PickOpenPath(onPicked func(path string))
	PickSavePath(onPicked func(path string))
}

// UI is everything the session asks of the presentation layer. All calls
// happen on the UI goroutine.
type UI interface {
	Buffer
	Dialogs
}
