package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	darkModeIcon  = "🌙"
	lightModeIcon = "☀️"
)

// Toolbar holds the theme, wrap and auto-save toggles above the editor
type Toolbar struct {
	container      *fyne.Container
	themeButton    *widget.Button
	wrapButton     *widget.Button
	autoSaveButton *widget.Button

	themeHandler    func()
	wrapHandler     func()
	autoSaveHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.themeButton = widget.NewButton(darkModeIcon, func() {
		if t.themeHandler != nil {
			t.themeHandler()
		}
	})

	t.wrapButton = widget.NewButton("Wrap: ON", func() {
		if t.wrapHandler != nil {
			t.wrapHandler()
		}
	})

	t.autoSaveButton = widget.NewButton("Auto-Save: ON", func() {
		if t.autoSaveHandler != nil {
			t.autoSaveHandler()
		}
	})
	t.autoSaveButton.Hide()
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		layout.NewSpacer(),
		t.autoSaveButton,
		t.themeButton,
		t.wrapButton,
	)
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetThemeHandler(handler func())    { t.themeHandler = handler }
func (t *Toolbar) SetWrapHandler(handler func())     { t.wrapHandler = handler }
func (t *Toolbar) SetAutoSaveHandler(handler func()) { t.autoSaveHandler = handler }

// SetDark shows the icon for switching to the other theme.
func (t *Toolbar) SetDark(dark bool) {
	if dark {
		t.themeButton.SetText(lightModeIcon)
		return
	}
	t.themeButton.SetText(darkModeIcon)
}

func (t *Toolbar) SetWrap(enabled bool) {
	t.wrapButton.SetText("Wrap: " + onOff(enabled))
}

// SetAutoSave shows the auto-save toggle only while a file is bound.
func (t *Toolbar) SetAutoSave(visible, enabled bool) {
	t.autoSaveButton.SetText("Auto-Save: " + onOff(enabled))
	if visible {
		t.autoSaveButton.Show()
	} else {
		t.autoSaveButton.Hide()
	}
}

func (t *Toolbar) ThemeLabel() string    { return t.themeButton.Text }
func (t *Toolbar) WrapLabel() string     { return t.wrapButton.Text }
func (t *Toolbar) AutoSaveLabel() string { return t.autoSaveButton.Text }
func (t *Toolbar) AutoSaveVisible() bool { return t.autoSaveButton.Visible() }

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
