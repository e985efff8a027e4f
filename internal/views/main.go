package views

import (
	"fmt"

	"ssnote/internal/appearance"
	"ssnote/internal/logger"
	"ssnote/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MainView is the editor window: toolbar, text area and status bar. Its
// methods must be called on the fyne UI goroutine.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	editor        *widget.Entry
	statusBar     *components.StatusBar
	menus         *menus

	logger  logger.Logger
	version string

	// Event handlers - connected by the application
	newHandler        func()
	openHandler       func()
	saveHandler       func()
	saveAsHandler     func()
	openRecentHandler func(string)
	quitHandler       func()
}

// NewMainView creates the main view and installs it in window
func NewMainView(window fyne.Window, version string, log logger.Logger) *MainView {
	view := &MainView{
		window:  window,
		logger:  log,
		version: version,
	}

	view.initializeComponents()
	view.buildLayout()
	view.menus = newMenus(view)
	window.SetMainMenu(view.menus.main)

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()

	mv.editor = widget.NewMultiLineEntry()
	mv.editor.Wrapping = fyne.TextWrapWord
	mv.editor.SetPlaceHolder("Start typing...")
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		mv.editor,                   // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters - called by the application

func (mv *MainView) SetNewHandler(handler func())               { mv.newHandler = handler }
func (mv *MainView) SetOpenHandler(handler func())              { mv.openHandler = handler }
func (mv *MainView) SetSaveHandler(handler func())              { mv.saveHandler = handler }
func (mv *MainView) SetSaveAsHandler(handler func())            { mv.saveAsHandler = handler }
func (mv *MainView) SetOpenRecentHandler(handler func(string))  { mv.openRecentHandler = handler }
func (mv *MainView) SetQuitHandler(handler func())              { mv.quitHandler = handler }
func (mv *MainView) SetTextChangedHandler(handler func(string)) { mv.editor.OnChanged = handler }
func (mv *MainView) SetThemeHandler(handler func())             { mv.toolbar.SetThemeHandler(handler) }
func (mv *MainView) SetWrapHandler(handler func())              { mv.toolbar.SetWrapHandler(handler) }
func (mv *MainView) SetAutoSaveHandler(handler func())          { mv.toolbar.SetAutoSaveHandler(handler) }

// Buffer

func (mv *MainView) Text() string {
	return mv.editor.Text
}

func (mv *MainView) SetText(text string) {
	mv.editor.SetText(text)
	mv.editor.CursorRow, mv.editor.CursorColumn = 0, 0
	mv.editor.Refresh()
}

// UI update methods

// UpdateStatus replaces the status bar text
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) Status() string {
	return mv.statusBar.GetStatus()
}

// SetWindowTitle shows the bound file name, if any
func (mv *MainView) SetWindowTitle(appName, fileName string) {
	if fileName == "" {
		mv.window.SetTitle(appName)
		return
	}
	mv.window.SetTitle(fmt.Sprintf("%s - %s", appName, fileName))
}

// ApplyWrap switches the editor between word wrapping and none
func (mv *MainView) ApplyWrap(enabled bool) {
	if enabled {
		mv.editor.Wrapping = fyne.TextWrapWord
	} else {
		mv.editor.Wrapping = fyne.TextWrapOff
	}
	mv.editor.Refresh()
	mv.toolbar.SetWrap(enabled)
}

func (mv *MainView) Wrapping() fyne.TextWrap {
	return mv.editor.Wrapping
}

// ApplyTheme installs the light or dark variant for the whole app
func (mv *MainView) ApplyTheme(name appearance.Name) {
	fyne.CurrentApp().Settings().SetTheme(NewVariantTheme(name))
	mv.toolbar.SetDark(name == appearance.Dark)
	mv.logger.Debug("MainView", "theme applied", map[string]interface{}{"theme": string(name)})
}

// SetAutoSaveState updates the auto-save toggle
func (mv *MainView) SetAutoSaveState(bound, enabled bool) {
	mv.toolbar.SetAutoSave(bound, enabled)
}

// SetRecentFiles rebuilds the File > Recent Files submenu
func (mv *MainView) SetRecentFiles(paths []string) {
	mv.menus.setRecent(paths)
}

// FocusEditor moves keyboard focus to the text area
func (mv *MainView) FocusEditor() {
	mv.window.Canvas().Focus(mv.editor)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetToolbar returns the toolbar component
func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

// Editor returns the text area
func (mv *MainView) Editor() *widget.Entry {
	return mv.editor
}
