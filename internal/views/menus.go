package views

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const noRecentLabel = "(No recent files)"

const licenseText = `MIT License

Copyright (c) 2025 Gazali

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`

type menus struct {
	view   *MainView
	main   *fyne.MainMenu
	recent *fyne.MenuItem
}

func newMenus(view *MainView) *menus {
	m := &menus{view: view}

	m.recent = fyne.NewMenuItem("Recent Files", nil)
	m.recent.ChildMenu = fyne.NewMenu("")
	m.setRecent(nil)

	quit := fyne.NewMenuItem("Exit", func() { call(view.quitHandler) })
	quit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New", func() { call(view.newHandler) }),
		fyne.NewMenuItem("Open...", func() { call(view.openHandler) }),
		fyne.NewMenuItem("Save", func() { call(view.saveHandler) }),
		fyne.NewMenuItem("Save As...", func() { call(view.saveAsHandler) }),
		fyne.NewMenuItemSeparator(),
		m.recent,
		fyne.NewMenuItemSeparator(),
		quit,
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() { m.shortcut(&fyne.ShortcutUndo{}) }),
		fyne.NewMenuItem("Redo", func() { m.shortcut(&fyne.ShortcutRedo{}) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Cut", func() {
			m.shortcut(&fyne.ShortcutCut{Clipboard: view.window.Clipboard()})
		}),
		fyne.NewMenuItem("Copy", func() {
			m.shortcut(&fyne.ShortcutCopy{Clipboard: view.window.Clipboard()})
		}),
		fyne.NewMenuItem("Paste", func() {
			m.shortcut(&fyne.ShortcutPaste{Clipboard: view.window.Clipboard()})
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Select All", func() { m.shortcut(&fyne.ShortcutSelectAll{}) }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About SSNote", view.showAbout),
		fyne.NewMenuItem("License", view.showLicense),
	)

	m.main = fyne.NewMainMenu(fileMenu, editMenu, helpMenu)
	return m
}

// setRecent lists paths most recent first; selecting one opens it
func (m *menus) setRecent(paths []string) {
	items := make([]*fyne.MenuItem, 0, len(paths))
	for _, p := range paths {
		path := p
		items = append(items, fyne.NewMenuItem(filepath.Base(path), func() {
			if m.view.openRecentHandler != nil {
				m.view.openRecentHandler(path)
			}
		}))
	}
	if len(items) == 0 {
		empty := fyne.NewMenuItem(noRecentLabel, nil)
		empty.Disabled = true
		items = append(items, empty)
	}

	m.recent.ChildMenu.Items = items
	m.recent.ChildMenu.Refresh()
	if m.main != nil {
		m.main.Refresh()
	}
}

func (m *menus) shortcut(s fyne.Shortcut) {
	m.view.editor.TypedShortcut(s)
}

// RecentMenuItems returns the current Recent Files entries
func (mv *MainView) RecentMenuItems() []*fyne.MenuItem {
	return mv.menus.recent.ChildMenu.Items
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}

func (mv *MainView) showAbout() {
	message := fmt.Sprintf("SSNote\nStupidly Simple Notepad\nVersion %s\n\nFree under MIT License", mv.version)
	dialog.ShowInformation("About SSNote", message, mv.window)
}

func (mv *MainView) showLicense() {
	text := widget.NewLabel(licenseText)
	text.Wrapping = fyne.TextWrapWord
	scroll := container.NewVScroll(text)
	scroll.SetMinSize(fyne.NewSize(560, 420))
	dialog.ShowCustom("MIT License", "Close", scroll, mv.window)
}
