package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

const defaultFileName = "Untitled.txt"

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	mv.logger.Debug("MainView", "error dialog", map[string]interface{}{
		"title": title,
		"error": err.Error(),
	})
	dialog.ShowError(err, mv.window)
}

// Confirm displays a yes/no dialog
func (mv *MainView) Confirm(title, message string, onAnswer func(bool)) {
	dialog.ShowConfirm(title, message, onAnswer, mv.window)
}

// PickOpenPath asks for an existing file. onPicked receives "" on cancel.
func (mv *MainView) PickOpenPath(onPicked func(path string)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError("File Open Error", err)
			onPicked("")
			return
		}
		if reader == nil {
			onPicked("")
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onPicked(path)
	}, mv.window)
	fd.Show()
}

// PickSavePath asks for a destination file. onPicked receives "" on cancel.
func (mv *MainView) PickSavePath(onPicked func(path string)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mv.ShowError("File Save Error", err)
			onPicked("")
			return
		}
		if writer == nil {
			onPicked("")
			return
		}
		path := writer.URI().Path()
		writer.Close()
		onPicked(path)
	}, mv.window)
	fd.SetFileName(defaultFileName)
	fd.Show()
}
