package appearance

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

type fyneHost struct {
	app fyne.App
}

// NewFyneHost reports the variant fyne detected for the desktop session.
func NewFyneHost(app fyne.App) HostProvider {
	return &fyneHost{app: app}
}

func (h *fyneHost) Current() (Name, error) {
	if h.app == nil || h.app.Settings() == nil {
		return "", ErrUnknownHostTheme
	}
	if h.app.Settings().ThemeVariant() == theme.VariantDark {
		return Dark, nil
	}
	return Light, nil
}
