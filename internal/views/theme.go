package views

import (
	"image/color"

	"ssnote/internal/appearance"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// variantTheme pins the default theme to one variant regardless of the
// variant fyne asks for.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

// NewVariantTheme returns the default fyne theme forced to name's variant
func NewVariantTheme(name appearance.Name) fyne.Theme {
	variant := theme.VariantLight
	if name == appearance.Dark {
		variant = theme.VariantDark
	}
	return &variantTheme{Theme: theme.DefaultTheme(), variant: variant}
}

func (t *variantTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(n, t.variant)
}

// Variant reports the forced variant
func (t *variantTheme) Variant() fyne.ThemeVariant {
	return t.variant
}
