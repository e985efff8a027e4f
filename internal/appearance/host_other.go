//go:build !windows

package appearance

import "fyne.io/fyne/v2"

// PlatformHost asks fyne, which follows the desktop portal on Linux and the
// system appearance on macOS.
func PlatformHost(app fyne.App) HostProvider {
	return NewFyneHost(app)
}
