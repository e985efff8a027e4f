//go:build windows

package appearance

import (
	"fmt"

	"fyne.io/fyne/v2"
	"golang.org/x/sys/windows/registry"
)

const personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

type registryHost struct{}

func (registryHost) Current() (Name, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open personalize key: %w", err)
	}
	defer key.Close()

	value, _, err := key.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return "", fmt.Errorf("read AppsUseLightTheme: %w", err)
	}
	if value == 1 {
		return Light, nil
	}
	return Dark, nil
}

// PlatformHost reads the Windows personalization setting from the registry.
func PlatformHost(fyne.App) HostProvider {
	return registryHost{}
}
