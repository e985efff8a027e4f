// Package appearance resolves the effective light/dark theme.
package appearance

import (
	"errors"

	"ssnote/internal/config"
)

type Name string

const (
	Light Name = config.ThemeLight
	Dark  Name = config.ThemeDark

	// Fallback is used whenever the host cannot be queried.
	Fallback = Light
)

var ErrUnknownHostTheme = errors.New("host theme unavailable")

// HostProvider reports the operating system appearance setting.
type HostProvider interface {
	Current() (Name, error)
}

// HostFunc adapts a function to HostProvider.
type HostFunc func() (Name, error)

func (f HostFunc) Current() (Name, error) { return f() }

// OverrideSource yields the user override, "" meaning none.
type OverrideSource interface {
	ThemeOverride() string
}

type Resolver struct {
	overrides OverrideSource
	host      HostProvider
}

func NewResolver(overrides OverrideSource, host HostProvider) *Resolver {
	return &Resolver{overrides: overrides, host: host}
}

// Resolve returns the override when set, otherwise the host theme.
func (r *Resolver) Resolve() Name {
	if r.overrides != nil {
		switch Name(r.overrides.ThemeOverride()) {
		case Light:
			return Light
		case Dark:
			return Dark
		}
	}
	return r.Host()
}

// Host returns the host theme, or Fallback on any failure.
func (r *Resolver) Host() Name {
	if r.host == nil {
		return Fallback
	}
	name, err := r.host.Current()
	if err != nil {
		return Fallback
	}
	if name != Light && name != Dark {
		return Fallback
	}
	return name
}

// Opposite returns the other theme.
func Opposite(n Name) Name {
	if n == Dark {
		return Light
	}
	return Dark
}
