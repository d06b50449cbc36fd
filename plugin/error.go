package plugin

import (
	"errors"
	"fmt"
)

var (
	// ErrPluginNil plugin arg is nil
	ErrPluginNil = errors.New("plugin is nil")

	// ErrNameEmpty plugin has an empty name
	ErrNameEmpty = errors.New("plugin name is empty")

	// ErrUnregistered no plugin is registered under the name
	ErrUnregistered = errors.New("plugin unregistered")
)

// TypeError is returned when a registered plugin does not have the requested signature.
type TypeError struct {
	Name   string
	Plugin Plugin
}

func (e TypeError) Error() string {
	return fmt.Sprintf("plugin %q has type %T", e.Name, e.Plugin)
}
