// Package keymap loads keyboard shortcut bindings and exposes them as live
// subsystem instances.
package keymap

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/dgallion1/helpdoc/internal/live"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid keymap")

// Keymap holds the bindings of one subsystem.
type Keymap struct {
	Subsystem string
	Bindings  map[string]string
}

var _ live.Actions = (*Keymap)(nil)

// Shortcut implements live.Actions.
func (k *Keymap) Shortcut(action string) (string, bool) {
	key, ok := k.Bindings[action]
	return key, ok
}

// Defaults returns the built-in bindings.
func Defaults() []*Keymap {
	return []*Keymap{
		{Subsystem: "engraver", Bindings: map[string]string{"engrave_preview": "Ctrl+M"}},
		{Subsystem: "musicview", Bindings: map[string]string{"music_jump_to_cursor": "Ctrl+J"}},
	}
}

// Load reads a YAML keymap file.
func Load(path string) ([]*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	kms, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return kms, nil
}

// Parse decodes a YAML document of the form
//
//	engraver:
//	  engrave_preview: Ctrl+M
//
// Keymaps are returned sorted by subsystem.
func Parse(data []byte) ([]*Keymap, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	out := make([]*Keymap, 0, len(raw))
	for _, sub := range slices.Sorted(maps.Keys(raw)) {
		k := &Keymap{Subsystem: sub, Bindings: raw[sub]}
		if k.Bindings == nil {
			k.Bindings = map[string]string{}
		}
		if err := k.Validate(); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// Validate rejects empty names and key sequences.
func (k *Keymap) Validate() error {
	if strings.TrimSpace(k.Subsystem) == "" {
		return fmt.Errorf("%w: empty subsystem name", ErrInvalid)
	}
	for _, action := range slices.Sorted(maps.Keys(k.Bindings)) {
		if strings.TrimSpace(action) == "" {
			return fmt.Errorf("%w: %s: empty action name", ErrInvalid, k.Subsystem)
		}
		if strings.TrimSpace(k.Bindings[action]) == "" {
			return fmt.Errorf("%w: %s.%s: empty key sequence", ErrInvalid, k.Subsystem, action)
		}
	}
	return nil
}

// Merge overlays bindings from over onto base. Neither input is modified.
func Merge(base, over []*Keymap) []*Keymap {
	merged := make(map[string]map[string]string)
	for _, list := range [][]*Keymap{base, over} {
		for _, k := range list {
			if merged[k.Subsystem] == nil {
				merged[k.Subsystem] = make(map[string]string)
			}
			maps.Copy(merged[k.Subsystem], k.Bindings)
		}
	}
	out := make([]*Keymap, 0, len(merged))
	for _, sub := range slices.Sorted(maps.Keys(merged)) {
		out = append(out, &Keymap{Subsystem: sub, Bindings: merged[sub]})
	}
	return out
}

// RegisterAll registers each keymap as a live instance of its subsystem.
// The returned func unregisters all of them.
func RegisterAll(reg *live.Registry, keymaps []*Keymap) (unregister func()) {
	undo := make([]func(), 0, len(keymaps))
	for _, k := range keymaps {
		undo = append(undo, reg.Register(k.Subsystem, k))
	}
	return func() {
		for _, u := range undo {
			u()
		}
	}
}
