// Package navigation is the screen state machine of the application.
//
// The machine starts on Auth. Main is reached only with an active session,
// feature screens only from Main and only while logged in, Back returns a
// feature screen to Main, and leaving Main for Auth logs the user out.
// Every other request fails with ErrIllegalTransition and leaves the
// current screen as it was.
package navigation

import (
	"fmt"
	"strings"
)

// Screen names one screen of the UI.
type Screen string

const (
	Auth Screen = "auth"
	Main Screen = "main"
	Map  Screen = "map"
	Food Screen = "food"
	Chat Screen = "chat"
)

// IsFeature reports whether s is one of the session-gated feature screens.
func (s Screen) IsFeature() bool {
	switch s {
	case Map, Food, Chat:
		return true
	}
	return false
}

// ParseScreen accepts a screen name in any case.
func ParseScreen(name string) (Screen, error) {
	s := Screen(strings.ToLower(strings.TrimSpace(name)))
	switch s {
	case Auth, Main, Map, Food, Chat:
		return s, nil
	}
	return "", fmt.Errorf("unknown screen %q", name)
}

// Variant picks which feature screens an application build offers.
type Variant string

const (
	VariantEco       Variant = "eco"
	VariantMessenger Variant = "messenger"
	VariantAll       Variant = "all"
)

// Features lists the feature screens of v in menu order.
func (v Variant) Features() ([]Screen, error) {
	switch v {
	case VariantEco:
		return []Screen{Map, Food}, nil
	case VariantMessenger:
		return []Screen{Chat}, nil
	case VariantAll:
		return []Screen{Map, Food, Chat}, nil
	}
	return nil, fmt.Errorf("unknown variant %q", string(v))
}
