package shortcut

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform selects the shortcut modifier key.
type Platform uint8

const (
	// PlatformOther uses the control key.
	PlatformOther Platform = iota
	// PlatformApple uses the command key. Terminals deliver it as a meta
	// sequence, so bindings use the "alt+" prefix.
	PlatformApple
)

// CurrentPlatform reports the platform of the running binary.
func CurrentPlatform() Platform { return PlatformFor(runtime.GOOS) }

// PlatformFor maps a GOOS value to a Platform.
func PlatformFor(goos string) Platform {
	switch goos {
	case "darwin", "ios":
		return PlatformApple
	default:
		return PlatformOther
	}
}

// ParsePlatform parses a platform override. The empty string and "auto" mean
// CurrentPlatform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CurrentPlatform(), nil
	case "apple", "mac", "macos", "darwin":
		return PlatformApple, nil
	case "other", "linux", "windows", "pc":
		return PlatformOther, nil
	default:
		return PlatformOther, fmt.Errorf("unknown platform %q", s)
	}
}

// Modifier returns the key prefix used for shortcuts: "alt" or "ctrl".
func (p Platform) Modifier() string {
	if p == PlatformApple {
		return "alt"
	}
	return "ctrl"
}

func (p Platform) String() string {
	if p == PlatformApple {
		return "apple"
	}
	return "other"
}
