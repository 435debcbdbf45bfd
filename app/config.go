package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/iw2rmb/codesnap/catalog"
	"github.com/iw2rmb/codesnap/markup"
	"github.com/iw2rmb/codesnap/notify"
	"github.com/iw2rmb/codesnap/shortcut"
	graphemeutil "github.com/iw2rmb/codesnap/internal/grapheme"
)

// EnvPrefix prefixes every environment variable the editor reads.
const EnvPrefix = "CODESNAP_"

const (
	ClipboardSystem = "system"
	ClipboardMemory = "memory"
)

// Config configures the editor UI.
type Config struct {
	// Code is the initial snippet text.
	Code     string
	Language string
	Theme    string

	// FontSize (px) and LineHeight apply to copied HTML only.
	FontSize    int
	LineHeight  float64
	LineNumbers bool

	TabWidth int
	ToastTTL time.Duration

	// Platform overrides the shortcut modifier: "auto", "apple" or "other".
	Platform string
	// Clipboard selects the backend: ClipboardSystem or ClipboardMemory.
	Clipboard string
}

func DefaultConfig() Config {
	return Config{
		Language:   catalog.DefaultLanguage,
		Theme:      catalog.DefaultTheme,
		FontSize:   markup.DefaultFontSize,
		LineHeight: markup.DefaultLineHeight,
		TabWidth:   graphemeutil.DefaultTabWidth,
		ToastTTL:   notify.DefaultTTL,
		Platform:   "auto",
		Clipboard:  ClipboardSystem,
	}
}

// LoadConfig returns DefaultConfig overridden by envFile (when it exists) and
// then by CODESNAP_* variables from the process environment. Only keys with
// EnvPrefix are taken from envFile; the process environment is not modified.
func LoadConfig(envFile string) (Config, error) {
	vals := map[string]string{}
	if envFile != "" {
		fileVals, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			for k, v := range fileVals {
				if strings.HasPrefix(k, EnvPrefix) {
					vals[k] = v
				}
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	}

	lookup := func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := vals[name]
		return v, ok
	}

	cfg := DefaultConfig()
	if err := cfg.Apply(lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply overrides fields from variables found by lookup (full names,
// including EnvPrefix). Malformed values are errors.
func (c *Config) Apply(lookup func(name string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("LANGUAGE"); ok {
		c.Language = v
	}
	if v, ok := get("THEME"); ok {
		c.Theme = v
	}
	if v, ok := get("PLATFORM"); ok {
		c.Platform = v
	}
	if v, ok := get("CLIPBOARD"); ok {
		c.Clipboard = v
	}
	if v, ok := get("FONT_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sFONT_SIZE: %w", EnvPrefix, err)
		}
		c.FontSize = n
	}
	if v, ok := get("LINE_HEIGHT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %sLINE_HEIGHT: %w", EnvPrefix, err)
		}
		c.LineHeight = f
	}
	if v, ok := get("LINE_NUMBERS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sLINE_NUMBERS: %w", EnvPrefix, err)
		}
		c.LineNumbers = b
	}
	if v, ok := get("TAB_WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sTAB_WIDTH: %w", EnvPrefix, err)
		}
		c.TabWidth = n
	}
	if v, ok := get("TOAST_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %sTOAST_TTL: %w", EnvPrefix, err)
		}
		c.ToastTTL = d
	}
	return nil
}

// Normalize fills zero values with defaults and validates the rest.
func (c Config) Normalize() (Config, error) {
	def := DefaultConfig()
	if c.Language == "" {
		c.Language = def.Language
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.FontSize == 0 {
		c.FontSize = def.FontSize
	}
	if c.LineHeight == 0 {
		c.LineHeight = def.LineHeight
	}
	if c.TabWidth == 0 {
		c.TabWidth = def.TabWidth
	}
	if c.ToastTTL == 0 {
		c.ToastTTL = def.ToastTTL
	}
	if c.Platform == "" {
		c.Platform = def.Platform
	}
	if c.Clipboard == "" {
		c.Clipboard = def.Clipboard
	}
	c.Clipboard = strings.ToLower(c.Clipboard)

	var errs []error
	if _, ok := catalog.LookupLanguage(c.Language); !ok {
		errs = append(errs, fmt.Errorf("unknown language %q", c.Language))
	}
	if _, ok := catalog.LookupTheme(c.Theme); !ok {
		errs = append(errs, fmt.Errorf("unknown theme %q", c.Theme))
	}
	if c.FontSize < 0 {
		errs = append(errs, fmt.Errorf("font size must be positive, got %d", c.FontSize))
	}
	if c.LineHeight < 0 {
		errs = append(errs, fmt.Errorf("line height must be positive, got %g", c.LineHeight))
	}
	if c.TabWidth < 0 {
		errs = append(errs, fmt.Errorf("tab width must be positive, got %d", c.TabWidth))
	}
	if c.ToastTTL < 0 {
		errs = append(errs, fmt.Errorf("toast ttl must be positive, got %s", c.ToastTTL))
	}
	if _, err := shortcut.ParsePlatform(c.Platform); err != nil {
		errs = append(errs, err)
	}
	if c.Clipboard != ClipboardSystem && c.Clipboard != ClipboardMemory {
		errs = append(errs, fmt.Errorf("unknown clipboard backend %q", c.Clipboard))
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}
