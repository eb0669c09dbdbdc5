package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Preferences holds user defaults for the CLI, TUI and server.
type Preferences struct {
	Display DisplayPreferences `toml:"display"`
	Server  ServerPreferences  `toml:"server"`
	Logging LoggingPreferences `toml:"logging"`
}

// DisplayPreferences holds rendering defaults.
type DisplayPreferences struct {
	View   string `toml:"view"`   // monthly | yearly
	Mode   string `toml:"mode"`   // nominal | real
	Format string `toml:"format"` // console | csv | json | html
}

// ServerPreferences holds HTTP API settings.
type ServerPreferences struct {
	Addr      string   `toml:"addr"`
	RedisAddr string   `toml:"redis_addr,omitempty"`
	CacheTTL  Duration `toml:"cache_ttl"`
}

// LoggingPreferences holds logger settings.
type LoggingPreferences struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// Duration wraps time.Duration so it reads and writes as "15m" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultPreferences returns the default preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Display: DisplayPreferences{
			View:   "yearly",
			Mode:   "nominal",
			Format: "console",
		},
		Server: ServerPreferences{
			Addr:     ":8080",
			CacheTTL: Duration{15 * time.Minute},
		},
		Logging: LoggingPreferences{
			Level: "info",
		},
	}
}

// PreferencesDir returns the XDG-compliant config directory.
func PreferencesDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "savingsproj")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "savingsproj")
}

// PreferencesPath returns the full path to the preferences file.
func PreferencesPath() string {
	return filepath.Join(PreferencesDir(), "config.toml")
}

// LoadPreferences reads the preferences file at path, returning defaults if it doesn't exist.
// An empty path means PreferencesPath().
func LoadPreferences(path string) (Preferences, error) {
	prefs := DefaultPreferences()
	if path == "" {
		path = PreferencesPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}

	return prefs, nil
}

// SavePreferences writes prefs to path (PreferencesPath() when empty).
func SavePreferences(path string, prefs Preferences) error {
	if path == "" {
		path = PreferencesPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(prefs)
}
