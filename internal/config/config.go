// Package config resolves where themepal finds its input files.
//
// Values come from, highest priority first: command-line flags, THEMEPAL_*
// environment variables, a .env file in the project root, a themepal.yaml
// file in the project root, and the defaults below.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"themepal/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingFile is returned by RequireFile for a path that does not exist.
var ErrMissingFile = errors.New("not found")

// Configuration keys shared by flags, environment variables and the config file.
const (
	KeyRoot     = "root"
	KeyPalette  = "palette"
	KeyTheme    = "theme"
	KeyMappings = "mappings"
	KeyRoles    = "roles"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeyPlain    = "plain"
)

// Default configuration values
const (
	DefaultPalette  = "docs/palette.md"
	DefaultTheme    = "Honeypunk.yaml"
	DefaultMappings = "tools/mappings.yaml"
	DefaultRoles    = "tools/roles.yaml"
	DefaultLogLevel = "info"

	EnvPrefix  = "THEMEPAL"
	ConfigName = "themepal"
	DotEnvFile = ".env"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	Root     string
	Palette  string
	Theme    string
	Mappings string
	Roles    string
	LogLevel string
	LogFile  string
	Plain    bool
}

// NewViper returns a viper instance carrying the defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPalette, DefaultPalette)
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyMappings, DefaultMappings)
	v.SetDefault(KeyRoles, DefaultRoles)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves the project root, reads the optional .env and themepal.yaml
// files from it, and returns the final configuration with absolute paths.
func Load(v *viper.Viper) (*Config, error) {
	root, err := resolveRoot(v)
	if err != nil {
		return nil, err
	}

	if err := loadDotEnv(filepath.Join(root, DotEnvFile)); err != nil {
		return nil, err
	}

	configFile := filepath.Join(root, ConfigName+".yaml")
	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
		}
		logger.Debug("Loaded config file", "path", configFile)
	}

	cfg := &Config{
		Root:     root,
		Palette:  resolvePath(root, v.GetString(KeyPalette)),
		Theme:    resolvePath(root, v.GetString(KeyTheme)),
		Mappings: resolvePath(root, v.GetString(KeyMappings)),
		Roles:    resolvePath(root, v.GetString(KeyRoles)),
		LogLevel: v.GetString(KeyLogLevel),
		LogFile:  v.GetString(KeyLogFile),
		Plain:    v.GetBool(KeyPlain),
	}
	return cfg, nil
}

// RequireFile returns an ErrMissingFile error naming path when it does not exist.
// label prefixes the path in the message, e.g. "mappings file ".
func RequireFile(label, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s%s %w", label, path, ErrMissingFile)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return nil
}

// DiscoverRoot walks upward from start to the first directory containing
// palettePath. start itself is returned when no such directory exists.
func DiscoverRoot(start, palettePath string) string {
	if filepath.IsAbs(palettePath) {
		return start
	}
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, palettePath)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

func resolveRoot(v *viper.Viper) (string, error) {
	if root := v.GetString(KeyRoot); root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("failed to resolve root %s: %w", root, err)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return DiscoverRoot(cwd, v.GetString(KeyPalette)), nil
}

// loadDotEnv exports variables from a .env file without overriding the real environment.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	logger.Debug("Loaded environment file", "path", path)
	return nil
}

func resolvePath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
