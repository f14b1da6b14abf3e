// Package logger provides centralized logging functionality for themepal.
// Warnings about palette and role data go through here; user-facing results go through package output.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used throughout themepal.
var Logger *log.Logger

// output is the destination shared by the global logger and component loggers.
var output io.Writer = os.Stderr

// logFile is the file opened by Configure, closed when output moves elsewhere.
var logFile *os.File

func init() {
	SetOutput(output)
}

// Configure sets the level and destination of the global logger. Both values
// arrive already resolved by package config, so THEMEPAL_LOG_LEVEL and
// THEMEPAL_LOG_FILE are honored through viper. An empty path logs to stderr.
func Configure(level string, path string) error {
	if path == "" {
		SetOutput(os.Stderr)
	} else {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		SetOutput(file)
		logFile = file
	}

	Logger.SetLevel(parseLogLevel(level))
	return nil
}

// SetOutput replaces the global logger with one writing to w, keeping the current level.
func SetOutput(w io.Writer) {
	level := log.InfoLevel
	if Logger != nil {
		level = Logger.GetLevel()
	}
	if logFile != nil && w != io.Writer(logFile) {
		_ = logFile.Close()
		logFile = nil
	}
	output = w
	Logger = log.NewWithOptions(w, log.Options{Level: level})
}

// parseLogLevel maps a level name to a log.Level, falling back to info.
func parseLogLevel(level string) log.Level {
	parsed, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// FileOperation logs file access details for debugging.
func FileOperation(operation string, path string, details ...interface{}) {
	Debug("File operation", "operation", operation, "path", path, "details", details)
}

// levelBadges gives each level a white-on-color badge in component loggers.
var levelBadges = []struct {
	level log.Level
	label string
	color string
}{
	{log.DebugLevel, "DEBUG", "240"},
	{log.InfoLevel, "INFO", "33"},
	{log.WarnLevel, "WARN", "214"},
	{log.ErrorLevel, "ERROR", "196"},
	{log.FatalLevel, "FATAL", "88"},
}

// keyColors highlights the structured fields themepal logs most.
var keyColors = map[string]string{
	"role":    "99",
	"key":     "39",
	"color":   "214",
	"error":   "196",
	"section": "51",
}

// NewStyledLogger creates a component logger ("theme", "semantic", ...) sharing the
// global logger's destination and level.
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()
	for _, b := range levelBadges {
		styles.Levels[b.level] = lipgloss.NewStyle().
			SetString(b.label).
			Padding(0, 1).
			Background(lipgloss.Color(b.color)).
			Foreground(lipgloss.Color("15"))
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	styles.Values["role"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(keyColors["role"]))

	component := log.NewWithOptions(output, log.Options{Prefix: prefix + " "})
	component.SetStyles(styles)
	component.SetLevel(Logger.GetLevel())
	return component
}
