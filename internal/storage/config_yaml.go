package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"pulsetimer/internal/core/model"
	"pulsetimer/internal/platform"
	"pulsetimer/internal/ui/preferences"
)

const configFileName = "config.yaml"

type yamlSettings struct {
	WorkDurationSeconds      int    `yaml:"work_duration_seconds"`
	BreakDurationSeconds     int    `yaml:"break_duration_seconds"`
	PulseMilliseconds        int    `yaml:"pulse_milliseconds"`
	TickIntervalMilliseconds int    `yaml:"tick_interval_milliseconds"`
	AudioEnabled             *bool  `yaml:"audio_enabled"`
	SplashMilliseconds       *int   `yaml:"splash_milliseconds"`
	LogLevel                 string `yaml:"log_level"`
}

// ResolveConfigPath returns <config dir>/<appName>/config.yaml.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

// LoadSettings reads start-up preferences from a YAML file.
// If the file does not exist, default settings are returned.
func LoadSettings(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse config yaml: %w", err)
	}

	if err := applyYamlSettings(&settings, fileData); err != nil {
		return preferences.DefaultSettings(), err
	}
	return settings, nil
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
func ParseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", value, err)
	}
	return level, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) error {
	if fileData.WorkDurationSeconds > 0 {
		settings.WorkDurationSeconds = model.NormalizeDuration(fileData.WorkDurationSeconds)
	}
	if fileData.BreakDurationSeconds > 0 {
		settings.BreakDurationSeconds = model.NormalizeDuration(fileData.BreakDurationSeconds)
	}
	if fileData.PulseMilliseconds > 0 {
		settings.PulseDuration = time.Duration(fileData.PulseMilliseconds) * time.Millisecond
	}
	if fileData.TickIntervalMilliseconds > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMilliseconds) * time.Millisecond
	}
	if fileData.AudioEnabled != nil {
		settings.AudioEnabled = *fileData.AudioEnabled
	}
	if fileData.SplashMilliseconds != nil && *fileData.SplashMilliseconds >= 0 {
		settings.SplashDuration = time.Duration(*fileData.SplashMilliseconds) * time.Millisecond
	}
	if fileData.LogLevel != "" {
		level, err := ParseLogLevel(fileData.LogLevel)
		if err != nil {
			return err
		}
		settings.LogLevel = level
	}
	return nil
}
