// Package app wires settings, logging and the interval machine for the binaries.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"pulsetimer/internal/core/interval"
	"pulsetimer/internal/platform"
	"pulsetimer/internal/storage"
	"pulsetimer/internal/ui/preferences"
)

// Name is used for the config directory and the single-instance lock.
const Name = "PulseTimer"

// Options are the command-line options shared by every binary.
type Options struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
}

// ParseFlags parses args (without the program name). Usage and parse errors are
// written to usage; -h returns an error matching flag.ErrHelp.
func ParseFlags(name string, args []string, usage io.Writer) (Options, error) {
	var options Options
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	if usage == nil {
		usage = io.Discard
	}
	flags.SetOutput(usage)
	flags.StringVar(&options.ConfigPath, "config", "", "path to config.yaml (default: user config dir)")
	flags.StringVar(&options.LogLevel, "log-level", "", "override log level: debug, info, warn, error")
	flags.StringVar(&options.LogFile, "log-file", "", "append logs to this file instead of stderr")
	if err := flags.Parse(args); err != nil {
		return options, fmt.Errorf("parse flags: %w", err)
	}
	return options, nil
}

// Runtime holds everything a presentation surface needs.
type Runtime struct {
	Settings preferences.Settings
	Logger   *slog.Logger
	Machine  *interval.Machine
	Driver   *interval.Driver

	lock    *platform.InstanceLock
	logFile *os.File
}

// Bootstrap loads settings, takes the instance lock and builds the machine and driver.
// Logs go to logOutput unless options.LogFile is set.
func Bootstrap(appName string, options Options, logOutput io.Writer) (*Runtime, error) {
	configPath := options.ConfigPath
	if configPath == "" {
		resolved, err := storage.ResolveConfigPath(appName)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	settings, err := storage.LoadSettings(configPath)
	if err != nil {
		return nil, err
	}
	if options.LogLevel != "" {
		level, err := storage.ParseLogLevel(options.LogLevel)
		if err != nil {
			return nil, err
		}
		settings.LogLevel = level
	}

	runtime := &Runtime{Settings: settings}
	if options.LogFile != "" {
		file, err := os.OpenFile(options.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		runtime.logFile = file
		logOutput = file
	}
	runtime.Logger = slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: settings.LogLevel})).
		With("run_id", uuid.NewString())

	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		runtime.closeLog()
		return nil, err
	}
	runtime.lock = lock

	config := settings.TimerConfig()
	runtime.Machine = interval.New(config, runtime.Logger)
	runtime.Machine.SetHapticNotifier(platform.NewHapticNotifier(settings.AudioEnabled))
	runtime.Driver = interval.NewDriver(runtime.Machine, config.TickInterval)

	runtime.Logger.Info("timer ready",
		"config", configPath,
		"work_seconds", config.WorkDurationSeconds,
		"break_seconds", config.BreakDurationSeconds,
		"tick_interval", config.TickInterval,
		"audio", settings.AudioEnabled,
	)
	return runtime, nil
}

// Close stops the driver, closes observers and releases the instance lock.
func (runtime *Runtime) Close() error {
	runtime.Driver.Stop()
	runtime.Machine.Close()
	err := runtime.lock.Release()
	runtime.closeLog()
	if err != nil {
		return fmt.Errorf("release instance lock: %w", err)
	}
	return nil
}

func (runtime *Runtime) closeLog() {
	if runtime.logFile != nil {
		_ = runtime.logFile.Close()
		runtime.logFile = nil
	}
}

// IsAlreadyRunning reports whether err came from a second instance starting.
func IsAlreadyRunning(err error) bool {
	return errors.Is(err, platform.ErrAlreadyRunning)
}

// IsHelp reports whether err came from an explicit -h or -help flag.
func IsHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
