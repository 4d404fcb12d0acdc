package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the number of log files kept when rotating
const DefaultMaxLogFiles = 1000

// Environment variables a parent process exports so that children log to
// the same file
const (
	EnvDebug       = "CHINOOK_DEBUG"
	EnvDebugFile   = "CHINOOK_DEBUG_FILE"
	EnvMaxLogFiles = "CHINOOK_MAX_LOG_FILES"
)

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize enables debug logging.
var Logger = discardLogger()

// Options controls where debug logs are written
type Options struct {
	Debug       bool
	File        string // Custom log file, disables rotation
	MaxLogFiles int    // 0 keeps every file

	inherited bool
}

// enabled reports whether anything should be logged
func (o Options) enabled() bool {
	return o.Debug || o.File != ""
}

// withEnv merges the settings inherited from a parent process. Flags win
// for the file and the rotation limit; CHINOOK_DEBUG=1 always enables
// debug and marks the options as inherited.
func withEnv(opts Options, getenv func(string) string) Options {
	if getenv(EnvDebug) == "1" {
		opts.Debug = true
		opts.inherited = true
	}
	if file := getenv(EnvDebugFile); file != "" && opts.File == "" {
		opts.File = file
	}
	if raw := getenv(EnvMaxLogFiles); raw != "" && opts.MaxLogFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(raw); err == nil {
			opts.MaxLogFiles = parsed
		}
	}
	return opts
}

// Initialize replaces Logger according to opts and the inherited
// environment. Returns the path of the log file in use, or "" when
// logging is disabled.
func Initialize(opts Options) (string, error) {
	opts = withEnv(opts, os.Getenv)

	if !opts.enabled() {
		Logger = discardLogger()
		return "", nil
	}

	logFilePath, err := logFilePathFor(opts)
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = newLogger(logFile)

	if !opts.inherited {
		Logger.Info("Debug logging initialized", "log_file", logFilePath)
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", logFilePath)
	}

	return logFilePath, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newLogger builds the debug logger. Every record carries the pid so that
// lines from SSH sessions and CLI runs sharing a file can be told apart.
func newLogger(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With("pid", os.Getpid())
}

// logFilePathFor returns the file to log to, creating its directory. Without
// a custom file a fresh uuid-named file is used in the OS log directory,
// after old files are rotated out.
func logFilePathFor(opts Options) (string, error) {
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.File, nil
	}

	logDir, err := getLogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		if _, err := rotateLogs(logDir, opts.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(logDir, uuid.New().String()+".log"), nil
}

// rotateLogs deletes the oldest .log files in logDir so that at most
// maxLogFiles remain once the next one is created. Returns how many
// files were removed.
func rotateLogs(logDir string, maxLogFiles int) (int, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(logDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	excess := len(logFiles) - maxLogFiles + 1
	if excess <= 0 {
		return 0, nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	removed := 0
	for _, f := range logFiles[:excess] {
		if err := os.Remove(f.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", f.path, err)
			continue
		}
		removed++
	}

	return removed, nil
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "chinook"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "chinook"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "chinook", "logs"), nil
	default:
		return filepath.Join(homeDir, ".chinook", "logs"), nil
	}
}
