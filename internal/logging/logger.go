package logging

// Leveled logging for csvtrim

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

// ParseLevel maps a configuration string to a level. Unknown values fall
// back to info.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "verbose":
		return LogLevelVerbose
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// Logger provides leveled logging to the console and an optional file
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	file    *os.File
	fileLog *log.Logger
	stderr  *log.Logger
}

// NewLogger creates a new logger
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	l := &Logger{
		level:  level,
		stderr: log.New(os.Stderr, "", 0),
	}

	// Open log file if specified
	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}

	return l, nil
}

// Close closes the logger and flushes all data
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level >= LogLevelError {
		msg := fmt.Sprintf("ERROR: "+format, v...)
		l.write(msg, true)
	}
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level >= LogLevelInfo {
		msg := fmt.Sprintf("INFO: "+format, v...)
		l.write(msg, false)
	}
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.level >= LogLevelVerbose {
		msg := fmt.Sprintf("VERBOSE: "+format, v...)
		l.write(msg, false)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level >= LogLevelDebug {
		msg := fmt.Sprintf("DEBUG: "+format, v...)
		l.write(msg, false)
	}
}

// write writes a message to the appropriate outputs. Everything goes to the
// log file when one is open. Console messages go to stderr so they never
// interleave with interactive screens or piped CSV output on stdout.
func (l *Logger) write(msg string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileLog != nil {
		l.fileLog.Println(msg)
	}

	if isError || l.level >= LogLevelVerbose {
		l.stderr.Println(msg)
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogApply logs the outcome of one profile application
func (l *Logger) LogApply(profileName, input string, rowsIn, rowsOut int, err error) {
	if err != nil {
		l.Error("apply %s to %s: %v", profileName, input, err)
		return
	}
	l.Verbose("applied %s to %s (%d rows in, %d rows out)", profileName, input, rowsIn, rowsOut)
}
