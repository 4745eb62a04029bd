// Package logging provides unified logging infrastructure for greeter
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// LogFileName is the active log file inside the log directory
const LogFileName = "greeter.log"

// Logger wraps the standard logger with file output
type Logger struct {
	*log.Logger
	file   *os.File
	logDir string
}

var (
	defaultLogger *Logger
	mu            sync.Mutex
	debugEnabled  bool
)

// Initialize sets up the logging system with file output
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, LogFileName)
	file, err := openLogFile(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if defaultLogger != nil && defaultLogger.file != nil {
		_ = defaultLogger.file.Close()
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	defaultLogger = &Logger{
		Logger: log.New(multiWriter, "", log.LstdFlags),
		file:   file,
		logDir: logDir,
	}

	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags)

	log.Printf("Logging initialized: %s", logPath)
	return nil
}

// Close closes the log file and restores stdout-only logging
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if defaultLogger == nil {
		return nil
	}
	var err error
	if defaultLogger.file != nil {
		err = defaultLogger.file.Close()
	}
	defaultLogger = nil
	log.SetOutput(os.Stdout)
	return err
}

// SetOutput replaces the destination of all log output, dropping any log file.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if defaultLogger != nil {
		if defaultLogger.file != nil {
			_ = defaultLogger.file.Close()
			defaultLogger.file = nil
		}
		defaultLogger.SetOutput(w)
	}
	log.SetOutput(w)
}

// SetDebug turns Debug output on or off
func SetDebug(enabled bool) {
	mu.Lock()
	debugEnabled = enabled
	mu.Unlock()
}

// DebugEnabled reports whether Debug messages are written
func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return debugEnabled || os.Getenv("DEBUG") == "true"
}

func output(msg string) {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger != nil {
		_ = defaultLogger.Output(3, msg)
	} else {
		_ = log.Output(3, msg)
	}
}

// Printf logs a formatted message
func Printf(format string, v ...interface{}) {
	output(fmt.Sprintf(format, v...))
}

// Println logs a message with newline
func Println(v ...interface{}) {
	output(fmt.Sprintln(v...))
}

// Error logs an error message
func Error(format string, v ...interface{}) {
	output(fmt.Sprintf("[ERROR] "+format, v...))
}

// Warning logs a warning message
func Warning(format string, v ...interface{}) {
	output(fmt.Sprintf("[WARN] "+format, v...))
}

// Info logs an info message
func Info(format string, v ...interface{}) {
	output(fmt.Sprintf("[INFO] "+format, v...))
}

// Debug logs a debug message (only in development mode)
func Debug(format string, v ...interface{}) {
	if DebugEnabled() {
		output(fmt.Sprintf("[DEBUG] "+format, v...))
	}
}

// RotateLogs creates a new log file with timestamp and renames the old one
func RotateLogs() error {
	mu.Lock()
	defer mu.Unlock()

	if defaultLogger == nil {
		return fmt.Errorf("logger not initialized")
	}
	if defaultLogger.file == nil {
		return fmt.Errorf("no log file open")
	}

	if err := defaultLogger.file.Close(); err != nil {
		return fmt.Errorf("failed to close current log file: %w", err)
	}

	logDir := defaultLogger.logDir
	oldPath := filepath.Join(logDir, LogFileName)
	newPath := filepath.Join(logDir, fmt.Sprintf("greeter-%s.log", time.Now().Format("20060102-150405")))
	if err := os.Rename(oldPath, newPath); err != nil {
		// Keep logging to the original file
		if file, openErr := openLogFile(oldPath); openErr == nil {
			defaultLogger.setFile(file)
		} else {
			defaultLogger.stdoutOnly()
		}
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	file, err := openLogFile(oldPath)
	if err != nil {
		defaultLogger.stdoutOnly()
		return fmt.Errorf("failed to open new log file: %w", err)
	}
	defaultLogger.setFile(file)

	defaultLogger.Printf("Log rotation completed: %s", newPath)
	return nil
}

// StartRotation runs RotateLogs on the given cron schedule until the returned
// stop function is called.
func StartRotation(schedule string) (func(), error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := RotateLogs(); err != nil {
			Error("Log rotation failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid rotation schedule %q: %w", schedule, err)
	}
	c.Start()

	return func() {
		<-c.Stop().Done()
	}, nil
}

func (l *Logger) setFile(file *os.File) {
	l.file = file
	multiWriter := io.MultiWriter(os.Stdout, file)
	l.SetOutput(multiWriter)
	log.SetOutput(multiWriter)
}

// stdoutOnly drops the closed log file so later writes still reach stdout
func (l *Logger) stdoutOnly() {
	l.file = nil
	l.SetOutput(os.Stdout)
	log.SetOutput(os.Stdout)
}

var openLogFile = func(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec G304 -- path is built from configured log dir
}
