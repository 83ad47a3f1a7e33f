// Package logger wraps go-logging for the host binary: a leveled console
// backend plus a file backend under the data directory.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/op/go-logging"
)

const logFileName = "vantura.log"

var (
	log     *logging.Logger
	logFile *os.File
)

// Init configures both backends. The console backend honors level; the
// file backend always records DEBUG.
func Init(level logging.Level, dataDir string) {
	newLogger := logging.MustGetLogger("vantura")
	backends := make([]logging.Backend, 0, 2)

	console := logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, "", 0),
		logging.MustStringFormatter(`%{time:2006/01/02 15:04:05} %{level} - %{message}`),
	)
	leveled := logging.AddModuleLevel(console)
	leveled.SetLevel(level, "vantura")
	backends = append(backends, leveled)

	if fileBackend := initFileBackend(dataDir); fileBackend != nil {
		backends = append(backends, fileBackend)
	}

	newLogger.SetBackend(logging.MultiLogger(backends...))
	log = newLogger
}

func initFileBackend(dataDir string) logging.Backend {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log folder %s: %v\n", dataDir, err)
		return nil
	}

	logPath := filepath.Join(dataDir, logFileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0660)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", logPath, err)
		return nil
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file

	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(file, "", 0),
		logging.MustStringFormatter(`%{time:2006/01/02 15:04:05} %{level} - %{message}`),
	)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.DEBUG, "vantura")
	return leveled
}

// Level parses a textual level, defaulting to INFO.
func Level(s string) logging.Level {
	level, err := logging.LogLevel(s)
	if err != nil {
		return logging.INFO
	}
	return level
}

// Close releases the log file; call on shutdown.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func Debug(args ...any)                 { log.Debug(args...) }
func Debugf(format string, args ...any) { log.Debugf(format, args...) }
func Info(args ...any)                  { log.Info(args...) }
func Infof(format string, args ...any)  { log.Infof(format, args...) }
func Warning(args ...any)               { log.Warning(args...) }
func Warningf(format string, args ...any) {
	log.Warningf(format, args...)
}
func Error(args ...any)                 { log.Error(args...) }
func Errorf(format string, args ...any) { log.Errorf(format, args...) }
