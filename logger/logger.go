package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// The loggers are usable before InitLoggers runs (tests, init order); they
// write to stdout until InitLoggers attaches the rotating file.
var (
	InfoLogger  = newLogger(logrus.InfoLevel, os.Stdout)
	WarnLogger  = newLogger(logrus.WarnLevel, os.Stdout)
	ErrorLogger = newLogger(logrus.ErrorLevel, os.Stderr)
	DebugLogger = newLogger(logrus.DebugLevel, io.Discard)
)

func newLogger(level logrus.Level, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	l.SetOutput(out)
	return l
}

// InitLoggers points every logger at stdout plus a rotating file in logDir.
// An empty logDir keeps console-only output.
func InitLoggers(logDir string, debug bool) {
	var file io.Writer
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			ErrorLogger.Errorf("Failed to create log directory %s: %v", logDir, err)
		} else {
			file = &lumberjack.Logger{
				Filename:   filepath.Join(logDir, "app.log"),
				MaxSize:    10, // megabytes
				MaxBackups: 5,
				MaxAge:     30, // days
				Compress:   true,
			}
		}
	}

	withFile := func(console io.Writer) io.Writer {
		if file == nil {
			return console
		}
		return io.MultiWriter(console, file)
	}

	InfoLogger.SetOutput(withFile(os.Stdout))
	WarnLogger.SetOutput(withFile(os.Stdout))
	ErrorLogger.SetOutput(withFile(os.Stderr))

	if debug {
		DebugLogger.SetOutput(withFile(os.Stdout))
	} else {
		DebugLogger.SetOutput(io.Discard)
	}
}
