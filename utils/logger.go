package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Logger provides leveled, timestamped logging throughout the pipeline.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	debug *log.Logger

	verbose bool
}

// NewLogger creates a new Logger writing to stdout/stderr.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr)
}

// NewLoggerTo creates a Logger that writes info, warn and debug lines to out
// and error lines to errOut.
func NewLoggerTo(out, errOut io.Writer) *Logger {
	flags := 0
	return &Logger{
		info:  log.New(out, "", flags),
		warn:  log.New(out, "", flags),
		err:   log.New(errOut, "", flags),
		debug: log.New(out, "", flags),
	}
}

// SetVerbose enables Debug output.
func (l *Logger) SetVerbose(v bool) {
	l.verbose = v
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) Info(format string, args ...any) {
	l.info.Print(l.line("\033[32mINFO\033[0m ", format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.warn.Print(l.line("\033[33mWARN\033[0m ", format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Print(l.line("\033[31mERROR\033[0m", format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.debug.Print(l.line("\033[36mDEBUG\033[0m", format, args...))
}

func (l *Logger) line(level, format string, args ...any) string {
	return fmt.Sprintf("[%s] %s %s\n", l.timestamp(), level, fmt.Sprintf(format, args...))
}
