package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var customLog = newLogger(os.Stderr, os.Stderr)

type logger struct {
	debug   *log.Logger
	info    *log.Logger
	err     *log.Logger
	dir     string
	verbose bool
}

func newLogger(out, errOut io.Writer) logger {
	return logger{
		debug: log.New(out, "[DEBUG] ", 0),
		info:  log.New(out, "[INFOM] ", 0),
		err:   log.New(errOut, "[ERROR] ", 0),
	}
}

// InitLogger writes to stderr. Debug lines are dropped unless verbose is set.
func InitLogger(verbose bool) {
	customLog = newLogger(os.Stderr, os.Stderr)
	customLog.verbose = verbose
}

// SetOutput redirects every level to w.
func SetOutput(w io.Writer) {
	verbose := customLog.verbose
	customLog = newLogger(w, w)
	customLog.verbose = verbose
}

// ResetLogger moves all output to a per-process file under <home>/logs.
func ResetLogger(home string) error {
	if home == "" {
		osHome, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		home = filepath.Join(osHome, ".oevd")
	}
	customLog.dir = filepath.Join(home, "logs")

	if err := os.MkdirAll(customLog.dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", customLog.dir, err)
	}

	format := log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile
	name := fmt.Sprintf("%s.%d.log", filepath.Base(os.Args[0]), os.Getpid())
	path := filepath.Join(customLog.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	Infof("From now on, all logs will be written to %s", path)

	customLog.debug = log.New(file, "[DEBUG] ", format)
	customLog.info = log.New(file, "[INFOM] ", format)
	customLog.err = log.New(file, "[ERROR] ", format)
	return nil
}

// Dir returns the log directory set by ResetLogger.
func Dir() string {
	return customLog.dir
}

func Debug(v ...any) {
	if customLog.verbose {
		_ = customLog.debug.Output(2, fmt.Sprint(v...))
	}
}

func Debugf(format string, v ...any) {
	if customLog.verbose {
		_ = customLog.debug.Output(2, fmt.Sprintf(format, v...))
	}
}

func Info(v ...any) {
	_ = customLog.info.Output(2, fmt.Sprint(v...))
}

func Infof(format string, v ...any) {
	_ = customLog.info.Output(2, fmt.Sprintf(format, v...))
}

func Error(v ...any) {
	_ = customLog.err.Output(2, fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	_ = customLog.err.Output(2, fmt.Sprintf(format, v...))
}

func Fatal(v ...any) {
	_ = customLog.err.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

func Fatalf(format string, v ...any) {
	_ = customLog.err.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}
