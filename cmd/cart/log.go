package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxMB      = 10
	logFileMaxBackups = 3
)

// newLogger returns a logger writing to out in console format, colored only
// when out is a terminal, and also to logFile in JSON when it is set.
func newLogger(out io.Writer, verbose bool, logFile string) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(out),
	}
	var w io.Writer = console
	if logFile != "" {
		w = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logFileMaxMB,
			MaxBackups: logFileMaxBackups,
			Compress:   true,
		})
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Logf logs progress information, shown when running verbosely.
func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	rcc.logger.Debug().Msgf(format, a...)
}
