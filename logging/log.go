//----------------------------------------------------------------------
// This file is part of techradar-plot.
// Copyright (C) 2022 Bernd Fix >Y<
//
// techradar-plot is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// techradar-plot is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger for the application
type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time
}

// ParseLevel converts a level name (debug, info, warn, error).
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level '%s'", level)
}

// New creates a logger. With a file name, records are written as JSON to
// a rotating log file; otherwise as text to stderr.
func New(level, file string) *Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if len(file) > 0 {
		w := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    16, // MB
			MaxBackups: 3,
		}
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	l := &Logger{
		Logger:  slog.New(h),
		LogFile: file,
		Start:   time.Now(),
	}
	l.Debug("logging started",
		slog.String("GOOS", runtime.GOOS),
		slog.String("GOARCH", runtime.GOARCH))
	return l
}

// NewWriter creates a text logger on a writer
func NewWriter(level string, w io.Writer) *Logger {
	lvl, _ := ParseLevel(level)
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})),
		Start:  time.Now(),
	}
}

// Elapsed returns the time since the logger was created
func (l *Logger) Elapsed() time.Duration {
	return time.Since(l.Start)
}

// Fatal logs an error and terminates the program
func (l *Logger) Fatal(msg string, args ...any) {
	l.Error(msg, args...)
	os.Exit(1)
}
