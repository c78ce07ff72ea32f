// Package logging provides the levelled logger used across the RCS engine
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level enumerates severity tiers.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// ParseLevel maps a level name (case-insensitive) to its Level.
func ParseLevel(name string) (Level, error) {
	for i, n := range levelNames {
		if strings.EqualFold(name, n) {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// Logger is the interface the engine reports diagnostics through.
// Setter validation failures are reported at error severity.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Standard is a Logger writing timestamped lines to an io.Writer.
type Standard struct {
	mu    sync.Mutex
	level Level
	inner *log.Logger
}

// New creates a Standard logger writing to out at the given minimum level.
func New(out io.Writer, level Level) *Standard {
	return &Standard{
		level: level,
		inner: log.New(out, "", log.LstdFlags),
	}
}

// Default returns a stderr logger at info level.
func Default() *Standard {
	return New(os.Stderr, LevelInfo)
}

func (s *Standard) logf(lvl Level, format string, args ...any) {
	if lvl < s.level {
		return
	}
	s.mu.Lock()
	s.inner.Printf("[%s] %s", lvl, fmt.Sprintf(format, args...))
	s.mu.Unlock()
}

func (s *Standard) Debugf(f string, a ...any) { s.logf(LevelDebug, f, a...) }
func (s *Standard) Infof(f string, a ...any)  { s.logf(LevelInfo, f, a...) }
func (s *Standard) Warnf(f string, a ...any)  { s.logf(LevelWarn, f, a...) }
func (s *Standard) Errorf(f string, a ...any) { s.logf(LevelError, f, a...) }

// Recorder is a Logger that captures messages for inspection in tests.
type Recorder struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
}

func (r *Recorder) record(dst *[]string, format string, args ...any) {
	r.mu.Lock()
	*dst = append(*dst, fmt.Sprintf(format, args...))
	r.mu.Unlock()
}

func (r *Recorder) Debugf(f string, a ...any) {}
func (r *Recorder) Infof(f string, a ...any)  { r.record(&r.Infos, f, a...) }
func (r *Recorder) Warnf(f string, a ...any)  {}
func (r *Recorder) Errorf(f string, a ...any) { r.record(&r.Errors, f, a...) }

// LastError returns the most recent error message, or "" if none.
func (r *Recorder) LastError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[len(r.Errors)-1]
}

// Discard is a Logger that drops everything.
type Discard struct{}

func (Discard) Debugf(string, ...any) {}
func (Discard) Infof(string, ...any)  {}
func (Discard) Warnf(string, ...any)  {}
func (Discard) Errorf(string, ...any) {}
