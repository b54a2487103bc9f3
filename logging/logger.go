package logging

import (
	"sync"
)

// Logger is a type that is responsible for storing and logging output from the
// generator as necessary
type Logger struct {
	errorCount   int // Total encountered errors
	warningCount int // Total encountered warnings
	LogLevel     int

	// warnings is a list of all warnings to be logged at the end of the build
	warnings []LogMessage

	// m is the mutex used to synchonize the printing of messages with the
	// phase spinner
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and closing notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, version, model echo, progress summary, closing message (DEFAULT)
)

// newLogger creates a new logger struct
func newLogger(loglevel int) Logger {
	return Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// LogMessage is a message that can be handled by the logger
type LogMessage interface {
	display()
	isError() bool
}

// handleMsg prompts to logger to process a message.  Errors are displayed
// immediately; warnings are kept until the end of the build.
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()
	defer l.m.Unlock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			displayEndPhase(false)
			lm.display()
		}
	} else {
		l.warningCount++
		l.warnings = append(l.warnings, lm)
	}
}

// flushWarnings displays and discards all pending warnings
func (l *Logger) flushWarnings() {
	l.m.Lock()
	defer l.m.Unlock()

	if l.LogLevel >= LogLevelWarning {
		for _, w := range l.warnings {
			w.display()
		}
	}

	l.warnings = nil
}
