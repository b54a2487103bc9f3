package logging

import "github.com/pterm/pterm"

// logger is a global reference to a shared Logger (created/initialized with the
// build, but separated for general usage)
var logger = newLogger(LogLevelVerbose)

// Initialize initializes the global logger with the provided log level.  All
// counters and pending warnings are reset.
func Initialize(loglevelname string) {
	var loglevel int
	switch loglevelname {
	case "silent":
		loglevel = LogLevelSilent
	case "error":
		loglevel = LogLevelError
	case "warn", "warning":
		loglevel = LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		loglevel = LogLevelVerbose
	}

	logger = newLogger(loglevel)
}

// ShouldProceed indicates whether or not the log module has encountered an errors.
func ShouldProceed() bool {
	return logger.errorCount == 0
}

// ErrorCount returns the number of errors logged since initialization
func ErrorCount() int {
	return logger.errorCount
}

// WarningCount returns the number of warnings logged since initialization
func WarningCount() int {
	return logger.warningCount
}

// IsVerbose indicates whether progress and informational output is displayed
func IsVerbose() bool {
	return logger.LogLevel >= LogLevelVerbose
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogDesignError logs an issue with a PE description that prevents generation
func LogDesignError(file, kind, subject, message string) {
	logger.handleMsg(&DesignMessage{
		File:    file,
		Kind:    kind,
		Subject: subject,
		Message: message,
		IsError: true,
	})
}

// LogDesignWarning logs an issue with a PE description that generation
// tolerates
func LogDesignWarning(file, kind, subject, message string) {
	logger.handleMsg(&DesignMessage{
		File:    file,
		Kind:    kind,
		Subject: subject,
		Message: message,
		IsError: false,
	})
}

// LogConfigError logs an error related to the project, the description file,
// or the command line
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigMessage{Kind: kind, Message: message, IsError: true})
}

// LogConfigWarning logs a warning related to the project configuration
func LogConfigWarning(kind, message string) {
	logger.handleMsg(&ConfigMessage{Kind: kind, Message: message, IsError: false})
}

// LogFatal logs an error the build cannot recover from (eg. the output file
// cannot be written)
func LogFatal(message string) {
	logger.handleMsg(&fatalMessage{message})
}

// BeginPhase displays the start of a build phase
func BeginPhase(phase string) {
	if IsVerbose() {
		displayBeginPhase(phase)
	}
}

// EndPhase displays the end of the current build phase
func EndPhase(success bool) {
	if IsVerbose() {
		displayEndPhase(success)
	}
}

// DisplayHeader displays the version banner before a build starts
func DisplayHeader(action, target string) {
	if IsVerbose() {
		displayBuildHeader(action, target)
	}
}

// DisplayTree displays an echo of some input data as a tree
func DisplayTree(root pterm.TreeNode) {
	if IsVerbose() {
		displayTree(root)
	}
}

// Finish displays all deferred warnings and the closing summary
func Finish() {
	logger.flushWarnings()

	if logger.LogLevel > LogLevelSilent {
		displayFinished(ShouldProceed(), logger.errorCount, logger.warningCount)
	}
}
