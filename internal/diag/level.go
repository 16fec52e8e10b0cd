package diag

// Level is how severe a Diagnostic is. Lower values are more severe: a
// process-wide filter suppresses any diagnostic whose level is numerically
// greater than the filter, except that FATAL and ERROR are never
// suppressed regardless of the filter (§4.1).
type Level int

const (
	Off Level = iota
	Fatal
	Error
	Warning
	Info
	Debug
	Trace
)

var levelNames = [...]string{
	Off:     "OFF",
	Fatal:   "FATAL",
	Error:   "ERROR",
	Warning: "WARNING",
	Info:    "INFO",
	Debug:   "DEBUG",
	Trace:   "TRACE",
}

func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// suppressedBy reports whether a diagnostic at level l should be dropped
// under filter. ERROR and more severe are never suppressed.
func (l Level) suppressedBy(filter Level) bool {
	if l <= Error {
		return false
	}
	return l > filter
}
