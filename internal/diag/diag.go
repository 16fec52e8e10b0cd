// Package diag implements the position-and-diagnostics collaborator
// (component A): leveled, code-tagged messages delivered synchronously to
// an installed callback, with warning/error counters and a severity
// filter. Formatting (source line + caret) follows the teacher's
// internal/errors.CompilerError.
package diag

import (
	"fmt"
	"strings"

	"github.com/go-as2js/as2js/internal/position"
)

// Diagnostic is one emitted message.
type Diagnostic struct {
	Level   Level
	Code    Code
	Pos     position.Position
	Message string
}

// Callback receives every non-suppressed Diagnostic, synchronously, in
// source order relative to the token or node that produced it (§5).
type Callback func(Diagnostic)

// Context holds the mutable diagnostic state for one compilation: the
// severity filter, the warning/error counters, and the installed
// callback. §9 calls for lifting what the original implementation keeps
// as process-wide globals into an explicit context; Default below is the
// "thin process-wide default" that preserves the simpler call pattern for
// single-compilation callers and tests.
type Context struct {
	filter   Level
	warnings int
	errors   int
	callback Callback
}

// NewContext returns a Context with the filter at Trace (nothing
// suppressed) and no callback installed.
func NewContext() *Context {
	return &Context{filter: Trace}
}

// Default is a process-wide Context, used by callers that do not need
// per-compilation isolation. Concurrent compilations that must not share
// counters or a callback should each construct their own Context instead
// (§5).
var Default = NewContext()

// SetFilter changes the severity filter: diagnostics more verbose than
// level are dropped, except FATAL/ERROR which are never suppressed.
func (c *Context) SetFilter(level Level) { c.filter = level }

// SetCallback installs fn as the diagnostic sink. Passing nil detaches it.
func (c *Context) SetCallback(fn Callback) { c.callback = fn }

// Warnings returns the number of WARNING diagnostics emitted so far.
func (c *Context) Warnings() int { return c.warnings }

// Errors returns the number of ERROR or FATAL diagnostics emitted so far.
func (c *Context) Errors() int { return c.errors }

// HasErrors reports whether any ERROR or FATAL diagnostic has been
// emitted; this is what the shipped exit code should reflect (§7).
func (c *Context) HasErrors() bool { return c.errors > 0 }

// Reset zeroes the counters without touching the filter or callback.
func (c *Context) Reset() {
	c.warnings = 0
	c.errors = 0
}

// emit delivers d to the callback (if not suppressed) and updates
// counters. Suppression never affects counting: a suppressed WARNING still
// increments the warning counter, since the counters answer "how much went
// wrong", independent of what the current filter chooses to show.
func (c *Context) emit(d Diagnostic) {
	switch d.Level {
	case Warning:
		c.warnings++
	case Error, Fatal:
		c.errors++
	}

	if d.Level.suppressedBy(c.filter) {
		return
	}
	if c.callback != nil {
		c.callback(d)
	}
}

// Emitf formats a message from format and args and immediately delivers it
// as a diagnostic, through the same emit path Message.Emit uses.
func (c *Context) Emitf(level Level, code Code, pos position.Position, format string, args ...any) {
	c.emit(Diagnostic{Level: level, Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// Format renders d as multi-line text with a source-context line and caret,
// the way the teacher's CompilerError.Format does. source is the full text
// of the file d.Pos refers to; pass "" when unavailable.
func Format(d Diagnostic, source string, color bool) string {
	var sb strings.Builder

	if d.Pos.Filename != "" {
		fmt.Fprintf(&sb, "%s: %s in %s:%d\n", d.Level.String(), d.Code.String(), d.Pos.Filename, d.Pos.Line)
	} else {
		fmt.Fprintf(&sb, "%s: %s at line %d\n", d.Level.String(), d.Code.String(), d.Pos.Line)
	}

	if line := sourceLine(source, d.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+d.Pos.PageLine-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
