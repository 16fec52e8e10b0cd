package diag

import (
	"fmt"
	"strings"

	"github.com/go-as2js/as2js/internal/position"
)

// Message is a diagnostic under construction, built up part by part the way
// the original as2js::message is assembled through repeated operator<<
// calls (§4.1, original_source/tests/catch_message.cpp). Go has no
// destructors to flush the accumulated text on scope exit, so callers must
// call Emit explicitly once the message is complete.
type Message struct {
	ctx   *Context
	level Level
	code  Code
	pos   position.Position
	sb    strings.Builder
}

// NewMessage starts a chainable diagnostic bound to c. Nothing is emitted
// until Emit is called.
func (c *Context) NewMessage(level Level, code Code, pos position.Position) *Message {
	return &Message{ctx: c, level: level, code: code, pos: pos}
}

// Append adds one more part to the message text, the Go equivalent of
// operator<<'s chaining. A rune part is written as the character it
// encodes; any other value (string, int, ...) is rendered with fmt.Sprint.
func (m *Message) Append(part any) *Message {
	if r, ok := part.(rune); ok {
		m.sb.WriteRune(r)
		return m
	}
	fmt.Fprint(&m.sb, part)
	return m
}

// Appendf adds one formatted part and returns m for further chaining.
func (m *Message) Appendf(format string, args ...any) *Message {
	fmt.Fprintf(&m.sb, format, args...)
	return m
}

// Emit delivers the message built up so far through the owning Context,
// via the same emit path Emitf uses. A Message that never had anything
// appended to it is dropped without reaching the callback or the
// warning/error counters, mirroring catch_message.cpp's "no message no
// call" case.
func (m *Message) Emit() {
	if m.sb.Len() == 0 {
		return
	}
	m.ctx.emit(Diagnostic{Level: m.level, Code: m.code, Pos: m.pos, Message: m.sb.String()})
}

// Done is an alias for Emit, for callers that prefer the builder-pattern
// name over the message-stream name.
func (m *Message) Done() { m.Emit() }
