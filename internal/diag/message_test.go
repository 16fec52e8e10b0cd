package diag

import (
	"testing"

	"github.com/go-as2js/as2js/internal/position"
)

func TestMessageChainsPartsIntoOneDiagnostic(t *testing.T) {
	ctx := NewContext()
	var got Diagnostic
	ctx.SetCallback(func(d Diagnostic) { got = d })

	ctx.NewMessage(Error, UnknownEscapeSequence, position.Position{}).
		Append("bad escape: ").
		Append('x').
		Appendf(" (code %d)", 7).
		Emit()

	want := "bad escape: x (code 7)"
	if got.Message != want {
		t.Fatalf("message = %q, want %q", got.Message, want)
	}
	if ctx.Errors() != 1 {
		t.Fatalf("errors = %d, want 1", ctx.Errors())
	}
}

func TestMessageWithNothingAppendedIsNotEmitted(t *testing.T) {
	ctx := NewContext()
	called := false
	ctx.SetCallback(func(Diagnostic) { called = true })

	ctx.NewMessage(Error, UnknownEscapeSequence, position.Position{}).Emit()

	if called {
		t.Fatalf("callback invoked for a message with no appended text")
	}
	if ctx.Errors() != 0 {
		t.Fatalf("errors = %d, want 0 (an empty message emits nothing, including no count)", ctx.Errors())
	}
}

func TestMessageDoneIsAliasForEmit(t *testing.T) {
	ctx := NewContext()
	var got Diagnostic
	ctx.SetCallback(func(d Diagnostic) { got = d })

	ctx.NewMessage(Warning, NoCode, position.Position{}).Append("done alias works").Done()

	if got.Message != "done alias works" {
		t.Fatalf("message = %q", got.Message)
	}
}
