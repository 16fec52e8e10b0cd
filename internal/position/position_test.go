package position

import "testing"

func TestNewLineAdvancesAbsoluteAndPageLine(t *testing.T) {
	p := New("script.as")
	p.NewLine()
	p.NewLine()

	if p.Line != 3 {
		t.Errorf("Line = %d, want 3", p.Line)
	}
	if p.PageLine != 3 {
		t.Errorf("PageLine = %d, want 3", p.PageLine)
	}
	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}
}

func TestNewPageResetsPageLineAndParagraph(t *testing.T) {
	p := New("script.as")
	p.NewLine()
	p.NewParagraph()
	p.NewPage()

	if p.Page != 2 {
		t.Errorf("Page = %d, want 2", p.Page)
	}
	if p.PageLine != 1 {
		t.Errorf("PageLine = %d, want 1", p.PageLine)
	}
	if p.Para != 1 {
		t.Errorf("Para = %d, want 1", p.Para)
	}
	// NewPage does not reset the absolute line counter.
	if p.Line != 2 {
		t.Errorf("Line = %d, want 2", p.Line)
	}
}

func TestNewParagraphAdvancesWithinPage(t *testing.T) {
	p := New("script.as")
	p.NewParagraph()
	p.NewParagraph()

	if p.Para != 3 {
		t.Errorf("Para = %d, want 3", p.Para)
	}
}

func TestPositionIsValueCopied(t *testing.T) {
	p := New("script.as")
	p.NewLine()
	snapshot := p
	p.NewLine()

	if snapshot.Line == p.Line {
		t.Fatalf("expected value copy to be independent of later mutation")
	}
}
