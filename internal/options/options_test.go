package options

import "testing"

func TestLookupPragma(t *testing.T) {
	s := New()
	opt, ok := s.LookupPragma("binary")
	if !ok || opt != Binary {
		t.Fatalf("LookupPragma(binary) = %v,%v want Binary,true", opt, ok)
	}

	if _, ok := s.LookupPragma("not_a_real_pragma"); ok {
		t.Fatalf("LookupPragma should fail for unknown names")
	}
}

func TestSetGetRoundtrip(t *testing.T) {
	s := New()
	if s.IsOn(Octal) {
		t.Fatalf("Octal should start off")
	}
	s.Set(Octal, 1)
	if !s.IsOn(Octal) {
		t.Fatalf("Octal should be on after Set(1)")
	}
	if s.Get(ExtendedOperators) != 0 {
		t.Fatalf("unrelated option should remain 0")
	}
}

func TestSetOutOfRangeIsNoop(t *testing.T) {
	s := New()
	s.Set(Option(9999), 2)
	if s.Get(Option(9999)) != 0 {
		t.Fatalf("out-of-range Get should return 0")
	}
}
