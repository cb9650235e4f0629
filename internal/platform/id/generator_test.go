package id

import "testing"

func TestRandomGenerator_NewID(t *testing.T) {
	gen := NewRandomGenerator(0)

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if len(first) != 2*defaultSize {
		t.Fatalf("expected %d hex chars, got %d", 2*defaultSize, len(first))
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %s twice", first)
	}
}

func TestRandomGenerator_CustomSize(t *testing.T) {
	got, err := NewRandomGenerator(4).NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 hex chars, got %q", got)
	}
}
