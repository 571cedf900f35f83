package tui

import "testing"

func TestKeyHandlerCount(t *testing.T) {
	var k KeyHandler

	if got := k.Count(); got != 1 {
		t.Fatalf("empty buffer count = %d, want 1", got)
	}

	k.Push('1')
	k.Push('2')
	if k.Buffer() != "12" {
		t.Fatalf("buffer = %q, want 12", k.Buffer())
	}
	if got := k.Count(); got != 12 {
		t.Fatalf("count = %d, want 12", got)
	}
	// Count consumes the buffer
	if got := k.Count(); got != 1 {
		t.Fatalf("count after consume = %d, want 1", got)
	}
}

func TestKeyHandlerLeadingZero(t *testing.T) {
	var k KeyHandler
	if k.Push('0') {
		t.Fatal("leading zero should not start a count")
	}
	k.Push('1')
	if !k.Push('0') {
		t.Fatal("zero should extend an existing count")
	}
	if got := k.Count(); got != 10 {
		t.Fatalf("count = %d, want 10", got)
	}
}

func TestKeyHandlerReset(t *testing.T) {
	var k KeyHandler
	k.Push('5')
	k.Reset()
	if got := k.Count(); got != 1 {
		t.Fatalf("count after reset = %d, want 1", got)
	}
}

func TestKeyHandlerRejectsNonDigits(t *testing.T) {
	var k KeyHandler
	if k.Push('j') {
		t.Fatal("non-digit accepted")
	}
}
