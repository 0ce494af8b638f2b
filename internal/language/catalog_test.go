package language

import "testing"

func TestCurrentStartsAtFirstEntry(t *testing.T) {
	c := NewCatalog(nil)
	if got := c.Current().ID; got != "english" {
		t.Fatalf("expected english, got %s", got)
	}
}

func TestAdvanceWrapsAround(t *testing.T) {
	c := NewCatalog(nil)

	var last string
	for i := 0; i < 5; i++ {
		last = c.Advance().ID
	}
	if last != "malayalam" {
		t.Fatalf("expected malayalam after five advances, got %s", last)
	}

	if got := c.Advance().ID; got != "english" {
		t.Fatalf("expected wrap to english on sixth advance, got %s", got)
	}
}

func TestAdvanceFullCycleReturnsToStart(t *testing.T) {
	c := NewCatalog(nil)
	n := len(c.Languages())
	for i := 0; i < n; i++ {
		c.Advance()
	}
	if got := c.Current().ID; got != "english" {
		t.Fatalf("expected english after full cycle, got %s", got)
	}
}

func TestByID(t *testing.T) {
	c := NewCatalog(nil)

	lang, ok := c.ByID("tamil")
	if !ok {
		t.Fatal("expected tamil to be present")
	}
	if lang.VoiceTag != "ta" {
		t.Fatalf("expected voice tag ta, got %s", lang.VoiceTag)
	}

	if _, ok := c.ByID("klingon"); ok {
		t.Fatal("expected lookup miss for unknown language")
	}
}
