package util

import (
	"reflect"
	"testing"
)

func TestNormalizeWhitespace(t *testing.T) {
	if got := NormalizeWhitespace("  Summer   Launch \n Set "); got != "Summer Launch Set" {
		t.Fatalf("got %q", got)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Été… chaud! (très) chaud?")
	want := []string{"été", "chaud", "très", "chaud"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
