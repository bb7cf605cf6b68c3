package hashtag

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractLowersAndDropsShortTags(t *testing.T) {
	got := Extract("Hello #Foo #bar123 #a")
	want := []string{"#foo", "#bar123"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract = %v, want %v", got, want)
	}
}

func TestExtractDedupesPreservingOrder(t *testing.T) {
	got := Extract("#go #web #GO #dev #web")
	want := []string{"#go", "#web", "#dev"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract = %v, want %v", got, want)
	}
}

func TestExtractAccented(t *testing.T) {
	got := Extract("Lancement #Été #Créativité demain")
	want := []string{"#été", "#créativité"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract = %v, want %v", got, want)
	}
}

func TestExtractStopsAtNonLetterSigns(t *testing.T) {
	// × and ÷ live in the Latin-1 block but are not word characters.
	got := Extract("promo #2×3 deal #prix÷2")
	want := []string{"#prix"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract = %v, want %v", got, want)
	}
}

func TestExtractEmptyAndPlain(t *testing.T) {
	if got := Extract(""); got != nil {
		t.Fatalf("Extract(\"\") = %v, want nil", got)
	}
	if got := Extract("no tags here, # alone"); got != nil {
		t.Fatalf("Extract = %v, want nil", got)
	}
}

func TestExtractIdempotent(t *testing.T) {
	first := Extract("Big news #Launch #ProductLaunch #launch !")
	second := Extract(strings.Join(first, " "))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-extraction changed the set: %v vs %v", first, second)
	}
}
