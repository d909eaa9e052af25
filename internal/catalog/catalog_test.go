// ABOUTME: Tests for the embedded exercise catalog.
// ABOUTME: Lookup is case-insensitive; search ranks prefix matches first.
package catalog

import (
	"strings"
	"testing"
)

func TestAllLoadsEmbeddedData(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("embedded catalog must not be empty")
	}
	for _, e := range all {
		if e.ID == "" || e.Name == "" {
			t.Errorf("catalog record missing id or name: %+v", e)
		}
	}
}

func TestFindIgnoresCase(t *testing.T) {
	e, ok := Find("bench press")
	if !ok {
		t.Fatal("Find must match regardless of case")
	}
	if e.Name != "Bench Press" {
		t.Errorf("name = %q, want catalog spelling", e.Name)
	}

	if _, ok := Find("no such exercise"); ok {
		t.Error("Find must miss on unknown names")
	}
}

func TestSearchRanksPrefixFirst(t *testing.T) {
	got := Search("press", 0)
	if len(got) == 0 {
		t.Fatal("search for 'press' must hit")
	}

	// Once a substring-only match appears, no prefix match may follow.
	seenSubstr := false
	for _, e := range got {
		name := strings.ToLower(e.Name)
		if !strings.Contains(name, "press") {
			t.Errorf("%q does not contain query", e.Name)
		}
		if strings.HasPrefix(name, "press") {
			if seenSubstr {
				t.Errorf("prefix match %q sorted after substring match", e.Name)
			}
		} else {
			seenSubstr = true
		}
	}
}

func TestSearchLimit(t *testing.T) {
	got := Search("", 3)
	if len(got) != 3 {
		t.Errorf("want 3 results with limit, got %d", len(got))
	}
}

func TestNamesMatchesAll(t *testing.T) {
	names := Names()
	if len(names) != len(All()) {
		t.Errorf("Names length %d != All length %d", len(names), len(All()))
	}
}
