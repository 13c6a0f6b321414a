package rank

import (
	"strings"
	"testing"

	"github.com/renewboy/new-words-discoverer/internal/counter"
)

func TestSurvivorsSortedAscendingByFrequency(t *testing.T) {
	tbl := counter.NewTable(0)
	tbl.SetPhase(counter.Counting)
	tbl.GetOrCreate("big").Frequency = 50
	tbl.GetOrCreate("small").Frequency = 3
	tbl.GetOrCreate("mid").Frequency = 10

	entries := Survivors(tbl)
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Frequency > entries[i].Frequency {
			t.Fatalf("entries not sorted ascending: %+v", entries)
		}
	}
}

func TestWriteToFormat(t *testing.T) {
	entries := []Entry{{Word: "葡萄", Frequency: 3}}
	var buf strings.Builder
	if err := WriteTo(&buf, entries); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	want := "Total words: 1\n葡萄 3\n"
	if buf.String() != want {
		t.Errorf("WriteTo output = %q, want %q", buf.String(), want)
	}
}

func TestWriteToEmpty(t *testing.T) {
	var buf strings.Builder
	if err := WriteTo(&buf, nil); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.String() != "Total words: 0\n" {
		t.Errorf("WriteTo(empty) = %q", buf.String())
	}
}

func TestOutputPath(t *testing.T) {
	tests := map[string]string{
		"corpus.txt":        "corpus_out.txt",
		"corpus":            "corpus_out.txt",
		"data/corpus.v2.txt": "data/corpus.v2_out.txt",
		"dir.with.dots/corpus": "dir.with.dots/corpus_out.txt",
	}
	for in, want := range tests {
		if got := OutputPath(in); got != want {
			t.Errorf("OutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}
