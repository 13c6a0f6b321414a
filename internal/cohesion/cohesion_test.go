package cohesion

import (
	"math"
	"testing"

	"github.com/renewboy/new-words-discoverer/internal/counter"
	"github.com/renewboy/new-words-discoverer/internal/ngram"
)

func buildTable(t *testing.T, sentence string, maxWordLen uint) *counter.Table {
	t.Helper()
	tbl := counter.NewTable(0)
	tbl.SetPhase(counter.Counting)
	ngram.Enumerate(tbl, sentence, maxWordLen)
	return tbl
}

func TestComputeRejectsLowCohesion(t *testing.T) {
	// A and B each occur 101 times; AB occurs only twice (at the A/B
	// boundary and at the tail). Cohesion
	// should be far below a strict threshold and AB should be removed
	// (spec S3).
	sentence := ""
	for i := 0; i < 100; i++ {
		sentence += "A"
	}
	for i := 0; i < 100; i++ {
		sentence += "B"
	}
	sentence += "AB"

	tbl := buildTable(t, sentence, 2)
	if err := Compute(tbl, 100); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if _, ok := tbl.Get("AB"); ok {
		t.Fatal("AB survived a high firmness threshold despite weak cohesion")
	}
}

func TestComputeKeepsStrongCohesion(t *testing.T) {
	tbl := buildTable(t, "葡萄葡萄葡萄", 2)
	if err := Compute(tbl, 1.0); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	c, ok := tbl.Get("葡萄")
	if !ok {
		t.Fatal("葡萄 removed despite high relative cohesion")
	}
	if !c.Scored || c.Cohesion <= 0 {
		t.Fatalf("unexpected cohesion record: %+v", c)
	}
}

func TestComputeSingleCharacterKeysSurvive(t *testing.T) {
	tbl := buildTable(t, "葡萄葡萄葡萄", 2)
	if err := Compute(tbl, math.MaxFloat64); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if _, ok := tbl.Get("葡"); !ok {
		t.Fatal("length-1 key was removed by the cohesion pass")
	}
}

func TestComputeEmptyTable(t *testing.T) {
	tbl := counter.NewTable(0)
	tbl.SetPhase(counter.Counting)
	if err := Compute(tbl, 1.0); err != nil {
		t.Fatalf("Compute on empty table: %v", err)
	}
	if tbl.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tbl.Len())
	}
}
