package pipeline

import (
	"testing"
)

func TestRegister_Idempotent(t *testing.T) {
	p := New()
	before := len(p.StageNames())

	calls := 0
	p.Register(Stage{
		Name: AttrReadability,
		Compute: func(doc *Document) (interface{}, error) {
			calls++
			return nil, nil
		},
	})

	if got := len(p.StageNames()); got != before {
		t.Fatalf("re-registering existing stage changed stage count: %d -> %d", before, got)
	}

	doc := p.NewDocument("A sentence. Another sentence. A third one.")
	if _, err := doc.Readability(); err != nil {
		t.Fatalf("Readability(): %v", err)
	}
	if calls != 0 {
		t.Error("duplicate registration replaced the original stage")
	}
}

func TestAttr_UnknownStage(t *testing.T) {
	p := New()
	doc := p.NewDocument("text")
	if _, err := doc.Attr("sentiment"); err == nil {
		t.Fatal("expected error for unregistered attribute")
	}
}

func TestAttr_ComputedOnce(t *testing.T) {
	p := &Pipeline{index: make(map[string]int)}
	calls := 0
	p.Register(Stage{
		Name: "counter",
		Compute: func(doc *Document) (interface{}, error) {
			calls++
			return calls, nil
		},
	})

	doc := p.NewDocument("irrelevant")
	for i := 0; i < 3; i++ {
		value, err := doc.Attr("counter")
		if err != nil {
			t.Fatalf("Attr(counter): %v", err)
		}
		if value.(int) != 1 {
			t.Fatalf("attribute recomputed: got %v, want 1", value)
		}
	}
	if calls != 1 {
		t.Fatalf("stage ran %d times, want 1", calls)
	}
}

func TestSetText_InvalidatesCache(t *testing.T) {
	p := New()
	doc := p.NewDocument("Short one.")

	first, err := doc.Statistics()
	if err != nil {
		t.Fatalf("Statistics(): %v", err)
	}

	doc.SetText("A much longer replacement sentence with many more tokens in it.")
	second, err := doc.Statistics()
	if err != nil {
		t.Fatalf("Statistics() after SetText: %v", err)
	}

	if first.NTokens == second.NTokens {
		t.Errorf("statistics not recomputed after SetText: %d tokens both times", first.NTokens)
	}
}

func TestReadability_EndToEnd(t *testing.T) {
	p := New()
	doc := p.NewDocument("The cat sat on the mat. The dog barked at the cat. Everyone went home after that.")

	scores, err := doc.Readability()
	if err != nil {
		t.Fatalf("Readability(): %v", err)
	}
	if scores.FleschReadingEase <= 0 {
		t.Errorf("flesch_reading_ease = %v, want positive for trivial prose", scores.FleschReadingEase)
	}

	// Cached attribute access is bit-identical.
	again, err := doc.Readability()
	if err != nil {
		t.Fatalf("second Readability(): %v", err)
	}
	if scores != again {
		t.Errorf("cached scores differ: %+v vs %+v", scores, again)
	}
}
