package mood

import "testing"

func TestClassifyStress(t *testing.T) {
	tag, ok := Classify("I'm so STRESSED today")
	if !ok || tag != Stress {
		t.Fatalf("expected stress tag, got %q ok=%v", tag, ok)
	}
}

func TestClassifyTableOrderWins(t *testing.T) {
	// "sad" and "tired" both appear; sad is earlier in the table even
	// though "tired" appears first in the text.
	tag, ok := Classify("tired and sad")
	if !ok || tag != Sad {
		t.Fatalf("expected sad tag from table order, got %q ok=%v", tag, ok)
	}

	// stress outranks everything else.
	tag, ok = Classify("sad, tired and overwhelmed")
	if !ok || tag != Stress {
		t.Fatalf("expected stress tag from table order, got %q ok=%v", tag, ok)
	}
}

func TestClassifyNoMatch(t *testing.T) {
	if tag, ok := Classify("how many leave days do I get?"); ok {
		t.Fatalf("expected no tag, got %q", tag)
	}
	if _, ok := Classify("   "); ok {
		t.Fatal("expected no tag for blank input")
	}
}

func TestClassifyEveryTagHasResponse(t *testing.T) {
	for _, entry := range keywordTable {
		if Responses[entry.tag] == "" {
			t.Fatalf("missing canned response for tag %q", entry.tag)
		}
	}
}

func TestWantsCheckin(t *testing.T) {
	positives := []string{
		"can we check in?",
		"I'd like a mood CHECK-IN",
		"how am I doing",
		"not feeling good today",
		"please motivate me",
		"i feel off",
		"I've been so unproductive",
	}
	for _, text := range positives {
		if !WantsCheckin(text) {
			t.Fatalf("expected check-in for %q", text)
		}
	}

	if WantsCheckin("what are the working hours?") {
		t.Fatal("unexpected check-in for policy question")
	}
}
