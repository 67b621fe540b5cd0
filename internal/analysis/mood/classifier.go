package mood

import "strings"

// Tag is one of the fixed emotion categories detected via keyword matching.
type Tag string

const (
	Stress  Tag = "stress"
	Anxiety Tag = "anxiety"
	Sad     Tag = "sad"
	Tired   Tag = "tired"
)

// keywordTable is ordered: the first tag whose phrase list matches wins,
// regardless of where the phrase appears in the text. The order is part of
// the routing contract and covered by tests.
var keywordTable = []struct {
	tag     Tag
	phrases []string
}{
	{Stress, []string{"stressed", "overwhelmed", "burnt out", "burned out", "under pressure"}},
	{Anxiety, []string{"anxious", "anxiety", "worried", "nervous", "panicking"}},
	{Sad, []string{"sad", "depressed", "down", "unhappy"}},
	{Tired, []string{"tired", "exhausted", "drained", "worn out"}},
}

// Responses maps each tag to its fixed supportive reply.
var Responses = map[Tag]string{
	Stress:  "I'm sorry you're feeling stressed. Consider taking a short break or speaking with your manager or HR.",
	Anxiety: "It sounds like you're feeling anxious. Take a moment to breathe, and remember your manager and HR are there to support you.",
	Sad:     "I'm sorry you're feeling this way. You're not alone — support is available.",
	Tired:   "It sounds like you've been working hard. Rest and recovery are important.",
}

// Classify maps free text to an optional mood tag via case-folded substring
// containment. Pure and deterministic.
func Classify(text string) (Tag, bool) {
	normalized := strings.ToLower(text)
	if strings.TrimSpace(normalized) == "" {
		return "", false
	}

	for _, entry := range keywordTable {
		for _, phrase := range entry.phrases {
			if strings.Contains(normalized, phrase) {
				return entry.tag, true
			}
		}
	}
	return "", false
}

var checkinPhrases = []string{
	"check in",
	"check-in",
	"mood check",
	"how am i doing",
	"not feeling good",
	"motivate me",
	"i feel off",
	"unproductive",
}

// WantsCheckin reports whether the text asks for a 1-10 mood check-in.
// Pure and deterministic.
func WantsCheckin(text string) bool {
	normalized := strings.ToLower(text)
	for _, phrase := range checkinPhrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}
