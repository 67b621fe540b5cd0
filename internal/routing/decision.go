// Package routing turns an incoming user message into an explicit,
// priority-ordered routing decision. Keeping this pure makes the fast-path
// order a testable artifact instead of incidental handler code.
package routing

import (
	"strconv"
	"strings"

	"github.com/konantech/hr-assistant/backend/internal/analysis/mood"
	"github.com/konantech/hr-assistant/backend/internal/model/chat"
)

// Kind discriminates the routing decision union.
type Kind string

const (
	Greeting      Kind = "greeting"
	MoodHit       Kind = "mood"
	CheckinStart  Kind = "checkin_start"
	CheckinAnswer Kind = "checkin_answer"
	Freeform      Kind = "freeform"
)

// Decision is the outcome of routing one user message.
// Score and ScoreValid are meaningful only for CheckinAnswer.
type Decision struct {
	Kind       Kind
	Mood       mood.Tag
	Score      int
	ScoreValid bool
}

var greetings = map[string]struct{}{
	"hi":    {},
	"hello": {},
	"hey":   {},
}

// Route evaluates the fast paths in strict priority order: literal
// greeting, mood keyword, check-in request, pending numeric answer, then
// freeform. The first match wins; later checks are never evaluated.
func Route(state chat.State, text string) Decision {
	folded := strings.ToLower(strings.TrimSpace(text))

	if _, ok := greetings[folded]; ok {
		return Decision{Kind: Greeting}
	}

	if tag, ok := mood.Classify(text); ok {
		return Decision{Kind: MoodHit, Mood: tag}
	}

	if mood.WantsCheckin(text) {
		return Decision{Kind: CheckinStart}
	}

	if state == chat.StateAwaitingMoodScore {
		score, err := strconv.Atoi(folded)
		if err != nil || score < 1 || score > 10 {
			return Decision{Kind: CheckinAnswer}
		}
		return Decision{Kind: CheckinAnswer, Score: score, ScoreValid: true}
	}

	return Decision{Kind: Freeform}
}
