package routing

import (
	"fmt"
	"testing"

	"github.com/konantech/hr-assistant/backend/internal/analysis/mood"
	"github.com/konantech/hr-assistant/backend/internal/model/chat"
)

func TestRouteGreetingShortCircuits(t *testing.T) {
	for _, text := range []string{"hi", "Hello", "  HEY  "} {
		d := Route(chat.StateIdle, text)
		if d.Kind != Greeting {
			t.Fatalf("expected greeting for %q, got %s", text, d.Kind)
		}
	}

	// Greeting wins even while a check-in answer is pending.
	if d := Route(chat.StateAwaitingMoodScore, "hello"); d.Kind != Greeting {
		t.Fatalf("expected greeting while awaiting score, got %s", d.Kind)
	}
}

func TestRouteGreetingMustBeLiteral(t *testing.T) {
	if d := Route(chat.StateIdle, "hello there"); d.Kind != Freeform {
		t.Fatalf("expected freeform for non-literal greeting, got %s", d.Kind)
	}
}

func TestRouteMoodBeforeCheckin(t *testing.T) {
	// Contains both a mood keyword and a check-in phrase; the classifier
	// is evaluated first.
	d := Route(chat.StateIdle, "I'm exhausted, can we check in?")
	if d.Kind != MoodHit || d.Mood != mood.Tired {
		t.Fatalf("expected tired mood hit, got %+v", d)
	}
}

func TestRouteCheckinStart(t *testing.T) {
	d := Route(chat.StateIdle, "let's do a mood check")
	if d.Kind != CheckinStart {
		t.Fatalf("expected checkin start, got %s", d.Kind)
	}
}

func TestRouteCheckinAnswerValidScores(t *testing.T) {
	for score := 1; score <= 10; score++ {
		d := Route(chat.StateAwaitingMoodScore, fmt.Sprintf(" %d ", score))
		if d.Kind != CheckinAnswer || !d.ScoreValid || d.Score != score {
			t.Fatalf("expected valid answer %d, got %+v", score, d)
		}
	}
}

func TestRouteCheckinAnswerInvalid(t *testing.T) {
	for _, text := range []string{"0", "11", "-3", "seven", "7.5", "about 7"} {
		d := Route(chat.StateAwaitingMoodScore, text)
		if d.Kind != CheckinAnswer || d.ScoreValid {
			t.Fatalf("expected invalid answer for %q, got %+v", text, d)
		}
	}
}

func TestRouteNumbersAreFreeformWhenIdle(t *testing.T) {
	if d := Route(chat.StateIdle, "7"); d.Kind != Freeform {
		t.Fatalf("expected freeform for bare number while idle, got %s", d.Kind)
	}
}

func TestRouteFreeform(t *testing.T) {
	d := Route(chat.StateIdle, "how many remote days are allowed?")
	if d.Kind != Freeform {
		t.Fatalf("expected freeform, got %s", d.Kind)
	}
}
