// Package conversation executes the routing decision for each incoming
// user message: fast-path replies, the 1-10 check-in flow with its durable
// log write, and delegation to the assistant gateway for everything else.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/konantech/hr-assistant/backend/internal/analysis/mood"
	"github.com/konantech/hr-assistant/backend/internal/model/chat"
	"github.com/konantech/hr-assistant/backend/internal/model/policy"
	"github.com/konantech/hr-assistant/backend/internal/routing"
	"github.com/konantech/hr-assistant/backend/internal/service/assistant"
	chatservice "github.com/konantech/hr-assistant/backend/internal/service/chat"
)

// Fixed reply surface. Every turn ends with one of these or with gateway
// output; nothing else is ever emitted.
const (
	GreetingReply      = "Hello. Ask me about leave, HR policy, or upload your CV for feedback."
	CheckinPrompt      = "On a scale of 1-10, how are you feeling today?"
	InvalidScoreReply  = "Please enter a whole number between 1 and 10."
	LogFailureReply    = "Sorry - I couldn't record your mood right now. Please try again in a moment."
	NotConfiguredReply = "The assistant service is not configured. Please contact the administrator."
	GatewayErrorReply  = "Sorry - I'm having trouble reaching the assistant service right now. Please try again."
	EmptyAnswerReply   = "I couldn't come up with a useful answer. Could you rephrase your question?"
)

// MoodStore is the durable append-only score log.
type MoodStore interface {
	Append(score int) error
}

// Reply is the outcome of one fully processed turn.
type Reply struct {
	Text     string       `json:"reply"`
	Decision routing.Kind `json:"decision"`
	Mood     mood.Tag     `json:"mood,omitempty"`
	State    chat.State   `json:"state"`
}

// Service drives the conversation state machine. A nil gateway means the
// completion service credentials were missing at startup; freeform turns
// then answer with a fixed configuration-error reply while every fast
// path keeps working.
type Service struct {
	chatSvc   *chatservice.Service
	moodStore MoodStore
	gateway   assistant.Gateway
	policyDoc policy.Document
	timeout   time.Duration
}

// NewService wires the state machine to its collaborators.
func NewService(chatSvc *chatservice.Service, moodStore MoodStore, gateway assistant.Gateway, policyDoc policy.Document, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		chatSvc:   chatSvc,
		moodStore: moodStore,
		gateway:   gateway,
		policyDoc: policyDoc,
		timeout:   timeout,
	}
}

// Respond processes one user message start to finish: routing, state
// transition, optional log write, optional remote call, history update.
// onDelta, when non-nil, receives partial gateway output if the provider
// supports streaming. An error is returned only for an unknown session;
// every handled failure ends in a user-visible reply instead.
func (s *Service) Respond(ctx context.Context, sessionID, text string, onDelta func(delta string)) (Reply, error) {
	session, err := s.chatSvc.GetSession(ctx, sessionID)
	if err != nil {
		return Reply{}, err
	}

	history, err := s.chatSvc.LoadTranscript(ctx, sessionID)
	if err != nil {
		return Reply{}, err
	}

	decision := routing.Route(session.State, text)

	userMsg := chat.Message{
		SessionID: sessionID,
		Role:      chat.RoleUser,
		Content:   text,
		Mood:      string(decision.Mood),
	}
	if err := s.chatSvc.SaveMessage(ctx, userMsg); err != nil {
		return Reply{}, err
	}

	replyText, nextState := s.execute(ctx, sessionID, session.State, history, text, decision, onDelta)

	if nextState != session.State {
		if err := s.chatSvc.SetState(ctx, sessionID, nextState); err != nil {
			return Reply{}, err
		}
	}

	assistantMsg := chat.Message{
		SessionID: sessionID,
		Role:      chat.RoleAssistant,
		Content:   replyText,
		Mood:      string(decision.Mood),
	}
	if err := s.chatSvc.SaveMessage(ctx, assistantMsg); err != nil {
		return Reply{}, err
	}

	return Reply{
		Text:     replyText,
		Decision: decision.Kind,
		Mood:     decision.Mood,
		State:    nextState,
	}, nil
}

// execute maps a routing decision to the reply text and the state the
// session moves to. history excludes the message being processed.
func (s *Service) execute(ctx context.Context, sessionID string, state chat.State, history []chat.Message, text string, decision routing.Decision, onDelta func(string)) (string, chat.State) {
	switch decision.Kind {
	case routing.Greeting:
		return GreetingReply, state

	case routing.MoodHit:
		return mood.Responses[decision.Mood], state

	case routing.CheckinStart:
		return CheckinPrompt, chat.StateAwaitingMoodScore

	case routing.CheckinAnswer:
		if !decision.ScoreValid {
			return InvalidScoreReply, chat.StateAwaitingMoodScore
		}
		if err := s.moodStore.Append(decision.Score); err != nil {
			// The score was not recorded; do not acknowledge it as
			// logged and keep the check-in open for a retry.
			log.Printf("[conversation] mood log append failed for session=%s: %v", sessionID, err)
			return LogFailureReply, chat.StateAwaitingMoodScore
		}
		return fmt.Sprintf("Thanks - I've logged your mood as %d/10.", decision.Score), chat.StateIdle

	default:
		return s.freeform(ctx, sessionID, history, text, onDelta), state
	}
}

func (s *Service) freeform(ctx context.Context, sessionID string, history []chat.Message, text string, onDelta func(string)) string {
	if s.gateway == nil {
		return NotConfiguredReply
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := assistant.Request{
		PolicyText:    s.policyDoc.Text,
		ResumeExcerpt: s.chatSvc.GetResume(ctx, sessionID),
		History:       history,
		UserMessage:   text,
	}

	var reply string
	var err error
	if streamer, ok := s.gateway.(assistant.Streamer); ok && onDelta != nil {
		reply, err = streamer.StreamComplete(callCtx, req, onDelta)
	} else {
		reply, err = s.gateway.Complete(callCtx, req)
	}

	if errors.Is(err, assistant.ErrEmptyResponse) {
		return EmptyAnswerReply
	}
	if err != nil {
		log.Printf("[conversation] gateway call failed for session=%s: %v", sessionID, err)
		return GatewayErrorReply
	}
	return reply
}
