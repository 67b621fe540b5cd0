package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/konantech/hr-assistant/backend/internal/model/chat"
)

var ErrSessionNotFound = errors.New("session not found")

// Service encapsulates per-session conversation state: history, the
// check-in state flag and the resume excerpt used as prompt context.
// Sessions are independent; nothing is shared across them here.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
	messages map[string][]chat.Message
	resumes  map[string]string
}

// NewService bootstraps the in-memory chat service.
func NewService() *Service {
	return &Service{
		sessions: make(map[string]chat.Session),
		messages: make(map[string][]chat.Message),
		resumes:  make(map[string]string),
	}
}

// CreateSession provisions an anonymous session in the idle state.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	session := chat.Session{
		ID:        uuid.NewString(),
		State:     chat.StateIdle,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.messages[session.ID] = make([]chat.Message, 0, 16)
	s.mu.Unlock()

	return session, nil
}

// SaveMessage appends a message to the session history.
func (s *Service) SaveMessage(_ context.Context, message chat.Message) error {
	if message.SessionID == "" {
		return ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[message.SessionID]; !ok {
		return ErrSessionNotFound
	}

	message.ID = uuid.NewString()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	s.messages[message.SessionID] = append(s.messages[message.SessionID], message)
	return nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// SetState records the session's position in the check-in flow.
func (s *Service) SetState(_ context.Context, sessionID string, state chat.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.State = state
	s.sessions[sessionID] = session
	return nil
}

// SetResume attaches an extracted resume excerpt to the session. The
// excerpt only lives as prompt context; it is never persisted.
func (s *Service) SetResume(_ context.Context, sessionID, excerpt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	s.resumes[sessionID] = excerpt
	return nil
}

// GetResume returns the session's resume excerpt, if any.
func (s *Service) GetResume(_ context.Context, sessionID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resumes[sessionID]
}

// LoadTranscript returns stored messages for the provided session.
func (s *Service) LoadTranscript(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}
