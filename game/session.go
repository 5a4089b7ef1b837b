package game

import (
	"log"
	"sync"

	"dnd-quest-bot/llm"
)

// State enumerates the conversation states of one session.
type State int

const (
	StateIdle State = iota
	StateCreatingRace
	StateCreatingName
	StateCreatingClass
	StateCreatingBackground
	StateCreatingStatsBonus
	StateCreatingPersonality
	StateCreatingAppearance
	StateAwaitingModel
	StateDialogue
	StateCustomAction
)

// String returns the state name for logs.
func (s State) String() string {
	names := [...]string{
		"Idle", "CreatingRace", "CreatingName", "CreatingClass",
		"CreatingBackground", "CreatingStatsBonus", "CreatingPersonality",
		"CreatingAppearance", "AwaitingModel", "Dialogue", "CustomAction",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// WizardData holds the partially filled character fields during the
// creation wizard. It is discarded once the character is finalized, so
// wizard-only fields are unreachable from the dialogue loop.
type WizardData struct {
	Race        string
	Name        string
	Class       string
	Background  string
	Stats       Stats
	BonusReport string
	BonusAnswer string
	Personality string
	Appearance  string
}

// Session is one player's conversation state. All fields are guarded by
// mu; the engine never holds the lock across a generation call, the
// AwaitingModel state gates concurrent input instead.
type Session struct {
	ChatID int64

	mu        sync.Mutex
	state     State
	wizard    *WizardData
	character *Character
	history   []llm.Message
}

// NewSession creates an idle session for a chat.
func NewSession(chatID int64) *Session {
	return &Session{ChatID: chatID, state: StateIdle}
}

// Reset clears all session data back to the idle state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.wizard = nil
	s.character = nil
	s.history = nil
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Character returns the finished character, nil during the wizard.
func (s *Session) Character() *Character {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.character
}

// HistoryLen reports the current history length.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// SessionManager keeps one session per chat.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewSessionManager creates an empty session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[int64]*Session)}
}

// GetOrCreate returns the session for a chat, creating it on first
// contact.
func (sm *SessionManager) GetOrCreate(chatID int64) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sess, ok := sm.sessions[chatID]; ok {
		return sess
	}
	sess := NewSession(chatID)
	sm.sessions[chatID] = sess
	log.Printf("[SESSION] Created session for chat %d", chatID)
	return sess
}

// Remove drops the session for a chat.
func (sm *SessionManager) Remove(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, chatID)
	log.Printf("[SESSION] Removed session for chat %d", chatID)
}

// Len reports how many sessions are active.
func (sm *SessionManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}
