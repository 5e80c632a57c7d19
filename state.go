package scholarseeker

import "sync/atomic"

// SessionState holds the mutable per-session data: the conversation
// history, the citation list of the most recent assistant turn, and the
// in-flight guard that serializes interaction at the input layer.
type SessionState struct {
	MessageHistory *MessageList

	// LastCitations is replaced wholesale each time an assistant response
	// completes; it is never merged across turns.
	LastCitations []string

	generating atomic.Bool
}

func NewSessionState() *SessionState {
	return &SessionState{
		MessageHistory: NewMessageList(),
	}
}

// Generating reports whether a response is currently in flight.
func (s *SessionState) Generating() bool {
	return s.generating.Load()
}

// Reset clears the conversation. The session itself stays usable.
func (s *SessionState) Reset() {
	s.MessageHistory.Clear()
	s.LastCitations = nil
}

// beginTurn claims the in-flight guard. It fails when a turn is already
// being generated.
func (s *SessionState) beginTurn() bool {
	return s.generating.CompareAndSwap(false, true)
}

func (s *SessionState) endTurn() {
	s.generating.Store(false)
}
