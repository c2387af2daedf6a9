package whatsapp

import (
	"container/list"
	"sync"

	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/internal/ai"
)

// DefaultSessionCapacity bounds the in-memory session map.
const DefaultSessionCapacity = 1024

// Session holds one sender's conversation state. Its mutex serializes
// handling for that sender: whoever holds it owns the turn history and the
// single allowed in-flight model call.
type Session struct {
	mu     sync.Mutex
	sender string
	turns  []ai.Turn
}

func newSession(sender string) *Session {
	return &Session{
		sender: sender,
		turns: []ai.Turn{
			{Role: ai.RoleInstruction, Text: SystemPrompt},
			{Role: ai.RoleAssistant, Text: Acknowledgment},
		},
	}
}

// Lock acquires the per-sender lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-sender lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// Sender returns the opaque sender identity this session belongs to.
func (s *Session) Sender() string { return s.sender }

// Turns returns a copy of the turn history.
func (s *Session) Turns() []ai.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ai.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// historyWith returns the turn history extended with a pending user turn,
// without mutating the session. Caller must hold the lock.
func (s *Session) historyWith(userText string) []ai.Turn {
	history := make([]ai.Turn, len(s.turns), len(s.turns)+1)
	copy(history, s.turns)
	return append(history, ai.Turn{Role: ai.RoleUser, Text: userText})
}

// commit appends a completed user/assistant exchange. Caller must hold the
// lock. Failed model attempts never reach here, so the history only ever
// grows in whole exchanges.
func (s *Session) commit(userText, replyText string) {
	s.turns = append(s.turns,
		ai.Turn{Role: ai.RoleUser, Text: userText},
		ai.Turn{Role: ai.RoleAssistant, Text: replyText},
	)
}

// SessionStore maps sender identities to sessions. Bounded: once capacity is
// reached the least recently used sender is evicted. Store lookup holds only
// the store mutex, so slow model calls for one sender never block lookups for
// others.
type SessionStore struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recently used, values are *Session
}

// NewSessionStore builds a store bounded to capacity sessions. Non-positive
// capacities use DefaultSessionCapacity.
func NewSessionStore(capacity int) *SessionStore {
	if capacity <= 0 {
		capacity = DefaultSessionCapacity
	}
	return &SessionStore{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// GetOrCreate returns the sender's session, creating one seeded with the
// instruction and acknowledgment turns on first contact.
func (st *SessionStore) GetOrCreate(sender string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if el, ok := st.entries[sender]; ok {
		st.order.MoveToFront(el)
		return el.Value.(*Session)
	}

	sess := newSession(sender)
	st.entries[sender] = st.order.PushFront(sess)

	if st.order.Len() > st.capacity {
		oldest := st.order.Back()
		st.order.Remove(oldest)
		delete(st.entries, oldest.Value.(*Session).sender)
	}

	return sess
}

// Len reports the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.order.Len()
}
