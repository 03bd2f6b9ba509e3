package model

import "time"

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one normalized exchange unit in a session history.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// SessionState is the persisted snapshot of one conversation.
// Turns is append-only. LocationContext and ReferenceMemory are the only
// fields that carry meaning from one turn to the next.
type SessionState struct {
	SessionID       string    `json:"session_id"`
	Turns           []Turn    `json:"turns"`
	LocationContext string    `json:"location_context"`
	ReferenceMemory string    `json:"reference_memory"`
	Version         int64     `json:"version"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Append adds a turn to the history.
func (s *SessionState) Append(role Role, text string) {
	s.Turns = append(s.Turns, Turn{Role: role, Text: text})
}

// Clone returns a deep copy so callers can mutate without aliasing stored turns.
func (s SessionState) Clone() SessionState {
	out := s
	if s.Turns != nil {
		out.Turns = make([]Turn, len(s.Turns))
		copy(out.Turns, s.Turns)
	}
	return out
}

// Patch is a partial update to sticky session state. A nil field means "leave unchanged".
type Patch struct {
	LocationContext *string
	ReferenceMemory *string
}

// Apply merges the patch into s, last write wins per field.
func (p Patch) Apply(s *SessionState) {
	if p.LocationContext != nil {
		s.LocationContext = *p.LocationContext
	}
	if p.ReferenceMemory != nil {
		s.ReferenceMemory = *p.ReferenceMemory
	}
}

// Merge returns a patch where fields set in next override p.
func (p Patch) Merge(next Patch) Patch {
	if next.LocationContext != nil {
		p.LocationContext = next.LocationContext
	}
	if next.ReferenceMemory != nil {
		p.ReferenceMemory = next.ReferenceMemory
	}
	return p
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.LocationContext == nil && p.ReferenceMemory == nil
}

// StringPtr is a helper for building patches.
func StringPtr(s string) *string {
	return &s
}
