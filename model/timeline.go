package model

import "time"

// Timeline is the ordered list of messages shown in the session.
// IDs keep counting across Reset so they stay unique for the whole session.
type Timeline struct {
	messages []Message
	nextID   int
	now      func() time.Time
}

func NewTimeline() *Timeline {
	return &Timeline{now: time.Now}
}

func (t *Timeline) Append(kind Kind, content string) Message {
	msg := Message{
		ID:        t.nextID,
		Kind:      kind,
		Content:   content,
		CreatedAt: t.now(),
	}
	t.nextID++
	t.messages = append(t.messages, msg)
	return msg
}

// Reset drops every message. The id counter is not rewound.
func (t *Timeline) Reset() {
	t.messages = nil
}

// Messages returns a copy of the timeline in display order.
func (t *Timeline) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Timeline) Len() int {
	return len(t.messages)
}

// LastOfKind returns the most recent message of the given kind.
func (t *Timeline) LastOfKind(kind Kind) (Message, bool) {
	for i := len(t.messages) - 1; i >= 0; i-- {
		if t.messages[i].Kind == kind {
			return t.messages[i], true
		}
	}
	return Message{}, false
}
