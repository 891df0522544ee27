package model

import "time"

type Kind int

const (
	KindCommand Kind = iota // echo of user input
	KindResponse
	KindSystem
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindResponse:
		return "response"
	case KindSystem:
		return "system"
	}
	return "unknown"
}

// Message is one timeline entry. It is never modified after Append.
type Message struct {
	ID        int
	Kind      Kind
	Content   string
	CreatedAt time.Time // display only
}
