package domain

import (
	"time"

	"github.com/samber/lo"
)

// Chat is a conversation between usernames.
// Its ID is generated by the creator and never reused. Only Blocked changes
// after creation.
type Chat struct {
	ID           string
	Participants []string
	CreatedAt    time.Time
	Blocked      bool
}

// HasParticipant reports whether username takes part in the chat.
func (c Chat) HasParticipant(username string) bool {
	return lo.Contains(c.Participants, username)
}

// HasParticipants reports whether the participant set is a superset of usernames.
// The relation ignores order, so HasParticipants(a, b) == HasParticipants(b, a).
func (c Chat) HasParticipants(usernames ...string) bool {
	return lo.Every(c.Participants, usernames)
}
