// Package domain contains core concepts of the chat system.
// This file defines Message records. Messages are immutable once sent.
package domain

import "time"

// Message belongs to exactly one chat. Read is stored but never changed
// by any operation of the chat core.
type Message struct {
	ID      string
	ChatID  string
	Sender  string
	Content string
	SentAt  time.Time
	Read    bool
}
